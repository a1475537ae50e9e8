/*
Package polygon provides 2D polygons, used as cross sections for pipes.

Polygons are built like paths, by adding knots one after another:

	pg := NullPolygon().Knot(tubular.P(0, 0)).Knot(tubular.P(1, 3)).Knot(tubular.P(3, 0)).Cycle()

Polygons live in the XY-plane. Lift turns a polygon into a 3D contour in the
plane z=0, facing +Z, ready to be swept along a path by package pipe.
Boolean operations (union, intersection, difference, xor) are delegated to
github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'polygon'.
func tracer() tracing.Trace {
	return tracing.Select("polygon")
}

// ErrTooFewKnots indicates a polygon with fewer than 3 knots where an
// area is required.
var ErrTooFewKnots = errors.New("polygon needs at least 3 knots")

// Op is a boolean operation on polygons.
type Op = polyclip.Op

// Boolean operations for Clip.
const (
	Union        = polyclip.UNION
	Intersection = polyclip.INTERSECTION
	Difference   = polyclip.DIFFERENCE
	Xor          = polyclip.XOR
)

// Polygon is a sequence of knots. A polygon which has been closed by
// Cycle() connects its last knot to the first one.
type Polygon struct {
	knots polyclip.Contour
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by Knot().
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p tubular.Pair) *Polygon {
	pg.knots.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.knots) == 0 {
		panic("cannot close an empty polygon")
	}
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is the polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns knot i. Indices wrap around, so Pt(-1) is the last knot.
func (pg *Polygon) Pt(i int) tubular.Pair {
	n := len(pg.knots)
	if n == 0 {
		return tubular.P(math.NaN(), math.NaN())
	}
	k := pg.knots[(i%n+n)%n]
	return tubular.P(k.X, k.Y)
}

// Box creates a rectangle with corners a and b, counter-clockwise, starting
// at the lower left corner.
func Box(a, b tubular.Pair) *Polygon {
	ll := tubular.P(math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()))
	ur := tubular.P(math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()))
	return NullPolygon().Knot(ll).Knot(tubular.P(ur.X(), ll.Y())).
		Knot(ur).Knot(tubular.P(ll.X(), ur.Y())).Cycle()
}

// Ellipse creates an ellipse around the origin, approximated by steps
// knots in counter-clockwise order. The first knot is (rx,0).
func Ellipse(rx, ry float64, steps int) (*Polygon, error) {
	if steps < 3 {
		return nil, fmt.Errorf("%w: ellipse with %d steps", ErrTooFewKnots, steps)
	}
	pg := NullPolygon()
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pg.Knot(tubular.P(rx*math.Cos(a), ry*math.Sin(a)))
	}
	return pg.Cycle(), nil
}

// Circle creates a circle of radius r around the origin.
func Circle(r float64, steps int) (*Polygon, error) {
	return Ellipse(r, r, steps)
}

// BoundingBox returns the lower left and upper right corners of the
// smallest axis-aligned rectangle containing all knots.
func (pg *Polygon) BoundingBox() (tubular.Pair, tubular.Pair) {
	r := pg.knots.BoundingBox()
	return tubular.P(r.Min.X, r.Min.Y), tubular.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: does the closed polygon contain p?
func (pg *Polygon) Contains(p tubular.Pair) bool {
	return pg.knots.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Area returns the signed area of the closed polygon. It is positive for
// counter-clockwise knots.
func (pg *Polygon) Area() (float64, error) {
	n := len(pg.knots)
	if n < 3 {
		return 0, fmt.Errorf("%w: have %d", ErrTooFewKnots, n)
	}
	a := 0.0
	for i, k := range pg.knots {
		next := pg.knots[(i+1)%n]
		a += k.X*next.Y - next.X*k.Y
	}
	return a / 2, nil
}

// Reversed returns a copy of the polygon with knots in reverse order.
func (pg *Polygon) Reversed() *Polygon {
	r := &Polygon{knots: make(polyclip.Contour, len(pg.knots)), cycle: pg.cycle}
	for i, k := range pg.knots {
		r.knots[len(pg.knots)-1-i] = k
	}
	return r
}

// Transform returns a copy of the polygon with every knot transformed by at.
func (pg *Polygon) Transform(at tubular.AT) *Polygon {
	r := &Polygon{knots: make(polyclip.Contour, len(pg.knots)), cycle: pg.cycle}
	for i, k := range pg.knots {
		p := at.Transform(tubular.P(k.X, k.Y))
		r.knots[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return r
}

// Clip combines two closed polygons by a boolean operation. The result may
// consist of several polygons, e.g. when subtracting a polygon splits pg
// into pieces, or none at all.
func (pg *Polygon) Clip(op Op, other *Polygon) ([]*Polygon, error) {
	if len(pg.knots) < 3 || other == nil || len(other.knots) < 3 {
		return nil, fmt.Errorf("%w: cannot clip", ErrTooFewKnots)
	}
	subject := polyclip.Polygon{pg.knots.Clone()}
	clipping := polyclip.Polygon{other.knots.Clone()}
	result := subject.Construct(op, clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		pgs = append(pgs, &Polygon{knots: c, cycle: true})
	}
	tracer().Debugf("clip: %d contours", len(pgs))
	return pgs, nil
}

// Lift returns the knots as a 3D contour in the plane z=0.
func (pg *Polygon) Lift() []vec3.T {
	contour := make([]vec3.T, len(pg.knots))
	for i, k := range pg.knots {
		contour[i] = vec3.T{k.X, k.Y, 0}
	}
	return contour
}

// AsString returns a polygon in a MetaPost-like notation.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, k := range pg.knots {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		fmt.Fprintf(&sb, "(%.4g,%.4g)", k.X, k.Y)
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
