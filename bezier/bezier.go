/*
Package bezier implements piecewise cubic Bezier paths in 3D.

A path is given by its control points: points 0 to 3 form the first cubic
curve, points 3 to 6 the second one, and so on. Interpolate computes control
points for a smooth path through a sequence of knots; SamplePoints first
thins out a dense point sequence, e.g. recorded mouse or controller
positions, and then interpolates.

A path is flattened to a polyline either with a fixed number of segments per
curve (DrawingPoints) or by recursive subdivision (AdaptivePoints), which
yields fewer points for the same accuracy.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

var (
	// ErrTooFewPoints indicates fewer than 2 knots to interpolate.
	ErrTooFewPoints = errors.New("bezier path needs at least 2 points")
	// ErrNoSuchCurve indicates a curve index beyond the path.
	ErrNoSuchCurve = errors.New("no such curve in bezier path")
)

const (
	// MinimumSqrDistance stops subdivision of segments shorter than its square root.
	MinimumSqrDistance = 0.01
	// DivisionThreshold is the cosine of the angle at a segment's midpoint
	// above which a segment is subdivided. -0.99 is about 172°, i.e. 8° off
	// a straight line.
	DivisionThreshold = -0.99
)

// Path is a sequence of cubic Bezier curves sharing their end points.
type Path struct {
	controls []vec3.T
}

// SetControlPoints replaces the control points of a path. Trailing points
// which do not complete a curve are kept but not drawn.
func (path *Path) SetControlPoints(points []vec3.T) {
	path.controls = append([]vec3.T(nil), points...)
}

// ControlPoints returns the control points. Clients must not modify them.
func (path *Path) ControlPoints() []vec3.T {
	return path.controls
}

// CurveCount returns the number of complete cubic curves.
func (path *Path) CurveCount() int {
	if len(path.controls) < 4 {
		return 0
	}
	return (len(path.controls) - 1) / 3
}

// Interpolate sets the control points of a path through knots. The inner
// control points of a knot lie on a line parallel to the chord between its
// neighbours, at distances proportional to the adjacent segment lengths,
// times scale. Scale 0 results in a polyline, values around 0.3 give smooth
// paths.
func (path *Path) Interpolate(knots []vec3.T, scale float64) error {
	path.controls = path.controls[:0]
	n := len(knots)
	if n < 2 {
		return fmt.Errorf("%w: have %d", ErrTooFewPoints, n)
	}
	for i, p1 := range knots {
		switch i {
		case 0:
			tangent := vec3.Sub(&knots[1], &p1)
			path.controls = append(path.controls, p1, tubular.Axpy(p1, scale, tangent))
		case n - 1:
			tangent := vec3.Sub(&p1, &knots[i-1])
			path.controls = append(path.controls, tubular.Axpy(p1, -scale, tangent), p1)
		default:
			p0, p2 := knots[i-1], knots[i+1]
			tangent, err := tubular.Normalize(vec3.Sub(&p2, &p0))
			if err != nil {
				tracer().Debugf("knot %d: neighbours coincide, no tangent", i)
				tangent = vec3.Zero
			}
			q0 := tubular.Axpy(p1, -scale*vec3.Distance(&p1, &p0), tangent)
			q1 := tubular.Axpy(p1, scale*vec3.Distance(&p2, &p1), tangent)
			path.controls = append(path.controls, q0, p1, q1)
		}
	}
	return nil
}

// SamplePoints thins out a dense sequence of points and interpolates the
// result. A point is sampled if it is further than √minSqrDistance from its
// successor and further than √maxSqrDistance from the previous sample. The
// last two samples are adjusted so the final segment does not end up
// noticeably shorter than its predecessor.
func (path *Path) SamplePoints(src []vec3.T, minSqrDistance, maxSqrDistance, scale float64) error {
	if len(src) < 2 {
		path.controls = path.controls[:0]
		return fmt.Errorf("%w: have %d", ErrTooFewPoints, len(src))
	}
	samples := []vec3.T{src[0]}
	candidate := src[1]
	for i := 2; i < len(src); i++ {
		last := samples[len(samples)-1]
		if sqrDist(candidate, src[i]) > minSqrDistance && sqrDist(last, src[i]) > maxSqrDistance {
			samples = append(samples, candidate)
		}
		candidate = src[i]
	}
	if len(samples) > 1 {
		p1 := samples[len(samples)-1]
		p0 := samples[len(samples)-2]
		if tangent, err := tubular.Normalize(vec3.Sub(&p0, &candidate)); err == nil {
			d2 := vec3.Distance(&candidate, &p1)
			d1 := vec3.Distance(&p1, &p0)
			samples[len(samples)-1] = tubular.Axpy(p1, (d1-d2)/2, tangent)
		}
	}
	samples = append(samples, candidate)
	tracer().Debugf("sampled %d of %d points", len(samples), len(src))
	return path.Interpolate(samples, scale)
}

// Point returns the point at parameter t ∈ [0,1] of curve number curve.
func (path *Path) Point(curve int, t float64) (vec3.T, error) {
	if curve < 0 || curve >= path.CurveCount() {
		return tubular.Invalid(), fmt.Errorf("%w: curve %d of %d", ErrNoSuchCurve, curve, path.CurveCount())
	}
	return path.point(curve, t), nil
}

func (path *Path) point(curve int, t float64) vec3.T {
	i := 3 * curve
	return Eval(path.controls[i], path.controls[i+1], path.controls[i+2], path.controls[i+3], t)
}

// Eval evaluates a cubic Bezier curve with control points p0…p3 at t.
func Eval(p0, p1, p2, p3 vec3.T, t float64) vec3.T {
	u := 1 - t
	b0, b1, b2, b3 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	var p vec3.T
	for k := 0; k < 3; k++ {
		p[k] = b0*p0[k] + b1*p1[k] + b2*p2[k] + b3*p3[k]
	}
	return p
}

// DrawingPoints flattens the path with segmentsPerCurve segments per
// curve. Shared end points of adjacent curves appear once.
func (path *Path) DrawingPoints(segmentsPerCurve int) []vec3.T {
	count := path.CurveCount()
	if count == 0 || segmentsPerCurve < 1 {
		return nil
	}
	points := make([]vec3.T, 0, count*segmentsPerCurve+1)
	points = append(points, path.point(0, 0))
	for c := 0; c < count; c++ {
		for j := 1; j <= segmentsPerCurve; j++ {
			points = append(points, path.point(c, float64(j)/float64(segmentsPerCurve)))
		}
	}
	return points
}

// AdaptivePoints flattens the path by recursive subdivision. A segment is
// halved while it is longer than √MinimumSqrDistance and bends at its
// midpoint by more than DivisionThreshold allows. Every curve is halved at
// least once.
func (path *Path) AdaptivePoints() []vec3.T {
	count := path.CurveCount()
	if count == 0 {
		return nil
	}
	points := []vec3.T{path.point(0, 0)}
	for c := 0; c < count; c++ {
		points = path.subdivide(c, 0, 1, points)
		points = append(points, path.point(c, 1))
	}
	return points
}

// subdivide appends the points strictly between t0 and t1 of a curve.
func (path *Path) subdivide(curve int, t0, t1 float64, points []vec3.T) []vec3.T {
	left, right := path.point(curve, t0), path.point(curve, t1)
	if sqrDist(left, right) < MinimumSqrDistance {
		return points
	}
	tMid := (t0 + t1) / 2
	mid := path.point(curve, tMid)
	ldir := tubular.Unit(vec3.Sub(&left, &mid))
	rdir := tubular.Unit(vec3.Sub(&right, &mid))
	if vec3.Dot(&ldir, &rdir) > DivisionThreshold || math.Abs(tMid-0.5) < 0.0001 {
		points = path.subdivide(curve, t0, tMid, points)
		points = append(points, mid)
		points = path.subdivide(curve, tMid, t1, points)
	}
	return points
}

func sqrDist(a, b vec3.T) float64 {
	d := vec3.Sub(&a, &b)
	return d.LengthSqr()
}
