package tubular

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Line is a parametric line p + t·v in 3D space.
type Line struct {
	Point     vec3.T // p
	Direction vec3.T // v, not necessarily of unit length
}

// NewLine creates a line through point p with direction v.
func NewLine(v, p vec3.T) Line {
	return Line{Point: p, Direction: v}
}

// NewLine2D creates a line in the XY-plane from 2D direction and point.
func NewLine2D(v, p Pair) Line {
	return Line{Point: p.Lift(0), Direction: v.Lift(0)}
}

// NewLineSlope converts the slope-intercept form y = slope·x + intercept
// of a line in the XY-plane to parametric form.
func NewLineSlope(slope, intercept float64) Line {
	return Line{
		Point:     vec3.T{0, intercept, 0},
		Direction: vec3.T{1, slope, 0},
	}
}

// At returns the point at parameter t.
func (l Line) At(t float64) vec3.T {
	return Axpy(l.Point, t, l.Direction)
}

// Intersect finds the intersection point of two lines. For skew lines the
// result is the point on l closest to other.
//
// With v3 = (p2-p1) × v2 and v4 = v1 × v2, the intersection is
// p1 + α·v1 where α = (v3 · v4) / (v4 · v4).
// Lines with equal direction do not intersect and ErrParallel is returned.
func (l Line) Intersect(other Line) (vec3.T, error) {
	v1, v2 := l.Direction, other.Direction
	p2p1 := vec3.Sub(&other.Point, &l.Point)
	v3 := vec3.Cross(&p2p1, &v2)
	v4 := vec3.Cross(&v1, &v2)
	dot := vec3.Dot(&v4, &v4)
	if dot == 0 {
		return Invalid(), fmt.Errorf("%w: lines %v and %v", ErrParallel, l, other)
	}
	alpha := vec3.Dot(&v3, &v4) / dot
	return l.At(alpha), nil
}

// IsIntersected is a predicate: does other cross l? This is false iff
// the lines have the same direction.
func (l Line) IsIntersected(other Line) bool {
	c := vec3.Cross(&l.Direction, &other.Direction)
	return !c.IsZero()
}

func (l Line) String() string {
	return fmt.Sprintf("line[%v + t·%v]", l.Point, l.Direction)
}
