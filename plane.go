package tubular

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Plane is a plane a·x + b·y + c·z + d = 0 with normal (a,b,c).
// The zero value is not a valid plane; use one of the constructors.
type Plane struct {
	normal       vec3.T
	d            float64
	normalLength float64
	distance     float64 // signed distance from origin
}

// NewPlane creates a plane with a given normal, containing point p.
// A zero normal results in ErrDegenerate.
func NewPlane(normal, p vec3.T) (Plane, error) {
	l := normal.Length()
	if l == 0 {
		return Plane{}, fmt.Errorf("%w: plane normal is zero", ErrDegenerate)
	}
	d := -vec3.Dot(&normal, &p)
	return Plane{normal: normal, d: d, normalLength: l, distance: -d / l}, nil
}

// NewPlaneCoefficients creates a plane from the coefficients of its equation.
func NewPlaneCoefficients(a, b, c, d float64) (Plane, error) {
	n := vec3.T{a, b, c}
	l := n.Length()
	if l == 0 {
		return Plane{}, fmt.Errorf("%w: plane normal is zero", ErrDegenerate)
	}
	return Plane{normal: n, d: d, normalLength: l, distance: -d / l}, nil
}

// Normal returns the (not necessarily normalized) normal of the plane.
func (pl Plane) Normal() vec3.T {
	return pl.normal
}

// D returns the constant coefficient of the plane equation.
func (pl Plane) D() float64 {
	return pl.d
}

// Distance returns the signed distance of the plane from the origin.
func (pl Plane) Distance() float64 {
	return pl.distance
}

// DistanceTo returns the signed distance of p from the plane.
func (pl Plane) DistanceTo(p vec3.T) float64 {
	return (vec3.Dot(&pl.normal, &p) + pl.d) / pl.normalLength
}

// Normalized returns a copy of pl with a normal of unit length.
func (pl Plane) Normalized() Plane {
	inv := 1 / pl.normalLength
	return Plane{
		normal:       pl.normal.Scaled(inv),
		d:            pl.d * inv,
		normalLength: 1,
		distance:     -pl.d * inv,
	}
}

// IntersectLine returns the point where line l crosses the plane.
// For l = p + t·v the parameter is t = -(n·p + d) / (n·v).
// If l runs parallel to the plane, ErrParallel is returned.
func (pl Plane) IntersectLine(l Line) (vec3.T, error) {
	dot1 := vec3.Dot(&pl.normal, &l.Point)
	dot2 := vec3.Dot(&pl.normal, &l.Direction)
	if dot2 == 0 {
		return Invalid(), fmt.Errorf("%w: %v and plane %v", ErrParallel, l, pl)
	}
	t := -(dot1 + pl.d) / dot2
	return l.At(t), nil
}

// IntersectPlane returns the line along which two planes intersect.
// The line's direction is n1 × n2, its point is the one closest to the
// origin: ((d2·n1 - d1·n2) × v) / (v·v).
func (pl Plane) IntersectPlane(other Plane) (Line, error) {
	v := vec3.Cross(&pl.normal, &other.normal)
	if v.IsZero() {
		return Line{Point: Invalid(), Direction: Invalid()},
			fmt.Errorf("%w: planes %v and %v", ErrParallel, pl, other)
	}
	dot := vec3.Dot(&v, &v)
	n1 := pl.normal.Scaled(other.d)
	n2 := other.normal.Scaled(-pl.d)
	n12 := vec3.Add(&n1, &n2)
	p := vec3.Cross(&n12, &v)
	return Line{Point: p.Scaled(1 / dot), Direction: v}, nil
}

// IsIntersectedByLine is a predicate: does l cross the plane?
func (pl Plane) IsIntersectedByLine(l Line) bool {
	return vec3.Dot(&pl.normal, &l.Direction) != 0
}

// IsIntersectedByPlane is a predicate: do the two planes intersect?
func (pl Plane) IsIntersectedByPlane(other Plane) bool {
	c := vec3.Cross(&pl.normal, &other.normal)
	return !c.IsZero()
}

func (pl Plane) String() string {
	return fmt.Sprintf("plane[%v·x %+g = 0]", pl.normal, pl.d)
}
