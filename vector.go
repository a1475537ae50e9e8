package tubular

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

// Invalid returns the sentinel for geometry which could not be computed.
// All of its components are NaN.
func Invalid() vec3.T {
	nan := math.NaN()
	return vec3.T{nan, nan, nan}
}

// IsValid is a predicate: does v carry neither NaN nor Inf components?
func IsValid(v vec3.T) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// AllValid is a predicate: is every vector of vs valid?
func AllValid(vs []vec3.T) bool {
	for _, v := range vs {
		if !IsValid(v) {
			return false
		}
	}
	return true
}

// Normalize returns v scaled to unit length. A zero vector cannot be
// normalized and results in ErrDegenerate.
func Normalize(v vec3.T) (vec3.T, error) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return Invalid(), fmt.Errorf("%w: cannot normalize %v", ErrDegenerate, v)
	}
	return v.Scaled(1 / l), nil
}

// Unit is Normalize for callers which keep on computing with invalid
// geometry. For a zero vector it returns Invalid().
func Unit(v vec3.T) vec3.T {
	u, _ := Normalize(v)
	return u
}

// RotateAround rotates v counter-clockwise around axis by an angle given
// in radians. axis need not be normalized.
func RotateAround(v, axis vec3.T, radians float64) vec3.T {
	a, err := Normalize(axis)
	if err != nil {
		tracer().Errorf("rotation around zero axis")
		return Invalid()
	}
	q := quaternion.FromAxisAngle(&a, radians)
	return q.RotatedVec3(&v)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b vec3.T) vec3.T {
	return vec3.Interpolate(&a, &b, 0.5)
}

// Axpy returns p + s·v, the point at parameter s on a ray from p along v.
func Axpy(p vec3.T, s float64, v vec3.T) vec3.T {
	sv := v.Scaled(s)
	return vec3.Add(&p, &sv)
}
