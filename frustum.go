package tubular

import (
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Sides of a view frustum.
const (
	Left int = iota
	Right
	Top
	Bottom
	Back
	Front
)

// Frustum is a view volume bounded by six planes with inward-facing normals.
// Extracted from a projection matrix the planes are in eye space, from
// view·projection in world space, and from model·view·projection in model
// space.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustum extracts the planes of a frustum from a matrix, following
// Gribb & Hartmann, "Fast Extraction of Viewing Frustum Planes from the
// World-View-Projection Matrix".
func NewFrustum(m *mat4.T) (*Frustum, error) {
	row := func(r int) [4]float64 {
		return [4]float64{m[0][r], m[1][r], m[2][r], m[3][r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	combine := func(a [4]float64, sign float64, b [4]float64) [4]float64 {
		return [4]float64{a[0] + sign*b[0], a[1] + sign*b[1], a[2] + sign*b[2], a[3] + sign*b[3]}
	}
	var coeff [6][4]float64
	coeff[Left] = combine(r3, 1, r0)
	coeff[Right] = combine(r3, -1, r0)
	coeff[Top] = combine(r3, -1, r1)
	coeff[Bottom] = combine(r3, 1, r1)
	coeff[Back] = combine(r3, 1, r2)
	coeff[Front] = combine(r3, -1, r2)
	f := &Frustum{}
	for i, c := range coeff {
		pl, err := NewPlaneCoefficients(c[0], c[1], c[2], c[3])
		if err != nil {
			return nil, err
		}
		f.Planes[i] = pl.Normalized()
	}
	return f, nil
}

// CheckSphere is a predicate: does a sphere with center pos intersect
// or lie inside the frustum?
func (f *Frustum) CheckSphere(pos vec3.T, radius float64) bool {
	for _, pl := range f.Planes {
		if pl.DistanceTo(pos) <= -radius {
			return false
		}
	}
	return true
}
