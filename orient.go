package tubular

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

// Frame is a local coordinate frame along a curve.
type Frame struct {
	Tangent  vec3.T
	Normal   vec3.T
	Binormal vec3.T
}

// FrameFromDirection derives a forward/up/right frame from a direction.
// Tangent is the normalized direction. Normal is the world's +Y axis made
// orthogonal to the tangent, with (0,0,∓1) standing in for +Y if dir runs
// along the Y axis. Binormal completes the right-handed frame and points
// to the right.
func FrameFromDirection(dir vec3.T) (Frame, error) {
	forward, err := Normalize(dir)
	if err != nil {
		return Frame{}, fmt.Errorf("frame from direction: %w", err)
	}
	up := vec3.UnitY
	if math.Abs(forward[0]) < Epsilon && math.Abs(forward[2]) < Epsilon {
		if forward[1] > 0 {
			up = vec3.T{0, 0, -1}
		} else {
			up = vec3.T{0, 0, 1}
		}
	}
	left := vec3.Cross(&up, &forward)
	left.Normalize()
	up = vec3.Cross(&forward, &left)
	right := vec3.Cross(&forward, &up)
	return Frame{Tangent: forward, Normal: up, Binormal: right}, nil
}

// LookAtDirection returns a rotation matrix which turns the +Z axis onto
// dir. Its columns are left, up and forward, as derived by
// FrameFromDirection.
func LookAtDirection(dir vec3.T) (mat4.T, error) {
	f, err := FrameFromDirection(dir)
	if err != nil {
		return mat4.Ident, err
	}
	left := f.Binormal.Scaled(-1)
	m := mat4.Ident
	m[0] = vec4.T{left[0], left[1], left[2], 0}
	m[1] = vec4.T{f.Normal[0], f.Normal[1], f.Normal[2], 0}
	m[2] = vec4.T{f.Tangent[0], f.Tangent[1], f.Tangent[2], 0}
	return m, nil
}

// LookAt returns a right-handed view matrix for a viewer at eye, looking
// at center, with up as the approximate upward direction.
func LookAt(eye, center, up vec3.T) mat4.T {
	fwd := vec3.Sub(&center, &eye)
	f := Unit(fwd)
	s := vec3.Cross(&f, &up)
	s = Unit(s)
	u := vec3.Cross(&s, &f)
	return mat4.T{
		vec4.T{s[0], u[0], -f[0], 0},
		vec4.T{s[1], u[1], -f[1], 0},
		vec4.T{s[2], u[2], -f[2], 0},
		vec4.T{-vec3.Dot(&s, &eye), -vec3.Dot(&u, &eye), vec3.Dot(&f, &eye), 1},
	}
}

// Rotational applies the upper-left 3×3 part of m to v, i.e., v is treated
// as a direction and translation is ignored.
func Rotational(m *mat4.T, v vec3.T) vec3.T {
	return m.MulVec3W(&v, 0)
}

// Matrix returns the matrix with columns tangent, normal, binormal and
// origin. It maps frame-local coordinates to world space.
func (f Frame) Matrix(origin vec3.T) mat4.T {
	return mat4.T{
		vec4.T{f.Tangent[0], f.Tangent[1], f.Tangent[2], 0},
		vec4.T{f.Normal[0], f.Normal[1], f.Normal[2], 0},
		vec4.T{f.Binormal[0], f.Binormal[1], f.Binormal[2], 0},
		vec4.T{origin[0], origin[1], origin[2], 1},
	}
}

// IsOrthonormal is a predicate: are the frame's vectors of unit length and
// mutually orthogonal, within tolerance tol?
func (f Frame) IsOrthonormal(tol float64) bool {
	for _, v := range []vec3.T{f.Tangent, f.Normal, f.Binormal} {
		if math.Abs(v.Length()-1) > tol {
			return false
		}
	}
	return math.Abs(vec3.Dot(&f.Tangent, &f.Normal)) <= tol &&
		math.Abs(vec3.Dot(&f.Tangent, &f.Binormal)) <= tol &&
		math.Abs(vec3.Dot(&f.Normal, &f.Binormal)) <= tol
}
