package tubular

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. Cross-section profiles and texture
// coordinates are pairs.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, allowing for a difference of Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p).Zap()
}

// Length is the euclidean norm of p.
func (p Pair) Length() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Lift places p into the XY-plane of 3D space, at height z.
func (p Pair) Lift(z float64) vec3.T {
	return vec3.T{p.X(), p.Y(), z}
}

// === Affine Transformations ================================================

// AT is an affine transform of the plane, a 3x3 matrix flattened by rows.
type AT []float64

func (m AT) at(row, col int) float64 {
	return m[row*3+col]
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	return AT{1, 0, p.X(), 0, 1, p.Y(), 0, 0, 1}
}

// Scaling transform. Scale a point by sx and sy, respectively.
func Scaling(sx, sy float64) AT {
	return AT{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformation to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := make(AT, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += n.at(row, k) * m.at(k, col)
			}
			o[row*3+col] = s
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(
		m.at(0, 0)*x+m.at(0, 1)*y+m.at(0, 2),
		m.at(1, 0)*x+m.at(1, 1)*y+m.at(1, 2),
	)
}
