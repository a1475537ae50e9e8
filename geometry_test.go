package tubular

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

func assertVec(t *testing.T, expected, actual vec3.T, msg string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], 1e-9, "%s: component %d of %v", msg, i, actual)
	}
}

func TestLineIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l1 := NewLine(vec3.T{1, 0, 0}, vec3.T{0, 0, 0})
	l2 := NewLine(vec3.T{0, 1, 0}, vec3.T{1, 1, 0})
	p, err := l1.Intersect(l2)
	require.NoError(t, err)
	assertVec(t, vec3.T{1, 0, 0}, p, "intersection")
	assert.True(t, l1.IsIntersected(l2))
}

func TestParallelLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l1 := NewLineSlope(2, 0)
	l2 := NewLineSlope(2, 1)
	p, err := l1.Intersect(l2)
	assert.True(t, errors.Is(err, ErrParallel))
	assert.False(t, IsValid(p))
	assert.False(t, l1.IsIntersected(l2))
}

func TestLine2D(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l1 := NewLine2D(P(1, 1), P(0, 0))
	l2 := NewLineSlope(0, 3) // y = 3
	p, err := l1.Intersect(l2)
	require.NoError(t, err)
	assertVec(t, vec3.T{3, 3, 0}, p, "2D intersection")
}

func TestPlaneDistance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl, err := NewPlane(vec3.T{0, 0, 2}, vec3.T{0, 0, 5})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, pl.Distance(), 1e-12)
	assert.InDelta(t, 2.0, pl.DistanceTo(vec3.T{3, 4, 7}), 1e-12)
	n := pl.Normalized()
	nn := n.Normal()
	assert.InDelta(t, 1.0, nn.Length(), 1e-12)
	assert.InDelta(t, -5.0, n.D(), 1e-12)
	assert.InDelta(t, 2.0, n.DistanceTo(vec3.T{3, 4, 7}), 1e-12)
}

func TestDegeneratePlane(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewPlane(vec3.T{}, vec3.T{1, 2, 3})
	assert.True(t, errors.Is(err, ErrDegenerate))
	_, err = NewPlaneCoefficients(0, 0, 0, 1)
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestPlaneLineIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl, err := NewPlane(vec3.T{0, 0, 2}, vec3.T{0, 0, 5})
	require.NoError(t, err)
	l := NewLine(vec3.T{1, 0, 1}, vec3.T{0, 0, 0})
	assert.True(t, pl.IsIntersectedByLine(l))
	p, err := pl.IntersectLine(l)
	require.NoError(t, err)
	assertVec(t, vec3.T{5, 0, 5}, p, "plane/line")
	//
	parallel := NewLine(vec3.T{1, 0, 0}, vec3.T{0, 0, 0})
	assert.False(t, pl.IsIntersectedByLine(parallel))
	p, err = pl.IntersectLine(parallel)
	assert.True(t, errors.Is(err, ErrParallel))
	assert.False(t, IsValid(p))
}

func TestPlanePlaneIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	xy, _ := NewPlane(vec3.T{0, 0, 1}, vec3.T{0, 0, 0})
	x1, _ := NewPlane(vec3.T{1, 0, 0}, vec3.T{1, 0, 0})
	assert.True(t, xy.IsIntersectedByPlane(x1))
	l, err := xy.IntersectPlane(x1)
	require.NoError(t, err)
	assertVec(t, vec3.T{0, 1, 0}, l.Direction, "direction")
	assertVec(t, vec3.T{1, 0, 0}, l.Point, "point")
	//
	xy2, _ := NewPlane(vec3.T{0, 0, 3}, vec3.T{0, 0, 1})
	assert.False(t, xy.IsIntersectedByPlane(xy2))
	_, err = xy.IntersectPlane(xy2)
	assert.True(t, errors.Is(err, ErrParallel))
}

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v, err := Normalize(vec3.T{0, 3, 4})
	require.NoError(t, err)
	assertVec(t, vec3.T{0, 0.6, 0.8}, v, "normalize")
	_, err = Normalize(vec3.T{})
	assert.True(t, errors.Is(err, ErrDegenerate))
	assert.False(t, IsValid(Unit(vec3.T{})))
	assert.False(t, AllValid([]vec3.T{{1, 2, 3}, Invalid()}))
}

func TestRotateAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := RotateAround(vec3.T{1, 0, 0}, vec3.T{0, 0, 2}, math.Pi/2)
	assertVec(t, vec3.T{0, 1, 0}, v, "rotate x around z")
	assert.False(t, IsValid(RotateAround(vec3.T{1, 0, 0}, vec3.T{}, 1)))
}

func TestFrameFromDirection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := FrameFromDirection(vec3.T{0, 0, 3})
	require.NoError(t, err)
	assertVec(t, vec3.T{0, 0, 1}, f.Tangent, "tangent")
	assertVec(t, vec3.T{0, 1, 0}, f.Normal, "normal")
	assertVec(t, vec3.T{-1, 0, 0}, f.Binormal, "binormal")
	assert.True(t, f.IsOrthonormal(1e-9))
	for _, dir := range []vec3.T{{0, 5, 0}, {0, -1, 0}, {1, 2, 3}, {-4, 0.5, 0}} {
		f, err = FrameFromDirection(dir)
		require.NoError(t, err)
		assert.True(t, f.IsOrthonormal(1e-9), "frame for %v not orthonormal", dir)
	}
	_, err = FrameFromDirection(vec3.T{})
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestLookAtDirection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, err := LookAtDirection(vec3.T{2, 0, 0})
	require.NoError(t, err)
	assertVec(t, vec3.T{1, 0, 0}, Rotational(&m, vec3.UnitZ), "+Z turned onto dir")
	assertVec(t, vec3.T{0, 1, 0}, Rotational(&m, vec3.UnitY), "+Y kept up")
}

func TestLookAtView(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	eye := vec3.T{0, 0, 5}
	view := LookAt(eye, vec3.T{}, vec3.UnitY)
	assertVec(t, vec3.T{}, view.MulVec3(&eye), "eye in view space")
	center := vec3.T{}
	assertVec(t, vec3.T{0, 0, -5}, view.MulVec3(&center), "center in view space")
}

func TestFrustumCheckSphere(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := mat4.Ident
	f, err := NewFrustum(&m)
	require.NoError(t, err)
	assert.True(t, f.CheckSphere(vec3.T{}, 0.1))
	assert.True(t, f.CheckSphere(vec3.T{1.5, 0, 0}, 1))
	assert.False(t, f.CheckSphere(vec3.T{5, 0, 0}, 1))
	assert.False(t, f.CheckSphere(vec3.T{0, 0, -3}, 1))
}

func TestFrameMatrix(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, _ := FrameFromDirection(vec3.T{0, 0, 1})
	m := f.Matrix(vec3.T{1, 2, 3})
	local := vec3.T{1, 0, 0} // one unit along the tangent
	assertVec(t, vec3.T{1, 2, 4}, m.MulVec3(&local), "frame matrix")
	assertVec(t, vec3.T{0.5, 1, 1.5}, Midpoint(vec3.T{}, vec3.T{1, 2, 3}), "midpoint")
}
