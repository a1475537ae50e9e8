package catmull

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

func circle(n int, r float64) []vec3.T {
	pts := make([]vec3.T, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec3.T{r * math.Cos(a), r * math.Sin(a), 0}
	}
	return pts
}

// spacings returns the distances between consecutive points of a closed loop.
func spacings(pts []vec3.T) []float64 {
	d := make([]float64, len(pts))
	for i := range pts {
		d[i] = vec3.Distance(&pts[i], &pts[(i+1)%len(pts)])
	}
	return d
}

func TestEvalEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1, p2, p3 := vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{2, 1, 0}, vec3.T{3, 1, 1}
	assert.Equal(t, p1, Eval(p0, p1, p2, p3, 0))
	assert.Equal(t, p2, Eval(p0, p1, p2, p3, 1))
	// collinear, evenly spaced points are interpolated linearly
	m := Eval(vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{2, 0, 0}, vec3.T{3, 0, 0}, 0.5)
	assert.InDelta(t, 1.5, m[0], 1e-12)
	w := EvalWindow([]vec3.T{p0, p1, p2, p3}, 0, 1)
	assert.Equal(t, p2, w)
}

func TestWrap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 7, Wrap(-1, 8))
	assert.Equal(t, 1, Wrap(9, 8))
	assert.Equal(t, 0, Wrap(8, 8))
	a, b, c, d := window(7, 8)
	assert.Equal(t, []int{6, 7, 0, 1}, []int{a, b, c, d})
	a, b, c, d = window(0, 8)
	assert.Equal(t, []int{7, 0, 1, 2}, []int{a, b, c, d})
}

func TestArcLengthTable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := []vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	tab := NewArcLengthTable(square, true)
	assert.Equal(t, 5, tab.Len())
	assert.Equal(t, 0.0, tab.At(0))
	assert.Equal(t, 4.0, tab.Total())
	j, u, err := tab.Locate(2.5)
	require.NoError(t, err)
	assert.Equal(t, 2, j)
	assert.InDelta(t, 0.5, u, 1e-12)
	j, u, err = tab.Locate(0)
	require.NoError(t, err)
	assert.Equal(t, 0, j)
	assert.Equal(t, 0.0, u)
	_, _, err = tab.Locate(-0.1)
	assert.True(t, errors.Is(err, ErrNoSample))
	_, _, err = tab.Locate(4)
	assert.True(t, errors.Is(err, ErrNoSample))
	//
	open := NewArcLengthTable(square, false)
	assert.Equal(t, 4, open.Len())
	assert.Equal(t, 3.0, open.Total())
	assert.False(t, open.Closed())
}

func TestArcLengthTableZeroSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []vec3.T{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	tab := NewArcLengthTable(pts, true)
	for i := 1; i < tab.Len(); i++ {
		assert.LessOrEqual(t, tab.At(i-1), tab.At(i))
	}
	j, u, err := tab.Locate(0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, j, "zero-length segment 0 must be skipped")
	assert.InDelta(t, 0.5, u, 1e-12)
}

func TestResampleCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, _, err := Resample(circle(8, 1), nil, 64)
	require.NoError(t, err)
	require.Len(t, pts, 64)
	expected := 2 * math.Pi / 64
	for i, d := range spacings(pts) {
		assert.InDelta(t, expected, d, 0.03*expected, "spacing %d", i)
	}
}

func TestResampleUniformSpacing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ellipse := make([]vec3.T, 12)
	for i := range ellipse {
		a := 2 * math.Pi * float64(i) / 12
		ellipse[i] = vec3.T{2 * math.Cos(a), math.Sin(a), 0}
	}
	for _, m := range []int{24, 100} {
		pts, _, err := Resample(ellipse, nil, m)
		require.NoError(t, err)
		require.Len(t, pts, m)
		d := spacings(pts)
		mean := floats.Sum(d) / float64(m)
		assert.Less(t, (floats.Max(d)-mean)/mean, 0.05, "m = %d", m)
		assert.Less(t, (mean-floats.Min(d))/mean, 0.05, "m = %d", m)
	}
}

func TestResampleIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	first, _, err := Resample(circle(8, 3), nil, 64)
	require.NoError(t, err)
	second, _, err := Resample(first, nil, 64)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Less(t, vec3.Distance(&first[i], &second[i]), 0.01, "point %d moved", i)
	}
}

func TestResampleUpVectors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := circle(6, 2)
	ups := make([]vec3.T, len(pts))
	for i := range ups {
		ups[i] = vec3.T{0, 0, 3}
	}
	r, err := NewResampler(pts, ups)
	require.NoError(t, err)
	assert.True(t, r.HasUpVectors())
	centerline, cups, err := r.Resample(20)
	require.NoError(t, err)
	require.Len(t, cups, len(centerline))
	for _, up := range cups {
		assert.InDelta(t, 0, up[0], 1e-9)
		assert.InDelta(t, 0, up[1], 1e-9)
		assert.InDelta(t, 1, up[2], 1e-9)
	}
	// mismatching up-vectors are ignored
	r, err = NewResampler(pts, ups[:2])
	require.NoError(t, err)
	assert.False(t, r.HasUpVectors())
	_, cups, err = r.Resample(20)
	require.NoError(t, err)
	assert.Nil(t, cups)
}

func TestSampleWrapsAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := NewResampler(circle(8, 1), nil)
	require.NoError(t, err)
	total := r.Table().Total()
	p1, _, err := r.Sample(0.3)
	require.NoError(t, err)
	p2, _, err := r.Sample(0.3 + 2*total)
	require.NoError(t, err)
	assert.Less(t, vec3.Distance(&p1, &p2), 1e-9)
	_, _, err = r.Sample(-1)
	assert.True(t, errors.Is(err, ErrNoSample))
}

func TestSampleJustBelowFullLoops(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := NewResampler(circle(8, 1), nil)
	require.NoError(t, err)
	total := r.Table().Total()
	start, _, err := r.Sample(0)
	require.NoError(t, err)
	for k := 1; k <= 50; k++ {
		d := math.Nextafter(float64(k)*total, 0)
		p, _, err := r.Sample(d)
		require.NoError(t, err, "k=%d, d=%g", k, d)
		assert.Less(t, vec3.Distance(&start, &p), 1e-6, "k=%d", k)
	}
}

func TestResampleErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, _, err := Resample([]vec3.T{{1, 2, 3}}, nil, 10)
	assert.True(t, errors.Is(err, ErrInsufficientPoints))
	_, _, err = Resample(circle(4, 1), nil, 0)
	assert.True(t, errors.Is(err, ErrInvalidSampleCount))
	_, _, err = Resample([]vec3.T{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, nil, 10)
	assert.True(t, errors.Is(err, ErrNoSample))
	single, _, err := Resample(circle(4, 1), nil, 1)
	require.NoError(t, err)
	assert.Len(t, single, 1)
}
