package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestSpiralPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := SpiralPath(10, 20, 0, 8, 2, 17)
	require.NoError(t, err)
	require.Len(t, path, 17)
	assert.Equal(t, vec3.T{10, 0, 0}, path[0])
	last := path[16]
	assert.InDelta(t, 20, last[0], 1e-9)
	assert.InDelta(t, 8, last[1], 1e-12)
	assert.InDelta(t, 0, last[2], 1e-9)
	for i, p := range path {
		r := math.Hypot(p[0], p[2])
		assert.InDelta(t, 10+10*float64(i)/16, r, 1e-9, "radius of point %d", i)
		assert.InDelta(t, 0.5*float64(i), p[1], 1e-9, "height of point %d", i)
	}
	// 8 points per turn: point 2 is a quarter turn
	assert.InDelta(t, 0, path[2][0], 1e-9)
	assert.Greater(t, path[2][2], 0.0)
	_, err = SpiralPath(10, 20, 0, 8, 2, 1)
	assert.True(t, errors.Is(err, ErrTooFewPoints))
}

func TestCircleIsClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := Circle(2, 1, 8)
	require.NoError(t, err)
	require.Len(t, c, 9)
	assert.Equal(t, c[0], c[8])
	assert.Equal(t, vec3.T{2, 0, 0}, c[0])
	assert.InDelta(t, 1, c[2][1], 1e-12)
	for _, p := range c {
		assert.InDelta(t, 1, p[0]*p[0]/4+p[1]*p[1], 1e-12)
		assert.Equal(t, 0.0, p[2])
	}
	_, err = Circle(1, 1, 1)
	assert.True(t, errors.Is(err, ErrTooFewPoints))
}
