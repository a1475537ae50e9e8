package motion

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestMoveTowards(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	target := vec3.T{10, 0, 0}
	assert.Equal(t, vec3.T{3, 0, 0}, MoveTowards(vec3.Zero, target, 3))
	assert.Equal(t, target, MoveTowards(vec3.T{9, 0, 0}, target, 3))
	assert.Equal(t, target, MoveTowards(target, target, 0))
	away := MoveTowards(vec3.Zero, target, -3)
	assert.InDelta(t, -3, away[0], 1e-12)
}

func TestSmoothDampConverges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pos := vec3.T{10, 0, 0}
	var velocity vec3.T
	for i := 0; i < 300; i++ {
		pos = SmoothDamp(pos, vec3.Zero, &velocity, 0.3, 100, 1.0/60)
		require.GreaterOrEqual(t, pos[0], 0.0, "overshoot at step %d", i)
	}
	assert.Less(t, pos.Length(), 1e-6)
}

func TestSmoothDampMaxSpeed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pos := vec3.T{10, 0, 0}
	var velocity vec3.T
	for i := 0; i < 60; i++ {
		pos = SmoothDamp(pos, vec3.Zero, &velocity, 0.3, 1, 1.0/60)
	}
	// one second at a speed of at most 1
	assert.InDelta(t, 9.1, pos[0], 0.1)
	assert.LessOrEqual(t, velocity.Length(), 1.0)
}

func TestFollowerWalksAndWraps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := []vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}}
	f, err := NewFollower(path, 0.01, 1000)
	require.NoError(t, err)
	pos := path[0]
	wrapped := false
	prev := f.Index()
	for i := 0; i < 40; i++ {
		pos = f.Update(pos, 1.0/60)
		next := f.Index()
		require.True(t, next == prev || next == (prev+1)%len(path), "jumped from %d to %d", prev, next)
		if next < prev {
			wrapped = true
		}
		prev = next
	}
	assert.True(t, wrapped)
	assert.Equal(t, path[f.Index()], f.Target())
}

func TestFollowerHeading(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := NewFollower([]vec3.T{{0, 0, 5}}, 0.1, 10)
	require.NoError(t, err)
	h, err := f.Heading(vec3.Zero)
	require.NoError(t, err)
	assert.Equal(t, vec3.T{0, 0, 1}, h)
	_, err = f.Heading(vec3.T{0, 0, 5})
	assert.Error(t, err)
	_, err = NewFollower(nil, 0.1, 10)
	assert.True(t, errors.Is(err, ErrNoPath))
}
