/*
Package motion moves objects smoothly towards targets, and along the
centerline of a track.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'motion'
func tracer() tracing.Trace {
	return tracing.Select("motion")
}

// ErrNoPath indicates a follower without points to follow.
var ErrNoPath = errors.New("follower needs a non-empty path")

// MoveTowards moves current in a straight line towards target, by at most
// maxDelta. Target is returned if it is within reach. A negative maxDelta
// moves away from target.
func MoveTowards(current, target vec3.T, maxDelta float64) vec3.T {
	toTarget := vec3.Sub(&target, &current)
	sqdist := toTarget.LengthSqr()
	if sqdist == 0 || (maxDelta >= 0 && sqdist <= maxDelta*maxDelta) {
		return target
	}
	return tubular.Axpy(current, maxDelta/math.Sqrt(sqdist), toTarget)
}

// SmoothDamp moves current towards target like a critically damped
// spring, taking roughly smoothTime seconds to arrive. velocity carries the
// current speed from call to call and is updated. The speed is limited to
// maxSpeed, dt is the time elapsed since the last call. The result never
// overshoots target.
func SmoothDamp(current, target vec3.T, velocity *vec3.T, smoothTime, maxSpeed, dt float64) vec3.T {
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := vec3.Sub(&current, &target)
	maxChange := maxSpeed * smoothTime
	if sqrMag := change.LengthSqr(); sqrMag > maxChange*maxChange {
		change.Scale(maxChange / math.Sqrt(sqrMag))
	}
	dest := vec3.Sub(&current, &change)
	temp := tubular.Axpy(*velocity, omega, change)
	temp.Scale(dt)
	v := tubular.Axpy(*velocity, -omega, temp)
	*velocity = v.Scaled(exp)
	sum := vec3.Add(&change, &temp)
	output := tubular.Axpy(dest, exp, sum)
	// overshooting?
	toTarget := vec3.Sub(&target, &current)
	beyond := vec3.Sub(&output, &target)
	if vec3.Dot(&toTarget, &beyond) > 0 {
		*velocity = vec3.Zero
		return target
	}
	return output
}

// DefaultReach is the distance within which a Follower considers a path
// point as reached.
const DefaultReach = 0.1

// Follower moves an object along a sequence of points, e.g. a resampled
// centerline. Whenever the object comes within reach of the current target
// point, the follower moves on to the next one; after the last point it
// starts over with the first one.
type Follower struct {
	path       []vec3.T
	index      int
	velocity   vec3.T
	SmoothTime float64
	MaxSpeed   float64
	Reach      float64
}

// NewFollower creates a follower for a path, heading for its first point.
func NewFollower(path []vec3.T, smoothTime, maxSpeed float64) (*Follower, error) {
	if len(path) == 0 {
		return nil, ErrNoPath
	}
	if maxSpeed <= 0 {
		return nil, fmt.Errorf("follower max speed must be positive, is %g", maxSpeed)
	}
	return &Follower{
		path:       append([]vec3.T(nil), path...),
		SmoothTime: smoothTime,
		MaxSpeed:   maxSpeed,
		Reach:      DefaultReach,
	}, nil
}

// Update moves an object at position towards the follower's target and
// returns the new position. dt is the time elapsed since the last update.
func (f *Follower) Update(position vec3.T, dt float64) vec3.T {
	if vec3.Distance(&position, &f.path[f.index]) < f.Reach {
		f.index++
		if f.index >= len(f.path) {
			tracer().Debugf("follower wraps around after %d points", len(f.path))
			f.index = 0
		}
	}
	return SmoothDamp(position, f.path[f.index], &f.velocity, f.SmoothTime, f.MaxSpeed, dt)
}

// Index returns the index of the current target point.
func (f *Follower) Index() int {
	return f.index
}

// Target returns the current target point.
func (f *Follower) Target() vec3.T {
	return f.path[f.index]
}

// Velocity returns the current velocity.
func (f *Follower) Velocity() vec3.T {
	return f.velocity
}

// Heading returns the unit direction from position to the current target,
// or an error if position is on the target.
func (f *Follower) Heading(position vec3.T) (vec3.T, error) {
	return tubular.Normalize(vec3.Sub(&f.path[f.index], &position))
}
