/*
Package trajectory moves a camera along a Catmull-Rom spline.

A Rig carries a Frenet frame (tangent, normal, binormal) along the spline.
The frame is not computed in closed form; each step estimates the tangent
by a central difference and re-derives normal and binormal from the
previous binormal by cross products. This keeps the frame from flipping at
inflection points. The drift this accumulates is removed by a full reset
whenever the rig reaches the end of the spline.

The camera orbits the spline: its offset vector is the frame's normal,
rotated around the tangent by an angle which grows with every step.

Unlike package catmull, a Rig treats the spline as open: segment windows
are [i, i+3] for i in [0, N-3), without index wrapping.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trajectory

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tubular"
	"github.com/npillmayer/tubular/catmull"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'trajectory'
func tracer() tracing.Trace {
	return tracing.Select("trajectory")
}

var (
	// ErrInsufficientPoints indicates a spline with fewer than 4 points.
	ErrInsufficientPoints = errors.New("spline needs at least 4 points")
	// ErrNotSetUp indicates use of a Rig without a spline.
	ErrNotSetUp = errors.New("rig has not been set up")
	// ErrInvalidParams indicates rig parameters out of range.
	ErrInvalidParams = errors.New("invalid rig parameters")
)

// Pose is the camera state published after each advance.
type Pose struct {
	Position vec3.T
	Target   vec3.T
	View     mat4.T // look-at matrix from Position to Target
	Local    mat4.T // maps path-local coordinates to world space
	Frame    tubular.Frame
}

// PoseSink consumes camera poses, usually once per frame.
type PoseSink interface {
	SetPose(Pose)
}

// Rig is a camera rig running along a spline. Create it with NewRig.
// A Rig is not safe for concurrent use.
type Rig struct {
	params       Params
	spline       []vec3.T
	frame        tubular.Frame
	segment      int
	t            float64
	posRadius    float64
	targetRadius float64
	angle        float64 // degrees
	camPos       vec3.T
	camTarget    vec3.T
	camOrient    mat4.T
	localOrient  mat4.T
}

// NewRig creates a rig for a spline with at least 4 points and sets it up.
func NewRig(spline []vec3.T, params Params) (*Rig, error) {
	if params.Lookahead <= 0 || params.Lookahead > 1 {
		return nil, fmt.Errorf("%w: lookahead %g not in (0,1]", ErrInvalidParams, params.Lookahead)
	}
	if params.TangentDelta <= 0 {
		return nil, fmt.Errorf("%w: tangent delta %g", ErrInvalidParams, params.TangentDelta)
	}
	r := &Rig{params: params, camOrient: mat4.Ident, localOrient: mat4.Ident}
	if err := r.Setup(spline); err != nil {
		return nil, err
	}
	return r, nil
}

// Setup (re-)starts the rig at the beginning of a spline. An empty spline
// re-uses the spline of the last setup. The starting frame is derived from
// the direction point[0]-point[1].
func (r *Rig) Setup(spline []vec3.T) error {
	fresh := len(spline) > 0
	if !fresh {
		if r.spline == nil {
			return ErrNotSetUp
		}
		spline = r.spline
	} else if len(spline) < 4 {
		return fmt.Errorf("%w: have %d", ErrInsufficientPoints, len(spline))
	}
	dir := vec3.Sub(&spline[0], &spline[1])
	frame, err := tubular.FrameFromDirection(dir)
	if err != nil {
		return fmt.Errorf("cannot set up rig: %w", err)
	}
	// a failed setup leaves the rig untouched
	if fresh {
		r.spline = append([]vec3.T(nil), spline...)
	}
	r.frame = frame
	r.segment = 0
	r.t = 0
	r.posRadius = r.params.PosRadius
	r.targetRadius = r.params.TargetRadius
	r.angle = 0
	return nil
}

// Advance moves the camera by increment in spline parameter space and
// updates position, target and both orientation matrices.
//
// When the parameter leaves the current segment, the rig moves on to the
// next segment. Reaching the last usable segment window resets the rig
// to the start of the spline.
func (r *Rig) Advance(increment float64) error {
	if r.spline == nil {
		return ErrNotSetUp
	}
	o := catmull.EvalWindow(r.spline, r.segment, r.t)
	r.advanceFrame()
	n := tubular.RotateAround(r.frame.Normal, r.frame.Tangent, r.angle*tubular.Deg2Rad)
	r.camPos = tubular.Axpy(o, r.posRadius, n)
	r.camTarget = tubular.Axpy(r.lookahead(), r.targetRadius, n)
	r.camOrient = tubular.LookAt(r.camPos, r.camTarget, n.Scaled(-1))
	r.localOrient = r.frame.Matrix(tubular.Midpoint(r.camPos, r.camTarget))
	//
	r.t += increment
	if r.t > 1 {
		r.segment++
		if r.segment == len(r.spline)-3 {
			tracer().Debugf("end of spline reached, resetting rig")
			return r.Setup(nil)
		}
		r.t = 0
	}
	r.angle += r.params.AngleStep
	if r.angle >= 360 {
		r.angle = 0
	}
	return nil
}

// advanceFrame moves the Frenet frame to the current position on the
// spline. If no tangent can be estimated, the previous frame is kept.
func (r *Rig) advanceFrame() {
	delta := r.params.TangentDelta
	tg0 := catmull.EvalWindow(r.spline, r.segment, tubular.Clamp(r.t-delta, 0, 1))
	tg1 := catmull.EvalWindow(r.spline, r.segment, tubular.Clamp(r.t+delta, 0, 1))
	tangent, err := tubular.Normalize(vec3.Sub(&tg1, &tg0))
	if err != nil {
		tracer().Errorf("segment %d, t=%g: no tangent, keeping frame", r.segment, r.t)
		return
	}
	normal, err := tubular.Normalize(vec3.Cross(&r.frame.Binormal, &tangent))
	if err != nil {
		tracer().Errorf("segment %d, t=%g: binormal parallel to tangent, keeping frame", r.segment, r.t)
		return
	}
	binormal := vec3.Cross(&tangent, &normal)
	r.frame = tubular.Frame{Tangent: tangent, Normal: normal, Binormal: tubular.Unit(binormal)}
}

// lookahead evaluates the spline ahead of the current position. Near the
// end of a segment it continues in the next one, but never beyond the last
// usable window.
func (r *Rig) lookahead() vec3.T {
	i, u := r.segment, r.t+r.params.Lookahead
	if u > 1 {
		u--
		i++
		if i == len(r.spline)-3 {
			u = 1
			i--
		}
	}
	return catmull.EvalWindow(r.spline, i, u)
}

// Drive advances the rig and hands the resulting pose to sink.
func (r *Rig) Drive(sink PoseSink, increment float64) error {
	if err := r.Advance(increment); err != nil {
		return err
	}
	if sink != nil {
		sink.SetPose(r.Pose())
	}
	return nil
}

// --- Accessors -------------------------------------------------------------

// Pose returns the current camera pose.
func (r *Rig) Pose() Pose {
	return Pose{
		Position: r.camPos,
		Target:   r.camTarget,
		View:     r.camOrient,
		Local:    r.localOrient,
		Frame:    r.frame,
	}
}

// Position returns the camera position.
func (r *Rig) Position() vec3.T { return r.camPos }

// Target returns the point the camera looks at.
func (r *Rig) Target() vec3.T { return r.camTarget }

// Orientation returns the camera's view matrix.
func (r *Rig) Orientation() mat4.T { return r.camOrient }

// LocalOrientation returns the matrix from path-local space to world space.
func (r *Rig) LocalOrientation() mat4.T { return r.localOrient }

// Frame returns the current Frenet frame.
func (r *Rig) Frame() tubular.Frame { return r.frame }

// Segment returns the index of the current segment window.
func (r *Rig) Segment() int { return r.segment }

// T returns the local parameter within the current segment.
func (r *Rig) T() float64 { return r.t }

// Angle returns the orbit angle in degrees.
func (r *Rig) Angle() float64 { return r.angle }

// Spline returns the spline the rig runs on. Clients must not modify it.
func (r *Rig) Spline() []vec3.T { return r.spline }
