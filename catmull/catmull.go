/*
Package catmull samples Catmull-Rom splines by arc length.

A Catmull-Rom spline passes through all of its control points, each segment
being interpolated from 4 consecutive points. Evaluating a segment at
uniformly spaced parameters does not yield uniformly spaced points, as the
parameter speed varies along the curve. Resampler corrects for this: it
measures the control polygon, spreads the desired number of samples evenly
over its length, and then repeats the procedure once on its own output.
The second pass is not optional; a single pass leaves visibly non-uniform
spacing.

Curves handled by Resampler are closed loops: the last control point
connects back to the first one.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catmull

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'catmull'
func tracer() tracing.Trace {
	return tracing.Select("catmull")
}

var (
	// ErrInsufficientPoints indicates a curve with fewer than 2 control points.
	ErrInsufficientPoints = errors.New("curve has too few control points")
	// ErrInvalidSampleCount indicates a request for less than one sample.
	ErrInvalidSampleCount = errors.New("sample count must be at least 1")
	// ErrNoSample indicates a distance for which no curve segment exists.
	ErrNoSample = errors.New("no sample at distance")
)

// Eval evaluates the uniform Catmull-Rom segment between p1 and p2 at
// parameter t ∈ [0,1]. Eval(…, 0) is p1 and Eval(…, 1) is p2.
func Eval(p0, p1, p2, p3 vec3.T, t float64) vec3.T {
	t2 := t * t
	t3 := t2 * t
	f0 := -t3 + 2*t2 - t
	f1 := 3*t3 - 5*t2 + 2
	f2 := -3*t3 + 4*t2 + t
	f3 := t3 - t2
	var p vec3.T
	for i := 0; i < 3; i++ {
		p[i] = (f0*p0[i] + f1*p1[i] + f2*p2[i] + f3*p3[i]) / 2
	}
	return p
}

// EvalWindow evaluates the segment of a 4-point window starting at index i
// of points, i.e. the segment between points[i+1] and points[i+2].
// No index wrapping is done; the caller guarantees i+3 < len(points).
func EvalWindow(points []vec3.T, i int, t float64) vec3.T {
	return Eval(points[i], points[i+1], points[i+2], points[i+3], t)
}

// Wrap maps index i onto [0,n) modulo n. Negative indices count from the
// end, thus for a closed curve of n points Wrap(j-1, n) is the predecessor
// of point j and Wrap(j+2, n) its second successor.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// window returns the indices of the 4 control points bounding segment j of
// a closed curve with n points.
func window(j, n int) (int, int, int, int) {
	return Wrap(j-1, n), j, Wrap(j+1, n), Wrap(j+2, n)
}
