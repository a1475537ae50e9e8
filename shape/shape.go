/*
Package shape generates parametric point sequences: spiral paths to sweep
tubes along, and circular contours.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

// tracer writes to trace with key 'shape'
func tracer() tracing.Trace {
	return tracing.Select("shape")
}

// ErrTooFewPoints indicates a request for a shape with too few points.
var ErrTooFewPoints = errors.New("too few points for shape")

// SpiralPath returns points on a spiral around the Y-axis. Radius and
// height change linearly from r1 to r2 and from h1 to h2, while the angle
// runs through the given number of turns, starting on the positive X-axis.
// The first and last point are exactly at (r1,h1) and (r2,h2).
func SpiralPath(r1, r2, h1, h2, turns float64, points int) ([]vec3.T, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: spiral with %d points", ErrTooFewPoints, points)
	}
	radii := floats.Span(make([]float64, points), r1, r2)
	heights := floats.Span(make([]float64, points), h1, h2)
	angles := floats.Span(make([]float64, points), 0, turns*2*math.Pi)
	path := make([]vec3.T, points)
	for i := range path {
		sin, cos := math.Sincos(angles[i])
		path[i] = vec3.T{radii[i] * cos, heights[i], radii[i] * sin}
	}
	tracer().Debugf("spiral: %d points, %g turns", points, turns)
	return path, nil
}

// Circle returns a closed ellipse with radii rx and ry around the origin in
// the XY-plane: steps+1 points, where the last one repeats the first one.
func Circle(rx, ry float64, steps int) ([]vec3.T, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: circle with %d steps", ErrTooFewPoints, steps)
	}
	angles := floats.Span(make([]float64, steps+1), 0, 2*math.Pi)
	points := make([]vec3.T, len(angles))
	for i, a := range angles {
		points[i] = vec3.T{rx * math.Cos(a), ry * math.Sin(a), 0}
	}
	points[steps] = points[0]
	return points, nil
}
