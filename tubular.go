/*
Package tubular implements the geometry underneath swept tubes and
spline tracks: 3D lines and planes with intersection routines, orientation
frames derived from a direction, view frustums, and a small set of 2D
helpers (pairs and affine transformations) for cross-section profiles.

Sub-packages build on these primitives:

	catmull      arc-length resampling of closed Catmull-Rom curves
	pipe         sweeping a contour along a path by miter-plane projection
	trajectory   a Frenet-frame camera rig running along a spline
	mesh         vertex/index buffers for tubes, tori, pipes and friends
	polygon      2D cross-section contours
	shape        parametric paths (spirals, circles)
	bezier       piecewise cubic Bezier paths
	motion       damped movement and path following

Points and directions are go3d vectors (github.com/ungerik/go3d/float64/vec3).
Geometry which cannot be computed, e.g. the intersection of parallel lines,
is reported as an error by the primitives of this package. Components which
have to carry on with a result, like package pipe, store the sentinel
Invalid() instead; clients check these with IsValid().

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package tubular

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tubular'
func tracer() tracing.Trace {
	return tracing.Select("tubular")
}

var (
	// ErrParallel indicates that lines and/or planes do not intersect
	// because they are parallel.
	ErrParallel = errors.New("geometry is parallel, no intersection")
	// ErrDegenerate indicates a zero-length normal or direction.
	ErrDegenerate = errors.New("degenerate geometry")
)

// TracingKeys lists the trace keys used throughout this module.
var TracingKeys = []string{
	"tubular", "catmull", "pipe", "trajectory", "mesh",
	"polygon", "shape", "bezier", "motion",
}

// ConfigureTracing sets the trace levels of all tracers of this module
// from a configuration. For a trace key k, the configuration key is "tracing.k",
// with values "Debug", "Info" or "Error". Keys not set in conf are left
// untouched.
func ConfigureTracing(conf schuko.Configuration) {
	if conf == nil {
		return
	}
	for _, key := range TracingKeys {
		ckey := "tracing." + key
		if !conf.IsSet(ckey) {
			continue
		}
		level := tracing.TraceLevelFromString(conf.GetString(ckey))
		tracing.Select(key).SetTraceLevel(level)
	}
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// Clamp restricts n to [lo,hi].
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}
