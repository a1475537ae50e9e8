package trajectory

import (
	"strconv"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by ParamsFrom.
const (
	KeyPosRadius    = "trajectory.posradius"
	KeyTargetRadius = "trajectory.targetradius"
	KeyLookahead    = "trajectory.lookahead"
	KeyTangentDelta = "trajectory.tangentdelta"
	KeyAngleStep    = "trajectory.anglestep"
)

// Params controls how a Rig places the camera relative to the spline.
type Params struct {
	PosRadius    float64 // offset of the camera from the spline, along the orbit vector
	TargetRadius float64 // offset of the look-at target from the spline
	Lookahead    float64 // parameter distance of the target ahead of the camera, in (0,1]
	TangentDelta float64 // half the parameter distance used for the tangent estimate
	AngleStep    float64 // orbit angle increment per advance, in degrees
}

// DefaultParams returns the parameters of a camera riding slightly below
// and behind the spline, looking ahead.
func DefaultParams() Params {
	return Params{
		PosRadius:    -1.3,
		TargetRadius: -1.2,
		Lookahead:    0.2,
		TangentDelta: 0.05,
		AngleStep:    1,
	}
}

// ParamsFrom reads rig parameters from a configuration. Keys which are not
// set or do not hold a number keep their default value.
func ParamsFrom(conf schuko.Configuration) Params {
	params := DefaultParams()
	if conf == nil {
		return params
	}
	read := func(key string, dest *float64) {
		if !conf.IsSet(key) {
			return
		}
		s := conf.GetString(key)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			tracer().Errorf("configuration key %s: cannot use %q, keeping %g", key, s, *dest)
			return
		}
		*dest = f
	}
	read(KeyPosRadius, &params.PosRadius)
	read(KeyTargetRadius, &params.TargetRadius)
	read(KeyLookahead, &params.Lookahead)
	read(KeyTangentDelta, &params.TangentDelta)
	read(KeyAngleStep, &params.AngleStep)
	return params
}
