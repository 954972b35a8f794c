package lateral

import (
	gomath "math"

	m "pfeifer.dev/controlsd/math"
)

// RateLimit keeps newValue within [lastValue+downStep, lastValue+upStep].
// downStep is expected to be negative. A NaN newValue holds lastValue.
func RateLimit(newValue, lastValue, downStep, upStep float64) float64 {
	if gomath.IsNaN(newValue) {
		return lastValue
	}
	return m.Clip(newValue, lastValue+downStep, lastValue+upStep)
}

// SteerMax looks up the maximum steer command for the speed in the vehicle's
// steerMax table. An unusable table yields DEFAULT_STEER_MAX.
func SteerMax(vEgo float64, bp, v []float64) float64 {
	if m.ValidateBreakpoints(bp, v) != nil {
		return DEFAULT_STEER_MAX
	}
	return m.Interp(vEgo, bp, v)
}
