// Package lateral turns the planned curvature trajectory into the curvature
// command for the steering actuator.
package lateral

import (
	gomath "math"

	m "pfeifer.dev/controlsd/math"
	ms "pfeifer.dev/controlsd/settings"
)

const (
	IDX_N             = 33
	CONTROL_N         = 17
	T_IDX_MAX         = 10.0 // s
	EXTRA_DELAY       = 0.2  // s, latency not covered by the actuator delay
	MIN_V_EGO         = 0.1  // m/s
	CURVATURE_GAIN    = 2.0
	DEFAULT_STEER_MAX = 1.0
)

var (
	// T_IDXS are the plan sample times, quadratically spaced over T_IDX_MAX.
	T_IDXS = tIdxs()

	// this corresponds to 80deg/s and 20deg/s steering angle in a toyota corolla
	MAX_CURVATURE_RATES       = []float64{0.03762194918267951, 0.003441203371932992}
	MAX_CURVATURE_RATE_SPEEDS = []float64{0, 35}

	maxCurvatureRateBP = m.MustBreakpoints(MAX_CURVATURE_RATE_SPEEDS, MAX_CURVATURE_RATES)
)

func tIdxs() []float64 {
	idxs := make([]float64, IDX_N)
	for i := range idxs {
		f := float64(i) / float64(IDX_N-1)
		idxs[i] = T_IDX_MAX * f * f
	}
	return idxs
}

// Plan is the planner's curvature trajectory sampled at T_IDXS[:CONTROL_N].
type Plan struct {
	Psis           []float64
	Curvatures     []float64
	CurvatureRates []float64
}

// Valid reports whether every sequence covers the control horizon.
func (p Plan) Valid() bool {
	return len(p.Psis) == CONTROL_N && len(p.Curvatures) == CONTROL_N && len(p.CurvatureRates) == CONTROL_N
}

func ZeroPlan() Plan {
	return Plan{
		Psis:           make([]float64, CONTROL_N),
		Curvatures:     make([]float64, CONTROL_N),
		CurvatureRates: make([]float64, CONTROL_N),
	}
}

// MaxCurvatureRate is the curvature rate limit at the given speed.
func MaxCurvatureRate(vEgo float64) float64 {
	return maxCurvatureRateBP.At(vEgo)
}

// LagAdjustedCurvature returns the curvature and curvature rate to command
// now so the vehicle follows the plan once the actuator delay has passed.
// A plan with the wrong number of samples is treated as a straight, zero
// plan. The actuator delay is clipped to [0, MAX_STEER_ACTUATOR_DELAY] and
// NaN inputs are read as zero.
func LagAdjustedCurvature(vEgo, actuatorDelay float64, plan Plan) (curvature, curvatureRate float64) {
	if !plan.Valid() {
		plan = ZeroPlan()
	}

	if gomath.IsNaN(vEgo) {
		vEgo = 0
	}
	delay := m.Clip(actuatorDelay, 0, ms.MAX_STEER_ACTUATOR_DELAY) + EXTRA_DELAY
	currentCurvature := zeroNaN(plan.Curvatures[0])
	psi := zeroNaN(m.Interp(delay, T_IDXS[:CONTROL_N], plan.Psis))
	desiredCurvatureRate := zeroNaN(plan.CurvatureRates[0])

	// the plan can turn the wheel and turn it back before the delay has
	// passed, so those corrections would never be commanded. Linearize the
	// heading change over the delay instead.
	curvatureDiffFromPsi := psi/(gomath.Max(vEgo, MIN_V_EGO)*delay) - currentCurvature
	desiredCurvature := currentCurvature + CURVATURE_GAIN*curvatureDiffFromPsi

	maxCurvatureRate := MaxCurvatureRate(vEgo)
	safeCurvatureRate := m.Clip(desiredCurvatureRate, -maxCurvatureRate, maxCurvatureRate)
	safeCurvature := RateLimit(desiredCurvature, currentCurvature,
		-maxCurvatureRate/ms.DT_MDL,
		maxCurvatureRate/ms.DT_MDL)

	return safeCurvature, safeCurvatureRate
}

func zeroNaN(x float64) float64 {
	if gomath.IsNaN(x) {
		return 0
	}
	return x
}
