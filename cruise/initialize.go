package cruise

import (
	gomath "math"

	m "pfeifer.dev/controlsd/math"
	ms "pfeifer.dev/controlsd/settings"
)

// InitializeVCruise picks the setpoint on engagement. Engaging with accel
// resumes the previous setpoint if there was one, otherwise the current speed
// is used.
func InitializeVCruise(vEgo float64, events []ButtonEvent, vCruiseLast float64) float64 {
	for _, b := range events {
		if b.Type == AccelCruise && vCruiseLast < V_CRUISE_UNSET {
			return vCruiseLast
		}
	}

	return gomath.RoundToEven(m.Clip(vEgo*ms.MS_TO_KPH, V_CRUISE_ENABLE_MIN, V_CRUISE_MAX))
}
