package cruise

import (
	gomath "math"

	m "pfeifer.dev/controlsd/math"
	ms "pfeifer.dev/controlsd/settings"
)

// UpdateVCruiseRegen keeps the setpoint at least REGEN_THRESHOLD kph above the
// current speed, rounded down to REGEN_ROUNDING, while regenerative braking is
// active. It never raises the setpoint.
func UpdateVCruiseRegen(vEgo, vCruise float64, regen, enabled bool) float64 {
	if enabled && regen {
		vEgoKph := vEgo * ms.MS_TO_KPH
		if vCruise-vEgoKph < REGEN_THRESHOLD {
			standoff := vEgoKph + REGEN_THRESHOLD
			standoff -= m.Mod(standoff, REGEN_ROUNDING)
			vCruise = gomath.Min(vCruise, standoff)
		}
	}

	return m.Clip(vCruise, V_CRUISE_MIN, V_CRUISE_MAX)
}
