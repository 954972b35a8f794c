package cruise

import (
	gomath "math"

	m "pfeifer.dev/controlsd/math"
)

const multipleTolerance = 1e-9

// PressTracking follows a single held speed button across control cycles.
// Count is 0 when no press is tracked.
type PressTracking struct {
	Count       uint32
	LongPressed bool
	LastType    ButtonType
}

func (p *PressTracking) Tracking() bool {
	return p.Count > 0
}

func (p *PressTracking) Reset() {
	*p = PressTracking{}
}

// UpdateVCruise applies one control cycle of button events to the setpoint.
// A tap moves the setpoint by one step on release. Holding the button past
// CRUISE_LONG_PRESS cycles snaps the setpoint to the next multiple of the
// coarse delta, and again every CRUISE_LONG_PRESS cycles after that.
func UpdateVCruise(vCruise float64, events []ButtonEvent, press *PressTracking, enabled, metric bool) float64 {
	if enabled {
		if press.Tracking() {
			press.Count++
		}
		for _, b := range events {
			if b.Pressed && !press.Tracking() && b.Type.AdjustsSpeed() {
				press.Count = 1
				press.LastType = b.Type
			} else if !b.Pressed && press.Tracking() {
				if !press.LongPressed {
					vCruise += shortPressDelta(press.LastType, metric)
				}
				press.LongPressed = false
				press.Count = 0
			}
		}

		if press.Count > CRUISE_LONG_PRESS {
			press.LongPressed = true
			vCruise = longPressRound(vCruise, press.LastType, metric)
			press.Count %= CRUISE_LONG_PRESS
		}
	}

	return m.Clip(vCruise, V_CRUISE_MIN, V_CRUISE_MAX)
}

func shortPressDelta(t ButtonType, metric bool) float64 {
	step := V_CRUISE_STEP_MI
	if metric {
		step = V_CRUISE_STEP_KM
	}
	switch t {
	case AccelCruise:
		return step
	case DecelCruise:
		return -step
	default:
		return 0
	}
}

func longPressRound(vCruise float64, t ButtonType, metric bool) float64 {
	delta := V_CRUISE_DELTA_MI
	if metric {
		delta = V_CRUISE_DELTA_KM
	}
	// count in whole deltas so a setpoint that already sits on a multiple
	// (up to float error) moves a full delta
	steps := vCruise / delta
	switch t {
	case AccelCruise:
		return (gomath.Floor(steps+multipleTolerance) + 1) * delta
	case DecelCruise:
		return (gomath.Ceil(steps-multipleTolerance) - 1) * delta
	default:
		return vCruise
	}
}
