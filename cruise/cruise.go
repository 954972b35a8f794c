// Package cruise arbitrates the driver requested cruise speed from steering
// wheel button events. Speeds are in kph.
package cruise

import (
	ms "pfeifer.dev/controlsd/settings"
)

const (
	V_CRUISE_MAX        = 135
	V_CRUISE_MIN        = 5
	V_CRUISE_ENABLE_MIN = 40
	V_CRUISE_INITIAL    = 255
	V_CRUISE_UNSET      = 250 // anything at or above this was never set by the driver
	V_CRUISE_DELTA_KM   = 10
	V_CRUISE_DELTA_MI   = 5 * ms.MPH_TO_KPH
	V_CRUISE_STEP_KM    = 5
	V_CRUISE_STEP_MI    = 2 * ms.MPH_TO_KPH
	CRUISE_LONG_PRESS   = 80 // control cycles
	REGEN_THRESHOLD     = 5
	REGEN_ROUNDING      = 5
)

type ButtonType int

const (
	Unknown ButtonType = iota
	LeftBlinker
	RightBlinker
	AccelCruise
	DecelCruise
	Cancel
	AltButton1
	AltButton2
	AltButton3
	SetCruise
	ResumeCruise
	GapAdjustCruise
)

func (t ButtonType) String() string {
	switch t {
	case LeftBlinker:
		return "leftBlinker"
	case RightBlinker:
		return "rightBlinker"
	case AccelCruise:
		return "accelCruise"
	case DecelCruise:
		return "decelCruise"
	case Cancel:
		return "cancel"
	case AltButton1:
		return "altButton1"
	case AltButton2:
		return "altButton2"
	case AltButton3:
		return "altButton3"
	case SetCruise:
		return "setCruise"
	case ResumeCruise:
		return "resumeCruise"
	case GapAdjustCruise:
		return "gapAdjustCruise"
	default:
		return "unknown"
	}
}

// AdjustsSpeed reports whether presses of this button are tracked for
// setpoint changes.
func (t ButtonType) AdjustsSpeed() bool {
	return t == AccelCruise || t == DecelCruise
}

type ButtonEvent struct {
	Type    ButtonType
	Pressed bool
}
