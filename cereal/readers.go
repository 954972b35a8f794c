package cereal

import (
	"pfeifer.dev/controlsd/cereal/custom"
)

func CarStateReader(evt custom.Event) (custom.ControlsdCarState, error) {
	return evt.CarState()
}

func LateralPlanReader(evt custom.Event) (custom.LateralPlan, error) {
	return evt.LateralPlan()
}

func ControlsdInReader(evt custom.Event) (custom.ControlsdIn, error) {
	return evt.ControlsdIn()
}

func ControlsdOutReader(evt custom.Event) (custom.ControlsdOut, error) {
	return evt.ControlsdOut()
}
