package cereal

import (
	"pfeifer.dev/controlsd/cereal/custom"
)

func CarStateCreator(evt custom.Event) (custom.ControlsdCarState, error) {
	return evt.NewCarState()
}

func LateralPlanCreator(evt custom.Event) (custom.LateralPlan, error) {
	return evt.NewLateralPlan()
}

func ControlsdInCreator(evt custom.Event) (custom.ControlsdIn, error) {
	return evt.NewControlsdIn()
}

func ControlsdOutCreator(evt custom.Event) (custom.ControlsdOut, error) {
	return evt.NewControlsdOut()
}
