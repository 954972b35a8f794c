package main

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
	"pfeifer.dev/controlsd/cereal/custom"
	"pfeifer.dev/controlsd/controls"
	"pfeifer.dev/controlsd/cruise"
	"pfeifer.dev/controlsd/lateral"
)

// CarState accumulates the car states received since the last cycle. The
// latest speed and flags win, button events are kept in arrival order.
type CarState struct {
	Input    controls.CarInput
	Received bool
}

func (c *CarState) Update(carData custom.ControlsdCarState) error {
	c.Input.VEgo = float64(carData.VEgo())
	c.Input.Regen = carData.RegenBraking()
	c.Input.CruiseEnabled = carData.CruiseEnabled()
	c.Received = true

	events, err := carData.ButtonEvents()
	if err != nil {
		return errors.Wrap(err, "could not read button events")
	}
	for i := range events.Len() {
		e := events.At(i)
		c.Input.Events = append(c.Input.Events, cruise.ButtonEvent{
			Type:    buttonType(e.Type()),
			Pressed: e.Pressed(),
		})
	}
	return nil
}

// Take returns the accumulated input and starts a new cycle.
func (c *CarState) Take() controls.CarInput {
	input := c.Input
	c.Input.Events = nil
	c.Received = false
	return input
}

func buttonType(t custom.ButtonType) cruise.ButtonType {
	switch t {
	case custom.ButtonType_leftBlinker:
		return cruise.LeftBlinker
	case custom.ButtonType_rightBlinker:
		return cruise.RightBlinker
	case custom.ButtonType_accelCruise:
		return cruise.AccelCruise
	case custom.ButtonType_decelCruise:
		return cruise.DecelCruise
	case custom.ButtonType_cancel:
		return cruise.Cancel
	case custom.ButtonType_altButton1:
		return cruise.AltButton1
	case custom.ButtonType_altButton2:
		return cruise.AltButton2
	case custom.ButtonType_altButton3:
		return cruise.AltButton3
	case custom.ButtonType_setCruise:
		return cruise.SetCruise
	case custom.ButtonType_resumeCruise:
		return cruise.ResumeCruise
	case custom.ButtonType_gapAdjustCruise:
		return cruise.GapAdjustCruise
	default:
		return cruise.Unknown
	}
}

// ReadLateralPlan copies a lateral plan message. Missing sequences come
// through empty and are rejected by the curvature compensation.
func ReadLateralPlan(planData custom.LateralPlan) (lateral.Plan, error) {
	var plan lateral.Plan
	var err error
	plan.Psis, err = readFloats(planData.Psis())
	if err != nil {
		return plan, errors.Wrap(err, "could not read psis")
	}
	plan.Curvatures, err = readFloats(planData.Curvatures())
	if err != nil {
		return plan, errors.Wrap(err, "could not read curvatures")
	}
	plan.CurvatureRates, err = readFloats(planData.CurvatureRates())
	if err != nil {
		return plan, errors.Wrap(err, "could not read curvature rates")
	}
	return plan, nil
}

func readFloats(list capnp.Float32List, err error) ([]float64, error) {
	if err != nil {
		return nil, err
	}
	values := make([]float64, list.Len())
	for i := range values {
		values[i] = float64(list.At(i))
	}
	return values, nil
}
