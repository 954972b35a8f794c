// Package controls owns the state carried between control cycles and runs
// the cruise and lateral helpers once per cycle.
package controls

import (
	"pfeifer.dev/controlsd/cruise"
	"pfeifer.dev/controlsd/lateral"
	"pfeifer.dev/controlsd/settings"
	"pfeifer.dev/controlsd/utils"
)

type CarInput struct {
	VEgo          float64 // m/s
	Regen         bool
	CruiseEnabled bool
	Events        []cruise.ButtonEvent
}

type Output struct {
	Enabled              bool
	VCruise              float64 // kph
	ButtonCount          uint32
	LongPressed          bool
	DesiredCurvature     float64
	DesiredCurvatureRate float64
	MaxCurvatureRate     float64
	SteerMax             float64
	PlanValid            bool
}

type Cycle struct {
	Frame  uint64
	Input  CarInput
	Output Output
}

//go:generate mockgen -destination=mock_recorder_test.go -package=controls_test pfeifer.dev/controlsd/controls CycleRecorder
type CycleRecorder interface {
	Record(cycle Cycle) error
}

type Controls struct {
	Press       cruise.PressTracking
	VCruise     float64
	VCruiseLast float64
	Enabled     utils.TrackedState[bool]
	Frame       uint64
	recorder    CycleRecorder
}

// New returns controls that have never been engaged. recorder may be nil.
func New(recorder CycleRecorder) *Controls {
	return &Controls{
		VCruise:     cruise.V_CRUISE_INITIAL,
		VCruiseLast: cruise.V_CRUISE_INITIAL,
		recorder:    recorder,
	}
}

func (c *Controls) SetRecorder(recorder CycleRecorder) {
	c.recorder = recorder
}

// Step runs one control cycle.
func (c *Controls) Step(car CarInput, plan lateral.Plan, s settings.ControlsdSettings) Output {
	c.Enabled.Update(car.CruiseEnabled)
	enabled := c.Enabled.Value

	// the button that engages must not also move the setpoint, so buttons
	// are arbitrated from the cycle after engagement
	engaging := utils.Rose(&c.Enabled)
	if engaging {
		c.VCruise = cruise.InitializeVCruise(car.VEgo, car.Events, c.VCruiseLast)
	}

	c.VCruise = cruise.UpdateVCruise(c.VCruise, car.Events, &c.Press, enabled && !engaging, s.IsMetric)
	c.VCruise = cruise.UpdateVCruiseRegen(car.VEgo, c.VCruise, car.Regen, enabled)
	if enabled {
		c.VCruiseLast = c.VCruise
	}

	curvature, curvatureRate := lateral.LagAdjustedCurvature(car.VEgo, float64(s.SteerActuatorDelay), plan)

	out := Output{
		Enabled:              enabled,
		VCruise:              c.VCruise,
		ButtonCount:          c.Press.Count,
		LongPressed:          c.Press.LongPressed,
		DesiredCurvature:     curvature,
		DesiredCurvatureRate: curvatureRate,
		MaxCurvatureRate:     lateral.MaxCurvatureRate(car.VEgo),
		SteerMax:             lateral.SteerMax(car.VEgo, s.SteerMaxBP, s.SteerMaxV),
		PlanValid:            plan.Valid(),
	}
	if !enabled {
		out.VCruise = cruise.V_CRUISE_INITIAL
	}

	c.record(Cycle{Frame: c.Frame, Input: car, Output: out})
	c.Frame++

	return out
}

// ResetButtons drops any press being tracked.
func (c *Controls) ResetButtons() {
	c.Press.Reset()
}

func (c *Controls) record(cycle Cycle) {
	if c.recorder == nil {
		return
	}
	err := c.recorder.Record(cycle)
	utils.Logwe(err, "could not record cycle", "frame", cycle.Frame)
}
