package main

import (
	"log/slog"

	"pfeifer.dev/controlsd/cereal/custom"
	"pfeifer.dev/controlsd/controls"
)

func fillOutput(out controls.Output, controlsdOut custom.ControlsdOut) {
	controlsdOut.SetEnabled(out.Enabled)
	controlsdOut.SetVCruise(float32(out.VCruise))
	controlsdOut.SetButtonCount(out.ButtonCount)
	controlsdOut.SetLongPressed(out.LongPressed)
	controlsdOut.SetDesiredCurvature(float32(out.DesiredCurvature))
	controlsdOut.SetDesiredCurvatureRate(float32(out.DesiredCurvatureRate))
	controlsdOut.SetMaxCurvatureRate(float32(out.MaxCurvatureRate))
	controlsdOut.SetSteerMax(float32(out.SteerMax))
	controlsdOut.SetPlanValid(out.PlanValid)
}

func logOutput(controlsdOut custom.ControlsdOut) {
	slog.Debug("controlsdOut",
		"enabled", controlsdOut.Enabled(),
		"vCruise", controlsdOut.VCruise(),
		"buttonCount", controlsdOut.ButtonCount(),
		"longPressed", controlsdOut.LongPressed(),
		"desiredCurvature", controlsdOut.DesiredCurvature(),
		"desiredCurvatureRate", controlsdOut.DesiredCurvatureRate(),
		"planValid", controlsdOut.PlanValid(),
	)
}
