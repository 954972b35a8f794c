package main

import (
	"log/slog"
	"time"

	"pfeifer.dev/controlsd/cereal/custom"
	"pfeifer.dev/controlsd/controls"
	"pfeifer.dev/controlsd/lateral"
	ms "pfeifer.dev/controlsd/settings"
	"pfeifer.dev/controlsd/trace"
	"pfeifer.dev/controlsd/utils"
)

const LAG_TOLERANCE = 0.5 // fraction of LOOP_DELAY

type daemon struct {
	controls  *controls.Controls
	car       CarState
	plan      lateral.Plan
	trace     *trace.CSVCycleWriter
	cycleTime utils.UpdateTracker
	lagging   utils.TrackedState[bool]
}

func newDaemon() *daemon {
	d := &daemon{
		controls: controls.New(nil),
		plan:     lateral.ZeroPlan(),
	}
	d.cycleTime.Init(100)
	return d
}

func (d *daemon) handleInput(input custom.ControlsdIn) {
	slog.Info("controlsdIn", "type", input.Type().String())
	switch input.Type() {
	case custom.ControlsdInputType_resetButtonState:
		d.controls.ResetButtons()
	default:
		ms.Settings.Handle(input)
	}
}

func (d *daemon) updatePlan(planData custom.LateralPlan) {
	plan, err := ReadLateralPlan(planData)
	if err != nil {
		utils.Logwe(err, "dropping lateral plan")
		return
	}
	d.plan = plan
}

// step runs a control cycle if a car state arrived since the last one.
func (d *daemon) step(now time.Time) (out controls.Output, ran bool) {
	if !d.car.Received {
		return out, false
	}

	d.cycleTime.Update(now, ms.LOOP_DELAY, LAG_TOLERANCE)
	if d.lagging.Update(d.cycleTime.Lagging) && d.lagging.Value {
		slog.Warn("control loop is lagging", "period", d.cycleTime.Period())
	}

	d.updateTrace()
	out = d.controls.Step(d.car.Take(), d.plan, ms.Settings)
	return out, true
}

// updateTrace opens or closes the cycle trace when the setting changes.
func (d *daemon) updateTrace() {
	switch {
	case ms.Settings.TraceEnabled && d.trace == nil:
		w := trace.NewCSVCycleWriter(ms.Settings.TraceDirectory)
		if err := w.Init(); err != nil {
			utils.Loge(err, "could not start trace, disabling it")
			ms.Settings.TraceEnabled = false
			return
		}
		slog.Info("tracing control cycles", "path", w.Path())
		d.trace = w
		d.controls.SetRecorder(w)
	case !ms.Settings.TraceEnabled && d.trace != nil:
		d.closeTrace()
	}
}

func (d *daemon) closeTrace() {
	if d.trace == nil {
		return
	}
	d.controls.SetRecorder(nil)
	utils.Loge(d.trace.Close(), "could not close trace")
	d.trace = nil
}
