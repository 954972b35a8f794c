package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"pfeifer.dev/controlsd/controls"
	"pfeifer.dev/controlsd/cruise"
	"pfeifer.dev/controlsd/lateral"
	ms "pfeifer.dev/controlsd/settings"
	"pfeifer.dev/controlsd/trace"
)

type simulation struct {
	Button  cruise.ButtonType
	Taps    int
	Hold    int // cycles
	VEgo    float64
	Regen   bool
	Psi     float64
	Metric  bool
	Delay   float64
	TraceTo string
}

type cycleLog []controls.Cycle

func (l *cycleLog) Record(cycle controls.Cycle) error {
	*l = append(*l, cycle)
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	speedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:    "simulate",
		Aliases: []string{"sim"},
		Usage:   "Run the cruise and lateral controls over a scripted drive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Category: "Buttons",
				Name:     "hold",
				Usage:    "The button to tap and hold (accel or decel)",
				Value:    "accel",
			},
			&cli.IntFlag{
				Category: "Buttons",
				Name:     "cycles",
				Usage:    "How many control cycles to hold the button for, 0 for no hold",
				Value:    2 * cruise.CRUISE_LONG_PRESS,
			},
			&cli.IntFlag{
				Category: "Buttons",
				Name:     "taps",
				Usage:    "How many short presses to make before holding",
				Value:    0,
			},
			&cli.BoolFlag{
				Category: "Vehicle",
				Name:     "metric",
				Usage:    "Use kph button steps",
				Value:    true,
			},
			&cli.Float64Flag{
				Category: "Vehicle",
				Name:     "v-ego",
				Usage:    "Vehicle speed in m/s",
				Value:    20,
			},
			&cli.BoolFlag{
				Category: "Vehicle",
				Name:     "regen",
				Usage:    "Hold regenerative braking for the whole drive",
			},
			&cli.Float64Flag{
				Category: "Lateral",
				Name:     "psi",
				Usage:    "Planned heading change in radians, constant over the plan",
			},
			&cli.Float64Flag{
				Category: "Lateral",
				Name:     "delay",
				Usage:    "Steer actuator delay in seconds",
				Value:    0.1,
			},
			&cli.StringFlag{
				Name:  "trace",
				Usage: "Directory to write a CSV trace of the drive to",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			button, err := parseButton(cmd.String("hold"))
			if err != nil {
				return err
			}
			sim := simulation{
				Button:  button,
				Taps:    int(cmd.Int("taps")),
				Hold:    int(cmd.Int("cycles")),
				VEgo:    cmd.Float64("v-ego"),
				Regen:   cmd.Bool("regen"),
				Psi:     cmd.Float64("psi"),
				Metric:  cmd.Bool("metric"),
				Delay:   cmd.Float64("delay"),
				TraceTo: cmd.String("trace"),
			}
			cycles := sim.Run()
			fmt.Print(render(cycles))
			return sim.writeTrace(cycles)
		},
	}
}

func parseButton(name string) (cruise.ButtonType, error) {
	switch strings.ToLower(name) {
	case "accel":
		return cruise.AccelCruise, nil
	case "decel":
		return cruise.DecelCruise, nil
	}
	return cruise.Unknown, errors.Errorf("unknown button %q, expected accel or decel", name)
}

// Run drives one disengaged cycle, engages, makes the taps, holds the button
// and finishes with an idle cycle.
func (sim simulation) Run() []controls.Cycle {
	var log cycleLog
	c := controls.New(&log)

	s := ms.ControlsdSettings{}
	s.Default()
	s.IsMetric = sim.Metric
	s.SetSteerActuatorDelay(float32(sim.Delay))

	plan := lateral.ZeroPlan()
	for i := range plan.Psis {
		plan.Psis[i] = sim.Psi
	}

	step := func(enabled bool, events ...cruise.ButtonEvent) {
		c.Step(controls.CarInput{VEgo: sim.VEgo, Regen: sim.Regen, CruiseEnabled: enabled, Events: events}, plan, s)
	}
	press := cruise.ButtonEvent{Type: sim.Button, Pressed: true}
	release := cruise.ButtonEvent{Type: sim.Button}

	step(false)
	step(true)
	for range sim.Taps {
		step(true, press)
		step(true, release)
	}
	if sim.Hold > 0 {
		step(true, press)
		for range sim.Hold - 1 {
			step(true)
		}
		step(true, release)
	}
	step(true)

	return log
}

func (sim simulation) writeTrace(cycles []controls.Cycle) error {
	if sim.TraceTo == "" {
		return nil
	}
	w := trace.NewCSVCycleWriter(sim.TraceTo)
	if err := w.Init(); err != nil {
		return err
	}
	for _, c := range cycles {
		if err := w.Record(c); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	fmt.Println("trace written to", w.Path())
	return nil
}

// render prints the cycles where something happened.
func render(cycles []controls.Cycle) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%6s  %-28s  %8s  %5s  %s", "frame", "buttons", "v cruise", "count", "long")))
	b.WriteString("\n")

	lastVCruise := -1.0
	lastEnabled := false
	for _, c := range cycles {
		events := make([]string, len(c.Input.Events))
		for i, e := range c.Input.Events {
			if e.Pressed {
				events[i] = e.Type.String() + " down"
			} else {
				events[i] = e.Type.String() + " up"
			}
		}
		changed := c.Output.VCruise != lastVCruise || c.Output.Enabled != lastEnabled
		if len(events) == 0 && !changed {
			continue
		}
		vCruise := fmt.Sprintf("%8.2f", c.Output.VCruise)
		if changed {
			vCruise = speedStyle.Render(vCruise)
		}
		b.WriteString(fmt.Sprintf("%6d  %s  %s  %5d  %t\n",
			c.Frame,
			eventStyle.Render(fmt.Sprintf("%-28s", strings.Join(events, ", "))),
			vCruise,
			c.Output.ButtonCount,
			c.Output.LongPressed,
		))
		lastVCruise = c.Output.VCruise
		lastEnabled = c.Output.Enabled
	}

	if len(cycles) > 0 {
		out := cycles[len(cycles)-1].Output
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("lateral"))
		b.WriteString(fmt.Sprintf("\ndesired curvature: %f\ndesired curvature rate: %f\nmax curvature rate: %f\nsteer max: %f\n",
			out.DesiredCurvature,
			out.DesiredCurvatureRate,
			out.MaxCurvatureRate,
			out.SteerMax,
		))
	}
	return b.String()
}
