package controls_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"pfeifer.dev/controlsd/controls"
	"pfeifer.dev/controlsd/cruise"
	"pfeifer.dev/controlsd/lateral"
	"pfeifer.dev/controlsd/settings"
)

func constantPlan(psi, curvature, rate float64) lateral.Plan {
	plan := lateral.Plan{
		Psis:           make([]float64, lateral.CONTROL_N),
		Curvatures:     make([]float64, lateral.CONTROL_N),
		CurvatureRates: make([]float64, lateral.CONTROL_N),
	}
	for i := range lateral.CONTROL_N {
		plan.Psis[i] = psi
		plan.Curvatures[i] = curvature
		plan.CurvatureRates[i] = rate
	}
	return plan
}

func accel(pressed bool) cruise.ButtonEvent {
	return cruise.ButtonEvent{Type: cruise.AccelCruise, Pressed: pressed}
}

var _ = Describe("Controls", func() {
	var (
		c    *controls.Controls
		s    settings.ControlsdSettings
		plan lateral.Plan
	)

	BeforeEach(func() {
		c = controls.New(nil)
		s.Default()
		plan = constantPlan(0, 0, 0)
	})

	disengaged := func(vEgo float64, events ...cruise.ButtonEvent) controls.Output {
		return c.Step(controls.CarInput{VEgo: vEgo, Events: events}, plan, s)
	}
	engaged := func(vEgo float64, events ...cruise.ButtonEvent) controls.Output {
		return c.Step(controls.CarInput{VEgo: vEgo, CruiseEnabled: true, Events: events}, plan, s)
	}

	Describe("engagement", func() {
		It("reports the unset setpoint before engaging", func() {
			out := disengaged(20)
			Expect(out.Enabled).To(BeFalse())
			Expect(out.VCruise).To(BeNumerically("==", cruise.V_CRUISE_INITIAL))
			Expect(c.VCruiseLast).To(BeNumerically("==", cruise.V_CRUISE_INITIAL))
		})

		It("initializes from the current speed on the rising edge", func() {
			disengaged(20)
			out := engaged(20)
			Expect(out.Enabled).To(BeTrue())
			Expect(out.VCruise).To(BeNumerically("==", 72))
			Expect(c.VCruiseLast).To(BeNumerically("==", 72))
		})

		It("does not reinitialize while engaged", func() {
			engaged(20)
			out := engaged(30)
			Expect(out.VCruise).To(BeNumerically("==", 72))
		})

		It("initializes at the enable minimum when slow", func() {
			out := engaged(2)
			Expect(out.VCruise).To(BeNumerically("==", cruise.V_CRUISE_ENABLE_MIN))
		})

		It("ignores accel on first engagement when nothing was set", func() {
			out := engaged(25, accel(true))
			Expect(out.VCruise).To(BeNumerically("==", 90))
		})

		It("resumes the last setpoint when engaging with accel", func() {
			engaged(20)
			engaged(20, accel(true), accel(false))
			Expect(c.VCruise).To(BeNumerically("==", 77))

			out := disengaged(25)
			Expect(out.VCruise).To(BeNumerically("==", cruise.V_CRUISE_INITIAL))
			Expect(c.VCruiseLast).To(BeNumerically("==", 77))

			out = engaged(25, accel(true))
			Expect(out.VCruise).To(BeNumerically("==", 77))
			Expect(out.ButtonCount).To(BeNumerically("==", 0))

			out = engaged(25, accel(false))
			Expect(out.VCruise).To(BeNumerically("==", 77))
			Expect(c.VCruiseLast).To(BeNumerically("==", 77))
		})

		It("keeps a resumed setpoint when resume and release share a cycle", func() {
			engaged(20)
			for range 2 {
				engaged(20, accel(true), accel(false))
			}
			Expect(c.VCruise).To(BeNumerically("==", 82))
			disengaged(20)

			out := engaged(20, accel(true), accel(false))
			Expect(out.VCruise).To(BeNumerically("==", 82))
			out = engaged(20)
			Expect(out.VCruise).To(BeNumerically("==", 82))
		})

		It("does not track a press that engages", func() {
			engaged(20, accel(true))
			Expect(c.Press.Tracking()).To(BeFalse())
			for range cruise.CRUISE_LONG_PRESS + 1 {
				engaged(20)
			}
			Expect(c.VCruise).To(BeNumerically("==", 72))
		})

		It("uses the speed when engaging without accel after a setpoint", func() {
			engaged(20)
			disengaged(25)
			out := engaged(25)
			Expect(out.VCruise).To(BeNumerically("==", 90))
		})
	})

	Describe("buttons", func() {
		BeforeEach(func() {
			engaged(20)
		})

		It("steps in imperial units when not metric", func() {
			s.IsMetric = false
			out := engaged(20, cruise.ButtonEvent{Type: cruise.DecelCruise, Pressed: true})
			Expect(out.ButtonCount).To(BeNumerically("==", 1))
			out = engaged(20, cruise.ButtonEvent{Type: cruise.DecelCruise})
			Expect(out.VCruise).To(BeNumerically("~", 72-cruise.V_CRUISE_STEP_MI, 1e-9))
			Expect(out.ButtonCount).To(BeNumerically("==", 0))
		})

		It("reports long presses", func() {
			engaged(20, accel(true))
			var out controls.Output
			for range cruise.CRUISE_LONG_PRESS {
				out = engaged(20)
			}
			Expect(out.LongPressed).To(BeTrue())
			Expect(out.VCruise).To(BeNumerically("==", 80))

			out = engaged(20, accel(false))
			Expect(out.LongPressed).To(BeFalse())
			Expect(out.VCruise).To(BeNumerically("==", 80))
		})

		It("drops the tracked press on reset", func() {
			engaged(20, accel(true))
			c.ResetButtons()
			out := engaged(20, accel(false))
			Expect(out.ButtonCount).To(BeNumerically("==", 0))
			Expect(out.VCruise).To(BeNumerically("==", 72))
		})

		It("does not track presses while disengaged", func() {
			disengaged(20, accel(true))
			Expect(c.Press.Tracking()).To(BeFalse())
		})
	})

	Describe("regen", func() {
		It("lowers the setpoint to the rounded standoff", func() {
			engaged(20)
			out := c.Step(controls.CarInput{VEgo: 19, CruiseEnabled: true, Regen: true}, plan, s)
			Expect(out.VCruise).To(BeNumerically("~", 70, 1e-9))
		})
	})

	Describe("lateral", func() {
		It("holds a steady turn whose heading matches its curvature", func() {
			delay := float64(s.SteerActuatorDelay) + lateral.EXTRA_DELAY
			plan = constantPlan(0.001*20*delay, 0.001, 0)
			out := engaged(20)
			Expect(out.PlanValid).To(BeTrue())
			Expect(out.DesiredCurvature).To(BeNumerically("~", 0.001, 1e-12))
			Expect(out.DesiredCurvatureRate).To(BeNumerically("==", 0))
			Expect(out.MaxCurvatureRate).To(BeNumerically("~", lateral.MaxCurvatureRate(20), 1e-12))
		})

		It("zeroes the command for a malformed plan", func() {
			plan = lateral.Plan{Psis: []float64{1}, Curvatures: []float64{1}, CurvatureRates: []float64{1}}
			out := engaged(20)
			Expect(out.PlanValid).To(BeFalse())
			Expect(out.DesiredCurvature).To(BeNumerically("==", 0))
			Expect(out.DesiredCurvatureRate).To(BeNumerically("==", 0))
		})

		It("looks up the steer limit from settings", func() {
			s.SteerMaxBP = []float64{0, 30}
			s.SteerMaxV = []float64{2, 1}
			out := engaged(15)
			Expect(out.SteerMax).To(BeNumerically("~", 1.5, 1e-12))
		})
	})

	Describe("recording", func() {
		var (
			ctrl     *gomock.Controller
			recorder *MockCycleRecorder
		)

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
			recorder = NewMockCycleRecorder(ctrl)
			c = controls.New(recorder)
		})

		It("records every cycle in order", func() {
			gomock.InOrder(
				recorder.EXPECT().Record(gomock.Cond(func(x any) bool {
					cycle, ok := x.(controls.Cycle)
					return ok && cycle.Frame == 0 && !cycle.Output.Enabled
				})).Return(nil),
				recorder.EXPECT().Record(gomock.Cond(func(x any) bool {
					cycle, ok := x.(controls.Cycle)
					return ok && cycle.Frame == 1 && cycle.Output.Enabled && cycle.Input.VEgo == 20
				})).Return(nil),
			)
			disengaged(20)
			engaged(20)
		})

		It("keeps running when recording fails", func() {
			recorder.EXPECT().Record(gomock.Any()).Return(errors.New("disk full")).Times(2)
			engaged(20)
			out := engaged(20)
			Expect(out.VCruise).To(BeNumerically("==", 72))
			Expect(c.Frame).To(BeNumerically("==", 2))
		})
	})
})
