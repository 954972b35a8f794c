package cruise

import (
	gomath "math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ms "pfeifer.dev/controlsd/settings"
)

func press(t ButtonType) ButtonEvent   { return ButtonEvent{Type: t, Pressed: true} }
func release(t ButtonType) ButtonEvent { return ButtonEvent{Type: t, Pressed: false} }

// hold presses the button on the first cycle and keeps it held for the given
// number of cycles in total, returning the setpoint after every cycle.
func hold(vCruise float64, t ButtonType, p *PressTracking, cycles int, metric bool) []float64 {
	out := make([]float64, 0, cycles)
	for i := range cycles {
		var events []ButtonEvent
		if i == 0 {
			events = []ButtonEvent{press(t)}
		}
		vCruise = UpdateVCruise(vCruise, events, p, true, metric)
		out = append(out, vCruise)
	}
	return out
}

func TestShortPress(t *testing.T) {
	tests := []struct {
		name   string
		button ButtonType
		metric bool
		start  float64
		want   float64
	}{
		{"accel metric", AccelCruise, true, 50, 55},
		{"decel metric", DecelCruise, true, 50, 45},
		{"accel imperial", AccelCruise, false, 50, 50 + 2*ms.MPH_TO_KPH},
		{"decel imperial", DecelCruise, false, 50, 50 - 2*ms.MPH_TO_KPH},
		{"accel clamps at max", AccelCruise, true, 133, V_CRUISE_MAX},
		{"decel clamps at min", DecelCruise, false, 6, V_CRUISE_MIN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PressTracking{}
			v := UpdateVCruise(tt.start, []ButtonEvent{press(tt.button)}, &p, true, tt.metric)
			assert.Equal(t, tt.start, v)
			assert.Equal(t, uint32(1), p.Count)
			assert.Equal(t, tt.button, p.LastType)

			for range 10 {
				v = UpdateVCruise(v, nil, &p, true, tt.metric)
			}
			assert.Equal(t, tt.start, v, "holding below the long press threshold must not move the setpoint")

			v = UpdateVCruise(v, []ButtonEvent{release(tt.button)}, &p, true, tt.metric)
			assert.InDelta(t, tt.want, v, 1e-9)
			assert.Equal(t, PressTracking{LastType: tt.button}, p)
		})
	}
}

func TestTapWithinOneCycle(t *testing.T) {
	p := PressTracking{}
	v := UpdateVCruise(70, []ButtonEvent{press(AccelCruise), release(AccelCruise)}, &p, true, true)
	assert.Equal(t, 75.0, v)
	assert.False(t, p.Tracking())
}

func TestLongPressAccelMetric(t *testing.T) {
	p := PressTracking{}
	vs := hold(52, AccelCruise, &p, 2*CRUISE_LONG_PRESS+1, true)

	for i := range CRUISE_LONG_PRESS {
		require.Equal(t, 52.0, vs[i], "cycle %d", i+1)
	}
	assert.Equal(t, 60.0, vs[CRUISE_LONG_PRESS])
	assert.True(t, p.LongPressed)
	for i := CRUISE_LONG_PRESS; i < 2*CRUISE_LONG_PRESS; i++ {
		require.Equal(t, 60.0, vs[i], "cycle %d", i+1)
	}
	assert.Equal(t, 70.0, vs[2*CRUISE_LONG_PRESS])
	assert.Equal(t, uint32(1), p.Count)

	v := UpdateVCruise(vs[len(vs)-1], []ButtonEvent{release(AccelCruise)}, &p, true, true)
	assert.Equal(t, 70.0, v, "releasing a long press must not add a short step")
	assert.False(t, p.Tracking())
	assert.False(t, p.LongPressed)
}

func TestLongPressOnMultipleGoesToNextMultiple(t *testing.T) {
	p := PressTracking{}
	vs := hold(60, AccelCruise, &p, CRUISE_LONG_PRESS+1, true)
	assert.Equal(t, 70.0, vs[CRUISE_LONG_PRESS])

	p = PressTracking{}
	vs = hold(60, DecelCruise, &p, CRUISE_LONG_PRESS+1, true)
	assert.Equal(t, 50.0, vs[CRUISE_LONG_PRESS])
}

func TestLongPressDecelImperial(t *testing.T) {
	p := PressTracking{}
	vs := hold(100, DecelCruise, &p, CRUISE_LONG_PRESS+1, false)

	assert.Equal(t, 100.0, vs[CRUISE_LONG_PRESS-1])
	assert.InDelta(t, 12*V_CRUISE_DELTA_MI, vs[CRUISE_LONG_PRESS], 1e-9)
}

func TestLongPressAccelImperialRollsOver(t *testing.T) {
	p := PressTracking{}
	vs := hold(60, AccelCruise, &p, 3*CRUISE_LONG_PRESS+1, false)

	assert.InDelta(t, 8*V_CRUISE_DELTA_MI, vs[CRUISE_LONG_PRESS], 1e-9)
	assert.InDelta(t, 9*V_CRUISE_DELTA_MI, vs[2*CRUISE_LONG_PRESS], 1e-9)
	assert.InDelta(t, 10*V_CRUISE_DELTA_MI, vs[3*CRUISE_LONG_PRESS], 1e-9)
}

func TestReleaseUsesTrackedButton(t *testing.T) {
	p := PressTracking{}
	v := UpdateVCruise(80, []ButtonEvent{press(DecelCruise)}, &p, true, true)
	v = UpdateVCruise(v, []ButtonEvent{release(AccelCruise)}, &p, true, true)
	assert.Equal(t, 75.0, v)
}

func TestIgnoredEvents(t *testing.T) {
	t.Run("release without press", func(t *testing.T) {
		p := PressTracking{}
		v := UpdateVCruise(80, []ButtonEvent{release(AccelCruise)}, &p, true, true)
		assert.Equal(t, 80.0, v)
		assert.Equal(t, PressTracking{}, p)
	})

	t.Run("non speed button press", func(t *testing.T) {
		p := PressTracking{}
		v := UpdateVCruise(80, []ButtonEvent{press(Cancel), press(GapAdjustCruise)}, &p, true, true)
		assert.Equal(t, 80.0, v)
		assert.False(t, p.Tracking())
	})

	t.Run("second press while tracking", func(t *testing.T) {
		p := PressTracking{}
		UpdateVCruise(80, []ButtonEvent{press(AccelCruise), press(DecelCruise)}, &p, true, true)
		assert.Equal(t, AccelCruise, p.LastType)
		assert.Equal(t, uint32(1), p.Count)
	})

	t.Run("disabled", func(t *testing.T) {
		p := PressTracking{Count: 7, LastType: AccelCruise}
		v := UpdateVCruise(80, []ButtonEvent{release(AccelCruise)}, &p, false, true)
		assert.Equal(t, 80.0, v)
		assert.Equal(t, PressTracking{Count: 7, LastType: AccelCruise}, p)
	})

	t.Run("disabled still clamps", func(t *testing.T) {
		p := PressTracking{}
		assert.Equal(t, float64(V_CRUISE_MAX), UpdateVCruise(V_CRUISE_INITIAL, nil, &p, false, true))
	})
}

func TestSetpointAlwaysInBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	p := PressTracking{}
	v := 100.0
	for range 20000 {
		var events []ButtonEvent
		for range r.IntN(3) {
			events = append(events, ButtonEvent{
				Type:    ButtonType(r.IntN(int(GapAdjustCruise) + 1)),
				Pressed: r.IntN(2) == 0,
			})
		}
		v = UpdateVCruise(v, events, &p, r.IntN(10) > 0, r.IntN(2) == 0)
		require.GreaterOrEqual(t, v, float64(V_CRUISE_MIN))
		require.LessOrEqual(t, v, float64(V_CRUISE_MAX))
		if !p.Tracking() {
			require.False(t, p.LongPressed)
		}

		v = UpdateVCruiseRegen(r.Float64()*50-5, v, r.IntN(2) == 0, true)
		require.GreaterOrEqual(t, v, float64(V_CRUISE_MIN))
		require.LessOrEqual(t, v, float64(V_CRUISE_MAX))
	}
}

func TestUpdateVCruiseRegen(t *testing.T) {
	tests := []struct {
		name    string
		vEgoKph float64
		vCruise float64
		regen   bool
		enabled bool
		want    float64
	}{
		{"standoff inside margin rounds down", 96, 100, true, true, 100},
		{"standoff reduces setpoint", 98, 102, true, true, 100},
		{"exactly at margin is untouched", 95, 100, true, true, 100},
		{"outside margin is untouched", 90, 100, true, true, 100},
		{"faster than setpoint never raises", 110, 100, true, true, 100},
		{"no regen", 99, 100, false, true, 100},
		{"disabled", 99, 100, true, false, 100},
		{"reversing clamps to minimum", -12, 6, true, true, V_CRUISE_MIN},
		{"clamps when idle", 0, 200, false, false, V_CRUISE_MAX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := UpdateVCruiseRegen(tt.vEgoKph/ms.MS_TO_KPH, tt.vCruise, tt.regen, tt.enabled)
			assert.InDelta(t, tt.want, v, 1e-9)
		})
	}
}

func TestInitializeVCruise(t *testing.T) {
	tests := []struct {
		name    string
		vEgoKph float64
		events  []ButtonEvent
		last    float64
		want    float64
	}{
		{"speed based", 72, nil, V_CRUISE_INITIAL, 72},
		{"below enable minimum", 30, nil, V_CRUISE_INITIAL, V_CRUISE_ENABLE_MIN},
		{"above maximum", 200, nil, V_CRUISE_INITIAL, V_CRUISE_MAX},
		{"rounds half to even down", 72.5, nil, V_CRUISE_INITIAL, 72},
		{"rounds half to even up", 73.5, nil, V_CRUISE_INITIAL, 74},
		{"accel resumes last setpoint", 72, []ButtonEvent{press(AccelCruise)}, 88, 88},
		{"accel without last setpoint", 72, []ButtonEvent{release(AccelCruise)}, V_CRUISE_INITIAL, 72},
		{"decel ignores last setpoint", 72, []ButtonEvent{press(DecelCruise)}, 88, 72},
		{"accel after other buttons", 72, []ButtonEvent{press(Cancel), press(AccelCruise)}, 95, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitializeVCruise(tt.vEgoKph/ms.MS_TO_KPH, tt.events, tt.last))
		})
	}
}

func TestNaNInputsStayInBounds(t *testing.T) {
	nan := gomath.NaN()

	assert.Equal(t, float64(V_CRUISE_ENABLE_MIN), InitializeVCruise(nan, nil, V_CRUISE_INITIAL))

	p := PressTracking{}
	assert.Equal(t, float64(V_CRUISE_MIN), UpdateVCruise(nan, nil, &p, true, true))
	assert.Equal(t, float64(V_CRUISE_MIN), UpdateVCruise(nan, []ButtonEvent{press(AccelCruise)}, &p, true, true))

	assert.Equal(t, 80.0, UpdateVCruiseRegen(nan, 80, true, true))
	assert.Equal(t, float64(V_CRUISE_MIN), UpdateVCruiseRegen(20, nan, true, true))
}

func TestButtonTypeString(t *testing.T) {
	assert.Equal(t, "accelCruise", AccelCruise.String())
	assert.Equal(t, "unknown", ButtonType(99).String())
	assert.True(t, DecelCruise.AdjustsSpeed())
	assert.False(t, SetCruise.AdjustsSpeed())
}
