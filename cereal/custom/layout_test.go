package custom

import (
	"math"
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSegment(t *testing.T) *capnp.Segment {
	t.Helper()
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	return seg
}

func TestButtonEventLayout(t *testing.T) {
	b, err := NewButtonEvent(newSegment(t))
	require.NoError(t, err)
	b.SetPressed(true)
	b.SetType(ButtonType_gapAdjustCruise)

	raw := capnp.Struct(b)
	assert.True(t, raw.Bit(0))
	assert.Equal(t, uint16(ButtonType_gapAdjustCruise), raw.Uint16(2))
	assert.True(t, b.Pressed())
	assert.Equal(t, ButtonType_gapAdjustCruise, b.Type())
}

func TestControlsdCarStateLayout(t *testing.T) {
	c, err := NewControlsdCarState(newSegment(t))
	require.NoError(t, err)
	c.SetVEgo(-1.5)
	c.SetRegenBraking(false)
	c.SetCruiseEnabled(true)
	events, err := c.NewButtonEvents(1)
	require.NoError(t, err)
	events.At(0).SetType(ButtonType_cancel)

	raw := capnp.Struct(c)
	assert.Equal(t, math.Float32bits(-1.5), raw.Uint32(0))
	assert.False(t, raw.Bit(32))
	assert.True(t, raw.Bit(33))
	assert.True(t, raw.HasPtr(0))

	assert.Equal(t, float32(-1.5), c.VEgo())
	assert.False(t, c.RegenBraking())
	assert.True(t, c.CruiseEnabled())
	read, err := c.ButtonEvents()
	require.NoError(t, err)
	assert.Equal(t, ButtonType_cancel, read.At(0).Type())
}

func TestLateralPlanLayout(t *testing.T) {
	p, err := NewLateralPlan(newSegment(t))
	require.NoError(t, err)
	for i, create := range []func(int32) (capnp.Float32List, error){p.NewPsis, p.NewCurvatures, p.NewCurvatureRates} {
		l, err := create(1)
		require.NoError(t, err)
		l.Set(0, float32(i+1))
	}

	for i, read := range []func() (capnp.Float32List, error){p.Psis, p.Curvatures, p.CurvatureRates} {
		l, err := read()
		require.NoError(t, err)
		assert.Equal(t, float32(i+1), l.At(0))
		assert.True(t, capnp.Struct(p).HasPtr(uint16(i)))
	}
}

func TestControlsdInLayout(t *testing.T) {
	in, err := NewControlsdIn(newSegment(t))
	require.NoError(t, err)
	in.SetType(ControlsdInputType_resetButtonState)
	in.SetFloat(0.75)
	in.SetBool(true)
	require.NoError(t, in.SetStr("warn"))

	raw := capnp.Struct(in)
	assert.Equal(t, uint16(ControlsdInputType_resetButtonState), raw.Uint16(0))
	assert.Equal(t, math.Float32bits(0.75), raw.Uint32(4))
	assert.True(t, raw.Bit(16))
	assert.True(t, raw.HasPtr(0))

	assert.Equal(t, ControlsdInputType_resetButtonState, in.Type())
	assert.Equal(t, float32(0.75), in.Float())
	assert.True(t, in.Bool())
	str, err := in.Str()
	require.NoError(t, err)
	assert.Equal(t, "warn", str)
}

func TestControlsdOutLayout(t *testing.T) {
	out, err := NewControlsdOut(newSegment(t))
	require.NoError(t, err)
	out.SetEnabled(true)
	out.SetVCruise(1)
	out.SetButtonCount(0xdeadbeef)
	out.SetLongPressed(false)
	out.SetDesiredCurvature(2)
	out.SetDesiredCurvatureRate(3)
	out.SetMaxCurvatureRate(4)
	out.SetSteerMax(5)
	out.SetPlanValid(true)

	raw := capnp.Struct(out)
	assert.True(t, raw.Bit(0))
	assert.False(t, raw.Bit(1))
	assert.True(t, raw.Bit(2))
	assert.Equal(t, math.Float32bits(1), raw.Uint32(4))
	assert.Equal(t, uint32(0xdeadbeef), raw.Uint32(8))
	assert.Equal(t, math.Float32bits(2), raw.Uint32(12))
	assert.Equal(t, math.Float32bits(3), raw.Uint32(16))
	assert.Equal(t, math.Float32bits(4), raw.Uint32(20))
	assert.Equal(t, math.Float32bits(5), raw.Uint32(24))

	assert.True(t, out.Enabled())
	assert.Equal(t, float32(1), out.VCruise())
	assert.Equal(t, uint32(0xdeadbeef), out.ButtonCount())
	assert.False(t, out.LongPressed())
	assert.Equal(t, float32(2), out.DesiredCurvature())
	assert.Equal(t, float32(3), out.DesiredCurvatureRate())
	assert.Equal(t, float32(4), out.MaxCurvatureRate())
	assert.Equal(t, float32(5), out.SteerMax())
	assert.True(t, out.PlanValid())
}

func TestEventLayout(t *testing.T) {
	e, err := NewRootEvent(newSegment(t))
	require.NoError(t, err)
	e.SetLogMonoTime(math.MaxUint64)
	e.SetValid(true)

	creators := map[Event_Which]func() error{
		Event_Which_carState:     func() error { _, err := e.NewCarState(); return err },
		Event_Which_lateralPlan:  func() error { _, err := e.NewLateralPlan(); return err },
		Event_Which_controlsdIn:  func() error { _, err := e.NewControlsdIn(); return err },
		Event_Which_controlsdOut: func() error { _, err := e.NewControlsdOut(); return err },
	}
	for which, create := range creators {
		require.NoError(t, create())
		raw := capnp.Struct(e)
		assert.Equal(t, uint16(which), raw.Uint16(10))
		assert.True(t, raw.HasPtr(0))
		assert.Equal(t, which, e.Which())
		assert.Equal(t, uint64(math.MaxUint64), e.LogMonoTime())
		assert.True(t, e.Valid())
	}
}
