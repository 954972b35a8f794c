// Accessors for controlsd.capnp. Offsets are the slots capnp compile assigns
// to the schema. Regenerate with go generate when fields are added.

package custom

import (
	math "math"
	strconv "strconv"

	capnp "capnproto.org/go/capnp/v3"
)

type ButtonType uint16

const (
	ButtonType_unknown         ButtonType = 0
	ButtonType_leftBlinker     ButtonType = 1
	ButtonType_rightBlinker    ButtonType = 2
	ButtonType_accelCruise     ButtonType = 3
	ButtonType_decelCruise     ButtonType = 4
	ButtonType_cancel          ButtonType = 5
	ButtonType_altButton1      ButtonType = 6
	ButtonType_altButton2      ButtonType = 7
	ButtonType_altButton3      ButtonType = 8
	ButtonType_setCruise       ButtonType = 9
	ButtonType_resumeCruise    ButtonType = 10
	ButtonType_gapAdjustCruise ButtonType = 11
)

func (c ButtonType) String() string {
	switch c {
	case ButtonType_unknown:
		return "unknown"
	case ButtonType_leftBlinker:
		return "leftBlinker"
	case ButtonType_rightBlinker:
		return "rightBlinker"
	case ButtonType_accelCruise:
		return "accelCruise"
	case ButtonType_decelCruise:
		return "decelCruise"
	case ButtonType_cancel:
		return "cancel"
	case ButtonType_altButton1:
		return "altButton1"
	case ButtonType_altButton2:
		return "altButton2"
	case ButtonType_altButton3:
		return "altButton3"
	case ButtonType_setCruise:
		return "setCruise"
	case ButtonType_resumeCruise:
		return "resumeCruise"
	case ButtonType_gapAdjustCruise:
		return "gapAdjustCruise"
	default:
		return ""
	}
}

type ButtonEvent capnp.Struct

func NewButtonEvent(s *capnp.Segment) (ButtonEvent, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0})
	return ButtonEvent(st), err
}

func (s ButtonEvent) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s ButtonEvent) Pressed() bool {
	return capnp.Struct(s).Bit(0)
}

func (s ButtonEvent) SetPressed(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s ButtonEvent) Type() ButtonType {
	return ButtonType(capnp.Struct(s).Uint16(2))
}

func (s ButtonEvent) SetType(v ButtonType) {
	capnp.Struct(s).SetUint16(2, uint16(v))
}

type ButtonEvent_List = capnp.StructList[ButtonEvent]

func NewButtonEvent_List(s *capnp.Segment, sz int32) (ButtonEvent_List, error) {
	l, err := capnp.NewCompositeList(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0}, sz)
	return capnp.StructList[ButtonEvent](l), err
}

type ControlsdCarState capnp.Struct

func NewControlsdCarState(s *capnp.Segment) (ControlsdCarState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return ControlsdCarState(st), err
}

func (s ControlsdCarState) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s ControlsdCarState) VEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s ControlsdCarState) SetVEgo(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s ControlsdCarState) RegenBraking() bool {
	return capnp.Struct(s).Bit(32)
}

func (s ControlsdCarState) SetRegenBraking(v bool) {
	capnp.Struct(s).SetBit(32, v)
}

func (s ControlsdCarState) CruiseEnabled() bool {
	return capnp.Struct(s).Bit(33)
}

func (s ControlsdCarState) SetCruiseEnabled(v bool) {
	capnp.Struct(s).SetBit(33, v)
}

func (s ControlsdCarState) ButtonEvents() (ButtonEvent_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return ButtonEvent_List(p.List()), err
}

func (s ControlsdCarState) HasButtonEvents() bool {
	return capnp.Struct(s).HasPtr(0)
}

// NewButtonEvents sets the buttonEvents field to a newly allocated list of
// the given length.
func (s ControlsdCarState) NewButtonEvents(n int32) (ButtonEvent_List, error) {
	l, err := NewButtonEvent_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return ButtonEvent_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

type LateralPlan capnp.Struct

func NewLateralPlan(s *capnp.Segment) (LateralPlan, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 3})
	return LateralPlan(st), err
}

func (s LateralPlan) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s LateralPlan) floats(i uint16) (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(i)
	return capnp.Float32List(p.List()), err
}

func (s LateralPlan) newFloats(i uint16, n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(i, capnp.List(l).ToPtr())
	return l, err
}

func (s LateralPlan) Psis() (capnp.Float32List, error) {
	return s.floats(0)
}

func (s LateralPlan) NewPsis(n int32) (capnp.Float32List, error) {
	return s.newFloats(0, n)
}

func (s LateralPlan) Curvatures() (capnp.Float32List, error) {
	return s.floats(1)
}

func (s LateralPlan) NewCurvatures(n int32) (capnp.Float32List, error) {
	return s.newFloats(1, n)
}

func (s LateralPlan) CurvatureRates() (capnp.Float32List, error) {
	return s.floats(2)
}

func (s LateralPlan) NewCurvatureRates(n int32) (capnp.Float32List, error) {
	return s.newFloats(2, n)
}

type ControlsdInputType uint16

const (
	ControlsdInputType_reloadSettings        ControlsdInputType = 0
	ControlsdInputType_saveSettings          ControlsdInputType = 1
	ControlsdInputType_loadDefaultSettings   ControlsdInputType = 2
	ControlsdInputType_setLogLevel           ControlsdInputType = 3
	ControlsdInputType_setSteerActuatorDelay ControlsdInputType = 4
	ControlsdInputType_setIsMetric           ControlsdInputType = 5
	ControlsdInputType_setTraceEnabled       ControlsdInputType = 6
	ControlsdInputType_resetButtonState      ControlsdInputType = 7
)

func (c ControlsdInputType) String() string {
	switch c {
	case ControlsdInputType_reloadSettings:
		return "reloadSettings"
	case ControlsdInputType_saveSettings:
		return "saveSettings"
	case ControlsdInputType_loadDefaultSettings:
		return "loadDefaultSettings"
	case ControlsdInputType_setLogLevel:
		return "setLogLevel"
	case ControlsdInputType_setSteerActuatorDelay:
		return "setSteerActuatorDelay"
	case ControlsdInputType_setIsMetric:
		return "setIsMetric"
	case ControlsdInputType_setTraceEnabled:
		return "setTraceEnabled"
	case ControlsdInputType_resetButtonState:
		return "resetButtonState"
	default:
		return ""
	}
}

type ControlsdIn capnp.Struct

func NewControlsdIn(s *capnp.Segment) (ControlsdIn, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return ControlsdIn(st), err
}

func (s ControlsdIn) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s ControlsdIn) Type() ControlsdInputType {
	return ControlsdInputType(capnp.Struct(s).Uint16(0))
}

func (s ControlsdIn) SetType(v ControlsdInputType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s ControlsdIn) Float() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s ControlsdIn) SetFloat(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s ControlsdIn) Bool() bool {
	return capnp.Struct(s).Bit(16)
}

func (s ControlsdIn) SetBool(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s ControlsdIn) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s ControlsdIn) HasStr() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s ControlsdIn) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

type ControlsdOut capnp.Struct

func NewControlsdOut(s *capnp.Segment) (ControlsdOut, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 32, PointerCount: 0})
	return ControlsdOut(st), err
}

func (s ControlsdOut) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s ControlsdOut) Enabled() bool {
	return capnp.Struct(s).Bit(0)
}

func (s ControlsdOut) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s ControlsdOut) VCruise() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s ControlsdOut) SetVCruise(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s ControlsdOut) ButtonCount() uint32 {
	return capnp.Struct(s).Uint32(8)
}

func (s ControlsdOut) SetButtonCount(v uint32) {
	capnp.Struct(s).SetUint32(8, v)
}

func (s ControlsdOut) LongPressed() bool {
	return capnp.Struct(s).Bit(1)
}

func (s ControlsdOut) SetLongPressed(v bool) {
	capnp.Struct(s).SetBit(1, v)
}

func (s ControlsdOut) DesiredCurvature() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s ControlsdOut) SetDesiredCurvature(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s ControlsdOut) DesiredCurvatureRate() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s ControlsdOut) SetDesiredCurvatureRate(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s ControlsdOut) MaxCurvatureRate() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s ControlsdOut) SetMaxCurvatureRate(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s ControlsdOut) SteerMax() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s ControlsdOut) SetSteerMax(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s ControlsdOut) PlanValid() bool {
	return capnp.Struct(s).Bit(2)
}

func (s ControlsdOut) SetPlanValid(v bool) {
	capnp.Struct(s).SetBit(2, v)
}

type Event capnp.Struct
type Event_Which uint16

const (
	Event_Which_carState     Event_Which = 0
	Event_Which_lateralPlan  Event_Which = 1
	Event_Which_controlsdIn  Event_Which = 2
	Event_Which_controlsdOut Event_Which = 3
)

func (w Event_Which) String() string {
	switch w {
	case Event_Which_carState:
		return "carState"
	case Event_Which_lateralPlan:
		return "lateralPlan"
	case Event_Which_controlsdIn:
		return "controlsdIn"
	case Event_Which_controlsdOut:
		return "controlsdOut"
	}
	return "Event_Which(" + strconv.FormatUint(uint64(w), 10) + ")"
}

func NewEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 1})
	return Event(st), err
}

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 1})
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s Event) Which() Event_Which {
	return Event_Which(capnp.Struct(s).Uint16(10))
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s Event) member(which Event_Which) (capnp.Ptr, error) {
	if s.Which() != which {
		return capnp.Ptr{}, errWrongMember{want: which, got: s.Which()}
	}
	return capnp.Struct(s).Ptr(0)
}

func (s Event) setMember(which Event_Which, p capnp.Ptr) error {
	capnp.Struct(s).SetUint16(10, uint16(which))
	return capnp.Struct(s).SetPtr(0, p)
}

func (s Event) CarState() (ControlsdCarState, error) {
	p, err := s.member(Event_Which_carState)
	return ControlsdCarState(p.Struct()), err
}

func (s Event) NewCarState() (ControlsdCarState, error) {
	ss, err := NewControlsdCarState(capnp.Struct(s).Segment())
	if err != nil {
		return ControlsdCarState{}, err
	}
	return ss, s.setMember(Event_Which_carState, capnp.Struct(ss).ToPtr())
}

func (s Event) LateralPlan() (LateralPlan, error) {
	p, err := s.member(Event_Which_lateralPlan)
	return LateralPlan(p.Struct()), err
}

func (s Event) NewLateralPlan() (LateralPlan, error) {
	ss, err := NewLateralPlan(capnp.Struct(s).Segment())
	if err != nil {
		return LateralPlan{}, err
	}
	return ss, s.setMember(Event_Which_lateralPlan, capnp.Struct(ss).ToPtr())
}

func (s Event) ControlsdIn() (ControlsdIn, error) {
	p, err := s.member(Event_Which_controlsdIn)
	return ControlsdIn(p.Struct()), err
}

func (s Event) NewControlsdIn() (ControlsdIn, error) {
	ss, err := NewControlsdIn(capnp.Struct(s).Segment())
	if err != nil {
		return ControlsdIn{}, err
	}
	return ss, s.setMember(Event_Which_controlsdIn, capnp.Struct(ss).ToPtr())
}

func (s Event) ControlsdOut() (ControlsdOut, error) {
	p, err := s.member(Event_Which_controlsdOut)
	return ControlsdOut(p.Struct()), err
}

func (s Event) NewControlsdOut() (ControlsdOut, error) {
	ss, err := NewControlsdOut(capnp.Struct(s).Segment())
	if err != nil {
		return ControlsdOut{}, err
	}
	return ss, s.setMember(Event_Which_controlsdOut, capnp.Struct(ss).ToPtr())
}

type errWrongMember struct {
	want, got Event_Which
}

func (e errWrongMember) Error() string {
	return "event is " + e.got.String() + ", not " + e.want.String()
}
