package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/controlsd/cereal/custom"
	"pfeifer.dev/controlsd/settings"
	"pfeifer.dev/controlsd/utils"
)

type MessageCreator[T any] func(custom.Event) (T, error)

type Publisher[T any] struct {
	Pub     gomsgq.MsgqPublisher
	msgq    gomsgq.Msgq
	creator MessageCreator[T]
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "could not marshal message")
	}
	p.Pub.Send(b)
	return nil
}

func (p *Publisher[T]) NewMessage(valid bool) (msg *capnp.Message, obj T) {
	msg, obj, err := NewEventMessage(valid, p.creator)
	if err != nil {
		panic(err)
	}
	return msg, obj
}

func (p *Publisher[T]) Close() {
	err, err2 := p.msgq.Close()
	utils.Loge(err, "could not close msgq")
	utils.Loge(err2, "could not close msgq")
}

// NewEventMessage allocates a root event stamped with the current monotonic
// time and lets creator pick the union member.
func NewEventMessage[T any](valid bool, creator MessageCreator[T]) (msg *capnp.Message, obj T, err error) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create message")
	}

	event, err := custom.NewRootEvent(seg)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create root event")
	}

	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)

	obj, err = creator(event)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create event member")
	}

	return msg, obj, nil
}

func NewPublisher[T any](name string, creator MessageCreator[T]) (publisher Publisher[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.GetSegmentSize(name))
	utils.Check(err, "could not init msgq "+name)
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	publisher.Pub = pub
	publisher.msgq = msgq
	publisher.creator = creator
	return publisher
}
