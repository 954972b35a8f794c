package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/controlsd/cereal/custom"
	"pfeifer.dev/controlsd/settings"
	"pfeifer.dev/controlsd/utils"
)

type Reader[T any] func(custom.Event) (T, error)

type Subscriber[T any] struct {
	Sub    gomsgq.MsgqSubscriber
	reader Reader[T]
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	obj, err := Decode(data, s.reader)
	if err != nil {
		utils.Logwe(err, "could not decode message")
		return obj, false
	}
	return obj, true
}

// Drain passes every queued message to handle. Messages that fail to decode
// are logged and skipped. It returns the number of messages handled.
func (s *Subscriber[T]) Drain(handle func(T)) int {
	return drain(func() []byte { return s.Sub.Read() }, s.reader, handle)
}

func drain[T any](read func() []byte, reader Reader[T], handle func(T)) (handled int) {
	for {
		data := read()
		if len(data) == 0 {
			return handled
		}
		obj, err := Decode(data, reader)
		if err != nil {
			utils.Logwe(err, "dropping undecodable message")
			continue
		}
		handle(obj)
		handled++
	}
}

func (s *Subscriber[T]) Close() {
	err, err2 := s.Sub.Msgq.Close()
	utils.Loge(err, "could not close msgq")
	utils.Loge(err2, "could not close msgq")
}

// Decode unmarshals a serialized event and extracts the member read by reader.
func Decode[T any](data []byte, reader Reader[T]) (obj T, err error) {
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, errors.Wrap(err, "could not unmarshal message")
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	event, err := custom.ReadRootEvent(msg)
	if err != nil {
		return obj, errors.Wrap(err, "could not read root event")
	}

	return reader(event)
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) (subscriber Subscriber[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.GetSegmentSize(name))
	utils.Check(err, "could not init msgq "+name)
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	subscriber.Sub = sub
	subscriber.reader = reader
	return subscriber
}
