package protocol

import (
	"errors"
	"fmt"
)

// ErrUnknownMessage is returned for payloads with an unexpected message id
var ErrUnknownMessage = errors.New("unknown message id")

// RegisterReport is the value of one register after setup
type RegisterReport struct {
	Base   uint32
	Offset uint32
	Value  uint32
	Field  string
}

// Addr returns the absolute register address
func (r RegisterReport) Addr() uint32 {
	return r.Base + r.Offset
}

// StatusReport is the outcome of the firmware's setup sequence
type StatusReport struct {
	Code    uint32
	Message string
}

// WaveformReport describes the table being streamed
type WaveformReport struct {
	SampleRate uint32
	Levels     uint32
	Samples    []byte
}

// statusMessageMax keeps a status frame within MessageLengthMax: id (1),
// code (1) and the string length prefix (1) share the payload with the text
const statusMessageMax = MessagePayloadMax - 3

// EncodeRegister writes the arguments of a MsgRegister message
func EncodeRegister(output OutputBuffer, r RegisterReport) {
	EncodeVLQUint(output, r.Base)
	EncodeVLQUint(output, r.Offset)
	EncodeVLQUint(output, r.Value)
	EncodeVLQString(output, r.Field)
}

// EncodeStatus writes the arguments of a MsgStatus message, truncating
// the text to fit one frame
func EncodeStatus(output OutputBuffer, s StatusReport) {
	msg := s.Message
	if len(msg) > statusMessageMax {
		msg = msg[:statusMessageMax]
	}
	EncodeVLQUint(output, s.Code)
	EncodeVLQString(output, msg)
}

// EncodeWaveform writes the arguments of a MsgWaveform message. Tables
// longer than a frame allows must be split by the caller.
func EncodeWaveform(output OutputBuffer, w WaveformReport) {
	EncodeVLQUint(output, w.SampleRate)
	EncodeVLQUint(output, w.Levels)
	EncodeVLQBytes(output, w.Samples)
}

// Report is one decoded message. Exactly one of the pointers is set.
type Report struct {
	ID       uint16
	Sequence uint8
	Register *RegisterReport
	Status   *StatusReport
	Waveform *WaveformReport
}

// DecodeReport parses the payload of a frame
func DecodeReport(msg *Message) (Report, error) {
	data := msg.Payload
	id, err := DecodeVLQUint(&data)
	if err != nil {
		return Report{}, fmt.Errorf("message id: %w", err)
	}
	rep := Report{ID: uint16(id), Sequence: msg.Sequence}

	switch id {
	case MsgRegister:
		var r RegisterReport
		if r.Base, err = DecodeVLQUint(&data); err != nil {
			return rep, fmt.Errorf("register base: %w", err)
		}
		if r.Offset, err = DecodeVLQUint(&data); err != nil {
			return rep, fmt.Errorf("register offset: %w", err)
		}
		if r.Value, err = DecodeVLQUint(&data); err != nil {
			return rep, fmt.Errorf("register value: %w", err)
		}
		if r.Field, err = DecodeVLQString(&data); err != nil {
			return rep, fmt.Errorf("register field: %w", err)
		}
		rep.Register = &r

	case MsgStatus:
		var s StatusReport
		if s.Code, err = DecodeVLQUint(&data); err != nil {
			return rep, fmt.Errorf("status code: %w", err)
		}
		if s.Message, err = DecodeVLQString(&data); err != nil {
			return rep, fmt.Errorf("status message: %w", err)
		}
		rep.Status = &s

	case MsgWaveform:
		var w WaveformReport
		if w.SampleRate, err = DecodeVLQUint(&data); err != nil {
			return rep, fmt.Errorf("sample rate: %w", err)
		}
		if w.Levels, err = DecodeVLQUint(&data); err != nil {
			return rep, fmt.Errorf("levels: %w", err)
		}
		samples, err := DecodeVLQBytes(&data)
		if err != nil {
			return rep, fmt.Errorf("samples: %w", err)
		}
		w.Samples = append([]byte(nil), samples...)
		rep.Waveform = &w

	default:
		return rep, fmt.Errorf("%w: %d", ErrUnknownMessage, id)
	}
	return rep, nil
}
