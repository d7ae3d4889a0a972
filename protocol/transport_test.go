package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

func TestTransportFrame(t *testing.T) {
	out := NewScratchOutput()
	tr := NewTransport(out)

	if err := tr.SendMessage(MsgStatus, func(o OutputBuffer) {
		EncodeVLQUint(o, 0)
	}); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	frame := out.Result()
	if len(frame) != 7 {
		t.Fatalf("Expected 7 byte frame, got %d: %v", len(frame), frame)
	}
	if frame[0] != 7 || frame[1] != MessageDest {
		t.Errorf("Unexpected header: %v", frame[:2])
	}
	if frame[2] != MsgStatus || frame[3] != 0 {
		t.Errorf("Unexpected payload: %v", frame[2:4])
	}
	crc := CRC16(frame[:4])
	if frame[4] != byte(crc>>8) || frame[5] != byte(crc) {
		t.Errorf("Expected CRC 0x%04x, got 0x%02x%02x", crc, frame[4], frame[5])
	}
	if frame[6] != MessageValueSync {
		t.Errorf("Expected sync byte, got 0x%02x", frame[6])
	}
}

func TestTransportSequence(t *testing.T) {
	out := NewScratchOutput()
	tr := NewTransport(out)
	flushes := 0
	tr.SetFlushCallback(func() { flushes++ })

	var seqs []uint8
	for i := 0; i < 18; i++ {
		start := out.CurPosition()
		if err := tr.SendMessage(MsgRegister, nil); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
		seqs = append(seqs, out.Result()[start+MessagePositionSeq])
	}

	for i, seq := range seqs {
		want := uint8(MessageDest | (i & MessageSeqMask))
		if seq != want {
			t.Errorf("Frame %d: expected sequence 0x%02x, got 0x%02x", i, want, seq)
		}
	}
	if flushes != 18 {
		t.Errorf("Expected 18 flushes, got %d", flushes)
	}

	tr.Reset()
	start := out.CurPosition()
	_ = tr.SendMessage(MsgRegister, nil)
	if seq := out.Result()[start+MessagePositionSeq]; seq != MessageDest {
		t.Errorf("Expected sequence reset to 0x%02x, got 0x%02x", MessageDest, seq)
	}
}

func TestTransportFrameTooLarge(t *testing.T) {
	out := NewScratchOutput()
	tr := NewTransport(out)

	if err := tr.EncodeFrame(func(o OutputBuffer) {
		o.Output(make([]byte, MessagePayloadMax))
	}); err != nil {
		t.Fatalf("Full payload rejected: %v", err)
	}
	if len(out.Result()) != MessageLengthMax {
		t.Errorf("Expected %d byte frame, got %d", MessageLengthMax, len(out.Result()))
	}

	err := tr.EncodeFrame(func(o OutputBuffer) {
		o.Output(make([]byte, MessagePayloadMax+1))
	})
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Expected ErrFrameTooLarge, got %v", err)
	}
	if len(out.Result()) != MessageLengthMax {
		t.Errorf("Oversized frame not rolled back: %d bytes", len(out.Result()))
	}

	// The rejected frame does not consume a sequence number
	start := out.CurPosition()
	_ = tr.SendMessage(MsgRegister, nil)
	if seq := out.Result()[start+MessagePositionSeq]; seq != MessageDest+1 {
		t.Errorf("Expected sequence 0x11, got 0x%02x", seq)
	}
}

func encodeFrames(t *testing.T, n int) (*ScratchOutput, []int) {
	t.Helper()
	out := NewScratchOutput()
	tr := NewTransport(out)
	var starts []int
	for i := 0; i < n; i++ {
		starts = append(starts, out.CurPosition())
		if err := tr.SendMessage(MsgStatus, func(o OutputBuffer) {
			EncodeStatus(o, StatusReport{Code: uint32(i), Message: "frame"})
		}); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
	}
	return out, starts
}

func TestParser(t *testing.T) {
	out, _ := encodeFrames(t, 3)

	var got []*Message
	p := NewParser()
	p.Parse(NewSliceInputBuffer(out.Result()), func(m *Message) { got = append(got, m) })

	if len(got) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(got))
	}
	for i, m := range got {
		if m.Sequence != uint8(MessageDest+i) {
			t.Errorf("Message %d: sequence 0x%02x", i, m.Sequence)
		}
		rep, err := DecodeReport(m)
		if err != nil {
			t.Fatalf("DecodeReport failed: %v", err)
		}
		if rep.Status == nil || rep.Status.Code != uint32(i) || rep.Status.Message != "frame" {
			t.Errorf("Message %d: unexpected report %+v", i, rep.Status)
		}
	}
	if p.Dropped() != 0 {
		t.Errorf("Expected nothing dropped, got %d", p.Dropped())
	}
}

func TestParserResync(t *testing.T) {
	t.Run("garbage before frame", func(t *testing.T) {
		out, _ := encodeFrames(t, 1)
		data := append([]byte{0xFF, MessageValueSync}, out.Result()...)

		var got []*Message
		p := NewParser()
		p.Parse(NewSliceInputBuffer(data), func(m *Message) { got = append(got, m) })

		if len(got) != 1 {
			t.Fatalf("Expected 1 message, got %d", len(got))
		}
		if p.Dropped() != 2 {
			t.Errorf("Expected 2 dropped bytes, got %d", p.Dropped())
		}
	})

	t.Run("corrupt frame", func(t *testing.T) {
		out, starts := encodeFrames(t, 2)
		data := append([]byte(nil), out.Result()...)
		data[starts[0]+MessageHeaderSize+1] ^= 0x01

		var got []*Message
		p := NewParser()
		p.Parse(NewSliceInputBuffer(data), func(m *Message) { got = append(got, m) })

		if len(got) != 1 {
			t.Fatalf("Expected only the intact frame, got %d", len(got))
		}
		if got[0].Sequence != MessageDest+1 {
			t.Errorf("Expected second frame, got sequence 0x%02x", got[0].Sequence)
		}
	})

	t.Run("foreign sequence", func(t *testing.T) {
		out, _ := encodeFrames(t, 1)
		data := append([]byte(nil), out.Result()...)
		data[MessagePositionSeq] = 0x20

		var got []*Message
		p := NewParser()
		p.Parse(NewSliceInputBuffer(data), func(m *Message) { got = append(got, m) })
		if len(got) != 0 {
			t.Errorf("Expected frame without destination bit to be dropped, got %d", len(got))
		}
	})
}

func TestParserPartialFrame(t *testing.T) {
	out, _ := encodeFrames(t, 1)
	frame := out.Result()
	half := len(frame) / 2

	fifo := NewFifoBuffer(128)
	fifo.Write(frame[:half])

	var got []*Message
	p := NewParser()
	p.Parse(fifo, func(m *Message) { got = append(got, m) })
	if len(got) != 0 {
		t.Fatalf("Parsed an incomplete frame")
	}
	if fifo.Available() != half {
		t.Errorf("Expected %d buffered bytes, got %d", half, fifo.Available())
	}

	fifo.Write(frame[half:])
	p.Parse(fifo, func(m *Message) { got = append(got, m) })
	if len(got) != 1 {
		t.Errorf("Expected 1 message after completion, got %d", len(got))
	}
	if !fifo.IsEmpty() {
		t.Errorf("Expected buffer drained, %d bytes left", fifo.Available())
	}
}

func TestHostTransport(t *testing.T) {
	out := NewScratchOutput()
	tr := NewTransport(out)

	send := func(code uint32) {
		if err := tr.SendMessage(MsgStatus, func(o OutputBuffer) {
			EncodeStatus(o, StatusReport{Code: code})
		}); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
	}

	send(0)
	// Drop the second frame from the stream
	lost := out.CurPosition()
	send(1)
	out.Truncate(lost)
	send(2)

	host := NewHostTransport(io.NopCloser(bytes.NewReader(out.Result())))
	defer host.Close()

	var codes []uint32
	for {
		msg, err := host.ReceiveMessage(time.Second)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReceiveMessage failed: %v", err)
		}
		rep, err := DecodeReport(msg)
		if err != nil {
			t.Fatalf("DecodeReport failed: %v", err)
		}
		codes = append(codes, rep.Status.Code)
	}

	if len(codes) != 2 || codes[0] != 0 || codes[1] != 2 {
		t.Errorf("Expected codes [0 2], got %v", codes)
	}
	if host.Lost() != 1 {
		t.Errorf("Expected 1 lost frame, got %d", host.Lost())
	}
}

func TestHostTransportClose(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	host := NewHostTransport(r)
	if err := host.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := host.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}
}

func TestDecodeReport(t *testing.T) {
	out := NewScratchOutput()
	tr := NewTransport(out)
	reg := RegisterReport{Base: 0xE0042000, Offset: 0, Value: 0x20016495, Field: "IDCODE"}
	if err := tr.SendMessage(MsgRegister, func(o OutputBuffer) { EncodeRegister(o, reg) }); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	var msgs []*Message
	NewParser().Parse(NewSliceInputBuffer(out.Result()), func(m *Message) { msgs = append(msgs, m) })
	if len(msgs) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(msgs))
	}
	rep, err := DecodeReport(msgs[0])
	if err != nil {
		t.Fatalf("DecodeReport failed: %v", err)
	}
	if rep.ID != MsgRegister || rep.Register == nil || *rep.Register != reg {
		t.Errorf("Expected %+v, got %+v", reg, rep.Register)
	}

	testCases := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"empty", nil, ErrBufferTooSmall},
		{"unknown id", []byte{9}, ErrUnknownMessage},
		{"truncated register", []byte{MsgRegister, 5}, ErrBufferTooSmall},
		{"truncated status", []byte{MsgStatus, 0, 4, 'o'}, ErrBufferTooSmall},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeReport(&Message{Sequence: MessageDest, Payload: tc.payload})
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEncodeStatusTruncates(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	out := NewScratchOutput()
	tr := NewTransport(out)
	if err := tr.SendMessage(MsgStatus, func(o OutputBuffer) {
		EncodeStatus(o, StatusReport{Code: StatusConfigError, Message: string(long)})
	}); err != nil {
		t.Fatalf("Long status did not fit a frame: %v", err)
	}
	if len(out.Result()) != MessageLengthMax {
		t.Errorf("Expected a full frame, got %d bytes", len(out.Result()))
	}
}
