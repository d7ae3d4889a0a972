package protocol

import "errors"

const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10

	// MessagePayloadMax is the largest payload a single frame carries
	MessagePayloadMax = MessageLengthMax - MessageLengthMin
)

// ErrFrameTooLarge is returned when a message does not fit in one frame
var ErrFrameTooLarge = errors.New("message exceeds frame size")

// Transport is the firmware side of the report stream. It only sends:
// every frame gets the next sequence number so the host can spot drops.
type Transport struct {
	output        OutputBuffer
	nextSequence  uint8
	flushCallback func() // Called after every complete frame
}

// NewTransport creates a new Transport writing frames into output
func NewTransport(output OutputBuffer) *Transport {
	return &Transport{
		output:       output,
		nextSequence: MessageDest,
	}
}

// EncodeFrame encodes and sends a frame with the given data. The frame is
// rolled back and ErrFrameTooLarge returned if it would exceed
// MessageLengthMax.
func (t *Transport) EncodeFrame(frameData func(output OutputBuffer)) error {
	cursor := t.output.CurPosition()

	// Header: length placeholder and sequence
	seq := t.nextSequence
	t.output.Output([]byte{0, seq})

	frameData(t.output)

	changed := len(t.output.DataSince(cursor))
	if changed+MessageTrailerSize > MessageLengthMax {
		t.rewind(cursor)
		return ErrFrameTooLarge
	}
	t.output.Update(cursor, uint8(changed+MessageTrailerSize))

	crc := CRC16(t.output.DataSince(cursor))
	t.output.Output([]byte{
		uint8((crc & 0xFF00) >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})

	t.nextSequence = ((seq + 1) & MessageSeqMask) | MessageDest
	if t.flushCallback != nil {
		t.flushCallback()
	}
	return nil
}

// SendMessage sends one message with arguments
func (t *Transport) SendMessage(msgID uint16, args func(output OutputBuffer)) error {
	return t.EncodeFrame(func(output OutputBuffer) {
		EncodeVLQUint(output, uint32(msgID))
		if args != nil {
			args(output)
		}
	})
}

// Reset restarts the sequence numbering
func (t *Transport) Reset() {
	t.nextSequence = MessageDest
}

// SetFlushCallback sets a callback that drains the output buffer after
// each frame
func (t *Transport) SetFlushCallback(callback func()) {
	t.flushCallback = callback
}

func (t *Transport) rewind(pos int) {
	if r, ok := t.output.(interface{ Truncate(pos int) }); ok {
		r.Truncate(pos)
	}
}
