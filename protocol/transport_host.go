package protocol

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// ErrStopped is returned by ReceiveMessage after Close
var ErrStopped = errors.New("transport stopped")

// Message represents one parsed frame
type Message struct {
	Length   uint8
	Sequence uint8
	Payload  []byte // Frame data without header/trailer
	CRC      uint16
}

// Parser extracts frames from a byte stream, resynchronising on the 0x7E
// trailer after any corrupt or truncated frame.
type Parser struct {
	synchronized bool
	dropped      int
}

// NewParser returns a parser that assumes the stream starts on a frame
// boundary
func NewParser() *Parser {
	return &Parser{synchronized: true}
}

// Dropped returns the number of bytes discarded while resynchronising
func (p *Parser) Dropped() int {
	return p.dropped
}

// Parse consumes every complete frame in input and calls fn for each.
// Incomplete trailing data stays in input for the next call.
func (p *Parser) Parse(input InputBuffer, fn func(*Message)) {
	data := input.Data()

	for len(data) > 0 {
		if !p.synchronized {
			syncPos := -1
			for i, b := range data {
				if b == MessageValueSync {
					syncPos = i
					break
				}
			}

			if syncPos >= 0 {
				p.dropped += syncPos + 1
				data = data[syncPos+1:]
				p.synchronized = true
			} else {
				p.dropped += len(data)
				data = nil
			}
			continue
		}

		// Skip leading sync bytes
		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}

		if len(data) < MessageLengthMin {
			break
		}

		msgLen := int(data[MessagePositionLen])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			p.synchronized = false
			continue
		}

		seq := data[MessagePositionSeq]
		if seq&^MessageSeqMask != MessageDest {
			p.synchronized = false
			continue
		}

		// Wait for full message
		if len(data) < msgLen {
			break
		}

		if data[msgLen-MessageTrailerSync] != MessageValueSync {
			p.synchronized = false
			continue
		}

		frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
			uint16(data[msgLen-MessageTrailerCRC+1])
		if frameCRC != CRC16(data[:msgLen-MessageTrailerSize]) {
			p.synchronized = false
			continue
		}

		payload := make([]byte, msgLen-MessageHeaderSize-MessageTrailerSize)
		copy(payload, data[MessageHeaderSize:msgLen-MessageTrailerSize])
		msg := &Message{
			Length:   data[MessagePositionLen],
			Sequence: seq,
			Payload:  payload,
			CRC:      frameCRC,
		}
		data = data[msgLen:]
		fn(msg)
	}

	consumed := input.Available() - len(data)
	if consumed > 0 {
		input.Pop(consumed)
	}
}

// HostTransport reads the report stream from the firmware's UART
type HostTransport struct {
	port io.ReadCloser

	parser      *Parser
	inputBuffer *FifoBuffer
	readMutex   sync.Mutex

	// Sequence the next frame should carry; gaps count as lost frames
	expectedSeq uint32
	lost        uint32

	messageChan chan *Message
	errChan     chan error

	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// NewHostTransport starts reading port in the background
func NewHostTransport(port io.ReadCloser) *HostTransport {
	t := &HostTransport{
		port:        port,
		parser:      NewParser(),
		inputBuffer: NewFifoBuffer(512),
		expectedSeq: MessageDest,
		messageChan: make(chan *Message, 64),
		errChan:     make(chan error, 1),
		stopChan:    make(chan struct{}),
		doneChan:    make(chan struct{}),
	}

	go t.readLoop()

	return t
}

// ReceiveMessage waits for the next frame. It returns io.EOF once the port
// is exhausted and every buffered frame has been delivered.
func (t *HostTransport) ReceiveMessage(timeout time.Duration) (*Message, error) {
	select {
	case msg := <-t.messageChan:
		return msg, nil
	default:
	}

	select {
	case msg := <-t.messageChan:
		return msg, nil

	case err := <-t.errChan:
		// Frames parsed just before the error still win
		select {
		case msg := <-t.messageChan:
			t.errChan <- err
			return msg, nil
		default:
		}
		t.errChan <- err
		return nil, err

	case <-time.After(timeout):
		return nil, fmt.Errorf("no report within %v", timeout)

	case <-t.stopChan:
		return nil, ErrStopped
	}
}

// Lost returns the number of frames skipped according to sequence numbers
func (t *HostTransport) Lost() uint32 {
	return atomic.LoadUint32(&t.lost)
}

// readLoop continuously reads from the port and queues parsed frames
func (t *HostTransport) readLoop() {
	defer close(t.doneChan)

	buffer := make([]byte, 256)

	for {
		select {
		case <-t.stopChan:
			return
		default:
		}

		n, err := t.port.Read(buffer)
		if n > 0 {
			data := buffer[:n]
			for len(data) > 0 {
				w := t.inputBuffer.Write(data)
				data = data[w:]
				t.processMessages()
			}
		}
		if err != nil {
			t.errChan <- err
			return
		}
	}
}

// processMessages parses and dispatches frames from the input buffer
func (t *HostTransport) processMessages() {
	t.readMutex.Lock()
	defer t.readMutex.Unlock()

	t.parser.Parse(t.inputBuffer, func(msg *Message) {
		expected := uint8(t.expectedSeq)
		if msg.Sequence != expected {
			gap := (msg.Sequence - expected) & MessageSeqMask
			atomic.AddUint32(&t.lost, uint32(gap))
		}
		t.expectedSeq = uint32(((msg.Sequence + 1) & MessageSeqMask) | MessageDest)

		select {
		case t.messageChan <- msg:
		case <-t.stopChan:
		}
	})
}

// Close stops the transport and closes the port
func (t *HostTransport) Close() error {
	var err error
	t.stopOnce.Do(func() {
		close(t.stopChan)
		if t.port != nil {
			err = t.port.Close()
		}
		<-t.doneChan
	})
	return err
}
