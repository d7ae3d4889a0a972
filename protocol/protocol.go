// Package protocol frames the report stream the signal generator firmware
// writes to its debug UART. A frame is
//
//	[len][seq][payload...][crc hi][crc lo][0x7E]
//
// and each payload is a VLQ message id followed by its arguments.
package protocol

// Version represents the report stream version
const Version = "0.1.0"

const (
	MessageMax     = 512  // Scratch buffer size, several frames
	MessageSeqMask = 0x0F // Sequence counter bits of the seq byte
)

// Message ids
const (
	MsgRegister = 1 // One register value: base, offset, value, field name
	MsgStatus   = 2 // Setup result: code, message
	MsgWaveform = 3 // Waveform parameters: sample rate, samples, levels, table
)

// Status codes carried by MsgStatus
const (
	StatusOK             = 0
	StatusConfigError    = 1
	StatusDeviceMismatch = 2
	StatusMissingTable   = 3
)
