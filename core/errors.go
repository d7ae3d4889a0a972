package core

import "errors"

// Setup errors. None of them is retryable: they mean the firmware, its
// configuration or its register table is wrong for this board.
var (
	ErrUnknownChannel = errors.New("unknown DMA controller/channel pair")
	ErrInvalidConfig  = errors.New("invalid peripheral configuration")
	ErrDeviceMismatch = errors.New("register table built for different silicon")
	ErrMissingTable   = errors.New("register definitions missing")
)

// RegenerateHint names the step that produces the register table.
const RegenerateHint = "generate them for your cpu with: stmregs stm32wb55 <requirements> (writes stm32wb/registers_gen.go)"

// ConfigError reports a DMA channel that could not be resolved or
// configured.
type ConfigError struct {
	Controller Controller
	Channel    uint8
	Reason     string
	Err        error
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error() + ": DMA" + utoa(uint32(e.Controller)) + "_Channel" + utoa(uint32(e.Channel))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DeviceMismatchError reports a device id register that does not match
// the id embedded in the register table.
type DeviceMismatchError struct {
	Device   string
	Expected uint32
	Actual   uint32
}

func (e *DeviceMismatchError) Error() string {
	return ErrDeviceMismatch.Error() + ": table generated for " + e.Device +
		" (" + hexa(e.Expected) + "), running on " + hexa(e.Actual)
}

func (e *DeviceMismatchError) Unwrap() error {
	return ErrDeviceMismatch
}

// MissingTableError is returned when no register table was linked in.
type MissingTableError struct{}

func (e *MissingTableError) Error() string {
	return ErrMissingTable.Error() + ": " + RegenerateHint
}

func (e *MissingTableError) Unwrap() error {
	return ErrMissingTable
}

// InvalidError names the setting that was rejected
type InvalidError struct {
	What string
}

func (e *InvalidError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.What
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(what string) error {
	return &InvalidError{What: what}
}
