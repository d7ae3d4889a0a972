package core

import (
	"errors"

	"siggen/protocol"
	"siggen/regs"
)

// Reporter writes the outcome of setup to the report stream so the host
// monitor can show what was programmed.
type Reporter struct {
	transport *protocol.Transport
}

// NewReporter creates a reporter sending on transport
func NewReporter(transport *protocol.Transport) *Reporter {
	return &Reporter{transport: transport}
}

// Registers reports every accessible field of each view
func (r *Reporter) Registers(views ...regs.View) error {
	for _, v := range views {
		for _, snap := range v.Inspect() {
			rep := protocol.RegisterReport{
				Base:   v.Base(),
				Offset: snap.Offset,
				Value:  snap.Value,
				Field:  snap.Field,
			}
			err := r.transport.SendMessage(protocol.MsgRegister, func(out protocol.OutputBuffer) {
				protocol.EncodeRegister(out, rep)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Waveform reports the table being streamed and its sample rate
func (r *Reporter) Waveform(wave Waveform, sampleRate uint32, levels int) error {
	rep := protocol.WaveformReport{
		SampleRate: sampleRate,
		Levels:     uint32(levels),
		Samples:    wave,
	}
	return r.transport.SendMessage(protocol.MsgWaveform, func(out protocol.OutputBuffer) {
		protocol.EncodeWaveform(out, rep)
	})
}

// Status reports err, or success when err is nil
func (r *Reporter) Status(err error) error {
	rep := protocol.StatusReport{Code: StatusCode(err), Message: "ok"}
	if err != nil {
		rep.Message = err.Error()
	}
	return r.transport.SendMessage(protocol.MsgStatus, func(out protocol.OutputBuffer) {
		protocol.EncodeStatus(out, rep)
	})
}

// StatusCode classifies a setup error for the report stream
func StatusCode(err error) uint32 {
	switch {
	case err == nil:
		return protocol.StatusOK
	case errors.Is(err, ErrMissingTable):
		return protocol.StatusMissingTable
	case errors.Is(err, ErrDeviceMismatch):
		return protocol.StatusDeviceMismatch
	}
	return protocol.StatusConfigError
}
