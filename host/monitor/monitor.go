// Package monitor captures the setup report a signal generator board
// prints on its UART and names each register against the register table.
package monitor

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"siggen/host/serial"
	"siggen/protocol"
	"siggen/regs"
)

// ErrNoStatus is returned when the stream ends before the board reports
// the outcome of its setup
var ErrNoStatus = errors.New("report ended without status")

// StatusError is a non-zero status reported by the board
type StatusError struct {
	Code    uint32
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("board reported %s (code %d): %s", StatusName(e.Code), e.Code, e.Message)
}

// StatusName returns a short name for a status code
func StatusName(code uint32) string {
	switch code {
	case protocol.StatusOK:
		return "ok"
	case protocol.StatusConfigError:
		return "config error"
	case protocol.StatusDeviceMismatch:
		return "device mismatch"
	case protocol.StatusMissingTable:
		return "missing table"
	default:
		return "unknown status"
	}
}

// Register is one reported register with its resolved instance name
type Register struct {
	protocol.RegisterReport
	Instance string
}

// Name returns INSTANCE.FIELD
func (r Register) Name() string {
	return r.Instance + "." + r.Field
}

// Capture is everything received for one setup run
type Capture struct {
	Registers []Register
	Waveform  *protocol.WaveformReport
	Status    *protocol.StatusReport
	Lost      uint32 // Frames skipped according to sequence numbers
}

// Err returns the board's status as an error, nil when setup succeeded
func (c *Capture) Err() error {
	if c.Status == nil {
		return ErrNoStatus
	}
	if c.Status.Code != protocol.StatusOK {
		return &StatusError{Code: c.Status.Code, Message: c.Status.Message}
	}
	return nil
}

// Monitor reads reports from a board
type Monitor struct {
	transport *protocol.HostTransport
	table     *regs.Table
	byBase    map[uint32][]regs.Peripheral
}

// New starts reading reports from port
func New(port io.ReadCloser, table *regs.Table) *Monitor {
	m := &Monitor{
		transport: protocol.NewHostTransport(port),
		table:     table,
		byBase:    make(map[uint32][]regs.Peripheral),
	}
	if !table.Empty() {
		for _, p := range table.Peripherals {
			m.byBase[p.Base] = append(m.byBase[p.Base], p)
		}
		for _, list := range m.byBase {
			sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
		}
	}
	return m
}

// Open connects to the board on cfg. The stream ends after idle empty
// reads so a capture finishes once the board goes quiet.
func Open(cfg *serial.Config, table *regs.Table, idle int) (*Monitor, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to flush %s: %w", cfg.Device, err)
	}
	return New(serial.EOFOnTimeout(port, idle), table), nil
}

// Close stops reading and closes the port
func (m *Monitor) Close() error {
	return m.transport.Close()
}

// Instance names the peripheral at base, preferring one whose block has
// field. Unknown bases are rendered in hex.
func (m *Monitor) Instance(base uint32, field string) string {
	list := m.byBase[base]
	for _, p := range list {
		if p.Block.Has(field) {
			return p.Name
		}
	}
	if len(list) > 0 {
		return list[0].Name
	}
	return fmt.Sprintf("0x%08x", base)
}

// Capture collects reports until the board sends its status or the
// stream ends. timeout bounds the wait for each frame.
func (m *Monitor) Capture(timeout time.Duration) (*Capture, error) {
	c := &Capture{}
	for {
		msg, err := m.transport.ReceiveMessage(timeout)
		if errors.Is(err, io.EOF) {
			c.Lost = m.transport.Lost()
			return c, c.Err()
		}
		if err != nil {
			c.Lost = m.transport.Lost()
			return c, err
		}

		rep, err := protocol.DecodeReport(msg)
		if err != nil {
			return c, fmt.Errorf("frame 0x%02x: %w", msg.Sequence, err)
		}

		switch {
		case rep.Register != nil:
			c.Registers = append(c.Registers, Register{
				RegisterReport: *rep.Register,
				Instance:       m.Instance(rep.Register.Base, rep.Register.Field),
			})
		case rep.Waveform != nil:
			c.Waveform = rep.Waveform
		case rep.Status != nil:
			c.Status = rep.Status
			c.Lost = m.transport.Lost()
			return c, c.Err()
		}
	}
}

// Print writes a human-readable dump of c
func Print(w io.Writer, c *Capture) {
	for _, r := range c.Registers {
		fmt.Fprintf(w, "  %-32s 0x%08x = 0x%08x\n", r.Name(), r.Addr(), r.Value)
	}
	if c.Waveform != nil {
		fmt.Fprintf(w, "  waveform: %d samples, %d levels, %d Hz sample rate\n",
			len(c.Waveform.Samples), c.Waveform.Levels, c.Waveform.SampleRate)
	}
	if c.Status != nil {
		fmt.Fprintf(w, "  status: %s", StatusName(c.Status.Code))
		if c.Status.Message != "" && c.Status.Message != "ok" {
			fmt.Fprintf(w, " (%s)", c.Status.Message)
		}
		fmt.Fprintln(w)
	}
	if c.Lost > 0 {
		fmt.Fprintf(w, "  warning: %d frames lost\n", c.Lost)
	}
}

// RegisterName names the register at addr as INSTANCE.FIELD using the
// smallest instance covering it. Addresses outside the table are rendered
// in hex.
func RegisterName(table *regs.Table, addr uint32) string {
	var best *regs.Peripheral
	var bestField string
	if !table.Empty() {
		for name := range table.Peripherals {
			p := table.Peripherals[name]
			if addr < p.Base || addr >= p.Base+p.Block.Size() {
				continue
			}
			field := ""
			for _, f := range p.Block.Fields() {
				if f.Offset == addr-p.Base {
					field = f.Name
					break
				}
			}
			if field == "" {
				continue
			}
			if best == nil || p.Block.Size() < best.Block.Size() ||
				(p.Block.Size() == best.Block.Size() && p.Name < best.Name) {
				best = &p
				bestField = field
			}
		}
	}
	if best == nil {
		return fmt.Sprintf("0x%08x", addr)
	}
	return best.Name + "." + bestField
}
