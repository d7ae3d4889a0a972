// Package serial opens the UART the signal generator reports on.
package serial

import (
	"io"
)

// Port is a connection to the board's report UART
type Port interface {
	io.ReadWriteCloser

	// Flush discards anything buffered in the driver
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate of the board's LPUART/USART console
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultBaud matches the console of the Nucleo-WB55 ST-LINK bridge
const DefaultBaud = 115200

// DefaultConfig returns the settings for the board's ST-LINK virtual port
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100,
	}
}

// EOFOnTimeout adapts a port whose reads return (0, nil) on timeout into
// a reader that reports io.EOF after idle consecutive empty reads. The
// monitor uses it to end a capture once the board goes quiet.
func EOFOnTimeout(p Port, idle int) io.ReadCloser {
	return &idleReader{port: p, idle: idle}
}

type idleReader struct {
	port  Port
	idle  int
	empty int
}

func (r *idleReader) Read(b []byte) (int, error) {
	n, err := r.port.Read(b)
	if n > 0 || err != nil {
		r.empty = 0
		return n, err
	}
	r.empty++
	if r.idle > 0 && r.empty >= r.idle {
		return 0, io.EOF
	}
	return 0, nil
}

func (r *idleReader) Close() error {
	return r.port.Close()
}
