package link

import (
	"fmt"
	"os"
	"path/filepath"

	"go.bug.st/serial"
)

// SerialPort is a Channel over a real serial adapter, typically an RS-485
// USB dongle wired to the sign.
type SerialPort struct {
	port serial.Port
}

// OpenSerial opens name (e.g. /dev/ttyUSB0) at the given baud rate, 8N1.
func OpenSerial(name string, baud int) (*SerialPort, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("link: open %s: %w", name, err)
	}
	lowerLatency(name)
	return &SerialPort{port: port}, nil
}

func (s *SerialPort) Write(p []byte) (int, error) { return s.port.Write(p) }

// Flush blocks until the OS has handed everything to the adapter.
func (s *SerialPort) Flush() error { return s.port.Drain() }

func (s *SerialPort) Close() error { return s.port.Close() }

// lowerLatency drops the FTDI latency timer to 1ms. The adapter default of
// 16ms batches transfers and shows up as visible frame jitter on the
// panel. Best effort: not every adapter exposes the knob.
func lowerLatency(name string) {
	p := filepath.Join("/sys/bus/usb-serial/devices", filepath.Base(name), "latency_timer")
	_ = os.WriteFile(p, []byte("1"), 0o644)
}
