// Package serial opens the UART the ADC firmware prints its dumps on.
package serial

import (
	"io"
)

// Port is the host end of the firmware's debug UART. The firmware only
// writes text lines; Write exists so tests and tools can share one type.
type Port interface {
	io.ReadWriteCloser

	// Flush drops bytes received before the caller starts reading, so
	// parsing begins at a line boundary of a fresh dump.
	Flush() error
}

// Config selects the device node and line settings of the debug UART.
type Config struct {
	// Device node of the USB-serial adapter, "/dev/ttyUSB0" or "COM3"
	Device string

	// Baud must equal the rate set by InitDebugUART in the firmware
	Baud int

	// ReadTimeout in milliseconds; 0 blocks until the next line arrives
	ReadTimeout int
}

// DefaultBaud is the rate of the firmware's debug UART.
const DefaultBaud = 9600

// DefaultConfig returns settings matching the stock firmware on device.
// Dumps come once per second, so reads block rather than time out.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   DefaultBaud,
	}
}
