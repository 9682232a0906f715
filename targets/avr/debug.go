//go:build avr

package main

import (
	"machine"

	"avradc/core"
)

// InitDebugUART configures the default serial port for debug output
// Baud rate: 9600
func InitDebugUART() core.DebugWriter {
	uart := machine.Serial
	uart.Configure(machine.UARTConfig{BaudRate: 9600})

	return core.LineWriter(uart)
}
