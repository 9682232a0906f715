package mcu

import (
	"fmt"

	"github.com/gonuts/logger"

	"avradc/host/monitor"
	"avradc/host/serial"
)

// MCU represents a connection to the ADC firmware's debug UART
type MCU struct {
	// Serial port
	port serial.Port

	// Dump parser over the port
	reader *monitor.Reader

	msg *logger.Logger

	// Connection state
	connected bool
}

// NewMCU creates a new MCU instance (not yet connected). msg may be nil.
func NewMCU(msg *logger.Logger) *MCU {
	return &MCU{
		msg: msg,
	}
}

// Connect connects to an MCU via serial port
func (m *MCU) Connect(device string) error {
	return m.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects to an MCU with a custom serial config
func (m *MCU) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	m.Attach(port)
	return nil
}

// Attach uses an already open port. Anything buffered before the call is
// discarded so the first snapshot starts on a fresh dump.
func (m *MCU) Attach(port serial.Port) {
	if err := port.Flush(); err != nil && m.msg != nil {
		m.msg.Errorf("flush failed: %v\n", err)
	}
	m.port = port
	m.reader = monitor.NewReader(port, m.msg)
	m.connected = true
}

// Connected reports whether a port is attached
func (m *MCU) Connected() bool {
	return m.connected
}

// Next blocks until the firmware prints a complete dump
func (m *MCU) Next() (monitor.Snapshot, error) {
	if !m.connected {
		return monitor.Snapshot{}, fmt.Errorf("not connected")
	}
	return m.reader.Next()
}

// Close closes the connection to the MCU
func (m *MCU) Close() error {
	if !m.connected {
		return nil
	}
	m.connected = false
	return m.port.Close()
}
