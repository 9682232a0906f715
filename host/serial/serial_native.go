package serial

import (
	"errors"
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// uartPort is a Port backed by an OS serial device
type uartPort struct {
	*serial.Port
}

// Open opens cfg.Device with tarm/serial
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, errors.New("serial: nil config")
	}
	if cfg.Device == "" {
		return nil, errors.New("serial: no device given")
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s at %d baud: %w", cfg.Device, cfg.Baud, err)
	}
	return uartPort{p}, nil
}
