package config

import (
	"encoding/json"
	"fmt"
	"os"

	"avradc/core"
	"avradc/host/serial"
)

// MonitorConfig describes how the host reaches the firmware and how readings
// are scaled.
type MonitorConfig struct {
	Device             string `json:"device"`
	Baud               int    `json:"baud"`
	ReadTimeoutMs      int    `json:"read_timeout_ms"`
	ReferenceMilliVolt uint32 `json:"reference_mv"`
	Verbose            bool   `json:"verbose"`
}

// LoadConfig parses a JSON configuration string and returns a MonitorConfig
func LoadConfig(jsonData []byte) (*MonitorConfig, error) {
	var config MonitorConfig

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&config)

	return &config, nil
}

// LoadFile reads and parses a JSON configuration file
func LoadFile(path string) (*MonitorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *MonitorConfig {
	var config MonitorConfig
	applyDefaults(&config)
	return &config
}

// Serial returns the serial port settings
func (c *MonitorConfig) Serial() *serial.Config {
	cfg := serial.DefaultConfig(c.Device)
	cfg.Baud = c.Baud
	cfg.ReadTimeout = c.ReadTimeoutMs
	return cfg
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *MonitorConfig) {
	if config.Device == "" {
		config.Device = "/dev/ttyUSB0"
	}
	if config.Baud == 0 {
		config.Baud = serial.DefaultBaud
	}
	if config.ReferenceMilliVolt == 0 {
		config.ReferenceMilliVolt = core.DefaultReferenceMilliVolt
	}
}
