package core

// Config holds the converter settings that are not fixed by the hardware
// initialization sequence.
type Config struct {
	// ReferenceMilliVolt is the AVCC voltage, used to scale readings.
	ReferenceMilliVolt uint32

	// SpinLimit bounds the conversion-complete poll loop.
	// Zero waits forever.
	SpinLimit uint32
}

// DefaultReferenceMilliVolt is AVCC on a 5V board.
const DefaultReferenceMilliVolt = 5000

// applyDefaults fills in missing configuration values
func applyDefaults(cfg *Config) {
	if cfg.ReferenceMilliVolt == 0 {
		cfg.ReferenceMilliVolt = DefaultReferenceMilliVolt
	}
}

// MilliVolts scales a raw reading against the reference voltage.
func (cfg Config) MilliVolts(raw uint16) uint32 {
	return uint32(raw) * cfg.ReferenceMilliVolt / (ADCMax + 1)
}
