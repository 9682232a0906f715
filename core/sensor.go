package core

import "tinygo.org/x/drivers"

// Sensor exposes all eight channels of a Converter through the
// tinygo.org/x/drivers Sensor interface. Update refreshes the cached
// readings; Raw and MilliVolts return the last values.
type Sensor struct {
	conv    *Converter
	samples uint8
	raw     [NumChannels]uint16
}

var _ drivers.Sensor = (*Sensor)(nil)

// NewSensor returns a Sensor that averages samples conversions per channel
// on every Update.
func NewSensor(c *Converter, samples uint8) *Sensor {
	return &Sensor{conv: c, samples: samples}
}

// Update reads every channel when which includes drivers.Voltage. Other
// measurements are not provided and are ignored.
func (s *Sensor) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}

	var raw [NumChannels]uint16
	for ch := uint8(0); ch < NumChannels; ch++ {
		v, err := s.conv.ReadOversampled(ch, s.samples)
		if err != nil {
			return err
		}
		raw[ch] = v
	}
	s.raw = raw
	return nil
}

// Raw returns the last averaged reading of ch (masked to 0..7).
func (s *Sensor) Raw(ch uint8) uint16 {
	return s.raw[ch&ChannelMask]
}

// MilliVolts returns the last reading of ch scaled to the reference voltage.
func (s *Sensor) MilliVolts(ch uint8) uint32 {
	return s.conv.cfg.MilliVolts(s.Raw(ch))
}
