// ADC (Analog to Digital Converter) support
// Single-shot and oversampled conversions on a megaAVR A/D converter
package core

import (
	"sync"
)

// Oversampling limits. Sixty 10-bit readings (60*1023 = 61380) still fit
// the 16-bit accumulator.
const (
	OversampleLimit = 64
	OversampleClamp = 60
)

// Converter drives one ADC peripheral.
type Converter struct {
	mu    sync.Mutex // the peripheral is not reentrant
	regs  Registers
	debug DebugWriter
	cfg   Config
}

// New configures the peripheral with the default Config and returns a ready
// converter. debug may be nil.
func New(regs Registers, debug DebugWriter) *Converter {
	return NewWithConfig(regs, debug, Config{})
}

// NewWithConfig enables the converter, selects a clock prescaler of 32 and
// AVCC as reference (external capacitor at AREF). Only those bits are
// touched.
func NewWithConfig(regs Registers, debug DebugWriter, cfg Config) *Converter {
	applyDefaults(&cfg)

	c := &Converter{
		regs:  regs,
		debug: debug,
		cfg:   cfg,
	}

	// Enable A/D converter
	setBits(regs.ADCSRA, ADEN)

	// Clock prescaler: division factor of 32
	setBits(regs.ADCSRA, ADPS0)
	clearBits(regs.ADCSRA, ADPS1)
	setBits(regs.ADCSRA, ADPS2)

	// Reference: AVCC with external capacitor at AREF
	setBits(regs.ADMUX, REFS0)
	clearBits(regs.ADMUX, REFS1)

	c.debugln("A/D constructor OK")
	return c
}

// Config returns the effective configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// Registers returns the raw ADCSRA and ADMUX values.
func (c *Converter) Registers() (adcsra, admux uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs.ADCSRA.Get(), c.regs.ADMUX.Get()
}

// ReadOnce takes one conversion on channel ch and returns the 10-bit result.
// Only the low three bits of ch are used. It blocks until the conversion
// completes; ErrHardwareTimeout is returned only when Config.SpinLimit is set.
func (c *Converter) ReadOnce(ch uint8) (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readOnce(ch)
}

func (c *Converter) readOnce(ch uint8) (uint16, error) {
	ch &= ChannelMask

	// Replace the channel field, leave MUX4..3, ADLAR and REFS alone
	mux := c.regs.ADMUX.Get()
	c.regs.ADMUX.Set(mux&^ChannelMask | ch)

	// ADSC reads back as one until the conversion is finished
	setBits(c.regs.ADCSRA, ADSC)
	done := WaitFor(func() bool {
		return !hasBits(c.regs.ADCSRA, ADSC)
	}, c.cfg.SpinLimit)
	if !done {
		return 0, ErrHardwareTimeout
	}

	// ADCL must be read first, it locks the result until ADCH is read
	lo := c.regs.ADCL.Get()
	hi := c.regs.ADCH.Get()
	return (uint16(hi)<<8 | uint16(lo)) & ADCMax, nil
}

// ReadOversampled averages samples conversions of channel ch.
// Sample counts of 64 and above are clamped to 60. Zero samples is rejected
// with ErrInvalidArgument.
func (c *Converter) ReadOversampled(ch uint8, samples uint8) (uint16, error) {
	if samples == 0 {
		return 0, ErrInvalidArgument
	}
	if samples >= OversampleLimit {
		samples = OversampleClamp
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var sum uint16
	for remaining := samples; remaining > 0; remaining-- {
		v, err := c.readOnce(ch)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum / uint16(samples), nil
}

func (c *Converter) debugln(msg string) {
	if c.debug != nil {
		c.debug(msg)
	}
}
