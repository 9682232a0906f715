// Package sim is an in-memory megaAVR ADC used to run the converter
// without hardware.
package sim

import "avradc/core"

// Peripheral simulates the ADCSRA/ADMUX/ADCL/ADCH register block.
//
// A conversion starts when ADSC is written as one. The channel is latched
// from ADMUX at that moment and Source supplies the value. ADSC stays set for
// BusyPolls reads of ADCSRA, or forever when Stuck is set.
type Peripheral struct {
	// Source returns the analog value seen on a channel. Nil reads zero.
	Source func(ch uint8) uint16

	BusyPolls int
	Stuck     bool

	// MuxWrites records every value written to ADMUX.
	MuxWrites []uint8
	// Conversions records the channel of every started conversion.
	Conversions []uint8

	adcsra, admux uint8
	adcl, adch    uint8

	converting bool
	remaining  int
	latched    uint16
}

// New returns a peripheral with all registers zero, as after reset.
func New(source func(ch uint8) uint16) *Peripheral {
	return &Peripheral{Source: source}
}

// Preset loads register values without recording writes.
func (p *Peripheral) Preset(adcsra, admux uint8) {
	p.adcsra = adcsra
	p.admux = admux
}

// ADCSRA returns the raw control register value without advancing a
// conversion in progress.
func (p *Peripheral) ADCSRA() uint8 { return p.adcsra }

// ADMUX returns the raw multiplexer register value.
func (p *Peripheral) ADMUX() uint8 { return p.admux }

// Registers returns the register handle to hand to core.New.
func (p *Peripheral) Registers() core.Registers {
	return core.Registers{
		ADCSRA: register{get: p.getADCSRA, set: p.setADCSRA},
		ADMUX:  register{get: p.ADMUX, set: p.setADMUX},
		ADCL:   register{get: func() uint8 { return p.adcl }, set: func(uint8) {}},
		ADCH:   register{get: func() uint8 { return p.adch }, set: func(uint8) {}},
	}
}

// Channels returns a Source that reads values[ch], zero past the end.
func Channels(values ...uint16) func(ch uint8) uint16 {
	return func(ch uint8) uint16 {
		if int(ch) < len(values) {
			return values[ch]
		}
		return 0
	}
}

// Sequence returns a Source that yields values in order regardless of the
// channel, repeating the last one once exhausted.
func Sequence(values ...uint16) func(ch uint8) uint16 {
	i := 0
	return func(uint8) uint16 {
		if len(values) == 0 {
			return 0
		}
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func (p *Peripheral) setADMUX(v uint8) {
	p.MuxWrites = append(p.MuxWrites, v)
	p.admux = v
}

func (p *Peripheral) setADCSRA(v uint8) {
	start := v&core.ADSC != 0 && !p.converting
	p.adcsra = v
	if p.converting {
		// ADSC cannot be cleared by software while converting
		p.adcsra |= core.ADSC
	}
	if !start {
		return
	}

	ch := p.admux & core.ChannelMask
	p.Conversions = append(p.Conversions, ch)
	var value uint16
	if p.Source != nil {
		value = p.Source(ch)
	}
	p.latched = value & core.ADCMax
	p.converting = true
	p.remaining = p.BusyPolls
	if p.remaining == 0 && !p.Stuck {
		p.complete()
	}
}

func (p *Peripheral) getADCSRA() uint8 {
	if p.converting && !p.Stuck {
		if p.remaining > 0 {
			p.remaining--
		} else {
			p.complete()
		}
	}
	return p.adcsra
}

func (p *Peripheral) complete() {
	p.converting = false
	p.adcsra &^= core.ADSC
	p.adcl = uint8(p.latched)
	p.adch = uint8(p.latched >> 8)
}

type register struct {
	get func() uint8
	set func(uint8)
}

func (r register) Get() uint8      { return r.get() }
func (r register) Set(value uint8) { r.set(value) }
