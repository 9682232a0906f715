package core

// Register8 is an 8-bit memory-mapped register.
// TinyGo's *volatile.Register8 satisfies it; tests use core/sim.
type Register8 interface {
	Get() uint8
	Set(value uint8)
}

// Registers is the handle to one ADC peripheral. All register access by the
// converter goes through it.
type Registers struct {
	ADCSRA Register8 // control and status register A
	ADMUX  Register8 // multiplexer selection
	ADCL   Register8 // result low byte, read first
	ADCH   Register8 // result high byte
}

// ADCSRA bits
const (
	ADPS0 = 1 << 0
	ADPS1 = 1 << 1
	ADPS2 = 1 << 2
	ADIE  = 1 << 3
	ADIF  = 1 << 4
	ADATE = 1 << 5
	ADSC  = 1 << 6
	ADEN  = 1 << 7
)

// ADMUX bits
const (
	MUX0  = 1 << 0
	MUX1  = 1 << 1
	MUX2  = 1 << 2
	MUX3  = 1 << 3
	MUX4  = 1 << 4
	ADLAR = 1 << 5
	REFS0 = 1 << 6
	REFS1 = 1 << 7
)

const (
	// ChannelMask selects the channel field of ADMUX (MUX2..MUX0).
	ChannelMask = MUX2 | MUX1 | MUX0

	// PrescalerMask selects the clock prescaler field of ADCSRA.
	PrescalerMask = ADPS2 | ADPS1 | ADPS0

	// ReferenceMask selects the voltage reference field of ADMUX.
	ReferenceMask = REFS1 | REFS0

	// NumChannels is the number of single-ended inputs reachable through
	// the channel field.
	NumChannels = 8

	// ADCMax is the largest 10-bit conversion result.
	ADCMax = 1023
)

func setBits(r Register8, bits uint8) {
	r.Set(r.Get() | bits)
}

func clearBits(r Register8, bits uint8) {
	r.Set(r.Get() &^ bits)
}

func hasBits(r Register8, bits uint8) bool {
	return r.Get()&bits != 0
}
