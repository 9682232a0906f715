package sim

import (
	"testing"

	"avradc/core"
)

func TestConversionBusyPolls(t *testing.T) {
	p := New(Channels(0, 0, 0x2AB))
	p.BusyPolls = 2
	regs := p.Registers()

	regs.ADMUX.Set(core.REFS0 | 2)
	regs.ADCSRA.Set(core.ADEN | core.ADSC)

	for i := 0; i < 2; i++ {
		if regs.ADCSRA.Get()&core.ADSC == 0 {
			t.Fatalf("ADSC cleared after %d polls, want 2 busy polls", i)
		}
	}
	if regs.ADCSRA.Get()&core.ADSC != 0 {
		t.Fatal("ADSC still set after busy polls")
	}
	if lo, hi := regs.ADCL.Get(), regs.ADCH.Get(); lo != 0xAB || hi != 0x02 {
		t.Errorf("result = %02x%02x, want 02ab", hi, lo)
	}
	if len(p.Conversions) != 1 || p.Conversions[0] != 2 {
		t.Errorf("Conversions = %v, want [2]", p.Conversions)
	}
}

func TestStuckNeverCompletes(t *testing.T) {
	p := New(Channels(1))
	p.Stuck = true
	regs := p.Registers()

	regs.ADCSRA.Set(core.ADSC)
	for i := 0; i < 100; i++ {
		if regs.ADCSRA.Get()&core.ADSC == 0 {
			t.Fatal("stuck peripheral completed a conversion")
		}
	}

	// Clearing ADSC by software has no effect while converting
	regs.ADCSRA.Set(0)
	if p.ADCSRA()&core.ADSC == 0 {
		t.Error("ADSC cleared by software write")
	}
}

func TestResultMaskedToTenBits(t *testing.T) {
	p := New(Channels(0xFFFF))
	regs := p.Registers()

	regs.ADCSRA.Set(core.ADSC)
	if hi := regs.ADCH.Get(); hi != 0x03 {
		t.Errorf("ADCH = %02x, want 03", hi)
	}
}

func TestSequence(t *testing.T) {
	src := Sequence(1, 2, 3)
	for _, want := range []uint16{1, 2, 3, 3} {
		if got := src(0); got != want {
			t.Errorf("Sequence() = %d, want %d", got, want)
		}
	}
	if got := Sequence()(0); got != 0 {
		t.Errorf("empty Sequence() = %d, want 0", got)
	}
}
