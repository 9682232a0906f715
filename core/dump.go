package core

// Dump writes the raw ADCSRA and ADMUX values followed by one reading of
// each channel 0..7. Every channel line costs a blocking conversion.
func Dump(w DebugWriter, c *Converter) {
	if w == nil {
		return
	}

	adcsra, admux := c.Registers()
	w("ADCSRA: " + utoa(uint32(adcsra)))
	w("ADMUX: " + utoa(uint32(admux)))

	for ch := uint8(0); ch < NumChannels; ch++ {
		label := "ADC" + utoa(uint32(ch)) + " = "
		v, err := c.ReadOnce(ch)
		if err != nil {
			w(label + err.Error())
			continue
		}
		w(label + utoa(uint32(v)))
	}
}

// DumpOversampled writes one averaged reading of ch as
// "ADC<ch> avg<samples> = <value>", or the error text when the read fails.
func DumpOversampled(w DebugWriter, c *Converter, ch, samples uint8) {
	if w == nil {
		return
	}

	label := "ADC" + utoa(uint32(ch&ChannelMask)) + " avg" + utoa(uint32(samples)) + " = "
	v, err := c.ReadOversampled(ch, samples)
	if err != nil {
		w(label + err.Error())
		return
	}
	w(label + utoa(uint32(v)))
}
