//go:build avr

package main

import (
	"device/avr"

	"avradc/core"
)

// avrRegisters binds the converter to the on-chip ADC of megaAVR parts with
// eight single-ended channels (ATmega164/324/644/1284, ATmega2560 low bank).
func avrRegisters() core.Registers {
	return core.Registers{
		ADCSRA: avr.ADCSRA,
		ADMUX:  avr.ADMUX,
		ADCL:   avr.ADCL,
		ADCH:   avr.ADCH,
	}
}
