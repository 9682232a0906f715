//go:build avr

package main

import (
	"time"

	"avradc/core"
)

const (
	dumpInterval = time.Second
	dumpSamples  = 16
)

func main() {
	debug := InitDebugUART()

	adc := core.New(avrRegisters(), debug)

	for {
		core.Dump(debug, adc)
		core.DumpOversampled(debug, adc, 0, dumpSamples)

		time.Sleep(dumpInterval)
	}
}
