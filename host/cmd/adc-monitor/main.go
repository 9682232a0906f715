package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gonuts/logger"

	"avradc/host/config"
	"avradc/host/mcu"
	"avradc/host/monitor"
)

var (
	configPath = flag.String("config", "", "JSON config file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	count      = flag.Int("n", 0, "Stop after n snapshots (0 = run forever)")
	verbose    = flag.Bool("verbose", false, "Print register decode with every snapshot")
)

func main() {
	flag.Parse()

	msg := logger.New("adc-monitor")

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			msg.Errorf("%v\n", err)
			os.Exit(1)
		}
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}
	if *verbose {
		cfg.Verbose = true
	}

	m := mcu.NewMCU(msg)
	msg.Infof("connecting to %s at %d baud\n", cfg.Device, cfg.Baud)
	if err := m.ConnectWithConfig(cfg.Serial()); err != nil {
		msg.Errorf("failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	for n := 0; *count == 0 || n < *count; n++ {
		snap, err := m.Next()
		if errors.Is(err, io.EOF) {
			msg.Infof("device closed the stream\n")
			return
		}
		if err != nil {
			msg.Errorf("read failed: %v\n", err)
			os.Exit(1)
		}
		printSnapshot(snap, cfg)
	}
}

func printSnapshot(snap monitor.Snapshot, cfg *config.MonitorConfig) {
	if cfg.Verbose {
		fmt.Printf("ADCSRA=0x%02x enabled=%v prescaler=%d ADMUX=0x%02x refs=%d\n",
			snap.ADCSRA, snap.Enabled(), snap.Prescaler(), snap.ADMUX, snap.Reference())
	}
	for ch := uint8(0); ch < uint8(len(snap.Channels)); ch++ {
		if !snap.Valid[ch] {
			if snap.Errors[ch] == "" {
				fmt.Printf("  ADC%d = missing\n", ch)
			} else {
				fmt.Printf("  ADC%d = error: %s\n", ch, snap.Errors[ch])
			}
			continue
		}
		fmt.Printf("  ADC%d = %4d  %5d mV\n", ch, snap.Channels[ch],
			snap.MilliVolts(ch, cfg.ReferenceMilliVolt))
	}
	fmt.Println()
}
