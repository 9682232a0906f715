package core_test

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"

	"avradc/core"
	"avradc/core/sim"
)

func TestSensorUpdate(t *testing.T) {
	p := sim.New(sim.Channels(0, 128, 256, 512, 768, 1023, 10, 20))
	c := core.New(p.Registers(), nil)
	s := core.NewSensor(c, 4)

	if err := s.Update(drivers.Voltage); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(p.Conversions) != 4*core.NumChannels {
		t.Errorf("performed %d conversions, want %d", len(p.Conversions), 4*core.NumChannels)
	}

	testCases := []struct {
		ch      uint8
		wantRaw uint16
		wantMV  uint32
	}{
		{0, 0, 0},
		{1, 128, 625},
		{3, 512, 2500},
		{5, 1023, 4995},
		{13, 1023, 4995},
	}
	for _, tc := range testCases {
		if got := s.Raw(tc.ch); got != tc.wantRaw {
			t.Errorf("Raw(%d) = %d, want %d", tc.ch, got, tc.wantRaw)
		}
		if got := s.MilliVolts(tc.ch); got != tc.wantMV {
			t.Errorf("MilliVolts(%d) = %d, want %d", tc.ch, got, tc.wantMV)
		}
	}
}

func TestSensorIgnoresOtherMeasurements(t *testing.T) {
	p := sim.New(sim.Channels(100))
	c := core.New(p.Registers(), nil)
	s := core.NewSensor(c, 4)

	if err := s.Update(drivers.Temperature | drivers.Humidity); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(p.Conversions) != 0 {
		t.Errorf("performed %d conversions, want none", len(p.Conversions))
	}
}

func TestSensorPropagatesErrors(t *testing.T) {
	p := sim.New(sim.Channels(100))
	c := core.New(p.Registers(), nil)

	if err := core.NewSensor(c, 0).Update(drivers.Voltage); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("err = %v, want %v", err, core.ErrInvalidArgument)
	}
}
