// Package monitor turns the firmware's text dump back into register and
// channel values.
package monitor

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gonuts/logger"

	"avradc/core"
)

// Snapshot is one complete dump: both control registers and one reading per
// channel.
type Snapshot struct {
	ADCSRA   uint8
	ADMUX    uint8
	Channels [core.NumChannels]uint16
	// Valid is false for channels the firmware reported an error for.
	Valid [core.NumChannels]bool
	// Errors holds the firmware's error text for invalid channels.
	Errors [core.NumChannels]string
}

// Enabled reports whether ADEN was set.
func (s Snapshot) Enabled() bool {
	return s.ADCSRA&core.ADEN != 0
}

// Prescaler returns the clock division factor selected by ADPS2..0.
func (s Snapshot) Prescaler() int {
	field := s.ADCSRA & core.PrescalerMask
	if field == 0 {
		return 2
	}
	return 1 << field
}

// Reference returns the REFS1..0 field.
func (s Snapshot) Reference() uint8 {
	return (s.ADMUX & core.ReferenceMask) >> 6
}

// Channel returns the channel field of ADMUX at dump time.
func (s Snapshot) Channel() uint8 {
	return s.ADMUX & core.ChannelMask
}

// MilliVolts scales the reading of ch against refMilliVolt.
func (s Snapshot) MilliVolts(ch uint8, refMilliVolt uint32) uint32 {
	cfg := core.Config{ReferenceMilliVolt: refMilliVolt}
	return cfg.MilliVolts(s.Channels[ch&core.ChannelMask])
}

// Reader scans a dump stream. Lines outside a dump are skipped.
type Reader struct {
	sc  *bufio.Scanner
	log *logger.Logger

	cur     Snapshot
	seen    [core.NumChannels]bool
	started bool
}

// NewReader returns a Reader over r. log may be nil.
func NewReader(r io.Reader, log *logger.Logger) *Reader {
	return &Reader{
		sc:  bufio.NewScanner(r),
		log: log,
	}
}

// Next returns the next complete snapshot. A dump missing any channel line
// is discarded. It returns io.EOF when the stream ends, discarding a
// partial dump.
func (r *Reader) Next() (Snapshot, error) {
	for r.sc.Scan() {
		line := strings.TrimRight(r.sc.Text(), "\r")
		if snap, ok := r.feed(line); ok {
			return snap, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{}, io.EOF
}

func (r *Reader) feed(line string) (Snapshot, bool) {
	switch {
	case strings.HasPrefix(line, "ADCSRA: "):
		v, err := parseRegister(line[len("ADCSRA: "):])
		if err != nil {
			r.skip(line)
			r.started = false
			return Snapshot{}, false
		}
		r.cur = Snapshot{ADCSRA: v}
		r.seen = [core.NumChannels]bool{}
		r.started = true

	case strings.HasPrefix(line, "ADMUX: "):
		if !r.started {
			r.skip(line)
			return Snapshot{}, false
		}
		v, err := parseRegister(line[len("ADMUX: "):])
		if err != nil {
			r.skip(line)
			r.started = false
			return Snapshot{}, false
		}
		r.cur.ADMUX = v

	case strings.HasPrefix(line, "ADC"):
		label, value, ok := strings.Cut(line, " = ")
		if !ok || !r.started {
			r.skip(line)
			return Snapshot{}, false
		}
		ch, err := strconv.ParseUint(label[len("ADC"):], 10, 8)
		if err != nil || ch >= core.NumChannels {
			r.skip(line)
			return Snapshot{}, false
		}

		r.seen[ch] = true
		if v, err := strconv.ParseUint(value, 10, 16); err == nil && v <= core.ADCMax {
			r.cur.Channels[ch] = uint16(v)
			r.cur.Valid[ch] = true
		} else {
			r.cur.Errors[ch] = value
		}

		if ch == core.NumChannels-1 {
			r.started = false
			if !r.complete() {
				return Snapshot{}, false
			}
			return r.cur, true
		}

	default:
		r.skip(line)
	}
	return Snapshot{}, false
}

// complete reports whether every channel line of the current dump arrived.
// Dumps with lost lines are dropped.
func (r *Reader) complete() bool {
	for ch, ok := range r.seen {
		if !ok {
			if r.log != nil {
				r.log.Debugf("dropping dump without ADC%d line\n", ch)
			}
			return false
		}
	}
	return true
}

func (r *Reader) skip(line string) {
	if r.log != nil && line != "" {
		r.log.Debugf("skipping line %q\n", line)
	}
}

func parseRegister(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	return uint8(v), err
}
