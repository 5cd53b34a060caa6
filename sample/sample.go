// Package sample writes small standard midi files from note lists. It backs
// the midi and end to end tests.
package sample

import (
	"bytes"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const velocity = 100

// Note times are absolute ticks.
type Note struct {
	Key   uint8
	Start uint32
	End   uint32
}

type Track struct {
	Name  string
	Notes []Note
}

type timed struct {
	tick uint32
	off  bool
	key  uint8
}

// New builds a file with the given resolution. The meter is written to the
// first track only; a zero numerator leaves it out.
func New(ticksPerQuarter uint16, numerator, denominator uint8, tracks ...Track) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	for i, t := range tracks {
		var tr smf.Track
		if t.Name != "" {
			tr.Add(0, smf.MetaTrackSequenceName(t.Name))
		}
		if i == 0 && numerator > 0 {
			tr.Add(0, smf.MetaMeter(numerator, denominator))
		}

		events := make([]timed, 0, 2*len(t.Notes))
		for _, n := range t.Notes {
			events = append(events, timed{tick: n.Start, key: n.Key}, timed{tick: n.End, off: true, key: n.Key})
		}
		// note offs first so repeated keys do not overlap
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].tick != events[j].tick {
				return events[i].tick < events[j].tick
			}
			return events[i].off && !events[j].off
		})

		var last uint32
		for _, e := range events {
			msg := midi.NoteOn(0, e.key, velocity)
			if e.off {
				msg = midi.NoteOff(0, e.key)
			}
			tr.Add(e.tick-last, msg)
			last = e.tick
		}
		tr.Close(0)
		if err := res.Add(tr); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func Write(path string, s *smf.SMF) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
