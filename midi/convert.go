package midi

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/scorespan/pitch"
	"github.com/jsphweid/scorespan/score"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	defaultNumerator   = 4
	defaultDenominator = 4
)

type heldNote struct {
	key   uint8
	start uint64
	end   uint64
}

// ToScore turns every track that plays notes into a part. Only the first
// time signature in the file is honoured (4/4 when there is none). Notes
// that start together and end together become a chord; a note that runs
// over a barline stays whole in the measure where it starts.
func ToScore(s *smf.SMF, title string) (*score.Score, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return nil, errors.Errorf("unsupported time format %v", s.TimeFormat)
	}
	ticksPerQuarter := float64(ticks)

	ts, err := findTimeSignature(s)
	if err != nil {
		return nil, err
	}

	type trackNotes struct {
		name  string
		notes []heldNote
	}
	var tracks []trackNotes
	var lastTick uint64
	for i, track := range s.Tracks {
		name, notes := readTrack(track)
		if len(notes) == 0 {
			continue
		}
		if name == "" {
			name = fmt.Sprintf("Track %d", i+1)
		}
		for _, n := range notes {
			if n.end > lastTick {
				lastTick = n.end
			}
		}
		tracks = append(tracks, trackNotes{name: name, notes: notes})
	}

	res := score.NewScore(title)
	bar := ts.BarDuration()
	total := float64(lastTick) / ticksPerQuarter
	numMeasures := int(math.Max(1, math.Ceil(total/bar)))

	for _, tr := range tracks {
		part := score.NewPart(tr.name)
		measures := make([]*score.Measure, numMeasures)
		for i := range measures {
			measures[i] = score.NewMeasure(i+1, ts)
			part.Append(measures[i])
		}
		for _, ev := range groupChords(tr.notes) {
			start := float64(ev.start) / ticksPerQuarter
			idx := int(start / bar)
			if idx >= numMeasures {
				idx = numMeasures - 1
			}
			m := measures[idx]
			ql := float64(ev.end-ev.start) / ticksPerQuarter
			m.Insert(ev.toEvent(start-m.Offset, ql))
		}
		res.AddPart(part)
	}
	return res, nil
}

func findTimeSignature(s *smf.SMF) (*score.TimeSignature, error) {
	for _, track := range s.Tracks {
		for _, ev := range track {
			var num, denom uint8
			if ev.Message.GetMetaMeter(&num, &denom) {
				return score.NewTimeSignature(int(num), int(denom))
			}
		}
	}
	return score.NewTimeSignature(defaultNumerator, defaultDenominator)
}

// readTrack pairs note ons with note offs. Notes still held at the end of
// the track stop there.
func readTrack(track smf.Track) (string, []heldNote) {
	var name string
	var notes []heldNote
	held := make(map[[2]uint8][]uint64)
	var absTicks uint64

	for _, event := range track {
		absTicks += uint64(event.Delta)
		var channel, key, velocity uint8
		var text string
		switch {
		case event.Message.GetMetaTrackName(&text):
			if name == "" {
				name = text
			}
		case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
			held[[2]uint8{channel, key}] = append(held[[2]uint8{channel, key}], absTicks)
		case event.Message.GetNoteOn(&channel, &key, &velocity),
			event.Message.GetNoteOff(&channel, &key, &velocity):
			id := [2]uint8{channel, key}
			starts := held[id]
			if len(starts) == 0 {
				continue
			}
			notes = append(notes, heldNote{key: key, start: starts[0], end: absTicks})
			held[id] = starts[1:]
		}
	}
	for id, starts := range held {
		for _, start := range starts {
			notes = append(notes, heldNote{key: id[1], start: start, end: absTicks})
		}
	}
	return name, notes
}

type chordEvent struct {
	start uint64
	end   uint64
	keys  []uint8
}

func (c chordEvent) toEvent(offset, quarterLength float64) score.Event {
	if len(c.keys) == 1 {
		return score.NewNote(pitch.FromMIDI(c.keys[0]), offset, quarterLength)
	}
	ps := make([]pitch.Pitch, 0, len(c.keys))
	for _, k := range c.keys {
		ps = append(ps, pitch.FromMIDI(k))
	}
	return score.NewChord(ps, offset, quarterLength)
}

// groupChords merges notes with identical start and end, ordered by start.
func groupChords(notes []heldNote) []chordEvent {
	byBounds := make(map[[2]uint64]*chordEvent)
	var res []*chordEvent
	for _, n := range notes {
		k := [2]uint64{n.start, n.end}
		c, ok := byBounds[k]
		if !ok {
			c = &chordEvent{start: n.start, end: n.end}
			byBounds[k] = c
			res = append(res, c)
		}
		c.keys = append(c.keys, n.key)
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].start != res[j].start {
			return res[i].start < res[j].start
		}
		return res[i].end < res[j].end
	})
	out := make([]chordEvent, 0, len(res))
	for _, c := range res {
		sort.Slice(c.keys, func(i, j int) bool { return c.keys[i] < c.keys[j] })
		out = append(out, *c)
	}
	return out
}
