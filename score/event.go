package score

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/scorespan/pitch"
)

// Event is an element placed at Offset inside a measure or voice.
type Event interface {
	Element
	Offset() float64
	QuarterLength() float64
	setSite(s site)
}

// site is the container an event was inserted into.
type site interface {
	measure() *Measure
}

type event struct {
	id            uuid.UUID
	offset        float64
	quarterLength float64
	site          site
}

func newEvent(offset, quarterLength float64) event {
	return event{id: uuid.New(), offset: offset, quarterLength: quarterLength}
}

func (e *event) ID() uuid.UUID          { return e.id }
func (e *event) Offset() float64        { return e.offset }
func (e *event) QuarterLength() float64 { return e.quarterLength }
func (e *event) setSite(s site)         { e.site = s }

func (e *event) measure() *Measure {
	if e.site == nil {
		return nil
	}
	return e.site.measure()
}

func (e *event) MeasureNumber() (int, error) {
	m := e.measure()
	if m == nil {
		return 0, ErrNoMeasure
	}
	return m.Number, nil
}

func (e *event) BeatStrength() (float64, error) {
	m := e.measure()
	if m == nil || m.TimeSignature == nil {
		return 0, ErrNoMetricContext
	}
	return m.TimeSignature.BeatStrength(m.PaddingLeft + e.offset), nil
}

type Note struct {
	event
	Pitch pitch.Pitch
}

func NewNote(p pitch.Pitch, offset, quarterLength float64) *Note {
	return &Note{event: newEvent(offset, quarterLength), Pitch: p}
}

func (n *Note) Pitches() []pitch.Pitch {
	return []pitch.Pitch{n.Pitch}
}

func (n *Note) String() string {
	return "<Note " + n.Pitch.String() + ">"
}

type Chord struct {
	event
	pitches []pitch.Pitch
}

// NewChord keeps its own sorted copy of ps.
func NewChord(ps []pitch.Pitch, offset, quarterLength float64) *Chord {
	sorted := append([]pitch.Pitch(nil), ps...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	return &Chord{event: newEvent(offset, quarterLength), pitches: sorted}
}

func (c *Chord) Pitches() []pitch.Pitch {
	return append([]pitch.Pitch(nil), c.pitches...)
}

func (c *Chord) String() string {
	names := make([]string, 0, len(c.pitches))
	for _, p := range c.pitches {
		names = append(names, p.String())
	}
	return "<Chord " + strings.Join(names, " ") + ">"
}

type Rest struct {
	event
}

func NewRest(offset, quarterLength float64) *Rest {
	return &Rest{event: newEvent(offset, quarterLength)}
}

func (r *Rest) String() string {
	return "<Rest>"
}
