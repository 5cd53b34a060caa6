package score

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

type Score struct {
	id    uuid.UUID
	Title string
	parts []*Part
}

func NewScore(title string) *Score {
	return &Score{id: uuid.New(), Title: title}
}

func (s *Score) ID() uuid.UUID    { return s.id }
func (s *Score) Classes() []Class { return []Class{ClassScore, ClassStream} }
func (s *Score) String() string   { return "<Score " + s.Title + ">" }
func (s *Score) AddPart(p *Part)  { s.parts = append(s.parts, p) }
func (s *Score) Parts() []*Part   { return append([]*Part(nil), s.parts...) }

// Duration is the end of the longest part.
func (s *Score) Duration() float64 {
	var d float64
	for _, p := range s.parts {
		if pd := p.Duration(); pd > d {
			d = pd
		}
	}
	return d
}

type Part struct {
	id       uuid.UUID
	Name     string
	measures []*Measure
}

func NewPart(name string) *Part {
	return &Part{id: uuid.New(), Name: name}
}

func (p *Part) ID() uuid.UUID        { return p.id }
func (p *Part) Classes() []Class     { return []Class{ClassPart, ClassStream} }
func (p *Part) String() string       { return "<Part " + p.Name + ">" }
func (p *Part) Measures() []*Measure { return append([]*Measure(nil), p.measures...) }

// Append places m directly after the last measure. A measure without a time
// signature takes the one in force before it.
func (p *Part) Append(m *Measure) {
	if n := len(p.measures); n > 0 {
		last := p.measures[n-1]
		m.Offset = last.Offset + last.Duration()
		if m.TimeSignature == nil {
			m.TimeSignature = last.TimeSignature
		}
	}
	p.measures = append(p.measures, m)
}

func (p *Part) Duration() float64 {
	n := len(p.measures)
	if n == 0 {
		return 0
	}
	last := p.measures[n-1]
	return last.Offset + last.Duration()
}

// Measure offsets are relative to the part; event offsets are relative to
// the measure.
type Measure struct {
	id            uuid.UUID
	Number        int
	Offset        float64
	TimeSignature *TimeSignature
	// PaddingLeft is the missing lead-in of a pickup measure.
	PaddingLeft float64
	events      []Event
	voices      []*Voice
}

func NewMeasure(number int, ts *TimeSignature) *Measure {
	return &Measure{id: uuid.New(), Number: number, TimeSignature: ts}
}

func (m *Measure) ID() uuid.UUID    { return m.id }
func (m *Measure) Classes() []Class { return []Class{ClassMeasure, ClassStream} }
func (m *Measure) measure() *Measure {
	return m
}

func (m *Measure) String() string {
	return fmt.Sprintf("<Measure %d offset=%s>", m.Number, strconv.FormatFloat(m.Offset, 'g', -1, 64))
}

func (m *Measure) Insert(events ...Event) {
	for _, e := range events {
		e.setSite(m)
		m.events = append(m.events, e)
	}
}

func (m *Measure) AddVoice(v *Voice) {
	v.site = m
	m.voices = append(m.voices, v)
}

func (m *Measure) Events() []Event  { return append([]Event(nil), m.events...) }
func (m *Measure) Voices() []*Voice { return append([]*Voice(nil), m.voices...) }

// Duration is the bar length when a time signature is known, otherwise the
// end of the last event.
func (m *Measure) Duration() float64 {
	if m.TimeSignature != nil {
		return m.TimeSignature.BarDuration() - m.PaddingLeft
	}
	var end float64
	for _, e := range m.events {
		end = max(end, e.Offset()+e.QuarterLength())
	}
	for _, v := range m.voices {
		for _, e := range v.events {
			end = max(end, e.Offset()+e.QuarterLength())
		}
	}
	return end
}

// Voice is a layer of events within one measure; it starts with the measure.
type Voice struct {
	id     uuid.UUID
	Name   string
	events []Event
	site   *Measure
}

func NewVoice(name string) *Voice {
	return &Voice{id: uuid.New(), Name: name}
}

func (v *Voice) ID() uuid.UUID     { return v.id }
func (v *Voice) Classes() []Class  { return []Class{ClassVoice, ClassStream} }
func (v *Voice) String() string    { return "<Voice " + v.Name + ">" }
func (v *Voice) measure() *Measure { return v.site }
func (v *Voice) Events() []Event   { return append([]Event(nil), v.events...) }

func (v *Voice) Insert(events ...Event) {
	for _, e := range events {
		e.setSite(v)
		v.events = append(v.events, e)
	}
}
