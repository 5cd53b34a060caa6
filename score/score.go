// Package score holds a minimal score graph: containers (score, part,
// measure, voice) and the events placed in them (notes, chords, rests).
//
// Spans only ever see the graph through the Element and Ancestor
// interfaces, which are read-only handles.
package score

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jsphweid/scorespan/pitch"
)

var (
	ErrNoMetricContext = errors.New("no time signature in context")
	ErrNoMeasure       = errors.New("element is not in a measure")
)

type Class string

const (
	ClassStream  Class = "Stream"
	ClassScore   Class = "Score"
	ClassPart    Class = "Part"
	ClassMeasure Class = "Measure"
	ClassVoice   Class = "Voice"
)

// Ancestor is a container somewhere above an element. Classes lists every
// class the container belongs to, most specific first.
type Ancestor interface {
	ID() uuid.UUID
	Classes() []Class
	String() string
}

// IsA reports whether a belongs to class c.
func IsA(a Ancestor, c Class) bool {
	if a == nil {
		return false
	}
	for _, ac := range a.Classes() {
		if ac == c {
			return true
		}
	}
	return false
}

type Element interface {
	ID() uuid.UUID
	String() string
	MeasureNumber() (int, error)
}

// Pitched is implemented by elements that sound one or more pitches.
type Pitched interface {
	Pitches() []pitch.Pitch
}

// Metered is implemented by elements that can report a beat strength. It
// fails with ErrNoMetricContext when no time signature applies.
type Metered interface {
	BeatStrength() (float64, error)
}
