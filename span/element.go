package span

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/scorespan/pitch"
	"github.com/jsphweid/scorespan/score"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// ElementInterval is a span anchored to an element in a score. It may be as
// long as the element, a slice of it, or longer when it has been merged
// with following spans of the same pitches.
//
// Every ElementInterval stands for its own occurrence, so two of them are
// only Equal when they are the same pointer.
type ElementInterval struct {
	bounds        Interval
	element       score.Element
	beatStrength  optional
	parentOffset  optional
	parentEndTime optional
	parentage     []score.Ancestor
}

// NewElementInterval anchors a span to element. Bounds default to
// (-Inf, +Inf). The parentage passed with WithParentage is copied.
func NewElementInterval(element score.Element, opts ...Option) (*ElementInterval, error) {
	f := collect(opts)
	if f.element != nil {
		element = f.element
	}
	return build(f, element, append([]score.Ancestor(nil), f.parentage...))
}

func build(f fields, element score.Element, parentage []score.Ancestor) (*ElementInterval, error) {
	offset, endTime := math.Inf(-1), math.Inf(1)
	if f.offset.set {
		offset = f.offset.v
	}
	if f.endTime.set {
		endTime = f.endTime.v
	}
	bounds, err := NewInterval(offset, endTime)
	if err != nil {
		return nil, err
	}
	if f.parentOffset.set && f.parentEndTime.set {
		if err := checkBounds("parentOffset", f.parentOffset.v, "parentEndTime", f.parentEndTime.v); err != nil {
			return nil, err
		}
	}
	return &ElementInterval{
		bounds:        bounds,
		element:       element,
		beatStrength:  f.beatStrength,
		parentOffset:  f.parentOffset,
		parentEndTime: f.parentEndTime,
		parentage:     parentage,
	}, nil
}

// with copies e onto new bounds that are already known to be valid.
func (e *ElementInterval) with(offset, endTime float64) *ElementInterval {
	c := *e
	c.bounds = Interval{offset: offset, endTime: endTime}
	return &c
}

func (e *ElementInterval) Offset() float64        { return e.bounds.offset }
func (e *ElementInterval) EndTime() float64       { return e.bounds.endTime }
func (e *ElementInterval) Kind() Kind             { return KindElement }
func (e *ElementInterval) Element() score.Element { return e.element }

// Interval drops the element binding.
func (e *ElementInterval) Interval() Interval {
	return e.bounds
}

func (e *ElementInterval) String() string {
	if e == nil {
		return "<ElementInterval nil>"
	}
	el := "<nil>"
	if e.element != nil {
		el = e.element.String()
	}
	return fmt.Sprintf("<ElementInterval %s %s %s>", formatFloat(e.Offset()), formatFloat(e.EndTime()), el)
}

func (e *ElementInterval) Equal(other Span) bool {
	o, ok := other.(*ElementInterval)
	return ok && o == e
}

func isNilElement(s Span) bool {
	e, ok := s.(*ElementInterval)
	return ok && e == nil
}

// New returns a copy of e with the given fields overridden. The parentage
// always carries over, and so does the beat strength of e, whether given or
// derived from its element.
func (e *ElementInterval) New(opts ...Option) (*ElementInterval, error) {
	f := collect(opts)
	if !f.offset.set {
		f.offset = some(e.Offset())
	}
	if !f.endTime.set {
		f.endTime = some(e.EndTime())
	}
	element := e.element
	if f.element != nil {
		element = f.element
	}
	if !f.beatStrength.set {
		strength, ok, err := e.BeatStrength()
		if err != nil {
			return nil, err
		}
		if ok {
			f.beatStrength = some(strength)
		}
	}
	if !f.parentOffset.set {
		f.parentOffset = e.parentOffset
	}
	if !f.parentEndTime.set {
		f.parentEndTime = e.parentEndTime
	}
	return build(f, element, e.parentage)
}

// CanMerge adds to the Interval rules that both spans sound the same
// pitches.
func (e *ElementInterval) CanMerge(other Span) (bool, string) {
	if ok, msg := checkMerge(e, other); !ok {
		return ok, msg
	}
	o := other.(*ElementInterval)
	if !slices.Equal(e.Pitches(), o.Pitches()) {
		return false, fmt.Sprintf("cannot merge %s with %s: different pitches", e, o)
	}
	return true, ""
}

// MergeWith joins two contiguous like-pitched spans. The earlier span keeps
// its element, beat strength and parentage. When both start together the
// fields of other win.
func (e *ElementInterval) MergeWith(other Span) (*ElementInterval, error) {
	if ok, msg := e.CanMerge(other); !ok {
		return nil, newIntervalError(msg)
	}
	o := other.(*ElementInterval)
	if e.Offset() < o.Offset() {
		return e.with(e.Offset(), o.EndTime()), nil
	}
	return o.with(o.Offset(), e.EndTime()), nil
}

// SplitAt cuts e in two at point. Both halves keep the element and the
// parentage. A point outside e returns e itself.
func (e *ElementInterval) SplitAt(point float64) []*ElementInterval {
	if !within(e, point) {
		return []*ElementInterval{e}
	}
	return []*ElementInterval{
		e.with(e.Offset(), point),
		e.with(point, e.EndTime()),
	}
}

func (e *ElementInterval) QuarterLength() float64 {
	return e.EndTime() - e.Offset()
}

// Pitches returns the element's pitches in ascending order, or nothing for
// unpitched elements.
func (e *ElementInterval) Pitches() []pitch.Pitch {
	p, ok := e.element.(score.Pitched)
	if !ok {
		return nil
	}
	res := append([]pitch.Pitch(nil), p.Pitches()...)
	sort.Slice(res, func(i, j int) bool {
		return res[i].Less(res[j])
	})
	return res
}

// BeatStrength returns the explicit beat strength if one was given,
// otherwise asks the element. ok is false when no value is available. An
// element outside any metrical context is reported as unavailable with a
// warning rather than an error.
func (e *ElementInterval) BeatStrength() (strength float64, ok bool, err error) {
	if e.beatStrength.set {
		return e.beatStrength.v, true, nil
	}
	m, isMetered := e.element.(score.Metered)
	if e.element == nil || !isMetered {
		return 0, false, nil
	}
	strength, err = m.BeatStrength()
	if errors.Is(err, score.ErrNoMetricContext) {
		log.Warn().Err(err).Stringer("element", e.element).Msg("could not get a beat strength")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return strength, true, nil
}

func (e *ElementInterval) MeasureNumber() (int, error) {
	if e.element == nil {
		return 0, fmt.Errorf("%s: %w", e, score.ErrNoMeasure)
	}
	return e.element.MeasureNumber()
}

func (e *ElementInterval) ParentOffset() (float64, bool) {
	return e.parentOffset.v, e.parentOffset.set
}

func (e *ElementInterval) ParentEndTime() (float64, bool) {
	return e.parentEndTime.v, e.parentEndTime.set
}

// Parentage is the chain of containers above the element, innermost first.
func (e *ElementInterval) Parentage() []score.Ancestor {
	return append([]score.Ancestor(nil), e.parentage...)
}

// GetParentageByClass returns the closest ancestor that belongs to any of
// classes, or nil. With no classes it looks for a part.
func (e *ElementInterval) GetParentageByClass(classes ...score.Class) score.Ancestor {
	if len(classes) == 0 {
		classes = []score.Class{score.ClassPart}
	}
	for _, a := range e.parentage {
		for _, c := range classes {
			if score.IsA(a, c) {
				return a
			}
		}
	}
	return nil
}

func (e *ElementInterval) Part() score.Ancestor {
	return e.GetParentageByClass(score.ClassPart)
}
