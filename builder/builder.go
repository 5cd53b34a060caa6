// Package builder walks a score and produces one ElementInterval for every
// note, chord and rest in it.
package builder

import (
	"fmt"

	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/span"
)

// FromScore returns spans in part, measure, voice order. Offsets are
// absolute; parent bounds are those of the enclosing measure.
func FromScore(s *score.Score) ([]*span.ElementInterval, error) {
	var res []*span.ElementInterval
	for _, p := range s.Parts() {
		spans, err := FromPart(p, s)
		if err != nil {
			return nil, err
		}
		res = append(res, spans...)
	}
	return res, nil
}

// FromPart builds the spans of a single part. Ancestors above the part,
// innermost first, are appended to every parentage.
func FromPart(p *score.Part, above ...score.Ancestor) ([]*span.ElementInterval, error) {
	var res []*span.ElementInterval
	for _, m := range p.Measures() {
		chain := append([]score.Ancestor{m, p}, above...)
		spans, err := fromEvents(m, m.Events(), chain)
		if err != nil {
			return nil, err
		}
		res = append(res, spans...)

		for _, v := range m.Voices() {
			spans, err := fromEvents(m, v.Events(), append([]score.Ancestor{v}, chain...))
			if err != nil {
				return nil, err
			}
			res = append(res, spans...)
		}
	}
	return res, nil
}

func fromEvents(m *score.Measure, events []score.Event, chain []score.Ancestor) ([]*span.ElementInterval, error) {
	res := make([]*span.ElementInterval, 0, len(events))
	for _, e := range events {
		offset := m.Offset + e.Offset()
		s, err := span.NewElementInterval(e,
			span.WithOffset(offset),
			span.WithEndTime(offset+e.QuarterLength()),
			span.WithParentOffset(m.Offset),
			span.WithParentEndTime(m.Offset+m.Duration()),
			span.WithParentage(chain...),
		)
		if err != nil {
			return nil, fmt.Errorf("%s in %s: %w", e, m, err)
		}
		res = append(res, s)
	}
	return res, nil
}
