// Package spanset keeps ElementIntervals ordered by offset.
package spanset

import (
	"github.com/emirpasic/gods/v2/sets/treeset"
	"github.com/jsphweid/scorespan/span"
)

// Set orders spans by offset, then end time, then insertion. Spans are held
// by identity: two distinct spans with identical bounds are both kept.
//
// A Set is not safe for concurrent mutation.
type Set struct {
	seq   map[*span.ElementInterval]uint64
	next  uint64
	spans *treeset.Set[*span.ElementInterval]
}

func New(spans ...*span.ElementInterval) *Set {
	s := &Set{seq: make(map[*span.ElementInterval]uint64)}
	s.spans = treeset.NewWith[*span.ElementInterval](s.compare)
	s.Insert(spans...)
	return s
}

func (s *Set) compare(a, b *span.ElementInterval) int {
	switch {
	case a.Offset() < b.Offset():
		return -1
	case a.Offset() > b.Offset():
		return 1
	case a.EndTime() < b.EndTime():
		return -1
	case a.EndTime() > b.EndTime():
		return 1
	}
	sa, sb := s.seq[a], s.seq[b]
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

// Insert adds spans; nil spans and spans already present are skipped.
func (s *Set) Insert(spans ...*span.ElementInterval) {
	for _, sp := range spans {
		if sp == nil {
			continue
		}
		if _, ok := s.seq[sp]; ok {
			continue
		}
		s.next++
		s.seq[sp] = s.next
		s.spans.Add(sp)
	}
}

// Remove reports whether sp was in the set.
func (s *Set) Remove(sp *span.ElementInterval) bool {
	if _, ok := s.seq[sp]; !ok {
		return false
	}
	s.spans.Remove(sp)
	delete(s.seq, sp)
	return true
}

func (s *Set) Len() int {
	return s.spans.Size()
}

func (s *Set) All() []*span.ElementInterval {
	return s.spans.Values()
}

// StartingAt returns the spans whose offset is exactly offset.
func (s *Set) StartingAt(offset float64) []*span.ElementInterval {
	var res []*span.ElementInterval
	it := s.spans.Iterator()
	for it.Next() {
		sp := it.Value()
		if sp.Offset() > offset {
			break
		}
		if sp.Offset() == offset {
			res = append(res, sp)
		}
	}
	return res
}

// OverlappingAt returns the spans sounding at offset: those that start at
// or before it and end after it, plus zero-length spans sitting on it.
func (s *Set) OverlappingAt(offset float64) []*span.ElementInterval {
	var res []*span.ElementInterval
	it := s.spans.Iterator()
	for it.Next() {
		sp := it.Value()
		if sp.Offset() > offset {
			break
		}
		if sp.EndTime() > offset || sp.QuarterLength() == 0 && sp.Offset() == offset {
			res = append(res, sp)
		}
	}
	return res
}

// Bounds is the interval from the earliest offset to the latest end time.
// ok is false for an empty set.
func (s *Set) Bounds() (span.Interval, bool) {
	if s.spans.Empty() {
		return span.Interval{}, false
	}
	values := s.spans.Values()
	end := values[0].EndTime()
	for _, sp := range values[1:] {
		if sp.EndTime() > end {
			end = sp.EndTime()
		}
	}
	bounds, err := span.NewInterval(values[0].Offset(), end)
	if err != nil {
		return span.Interval{}, false
	}
	return bounds, true
}
