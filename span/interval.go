// Package span implements immutable time spans over a score and the
// algebra used to merge and split them.
//
// Offsets are measured in quarter notes from the start of the score. A span
// is created once and never changes; New, MergeWith and SplitAt always hand
// back fresh values.
package span

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the concrete variant behind a Span. Only spans of the same kind
// can be merged.
type Kind int

const (
	KindInterval Kind = iota
	KindElement
)

func (k Kind) String() string {
	switch k {
	case KindInterval:
		return "Interval"
	case KindElement:
		return "ElementInterval"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

type Span interface {
	Offset() float64
	EndTime() float64
	Kind() Kind
	String() string
}

// Interval is a plain [offset, endTime] span. Intervals compare by value.
type Interval struct {
	offset  float64
	endTime float64
}

func NewInterval(offset, endTime float64) (Interval, error) {
	if err := checkBounds("offset", offset, "endTime", endTime); err != nil {
		return Interval{}, err
	}
	return Interval{offset: offset, endTime: endTime}, nil
}

// Unbounded spans all of time.
func Unbounded() Interval {
	return Interval{offset: math.Inf(-1), endTime: math.Inf(1)}
}

func checkBounds(startName string, start float64, endName string, end float64) error {
	if math.IsNaN(start) || math.IsNaN(end) {
		return newIntervalError(fmt.Sprintf("%s %s and %s %s must be numbers",
			startName, formatFloat(start), endName, formatFloat(end)))
	}
	if start > end {
		return newIntervalError(fmt.Sprintf("%s %s must not be after %s %s",
			startName, formatFloat(start), endName, formatFloat(end)))
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (i Interval) Offset() float64  { return i.offset }
func (i Interval) EndTime() float64 { return i.endTime }
func (i Interval) Kind() Kind       { return KindInterval }

func (i Interval) String() string {
	return fmt.Sprintf("<Interval %s %s>", formatFloat(i.offset), formatFloat(i.endTime))
}

// Equal reports whether other is an Interval with the same bounds.
func (i Interval) Equal(other Span) bool {
	o, ok := other.(Interval)
	return ok && o == i
}

// New returns a copy of i with the given bounds overridden. Options that
// do not concern bounds are ignored.
func (i Interval) New(opts ...Option) (Interval, error) {
	f := collect(opts)
	offset, endTime := i.offset, i.endTime
	if f.offset.set {
		offset = f.offset.v
	}
	if f.endTime.set {
		endTime = f.endTime.v
	}
	return NewInterval(offset, endTime)
}

// CanMerge reports whether i and other are the same kind of span and meet
// end to start. Overlapping spans are not mergeable. The message explains a
// false result and is empty otherwise.
func (i Interval) CanMerge(other Span) (bool, string) {
	return checkMerge(i, other)
}

// MergeWith joins two contiguous intervals. If i starts first the result is
// i stretched to other's end; otherwise it is other stretched to i's end.
func (i Interval) MergeWith(other Span) (Interval, error) {
	if ok, msg := i.CanMerge(other); !ok {
		return Interval{}, newIntervalError(msg)
	}
	o := other.(Interval)
	if i.offset < o.offset {
		return Interval{offset: i.offset, endTime: o.endTime}, nil
	}
	return Interval{offset: o.offset, endTime: i.endTime}, nil
}

// SplitAt cuts i in two at point. A point outside i leaves it whole.
func (i Interval) SplitAt(point float64) []Interval {
	if !within(i, point) {
		return []Interval{i}
	}
	return []Interval{
		{offset: i.offset, endTime: point},
		{offset: point, endTime: i.endTime},
	}
}

func within(s Span, point float64) bool {
	return point >= s.Offset() && point <= s.EndTime()
}

func describe(s Span) string {
	if s == nil {
		return "<nil>"
	}
	return s.String()
}

func checkMerge(self, other Span) (bool, string) {
	if other == nil || other.Kind() != self.Kind() || isNilElement(other) {
		return false, fmt.Sprintf("cannot merge %s with %s: wrong types", describe(self), describe(other))
	}
	if self.EndTime() != other.Offset() && other.EndTime() != self.Offset() {
		return false, fmt.Sprintf("cannot merge %s with %s: not contiguous", describe(self), describe(other))
	}
	return true, ""
}
