package span

import "github.com/jsphweid/scorespan/score"

type optional struct {
	v   float64
	set bool
}

func some(v float64) optional { return optional{v: v, set: true} }

// fields collects overrides for New and NewElementInterval. Interval only
// reads the bounds.
type fields struct {
	offset        optional
	endTime       optional
	element       score.Element
	beatStrength  optional
	parentOffset  optional
	parentEndTime optional
	parentage     []score.Ancestor
}

type Option func(*fields)

func WithOffset(offset float64) Option {
	return func(f *fields) { f.offset = some(offset) }
}

func WithEndTime(endTime float64) Option {
	return func(f *fields) { f.endTime = some(endTime) }
}

// WithElement replaces the element. A nil element is ignored.
func WithElement(el score.Element) Option {
	return func(f *fields) { f.element = el }
}

func WithBeatStrength(strength float64) Option {
	return func(f *fields) { f.beatStrength = some(strength) }
}

func WithParentOffset(offset float64) Option {
	return func(f *fields) { f.parentOffset = some(offset) }
}

func WithParentEndTime(endTime float64) Option {
	return func(f *fields) { f.parentEndTime = some(endTime) }
}

// WithParentage sets the ancestor chain, innermost first. It only applies
// at construction; New always carries the receiver's chain.
func WithParentage(ancestors ...score.Ancestor) Option {
	return func(f *fields) {
		f.parentage = ancestors
	}
}

func collect(opts []Option) fields {
	var f fields
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
