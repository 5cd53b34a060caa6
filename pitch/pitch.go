package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidPitch = errors.New("invalid pitch")

// DefaultOctave is used when a pitch name carries no octave.
const DefaultOctave = 4

type Step byte

var stepSemitones = map[Step]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

func (s Step) Valid() bool {
	_, ok := stepSemitones[s]
	return ok
}

// Pitch is a spelled pitch. Two pitches are equal only when they are
// spelled the same, so C#4 and D-4 differ even though they sound alike.
type Pitch struct {
	Step       Step
	Accidental Accidental
	Octave     int
}

// PS is the pitch space value, where C4 is 60.
func (p Pitch) PS() float64 {
	return float64((p.Octave+1)*12+stepSemitones[p.Step]) + p.Accidental.Alter
}

// Name is the step plus accidental modifier without octave, e.g. "C#".
func (p Pitch) Name() string {
	return string(p.Step) + p.Accidental.Modifier
}

func (p Pitch) String() string {
	return p.Name() + strconv.Itoa(p.Octave)
}

// Less orders by pitch space, falling back to the name so that enharmonic
// spellings still sort deterministically.
func (p Pitch) Less(other Pitch) bool {
	if p.PS() != other.PS() {
		return p.PS() < other.PS()
	}
	return p.String() < other.String()
}

// Parse reads names like "C", "c#4", "B-3" or "F##5".
func Parse(name string) (Pitch, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return Pitch{}, fmt.Errorf("%w: empty name", ErrInvalidPitch)
	}
	step := Step(unicode.ToUpper(rune(s[0])))
	if !step.Valid() {
		return Pitch{}, fmt.Errorf("%w: cannot make a step out of %q", ErrInvalidPitch, s[:1])
	}
	rest := s[1:]

	octave := DefaultOctave
	i := len(rest)
	for i > 0 && rest[i-1] >= '0' && rest[i-1] <= '9' {
		i--
	}
	if i < len(rest) {
		n, err := strconv.Atoi(rest[i:])
		if err != nil {
			return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidPitch, name)
		}
		octave = n
		rest = rest[:i]
	}

	acc, ok := AccidentalByModifier(rest)
	if !ok {
		return Pitch{}, fmt.Errorf("%w: unknown accidental %q in %q", ErrInvalidPitch, rest, name)
	}
	return Pitch{Step: step, Accidental: acc, Octave: octave}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(name string) Pitch {
	p, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return p
}

var sharpSpelling = [12]struct {
	step  Step
	sharp bool
}{
	{'C', false}, {'C', true}, {'D', false}, {'D', true}, {'E', false}, {'F', false},
	{'F', true}, {'G', false}, {'G', true}, {'A', false}, {'A', true}, {'B', false},
}

// FromMIDI spells a MIDI key number with sharps; 60 is C4.
func FromMIDI(key uint8) Pitch {
	sp := sharpSpelling[key%12]
	acc := Natural
	if sp.sharp {
		acc = Sharp
	}
	return Pitch{
		Step:       sp.step,
		Accidental: acc,
		Octave:     int(key)/12 - 1,
	}
}
