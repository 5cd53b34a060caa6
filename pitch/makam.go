package pitch

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// CommaCents is the size of one comma in cents as used by the makam
// accidental tables. A whole tone is nine commas.
const CommaCents = 22.67

type makamAccidental struct {
	name     string
	modifier string
	commas   float64
}

// ordered so that longer modifiers are tried before their suffixes
var makamAccidentals = []makamAccidental{
	{"double-slash-flat", "~~-", -8},
	{"slash-quarter-sharp", "~q#", 5},
	{"quarter-flat", "q-", -1},
	{"slash-flat", "~-", -4},
	{"double-flat", "--", -9},
	{"quarter-sharp", "q#", 1},
	{"slash-sharp", "~#", 8},
	{"double-sharp", "##", 9},
	{"flat", "-", -5},
	{"sharp", "#", 4},
}

func (m makamAccidental) accidental() Accidental {
	return Accidental{
		Name:     "makam-" + m.name,
		Modifier: m.modifier,
		Alter:    m.commas * CommaCents / 100,
	}
}

// MakamAccidental returns the makam accidental with the given name or
// modifier, e.g. "quarter-flat" or "q-".
func MakamAccidental(specifier string) (Accidental, bool) {
	s := strings.ToLower(strings.TrimSpace(specifier))
	if s == "" || s == "natural" || s == "n" {
		return Natural, true
	}
	for _, m := range makamAccidentals {
		if s == m.name || s == m.modifier {
			return m.accidental(), true
		}
	}
	return Accidental{}, false
}

// ParseMakam reads a makam pitch name such as "Bq-5" or "F#4". The
// tradition only covers octaves 4 to 6.
func ParseMakam(name string) (Pitch, error) {
	s := strings.TrimSpace(name)
	var octDigits, rest []rune
	for _, r := range s {
		switch {
		case r >= '4' && r <= '6':
			octDigits = append(octDigits, r)
		case unicode.IsDigit(r):
			return Pitch{}, fmt.Errorf("%w: makam octaves range between 4 and 6, got %q", ErrInvalidPitch, name)
		default:
			rest = append(rest, r)
		}
	}
	if len(rest) == 0 {
		return Pitch{}, fmt.Errorf("%w: cannot make a name out of %q", ErrInvalidPitch, name)
	}

	step := Step(unicode.ToUpper(rest[0]))
	if !step.Valid() {
		return Pitch{}, fmt.Errorf("%w: cannot make a step out of %q", ErrInvalidPitch, string(rest[0]))
	}
	acc, ok := MakamAccidental(string(rest[1:]))
	if !ok {
		return Pitch{}, fmt.Errorf("%w: unknown makam accidental %q", ErrInvalidPitch, string(rest[1:]))
	}

	octave := DefaultOctave
	if len(octDigits) > 0 {
		n, err := strconv.Atoi(string(octDigits))
		if err != nil || n < 4 || n > 6 {
			return Pitch{}, fmt.Errorf("%w: makam octaves range between 4 and 6, got %q", ErrInvalidPitch, name)
		}
		octave = n
	}
	return Pitch{Step: step, Accidental: acc, Octave: octave}, nil
}
