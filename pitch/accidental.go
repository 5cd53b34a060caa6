package pitch

// Accidental alters a step by Alter semitones. Modifier is the text form
// used in pitch names.
type Accidental struct {
	Name     string
	Modifier string
	Alter    float64
}

var (
	Natural      = Accidental{Name: "natural", Modifier: "", Alter: 0}
	Sharp        = Accidental{Name: "sharp", Modifier: "#", Alter: 1}
	Flat         = Accidental{Name: "flat", Modifier: "-", Alter: -1}
	DoubleSharp  = Accidental{Name: "double-sharp", Modifier: "##", Alter: 2}
	DoubleFlat   = Accidental{Name: "double-flat", Modifier: "--", Alter: -2}
	HalfSharp    = Accidental{Name: "half-sharp", Modifier: "~", Alter: 0.5}
	HalfFlat     = Accidental{Name: "half-flat", Modifier: "`", Alter: -0.5}
	accidentals  = []Accidental{Natural, Sharp, Flat, DoubleSharp, DoubleFlat, HalfSharp, HalfFlat}
	byModifier   = map[string]Accidental{}
	byAccidental = map[string]Accidental{}
)

func init() {
	for _, a := range accidentals {
		byModifier[a.Modifier] = a
		byAccidental[a.Name] = a
	}
	// "n" is accepted as an explicit natural
	byModifier["n"] = Natural
}

// AccidentalByModifier looks up a western accidental by its modifier ("#", "--", ...).
func AccidentalByModifier(modifier string) (Accidental, bool) {
	a, ok := byModifier[modifier]
	return a, ok
}

// AccidentalByName looks up a western accidental by name ("sharp", "double-flat", ...).
func AccidentalByName(name string) (Accidental, bool) {
	a, ok := byAccidental[name]
	return a, ok
}
