package score

import (
	"fmt"
	"math"
)

const (
	gridTolerance = 1e-9
	// levels below the notated divisions, each halving the previous grid
	extraLevels = 6
)

type TimeSignature struct {
	Numerator   int
	Denominator int
}

func NewTimeSignature(numerator, denominator int) (*TimeSignature, error) {
	if numerator <= 0 || denominator <= 0 || denominator&(denominator-1) != 0 {
		return nil, fmt.Errorf("invalid time signature %d/%d", numerator, denominator)
	}
	return &TimeSignature{Numerator: numerator, Denominator: denominator}, nil
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Numerator, ts.Denominator)
}

// BarDuration is the length of a full bar in quarter notes.
func (ts TimeSignature) BarDuration() float64 {
	return float64(ts.Numerator) * 4 / float64(ts.Denominator)
}

func (ts TimeSignature) compound() bool {
	return ts.Denominator >= 8 && ts.Numerator > 3 && ts.Numerator%3 == 0
}

// divisions returns how each metrical level splits the one above it, from
// the whole bar downwards.
func (ts TimeSignature) divisions() []int {
	if ts.compound() {
		return append(factor(ts.Numerator/3), 3)
	}
	return factor(ts.Numerator)
}

func factor(n int) []int {
	if n <= 1 {
		return nil
	}
	if n&(n-1) == 0 {
		var res []int
		for ; n > 1; n /= 2 {
			res = append(res, 2)
		}
		return res
	}
	if n%2 == 0 {
		return append([]int{2}, factor(n/2)...)
	}
	return []int{n}
}

func onGrid(pos, width float64) bool {
	r := math.Mod(pos, width)
	return r < gridTolerance || width-r < gridTolerance
}

// BeatStrength weights a position within the bar: 1 on the downbeat,
// halving for every metrical level needed to reach the position.
func (ts TimeSignature) BeatStrength(pos float64) float64 {
	bar := ts.BarDuration()
	pos = math.Mod(pos, bar)
	if pos < 0 {
		pos += bar
	}

	width := bar
	strength := 1.0
	if onGrid(pos, width) {
		return strength
	}

	divs := ts.divisions()
	for i := 0; i < extraLevels; i++ {
		divs = append(divs, 2)
	}
	for _, d := range divs {
		width /= float64(d)
		strength /= 2
		if onGrid(pos, width) {
			return strength
		}
	}
	return strength
}
