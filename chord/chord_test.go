package chord

import (
	"testing"

	"github.com/jsphweid/scorespan/pitch"
	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChordKeySortsPitches(t *testing.T) {
	notes := []pitch.Pitch{pitch.MustParse("G4"), pitch.MustParse("C4"), pitch.MustParse("E4")}
	key := CreateChordKey(notes)

	assert := assert.New(t)
	assert.Equal("C4_E4_G4", key)
	assert.Equal("G4", notes[0].String())
}

func TestCreateChordKeyKeepsFlats(t *testing.T) {
	key := CreateChordKey([]pitch.Pitch{pitch.MustParse("D4"), pitch.MustParse("B-3")})
	assert.Equal(t, "B-3_D4", key)
}

func TestCreateChordKeyEmpty(t *testing.T) {
	assert.Equal(t, "", CreateChordKey(nil))
}

func TestGroupByKey(t *testing.T) {
	mk := func(offset float64, el score.Element) *span.ElementInterval {
		s, err := span.NewElementInterval(el, span.WithOffset(offset), span.WithEndTime(offset+1))
		require.NoError(t, err)
		return s
	}
	a := mk(0, score.NewNote(pitch.MustParse("C4"), 0, 1))
	b := mk(1, score.NewChord([]pitch.Pitch{pitch.MustParse("E4"), pitch.MustParse("C4")}, 1, 1))
	c := mk(2, score.NewNote(pitch.MustParse("C4"), 2, 1))
	r := mk(3, score.NewRest(3, 1))

	groups := GroupByKey([]*span.ElementInterval{a, b, c, r})

	assert := assert.New(t)
	assert.Len(groups, 3)
	assert.Equal([]*span.ElementInterval{a, c}, groups["C4"])
	assert.Equal([]*span.ElementInterval{b}, groups["C4_E4"])
	assert.Equal([]*span.ElementInterval{r}, groups[""])
}
