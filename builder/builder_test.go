package builder

import (
	"testing"

	"github.com/jsphweid/scorespan/pitch"
	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chorale(t *testing.T) (*score.Score, *score.Part, *score.Part) {
	t.Helper()
	ts, err := score.NewTimeSignature(4, 4)
	require.NoError(t, err)

	s := score.NewScore("bwv")
	soprano := score.NewPart("Soprano")
	tenor := score.NewPart("Tenor")
	s.AddPart(soprano)
	s.AddPart(tenor)

	pickup := score.NewMeasure(0, ts)
	pickup.PaddingLeft = 3
	pickup.Insert(score.NewNote(pitch.MustParse("C#5"), 0, 0.5), score.NewNote(pitch.MustParse("B4"), 0.5, 0.5))
	soprano.Append(pickup)
	m1 := score.NewMeasure(1, nil)
	m1.Insert(score.NewNote(pitch.MustParse("A4"), 0, 1))
	soprano.Append(m1)

	tm := score.NewMeasure(0, ts)
	tm.PaddingLeft = 3
	v := score.NewVoice("1")
	tm.AddVoice(v)
	v.Insert(score.NewChord([]pitch.Pitch{pitch.MustParse("E4"), pitch.MustParse("A3")}, 0, 1))
	tenor.Append(tm)
	return s, soprano, tenor
}

func TestFromScore(t *testing.T) {
	assert := assert.New(t)
	s, soprano, tenor := chorale(t)

	spans, err := FromScore(s)
	require.NoError(t, err)
	require.Len(t, spans, 4)

	var got []string
	for _, sp := range spans {
		got = append(got, sp.String())
	}
	assert.Equal([]string{
		"<ElementInterval 0 0.5 <Note C#5>>",
		"<ElementInterval 0.5 1 <Note B4>>",
		"<ElementInterval 1 2 <Note A4>>",
		"<ElementInterval 0 1 <Chord A3 E4>>",
	}, got)

	assert.Equal(soprano, spans[0].Part())
	assert.Equal(tenor, spans[3].Part())

	parentage := spans[2].Parentage()
	require.Len(t, parentage, 3)
	assert.True(score.IsA(parentage[0], score.ClassMeasure))
	assert.Equal(soprano, parentage[1])
	assert.Equal(s, parentage[2])

	po, _ := spans[2].ParentOffset()
	pe, _ := spans[2].ParentEndTime()
	assert.Equal(1.0, po)
	assert.Equal(5.0, pe)

	num, err := spans[2].MeasureNumber()
	assert.NoError(err)
	assert.Equal(1, num)

	bs, ok, err := spans[1].BeatStrength()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(0.125, bs)
}

func TestFromScoreVoiceParentage(t *testing.T) {
	s, _, tenor := chorale(t)
	spans, err := FromPart(tenor, s)
	require.NoError(t, err)
	require.Len(t, spans, 1)

	chord := spans[0]
	assert.True(t, score.IsA(chord.GetParentageByClass(score.ClassVoice, score.ClassMeasure), score.ClassVoice))
	assert.True(t, score.IsA(chord.GetParentageByClass(score.ClassMeasure), score.ClassMeasure))
	assert.Len(t, chord.Parentage(), 4)
	assert.Equal(t, []pitch.Pitch{pitch.MustParse("A3"), pitch.MustParse("E4")}, chord.Pitches())
}

func TestFromScoreRejectsNegativeDurations(t *testing.T) {
	s := score.NewScore("bad")
	p := score.NewPart("P")
	s.AddPart(p)
	m := score.NewMeasure(1, nil)
	m.Insert(score.NewNote(pitch.MustParse("C4"), 1, -0.5))
	p.Append(m)

	_, err := FromScore(s)
	var ie *span.IntervalError
	assert.ErrorAs(t, err, &ie)
}
