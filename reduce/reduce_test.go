package reduce

import (
	"testing"

	"github.com/jsphweid/scorespan/builder"
	"github.com/jsphweid/scorespan/pitch"
	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(spans []*span.ElementInterval) []string {
	var res []string
	for _, s := range spans {
		res = append(res, s.String())
	}
	return res
}

// alto and soprano both hold E4 across the barline; only same-part runs merge
func twoParts(t *testing.T) []*span.ElementInterval {
	t.Helper()
	ts, err := score.NewTimeSignature(2, 4)
	require.NoError(t, err)
	s := score.NewScore("reduction")
	for _, name := range []string{"Soprano", "Alto"} {
		p := score.NewPart(name)
		s.AddPart(p)
		m1 := score.NewMeasure(1, ts)
		m1.Insert(
			score.NewNote(pitch.MustParse("C5"), 0, 1),
			score.NewNote(pitch.MustParse("E4"), 1, 1),
		)
		m2 := score.NewMeasure(2, nil)
		m2.Insert(
			score.NewNote(pitch.MustParse("E4"), 0, 1),
			score.NewNote(pitch.MustParse("E4"), 1, 1),
		)
		p.Append(m1)
		p.Append(m2)
	}
	spans, err := builder.FromScore(s)
	require.NoError(t, err)
	return spans
}

func TestMergeContiguous(t *testing.T) {
	spans := twoParts(t)
	merged, err := MergeContiguous(spans)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"<ElementInterval 0 1 <Note C5>>",
		"<ElementInterval 0 1 <Note C5>>",
		"<ElementInterval 1 4 <Note E4>>",
		"<ElementInterval 1 4 <Note E4>>",
	}, render(merged))

	// the first E4 of each part survives as the anchor
	assert.Same(t, spans[1].Element(), merged[2].Element())
	assert.Equal(t, spans[1].Part(), merged[2].Part())
	assert.Same(t, spans[5].Element(), merged[3].Element())
}

func TestMergeContiguousByMeasureKeepsBarlines(t *testing.T) {
	merged, err := MergeContiguous(twoParts(t), score.ClassMeasure)
	require.NoError(t, err)
	assert.Len(t, merged, 6)
}

func TestMergeContiguousAcrossPartsWhenGroupedByScore(t *testing.T) {
	merged, err := MergeContiguous(twoParts(t), score.ClassScore)
	require.NoError(t, err)
	// the two parts interleave, so E4 runs from both parts chain together
	// only when contiguous in offset order
	for i := 1; i < len(merged); i++ {
		assert.LessOrEqual(t, merged[i-1].Offset(), merged[i].Offset())
	}
}

func TestMergeContiguousKeepsDurationOverZeroLengthNote(t *testing.T) {
	note := func(offset, endTime float64) *span.ElementInterval {
		s, err := span.NewElementInterval(score.NewNote(pitch.MustParse("C4"), 0, endTime-offset),
			span.WithOffset(offset), span.WithEndTime(endTime))
		require.NoError(t, err)
		return s
	}

	cases := map[string]struct {
		spans []*span.ElementInterval
		want  []string
	}{
		"blip first": {
			spans: []*span.ElementInterval{note(1, 1), note(1, 3)},
			want:  []string{"<ElementInterval 1 3 <Note C4>>"},
		},
		"blip second": {
			spans: []*span.ElementInterval{note(1, 3), note(1, 1)},
			want:  []string{"<ElementInterval 1 3 <Note C4>>"},
		},
		"blip at the end": {
			spans: []*span.ElementInterval{note(1, 3), note(3, 3)},
			want:  []string{"<ElementInterval 1 3 <Note C4>>"},
		},
		"blip between": {
			spans: []*span.ElementInterval{note(0, 1), note(1, 1), note(1, 3)},
			want:  []string{"<ElementInterval 0 3 <Note C4>>"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			merged, err := MergeContiguous(tc.spans)
			require.NoError(t, err)
			assert.Equal(t, tc.want, render(merged))
		})
	}
}

func TestSliceAt(t *testing.T) {
	s, err := span.NewElementInterval(score.NewNote(pitch.MustParse("G4"), 0, 4), span.WithOffset(0), span.WithEndTime(4))
	require.NoError(t, err)
	short, err := span.NewElementInterval(score.NewNote(pitch.MustParse("A4"), 0, 1), span.WithOffset(4), span.WithEndTime(5))
	require.NoError(t, err)

	sliced := SliceAt([]*span.ElementInterval{s, short}, []float64{3, 1, 0, 4, 1})
	assert.Equal(t, []string{
		"<ElementInterval 0 1 <Note G4>>",
		"<ElementInterval 1 3 <Note G4>>",
		"<ElementInterval 3 4 <Note G4>>",
		"<ElementInterval 4 5 <Note A4>>",
	}, render(sliced))
	assert.Same(t, short, sliced[3])
}

func TestSliceThenMergeRestoresSpan(t *testing.T) {
	s, err := span.NewElementInterval(score.NewNote(pitch.MustParse("G4"), 0, 4), span.WithOffset(0), span.WithEndTime(4))
	require.NoError(t, err)

	sliced := SliceAt([]*span.ElementInterval{s}, []float64{1, 2.5})
	require.Len(t, sliced, 3)
	merged, err := MergeContiguous(sliced)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, s.Interval(), merged[0].Interval())
}

func TestStartOffsets(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, StartOffsets(twoParts(t)))
	assert.Empty(t, StartOffsets(nil))
}
