package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/scorespan/builder"
	"github.com/jsphweid/scorespan/chord"
	"github.com/jsphweid/scorespan/midi"
	"github.com/jsphweid/scorespan/model"
	"github.com/jsphweid/scorespan/reduce"
	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/span"
	"github.com/jsphweid/scorespan/spanset"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// SpanQuery selects and shapes the spans of a score.
type SpanQuery struct {
	// At keeps only the spans sounding at this offset when set.
	At *float64
	// Starting keeps only the spans that begin at this offset when set.
	Starting *float64
	Part     string
	Merge    bool
	Slice    bool
}

var (
	spansAt       float64
	spansStarting float64
	spansPart     string
	spansReduce   bool
	spansSlice    bool
	spansJSON     bool
)

func init() {
	spansCmd.Flags().Float64Var(&spansAt, "at", 0, "only spans sounding at this offset")
	spansCmd.Flags().Float64Var(&spansStarting, "starting", 0, "only spans starting at this offset")
	spansCmd.Flags().StringVar(&spansPart, "part", "", "only spans of the named part")
	spansCmd.Flags().BoolVar(&spansReduce, "reduce", false, "merge contiguous spans of the same pitches (default from SCORESPAN_REDUCE)")
	spansCmd.Flags().BoolVar(&spansSlice, "slice", false, "split spans at every onset in the score")
	spansCmd.Flags().BoolVar(&spansJSON, "json", false, "print JSON instead of one span per line")
	rootCmd.AddCommand(spansCmd)
}

var spansCmd = &cobra.Command{
	Use:   "spans FILE",
	Short: "Lists the spans of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := SpanQuery{Part: spansPart, Merge: cfg.Reduce, Slice: spansSlice}
		if cmd.Flags().Changed("reduce") {
			q.Merge = spansReduce
		}
		if cmd.Flags().Changed("at") {
			q.At = &spansAt
		}
		if cmd.Flags().Changed("starting") {
			q.Starting = &spansStarting
		}

		s, err := midi.LoadScore(args[0])
		if err != nil {
			return err
		}
		spans, err := CollectSpans(s, q)
		if err != nil {
			return err
		}
		log.Debug().Str("title", s.Title).Int("spans", len(spans)).Msg("collected spans")

		if spansJSON {
			return writeJSON(cmd.OutOrStdout(), toModel(spans))
		}
		return printSpans(cmd.OutOrStdout(), spans)
	},
}

// CollectSpans builds the spans of s and applies q. The result is ordered by
// offset, then end time. At and Starting both apply when both are set.
func CollectSpans(s *score.Score, q SpanQuery) ([]*span.ElementInterval, error) {
	spans, err := builder.FromScore(s)
	if err != nil {
		return nil, err
	}
	if q.Part != "" {
		spans = filterPart(spans, q.Part)
	}
	if q.Merge {
		spans, err = reduce.MergeContiguous(spans)
		if err != nil {
			return nil, err
		}
	}
	if q.Slice {
		spans = reduce.SliceAt(spans, reduce.StartOffsets(spans))
	}

	set := spanset.New(spans...)
	switch {
	case q.Starting != nil && q.At != nil:
		set = spanset.New(set.StartingAt(*q.Starting)...)
		return set.OverlappingAt(*q.At), nil
	case q.Starting != nil:
		return set.StartingAt(*q.Starting), nil
	case q.At != nil:
		return set.OverlappingAt(*q.At), nil
	}
	return set.All(), nil
}

func filterPart(spans []*span.ElementInterval, name string) []*span.ElementInterval {
	var res []*span.ElementInterval
	for _, s := range spans {
		if partName(s) == name {
			res = append(res, s)
		}
	}
	return res
}

func partName(s *span.ElementInterval) string {
	if p, ok := s.Part().(*score.Part); ok {
		return p.Name
	}
	return ""
}

func printSpans(w io.Writer, spans []*span.ElementInterval) error {
	for _, s := range spans {
		line := s.String()
		if strength, ok, err := s.BeatStrength(); err != nil {
			return err
		} else if ok {
			line += fmt.Sprintf(" beat=%g", strength)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", partName(s), line); err != nil {
			return err
		}
	}
	return nil
}

func toModel(spans []*span.ElementInterval) []model.Span {
	res := make([]model.Span, 0, len(spans))
	for _, s := range spans {
		names := make([]string, 0)
		for _, p := range s.Pitches() {
			names = append(names, p.String())
		}
		m := model.Span{
			Offset:   s.Offset(),
			EndTime:  s.EndTime(),
			Element:  fmt.Sprint(s.Element()),
			Pitches:  names,
			ChordKey: chord.KeyOf(s),
			Part:     partName(s),
		}
		if n, err := s.MeasureNumber(); err == nil {
			m.Measure = &n
		}
		if strength, ok, err := s.BeatStrength(); err == nil && ok {
			m.BeatStrength = &strength
		}
		res = append(res, m)
	}
	return res
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
