package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/scorespan/pitch"
	"github.com/jsphweid/scorespan/span"
)

// CreateChordKey returns a canonical key for a set of pitches: the pitches
// in ascending order joined by "_" ("-" already spells a flat). The input is
// not modified.
func CreateChordKey(pitches []pitch.Pitch) string {
	sorted := append([]pitch.Pitch(nil), pitches...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	names := make([]string, 0, len(sorted))
	for _, p := range sorted {
		names = append(names, p.String())
	}
	return strings.Join(names, "_")
}

// KeyOf is the chord key of whatever a span sounds. Rests have an empty key.
func KeyOf(s *span.ElementInterval) string {
	return CreateChordKey(s.Pitches())
}

// GroupByKey buckets spans by chord key, keeping their order within each
// bucket.
func GroupByKey(spans []*span.ElementInterval) map[string][]*span.ElementInterval {
	res := make(map[string][]*span.ElementInterval)
	for _, s := range spans {
		key := KeyOf(s)
		res[key] = append(res[key], s)
	}
	return res
}
