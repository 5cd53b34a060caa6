// Package reduce simplifies span collections for score reduction.
package reduce

import (
	"sort"

	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/span"
	"github.com/jsphweid/scorespan/util"
)

// MergeContiguous merges runs of contiguous, like-pitched spans that share
// the same closest ancestor of the given classes (a part, by default). The
// earliest span of each run keeps its element and beat strength. The result
// is ordered by offset.
func MergeContiguous(spans []*span.ElementInterval, classes ...score.Class) ([]*span.ElementInterval, error) {
	if len(classes) == 0 {
		classes = []score.Class{score.ClassPart}
	}

	var order []score.Ancestor
	groups := make(map[score.Ancestor][]*span.ElementInterval)
	for _, s := range spans {
		key := s.GetParentageByClass(classes...)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	var res []*span.ElementInterval
	for _, key := range order {
		merged, err := mergeRun(groups[key])
		if err != nil {
			return nil, err
		}
		res = append(res, merged...)
	}
	sortByOffset(res)
	return res, nil
}

func mergeRun(spans []*span.ElementInterval) ([]*span.ElementInterval, error) {
	sorted := append([]*span.ElementInterval(nil), spans...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset() != sorted[j].Offset() {
			return sorted[i].Offset() < sorted[j].Offset()
		}
		return sorted[i].EndTime() < sorted[j].EndTime()
	})

	var res []*span.ElementInterval
	for _, s := range sorted {
		if n := len(res); n > 0 {
			if ok, _ := res[n-1].CanMerge(s); ok {
				merged, err := mergePair(res[n-1], s)
				if err != nil {
					return nil, err
				}
				res[n-1] = merged
				continue
			}
		}
		res = append(res, s)
	}
	return res, nil
}

// mergePair joins earlier with later. Runs are sorted by offset then end,
// so when both start together earlier is the zero-length one; MergeWith
// keeps the fields of its argument on a tie, so the call is flipped to keep
// earlier's element and later's end.
func mergePair(earlier, later *span.ElementInterval) (*span.ElementInterval, error) {
	if earlier.Offset() == later.Offset() {
		return later.MergeWith(earlier)
	}
	return earlier.MergeWith(later)
}

func sortByOffset(spans []*span.ElementInterval) {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Offset() < spans[j].Offset()
	})
}

// SliceAt splits every span at each point that falls strictly inside it, so
// that no span crosses any of the points.
func SliceAt(spans []*span.ElementInterval, points []float64) []*span.ElementInterval {
	cuts := util.SortedUnique(points)
	var res []*span.ElementInterval
	for _, s := range spans {
		pieces := []*span.ElementInterval{s}
		for _, p := range cuts {
			last := pieces[len(pieces)-1]
			if p <= last.Offset() || p >= last.EndTime() {
				continue
			}
			pieces = append(pieces[:len(pieces)-1], last.SplitAt(p)...)
		}
		res = append(res, pieces...)
	}
	return res
}

// StartOffsets returns every distinct offset at which a span starts, in
// ascending order.
func StartOffsets(spans []*span.ElementInterval) []float64 {
	offsets := make([]float64, 0, len(spans))
	for _, s := range spans {
		offsets = append(offsets, s.Offset())
	}
	return util.SortedUnique(offsets)
}
