package file

import (
	"sort"

	"github.com/jsphweid/scorespan/model"
)

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// Entries lists the map ordered by file number.
func Entries(m model.FileNumToMidiPath) []model.FileEntry {
	res := make([]model.FileEntry, 0, len(m))
	for id, path := range m {
		res = append(res, model.FileEntry{FileId: id, Path: path})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].FileId < res[j].FileId
	})
	return res
}
