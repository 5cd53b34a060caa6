package midi

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/scorespan/score"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(path string) (*smf.SMF, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("error parsing midi file: %v", r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

// LoadScore reads a midi file and converts it to a score titled after the
// file name.
func LoadScore(path string) (*score.Score, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", path)
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res, err := ToScore(s, title)
	if err != nil {
		return nil, errors.WithMessagef(err, "convert %s", path)
	}
	return res, nil
}
