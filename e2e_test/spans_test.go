//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/scorespan/cmd"
	"github.com/jsphweid/scorespan/model"
	"github.com/jsphweid/scorespan/sample"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "scorespan-e2e")
	if err != nil {
		panic(err.Error())
	}

	s, err := sample.New(960, 4, 4,
		sample.Track{Name: "Soprano", Notes: []sample.Note{
			{Key: 72, Start: 0, End: 1920},
			{Key: 72, Start: 1920, End: 3840},
			{Key: 71, Start: 3840, End: 7680},
		}},
		sample.Track{Name: "Bass", Notes: []sample.Note{
			{Key: 48, Start: 0, End: 3840},
			{Key: 55, Start: 3840, End: 7680},
			{Key: 59, Start: 3840, End: 7680},
		}},
	)
	if err != nil {
		panic(err.Error())
	}
	if err := sample.Write(filepath.Join(dir, "hymn.mid"), s); err != nil {
		panic(err.Error())
	}
	if err := cmd.LoadServeFiles(dir, 0, false); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func getSpans(t *testing.T, target string) model.SpansResponse {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	cmd.HandleSpans(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var spansResponse model.SpansResponse
	err := json.Unmarshal(respBody, &spansResponse)
	if err != nil {
		panic(err.Error())
	}
	return spansResponse
}

func TestVerticalityE2E(t *testing.T) {
	res := getSpans(t, "/spans?at=3")

	assert := assert.New(t)
	assert.Equal("hymn", res.Title)
	assert.Equal(2, res.NumSpans)
	assert.Equal("C3", res.Spans[0].ChordKey)
	assert.Equal("Bass", res.Spans[0].Part)
	assert.Equal(1, *res.Spans[0].Measure)
	assert.Equal("C5", res.Spans[1].ChordKey)
	assert.Equal(2.0, res.Spans[1].Offset)
}

func TestReducedSopranoE2E(t *testing.T) {
	res := getSpans(t, "/spans?part=Soprano&reduce=true")

	assert := assert.New(t)
	assert.Equal(2, res.NumSpans)
	assert.Equal(0.0, res.Spans[0].Offset)
	assert.Equal(4.0, res.Spans[0].EndTime)
	assert.Equal("C5", res.Spans[0].ChordKey)
	assert.Equal(4.0, res.Spans[1].Offset)
	assert.Equal(8.0, res.Spans[1].EndTime)
}

func TestChordInBassE2E(t *testing.T) {
	res := getSpans(t, "/spans?part=Bass&at=6")

	assert := assert.New(t)
	assert.Equal(1, res.NumSpans)
	assert.Equal("G3_B3", res.Spans[0].ChordKey)
	assert.Equal([]string{"G3", "B3"}, res.Spans[0].Pitches)
}
