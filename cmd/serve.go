package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jsphweid/scorespan/file"
	"github.com/jsphweid/scorespan/midi"
	"github.com/jsphweid/scorespan/model"
	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/spanset"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type served struct {
	mu       sync.RWMutex
	files    model.FileNumToMidiPath
	scores   map[uint32]*score.Score
	doReduce bool
}

var state = &served{}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve PATH",
	Short: "Serves the spans of a MIDI file, or of every MIDI file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeFiles(args[0], cfg.MaxFiles, cfg.Reduce); err != nil {
			return err
		}
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info().Str("addr", addr).Msg("listening")
		return http.ListenAndServe(addr, NewRouter())
	},
}

// LoadServeFiles reads path (a file or a directory of MIDI files) into
// memory. Files that fail to load are skipped with a warning. doReduce sets
// the default of the reduce query parameter.
func LoadServeFiles(path string, maxNum int, doReduce bool) error {
	paths, err := midiPaths(path, maxNum)
	if err != nil {
		return err
	}
	files := file.CreateFileNumMap(paths)
	scores := make(map[uint32]*score.Score, len(files))
	for id, p := range files {
		s, err := midi.LoadScore(p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("skipping file")
			delete(files, id)
			continue
		}
		scores[id] = s
	}
	log.Info().Int("files", len(scores)).Msg("loaded scores")

	state.mu.Lock()
	defer state.mu.Unlock()
	state.files = files
	state.scores = scores
	state.doReduce = doReduce
	return nil
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/files", HandleFiles).Methods(http.MethodGet)
	router.HandleFunc("/spans", HandleSpans).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func HandleFiles(w http.ResponseWriter, r *http.Request) {
	state.mu.RLock()
	entries := file.Entries(state.files)
	state.mu.RUnlock()
	respond(w, http.StatusOK, entries)
}

// HandleSpans answers GET /spans?file=&at=&starting=&part=&reduce=&slice=.
// file defaults to 0.
func HandleSpans(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var fileID uint64
	if v := query.Get("file"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			respondError(w, http.StatusBadRequest, "file must be a file number")
			return
		}
		fileID = id
	}

	state.mu.RLock()
	s, ok := state.scores[uint32(fileID)]
	doReduce := state.doReduce
	state.mu.RUnlock()
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no file %d", fileID))
		return
	}

	q := SpanQuery{Part: query.Get("part"), Merge: doReduce}
	for name, dst := range map[string]**float64{"at": &q.At, "starting": &q.Starting} {
		v := query.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, name+" must be a number")
			return
		}
		*dst = &f
	}
	for name, dst := range map[string]*bool{"reduce": &q.Merge, "slice": &q.Slice} {
		v := query.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, name+" must be true or false")
			return
		}
		*dst = b
	}

	spans, err := CollectSpans(s, q)
	if err != nil {
		log.Error().Err(err).Str("title", s.Title).Msg("collecting spans")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	res := model.SpansResponse{
		FileId:   uint32(fileID),
		Title:    s.Title,
		NumSpans: len(spans),
		Spans:    toModel(spans),
	}
	if bounds, ok := spanset.New(spans...).Bounds(); ok {
		offset, endTime := bounds.Offset(), bounds.EndTime()
		res.Offset, res.EndTime = &offset, &endTime
	}
	respond(w, http.StatusOK, res)
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writing response")
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, model.ErrorResponse{Error: msg})
}
