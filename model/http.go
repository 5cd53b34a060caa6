package model

type Span struct {
	Offset   float64  `json:"offset"`
	EndTime  float64  `json:"end_time"`
	Element  string   `json:"element"`
	Pitches  []string `json:"pitches"`
	ChordKey string   `json:"chord_key,omitempty"`
	Part     string   `json:"part,omitempty"`

	// NOTE: left out when the element has no measure or meter
	Measure      *int     `json:"measure,omitempty"`
	BeatStrength *float64 `json:"beat_strength,omitempty"`
}

type SpansResponse struct {
	FileId   uint32 `json:"file_id"`
	Title    string `json:"title"`
	NumSpans int    `json:"num_spans"`
	Spans    []Span `json:"spans"`

	// NOTE: bounds of the returned spans, left out when there are none
	Offset  *float64 `json:"offset,omitempty"`
	EndTime *float64 `json:"end_time,omitempty"`
}

type FileEntry struct {
	FileId uint32 `json:"file_id"`
	Path   string `json:"path"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
