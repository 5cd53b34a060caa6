package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jsphweid/scorespan/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", config.LogFormatJSON)

	logger.Debug().Str("part", "Tenor").Msg("spans built")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "Tenor", line["part"])
	assert.Equal(t, "spans built", line["message"])
	assert.Contains(t, line, "time")
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", config.LogFormatPretty)

	logger.Info().Msg("listening")

	out := buf.String()
	assert.Contains(t, out, "listening")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestLevels(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"Warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"loud":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", config.LogFormatJSON)

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "loud")
}

func TestSetup(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	Setup(&buf, config.Config{LogLevel: "info", LogFormat: config.LogFormatJSON})
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
}
