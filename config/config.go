// Package config reads scorespan settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is prepended to every variable name, e.g. SCORESPAN_PORT.
const Prefix = "SCORESPAN"

const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is pretty or json.
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	Port int `envconfig:"PORT" default:"8080"`

	// MediaPath is where inspect looks when no path is given.
	MediaPath string `envconfig:"MEDIA_PATH"`

	// MaxFiles caps how many files inspect reads from a directory. Zero
	// means no limit.
	MaxFiles int `envconfig:"MAX_FILES" default:"0"`

	// Reduce merges contiguous spans by default in spans and serve.
	Reduce bool `envconfig:"REDUCE" default:"false"`
}

// Load reads envPath (".env" when empty) if it exists, then the
// environment. Variables already set win over the file.
func Load(envPath string) (Config, error) {
	if envPath == "" {
		envPath = ".env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, errors.Wrapf(err, "loading %s", envPath)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "reading environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("port %d out of range", c.Port)
	}
	if c.MaxFiles < 0 {
		return errors.Errorf("max files must not be negative, got %d", c.MaxFiles)
	}
	return nil
}

// MediaDir returns MediaPath or an error when it is unset.
func (c Config) MediaDir() (string, error) {
	if c.MediaPath == "" {
		return "", errors.New(Prefix + "_MEDIA_PATH is not set")
	}
	return c.MediaPath, nil
}
