// Package config loads runtime settings from an optional .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pablasso/backlog/internal/demo"
)

// Environment variables read by FromEnv.
const (
	EnvSeed      = "BACKLOG_SEED"
	EnvDebug     = "BACKLOG_DEBUG"
	EnvLogFormat = "BACKLOG_LOG_FORMAT"
	EnvPreset    = "BACKLOG_PRESET"
)

// LogFormat selects the logrus formatter.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

func ParseLogFormat(value string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(value))) {
	case LogFormatText, LogFormatJSON:
		return LogFormat(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid log format %q (valid: text, json)", value)
	}
}

// Config holds runtime settings. A zero Seed means entropy.
type Config struct {
	Seed      int64
	Debug     bool
	LogFormat LogFormat
	Preset    demo.Preset
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogFormat: LogFormatText,
		Preset:    demo.PresetMedium,
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment without overriding variables that are already set, then
// builds a Config from the environment. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv. Empty variables keep their defaults;
// malformed ones are an error.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid seed %q", EnvSeed, v)
		}
		cfg.Seed = seed
	}

	if v := strings.TrimSpace(getenv(EnvDebug)); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid boolean %q", EnvDebug, v)
		}
		cfg.Debug = debug
	}

	if v := getenv(EnvLogFormat); v != "" {
		format, err := ParseLogFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogFormat, err)
		}
		cfg.LogFormat = format
	}

	if v := getenv(EnvPreset); v != "" {
		preset, err := demo.ParsePreset(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPreset, err)
		}
		cfg.Preset = preset
	}

	return cfg, nil
}
