// Package demo drives a self-playing backlog: it completes the most urgent
// open task on a fixed pacing and feeds the follow-ups back in.
package demo

import (
	"fmt"
	"strings"
	"time"
)

// Preset controls autoplay pacing.
type Preset string

const (
	PresetQuick  Preset = "quick"
	PresetMedium Preset = "medium"
	PresetSlow   Preset = "slow"
)

func ParsePreset(value string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(value))) {
	case PresetQuick, PresetMedium, PresetSlow:
		return Preset(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid preset %q (valid: quick, medium, slow)", value)
	}
}

type presetSettings struct {
	TargetDuration time.Duration
	Steps          int
}

func settingsForPreset(preset Preset) (presetSettings, error) {
	switch preset {
	case PresetQuick:
		return presetSettings{TargetDuration: time.Minute, Steps: 120}, nil
	case PresetMedium:
		return presetSettings{TargetDuration: 10 * time.Minute, Steps: 300}, nil
	case PresetSlow:
		return presetSettings{TargetDuration: time.Hour, Steps: 720}, nil
	default:
		return presetSettings{}, fmt.Errorf("unknown preset %q", preset)
	}
}

// Config controls autoplay behavior.
type Config struct {
	Preset   Preset
	Interval time.Duration // delay between completions
	MaxSteps int           // 0 runs until cancelled
}

var (
	minInterval = 100 * time.Millisecond
	maxInterval = 30 * time.Second
)

// NewConfig computes the autoplay interval for a preset. maxSteps caps the
// number of completions; 0 means unlimited.
func NewConfig(preset Preset, maxSteps int) (Config, error) {
	settings, err := settingsForPreset(preset)
	if err != nil {
		return Config{}, err
	}
	if maxSteps < 0 {
		return Config{}, fmt.Errorf("max steps must not be negative, got %d", maxSteps)
	}

	interval := settings.TargetDuration / time.Duration(settings.Steps)
	return Config{
		Preset:   preset,
		Interval: clampDuration(interval, minInterval, maxInterval),
		MaxSteps: maxSteps,
	}, nil
}

func clampDuration(value, lo, hi time.Duration) time.Duration {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
