// Package config loads the optional terraglow.toml. A missing file is not
// an error; a malformed one falls back to defaults so the page still shows.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"terraglow/constant"
)

// Config holds the ambient knobs. Scene geometry constants are fixed and
// deliberately not configurable
type Config struct {
	FPS                int    `toml:"fps"`
	FallbackDeadlineMs int    `toml:"fallback_deadline_ms"`
	Audio              bool   `toml:"audio"`
	ColorMode          string `toml:"color_mode"` // "", "truecolor", "256"
	LogFile            string `toml:"log_file"`
}

// Default returns the shipped configuration
func Default() Config {
	return Config{
		FPS:                constant.DefaultFPS,
		FallbackDeadlineMs: int(constant.FallbackDeadline / time.Millisecond),
		Audio:              false,
	}
}

// Load reads path over the defaults. A missing file returns defaults with
// no error; parse failures return defaults plus the error so the caller can
// log and continue
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config read: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config parse: %w", err)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = constant.DefaultFPS
	}
	if cfg.FallbackDeadlineMs <= 0 {
		cfg.FallbackDeadlineMs = int(constant.FallbackDeadline / time.Millisecond)
	}
	return cfg, nil
}

// FallbackDeadline converts the configured ceiling to a duration
func (c Config) FallbackDeadline() time.Duration {
	return time.Duration(c.FallbackDeadlineMs) * time.Millisecond
}

// FrameInterval converts the configured FPS to a ticker period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
