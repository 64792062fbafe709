package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gbr1/matrix-editor/internal/clipboard"
)

const (
	DefaultPlaybackMs = 400
	DefaultAnimateMs  = 200
	DefaultTheme      = "cyberpunk"
)

type Config struct {
	Theme      string `yaml:"theme"`
	PlaybackMs int    `yaml:"playback_ms"`
	AnimateMs  int    `yaml:"animate_ms"`
	Wrap       bool   `yaml:"wrap"`
	Seed       int64  `yaml:"seed"`
	Clipboard  string `yaml:"clipboard"`
	Preset     string `yaml:"preset"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:      DefaultTheme,
		PlaybackMs: DefaultPlaybackMs,
		AnimateMs:  DefaultAnimateMs,
		Wrap:       true,
		Clipboard:  clipboard.BackendAuto,
		Preset:     "blank",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.PlaybackMs <= 0 {
		return fmt.Errorf("playback_ms must be positive, got %d", c.PlaybackMs)
	}
	if c.AnimateMs <= 0 {
		return fmt.Errorf("animate_ms must be positive, got %d", c.AnimateMs)
	}
	switch c.Clipboard {
	case clipboard.BackendAuto, clipboard.BackendSystem, clipboard.BackendOSC52, clipboard.BackendNone:
	default:
		return fmt.Errorf("unknown clipboard backend %q", c.Clipboard)
	}
	if c.Preset != "" && GetPreset(c.Preset) == nil {
		return fmt.Errorf("unknown preset %q (available: %v)", c.Preset, ListPresets())
	}
	return nil
}

func (c *Config) PlaybackInterval() time.Duration {
	return time.Duration(c.PlaybackMs) * time.Millisecond
}

func (c *Config) AnimateInterval() time.Duration {
	return time.Duration(c.AnimateMs) * time.Millisecond
}

// SeedOrNow returns the configured seed, or a time-based one when unset.
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
