package editor

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "editor.yaml"

// Config holds editor preferences loaded from editor.yaml.
type Config struct {
	// HistoryLimit caps undo history; 0 keeps everything.
	HistoryLimit int `yaml:"history_limit"`
	// LogSkippedEdits reports undo/redo steps whose target was destroyed.
	LogSkippedEdits bool           `yaml:"log_skipped_edits"`
	Shortcuts       ShortcutConfig `yaml:"shortcuts"`
	Window          WindowConfig   `yaml:"window"`
}

type ShortcutConfig struct {
	Enabled bool `yaml:"enabled"`
	// RedoWithY binds Ctrl+Y to redo in addition to Ctrl+Shift+Z.
	RedoWithY bool `yaml:"redo_with_y"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

func DefaultConfig() Config {
	return Config{
		HistoryLimit:    100,
		LogSkippedEdits: true,
		Shortcuts: ShortcutConfig{
			Enabled:   true,
			RedoWithY: true,
		},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "mirgo editor",
			TargetFPS: 120,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "parse %s", path)
	}
	if cfg.HistoryLimit < 0 {
		return DefaultConfig(), errors.Errorf("%s: history_limit must be >= 0, got %d", path, cfg.HistoryLimit)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write %s", path)
}
