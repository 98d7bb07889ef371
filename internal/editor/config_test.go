package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "editor.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	data := "history_limit: 5\nshortcuts:\n  redo_with_y: false\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.HistoryLimit != 5 {
		t.Errorf("Expected history limit 5, got %d", cfg.HistoryLimit)
	}
	if cfg.Shortcuts.RedoWithY {
		t.Error("Expected redo_with_y to be off")
	}
	if !cfg.Shortcuts.Enabled {
		t.Error("Shortcuts.Enabled should keep its default")
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("Expected default width 1280, got %d", cfg.Window.Width)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"malformed":      "history_limit: [1, 2\n",
		"negative limit": "history_limit: -1\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "editor.yaml")
			if err := os.WriteFile(path, []byte(data), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if cfg != DefaultConfig() {
				t.Errorf("Expected defaults alongside the error, got %+v", cfg)
			}
		})
	}
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	cfg := DefaultConfig()
	cfg.HistoryLimit = 0
	cfg.Window.Title = "scratch"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}
