package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  height: 3\n  width: 5\nspawn:\n  policy: on_change\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Height != 3 || cfg.Board.Width != 5 {
		t.Errorf("board = %dx%d, want 3x5", cfg.Board.Height, cfg.Board.Width)
	}
	if cfg.SpawnPolicy() != engine.SpawnOnChange {
		t.Errorf("spawn policy = %v, want on_change", cfg.SpawnPolicy())
	}
	// Keys absent from the file keep their defaults
	if cfg.Target != 2048 {
		t.Errorf("target = %d, want default 2048", cfg.Target)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing custom path should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero height", "board:\n  height: 0\n"},
		{"negative width", "board:\n  width: -2\n"},
		{"unknown policy", "spawn:\n  policy: sometimes\n"},
		{"tiny target", "target: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("board: [1, 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Board.Height = 6
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		Height:      5,
		SpawnPolicy: "manual",
		Seed:        7,
		DBPath:      "/tmp/x.db",
	})

	if cfg.Board.Height != 5 || cfg.Board.Width != 4 {
		t.Errorf("board = %dx%d, want 5x4", cfg.Board.Height, cfg.Board.Width)
	}
	if cfg.Spawn.Policy != "manual" || cfg.Seed != 7 || cfg.Storage.Path != "/tmp/x.db" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Target != 2048 {
		t.Errorf("zero override changed target to %d", cfg.Target)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input  string
		height int
		width  int
		ok     bool
	}{
		{"4x4", 4, 4, true},
		{"3x5", 3, 5, true},
		{"6", 6, 6, true},
		{" 2X7 ", 2, 7, true},
		{"0x4", 0, 0, false},
		{"4x", 0, 0, false},
		{"axb", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		h, w, err := ParseSize(tt.input)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseSize(%q) error: %v", tt.input, err)
			} else if h != tt.height || w != tt.width {
				t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", tt.input, h, w, tt.height, tt.width)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseSize(%q) error = %v, want ErrInvalidConfig", tt.input, err)
		}
	}
}
