package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/sweeper/pkg/sweeper/internalerr"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
presets:
  beginner:
    height: 8
    width: 8
    mines: 8
  tiny:
    height: 3
    width: 3
    mines: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := cfg.Preset("tiny")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	if p.Height != 3 || p.Width != 3 || p.Mines != 1 {
		t.Errorf("Unexpected preset: %+v", p)
	}

	if _, err := cfg.Preset("missing"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown preset, got %v", err)
	}
}

func TestLoadRejectsInvalidPreset(t *testing.T) {
	path := writeFile(t, `
presets:
  overloaded:
    height: 2
    width: 2
    mines: 4
`)

	if _, err := Load(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		preset Preset
		ok     bool
	}{
		{"valid", Preset{Height: 8, Width: 8, Mines: 8}, true},
		{"zero mines", Preset{Height: 2, Width: 2, Mines: 0}, true},
		{"negative mines", Preset{Height: 8, Width: 8, Mines: -1}, false},
		{"full board", Preset{Height: 2, Width: 2, Mines: 4}, false},
		{"zero width", Preset{Height: 2, Width: 0, Mines: 0}, false},
	}

	for _, tc := range cases {
		err := tc.preset.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	for name, p := range cfg.Presets {
		if err := p.Validate(); err != nil {
			t.Errorf("default preset %q invalid: %v", name, err)
		}
	}
}
