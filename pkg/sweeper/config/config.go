// Package config loads board presets from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/sweeper/pkg/sweeper/internalerr"
)

// Preset describes one board configuration.
type Preset struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

// Validate checks that the preset describes a playable board.
func (p Preset) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("board %dx%d: %w", p.Height, p.Width, internalerr.ErrInvalidConfig)
	}
	if p.Mines < 0 || p.Mines >= p.Height*p.Width {
		return fmt.Errorf("%d mines on %dx%d board: %w", p.Mines, p.Height, p.Width, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Config holds named board presets.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Load reads presets from a YAML file and validates each entry.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	for name, p := range cfg.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return &cfg, nil
}

// Preset returns the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset %q: %w", name, internalerr.ErrNotFound)
	}
	return p, nil
}

// Defaults returns the built-in presets used when no file is given.
func Defaults() *Config {
	return &Config{
		Presets: map[string]Preset{
			"beginner":     {Height: 8, Width: 8, Mines: 8},
			"intermediate": {Height: 16, Width: 16, Mines: 40},
			"expert":       {Height: 16, Width: 30, Mines: 99},
		},
	}
}
