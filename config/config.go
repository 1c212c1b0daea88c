// Package config holds the renderer's configuration surface (spec.md §6),
// bindable from CLI flags or loaded from a YAML file, following the
// teacher's cmd/fluffy flag-set conventions.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the renderer's full configuration surface.
type Config struct {
	UseASCII         bool   `yaml:"useAscii"`
	PaddingX         int    `yaml:"paddingX"`
	PaddingY         int    `yaml:"paddingY"`
	BoxBorderPadding int    `yaml:"boxBorderPadding"`
	GraphDirection   string `yaml:"graphDirection"`
}

// Default returns the renderer's built-in defaults.
func Default() Config {
	return Config{
		UseASCII:         false,
		PaddingX:         2,
		PaddingY:         1,
		BoxBorderPadding: 1,
		GraphDirection:   "LR",
	}
}

// Load reads a YAML configuration file, starting from Default() so any
// field the file omits keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NormalizedDirection resolves RL/TB/BT to the underlying LR/TD the grid
// router works with, plus whether drawing output needs a final vertical
// flip (spec.md §6: "other directions are resolved to LR or TD ... via a
// post-flip in drawing").
func (c Config) NormalizedDirection() (base string, flip bool) {
	switch c.GraphDirection {
	case "RL":
		return "LR", true
	case "BT":
		return "TD", true
	case "TB":
		return "TD", false
	default:
		return c.GraphDirection, false
	}
}
