// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/orchestrator"
	"github.com/user/yuvnv12/pkg/ports"
)

// Config represents the full configuration for yuvnv12.
type Config struct {
	// Conversion
	Workers int `yaml:"workers"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Image output
	JPEGQuality int    `yaml:"jpeg_quality"`
	ImageFormat string `yaml:"image_format"`

	// Inspection
	Suggestions int `yaml:"suggestions"`

	// Summary output: "text" or "yaml"
	SummaryFormat string `yaml:"summary_format"`

	// Plane rendering
	Planes PlanesConfig `yaml:"planes"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// PlanesConfig represents plane overview styling.
type PlanesConfig struct {
	BackgroundColor string `yaml:"background_color"`
	LabelColor      string `yaml:"label_color"`
	ScaleChroma     bool   `yaml:"scale_chroma"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Workers: 1,

		LogLevel: "info",

		JPEGQuality: 90,
		ImageFormat: "png",

		Suggestions:   inspect.DefaultMaxSuggestions,
		SummaryFormat: "text",

		Planes: PlanesConfig{
			BackgroundColor: "#1a1a2e",
			LabelColor:      "#ffffff",
		},

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file over Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate normalizes out-of-range values and rejects unknown names.
func (c *Config) Validate() error {
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 90
	}
	if c.Suggestions < 0 {
		c.Suggestions = 0
	}
	if c.DebugDir == "" {
		c.DebugDir = "./debug"
	}
	if _, err := ports.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := ports.ParseImageFormat(c.ImageFormat); err != nil {
		return err
	}
	switch c.SummaryFormat {
	case "":
		c.SummaryFormat = "text"
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown summary format %q", c.SummaryFormat)
	}
	return nil
}

// ParseColor parses a "#rrggbb" hex color. Malformed input yields black.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.Black
	}

	var rgb [3]uint8
	for i := range rgb {
		rgb[i] = hexValue(hex[2*i])<<4 | hexValue(hex[2*i+1])
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config. Paths, mode and
// dimensions are left for the caller.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	cfg := orchestrator.DefaultConfig()

	if format, err := ports.ParseImageFormat(c.ImageFormat); err == nil {
		cfg.ImageFormat = format
	}
	cfg.JPEGQuality = c.JPEGQuality
	cfg.MaxSuggestions = c.Suggestions
	cfg.PlaneStyle = ports.PlaneStyle{
		Background:  ParseColor(c.Planes.BackgroundColor),
		LabelColor:  ParseColor(c.Planes.LabelColor),
		ScaleChroma: c.Planes.ScaleChroma,
	}

	return cfg
}
