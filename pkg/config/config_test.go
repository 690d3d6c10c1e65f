package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/yuvnv12/pkg/ports"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.JPEGQuality != 90 {
		t.Errorf("expected JPEG quality 90, got %d", cfg.JPEGQuality)
	}
	if cfg.Suggestions != 5 {
		t.Errorf("expected 5 suggestions, got %d", cfg.Suggestions)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
workers: 4
log_level: debug
jpeg_quality: 75
image_format: jpeg
planes:
  label_color: "#ff0000"
  scale_chroma: true
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %s", cfg.LogLevel)
	}
	if cfg.JPEGQuality != 75 {
		t.Errorf("expected 75, got %d", cfg.JPEGQuality)
	}
	if !cfg.Planes.ScaleChroma {
		t.Error("expected scale_chroma to be true")
	}
	// Unset fields keep their defaults
	if cfg.Planes.BackgroundColor != "#1a1a2e" {
		t.Errorf("expected default background, got %s", cfg.Planes.BackgroundColor)
	}
	if cfg.Suggestions != 5 {
		t.Errorf("expected default suggestions, got %d", cfg.Suggestions)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, "workers: [1, 2\n")
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		check   func(t *testing.T, c Config)
		wantErr bool
	}{
		{
			name:   "quality clamped",
			modify: func(c *Config) { c.JPEGQuality = 150 },
			check: func(t *testing.T, c Config) {
				if c.JPEGQuality != 90 {
					t.Errorf("expected 90, got %d", c.JPEGQuality)
				}
			},
		},
		{
			name:   "zero workers",
			modify: func(c *Config) { c.Workers = 0 },
			check: func(t *testing.T, c Config) {
				if c.Workers != 1 {
					t.Errorf("expected 1, got %d", c.Workers)
				}
			},
		},
		{
			name:   "negative workers kept",
			modify: func(c *Config) { c.Workers = -1 },
			check: func(t *testing.T, c Config) {
				if c.Workers != -1 {
					t.Errorf("expected -1, got %d", c.Workers)
				}
			},
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:    "unknown image format",
			modify:  func(c *Config) { c.ImageFormat = "gif" },
			wantErr: true,
		},
		{
			name:   "empty summary format",
			modify: func(c *Config) { c.SummaryFormat = "" },
			check: func(t *testing.T, c Config) {
				if c.SummaryFormat != "text" {
					t.Errorf("expected text, got %q", c.SummaryFormat)
				}
			},
		},
		{
			name:    "unknown summary format",
			modify:  func(c *Config) { c.SummaryFormat = "json" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"00FF80", color.RGBA{G: 255, B: 128, A: 255}},
		{"#1a1a2e", color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 255}},
	}

	for _, tt := range tests {
		if got := ParseColor(tt.input); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#fff", "#1234567"} {
		if got := ParseColor(bad); got != color.Black {
			t.Errorf("ParseColor(%q) = %v, want black", bad, got)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.ImageFormat = "jpg"
	cfg.JPEGQuality = 60
	cfg.Suggestions = 3

	oc := cfg.ToOrchestratorConfig()

	if oc.ImageFormat != ports.FormatJPEG {
		t.Errorf("expected JPEG, got %v", oc.ImageFormat)
	}
	if oc.JPEGQuality != 60 {
		t.Errorf("expected 60, got %d", oc.JPEGQuality)
	}
	if oc.MaxSuggestions != 3 {
		t.Errorf("expected 3, got %d", oc.MaxSuggestions)
	}
	if oc.PlaneStyle.LabelColor != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("unexpected label color %v", oc.PlaneStyle.LabelColor)
	}
}
