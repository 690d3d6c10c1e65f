package summarizer

import (
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders a Summary as a YAML document for scripts.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

type yamlSummary struct {
	GeneratedAt time.Time       `yaml:"generated_at"`
	Operation   Operation       `yaml:"operation"`
	Input       *yamlFile       `yaml:"input,omitempty"`
	Output      *yamlFile       `yaml:"output,omitempty"`
	Frame       *yamlFrame      `yaml:"frame,omitempty"`
	Inspection  *yamlInspection `yaml:"inspection,omitempty"`
	Warnings    []string        `yaml:"warnings,omitempty"`
}

type yamlFile struct {
	Path string `yaml:"path"`
	Size int64  `yaml:"size"`
}

type yamlFrame struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	FrameSize int `yaml:"nv12_frame_size"`
}

type yamlInspection struct {
	Kind              string   `yaml:"kind"`
	Format            string   `yaml:"format,omitempty"`
	Codec             string   `yaml:"codec,omitempty"`
	Collision         string   `yaml:"looks_like,omitempty"`
	MatchesDimensions *bool    `yaml:"matches_dimensions,omitempty"`
	Suggestions       []string `yaml:"suggestions,omitempty"`
}

// Format implements Formatter. Marshal failures yield an empty string.
func (f *YAMLFormatter) Format(s *Summary) string {
	doc := yamlSummary{
		GeneratedAt: s.GeneratedAt,
		Operation:   s.Operation,
		Warnings:    s.Warnings,
	}
	if s.Input.Path != "" {
		doc.Input = &yamlFile{Path: s.Input.Path, Size: s.Input.Size}
	}
	if s.Output.Path != "" {
		doc.Output = &yamlFile{Path: s.Output.Path, Size: s.Output.Size}
	}
	if s.Frame.Width > 0 && s.Frame.Height > 0 {
		doc.Frame = &yamlFrame{
			Width:     s.Frame.Width,
			Height:    s.Frame.Height,
			FrameSize: s.Frame.FrameSize(),
		}
	}
	if in := s.Inspection; in != nil {
		yi := &yamlInspection{
			Kind:      string(in.Kind),
			Format:    string(in.Format),
			Codec:     in.Codec,
			Collision: string(in.Collision),
		}
		if in.HasCandidate {
			matches := in.MatchesCandidate
			yi.MatchesDimensions = &matches
		}
		for _, d := range in.Suggestions {
			yi.Suggestions = append(yi.Suggestions, d.String())
		}
		doc.Inspection = yi
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return ""
	}
	return string(out)
}

var _ Formatter = (*YAMLFormatter)(nil)
