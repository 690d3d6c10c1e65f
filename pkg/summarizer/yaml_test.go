package summarizer

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/nv12"
)

func TestYAMLFormatter_Convert(t *testing.T) {
	summary := NewBuilder(OperationConvert).
		WithInput("photo.png", 123456).
		WithOutput("photo.nv12", 460800).
		WithFrame(nv12.Dimensions{Width: 640, Height: 480}).
		Build()

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(NewYAMLFormatter().Format(summary)), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if doc["operation"] != "convert" {
		t.Errorf("expected operation convert, got %v", doc["operation"])
	}
	frame, ok := doc["frame"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected frame mapping, got %v", doc["frame"])
	}
	if frame["width"] != 640 || frame["height"] != 480 || frame["nv12_frame_size"] != 460800 {
		t.Errorf("unexpected frame %v", frame)
	}
	if _, ok := doc["inspection"]; ok {
		t.Error("expected no inspection for convert")
	}
}

func TestYAMLFormatter_Inspect(t *testing.T) {
	report := inspect.Report{
		Kind:        inspect.KindUnknown,
		Size:        12,
		Suggestions: []nv12.Dimensions{{Width: 2, Height: 4}, {Width: 4, Height: 2}},
	}
	summary := NewBuilder(OperationInspect).
		WithInput("frame.bin", 12).
		WithInspection(report, true).
		Build()

	var doc struct {
		Inspection struct {
			Kind              string   `yaml:"kind"`
			Format            string   `yaml:"format"`
			MatchesDimensions *bool    `yaml:"matches_dimensions"`
			Suggestions       []string `yaml:"suggestions"`
		} `yaml:"inspection"`
	}
	if err := yaml.Unmarshal([]byte(NewYAMLFormatter().Format(summary)), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	in := doc.Inspection
	if in.Kind != "unknown" {
		t.Errorf("expected kind unknown, got %q", in.Kind)
	}
	if in.Format != "" {
		t.Errorf("expected no format, got %q", in.Format)
	}
	if in.MatchesDimensions == nil || *in.MatchesDimensions {
		t.Errorf("expected matches_dimensions false, got %v", in.MatchesDimensions)
	}
	if len(in.Suggestions) != 2 || in.Suggestions[0] != "2x4" || in.Suggestions[1] != "4x2" {
		t.Errorf("unexpected suggestions %v", in.Suggestions)
	}
}
