package summarizer

import (
	"strings"
	"testing"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/nv12"
)

func TestTextFormatter_Convert(t *testing.T) {
	summary := NewBuilder(OperationConvert).
		WithInput("photo.png", 123456).
		WithOutput("photo.yuv", 460800).
		WithFrame(nv12.Dimensions{Width: 640, Height: 480}).
		Build()

	result := NewTextFormatter().Format(summary)

	checks := []string{
		"Conversion Summary",
		"photo.png",
		"124 kB (123,456 bytes)",
		"photo.yuv",
		"461 kB (460,800 bytes)",
		"640x480",
		"307,200 pixels",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q\n%s", check, result)
		}
	}
	if strings.Contains(result, "Kind") {
		t.Error("expected no inspection lines for a conversion")
	}
}

func TestTextFormatter_Inspect(t *testing.T) {
	tests := []struct {
		name     string
		report   inspect.Report
		hasCand  bool
		want     []string
		dontWant []string
	}{
		{
			name: "raw with candidate",
			report: inspect.Report{
				Kind:             inspect.KindRawYUV,
				Size:             12,
				Dimensions:       &nv12.Dimensions{Width: 4, Height: 2},
				MatchesCandidate: true,
				Suggestions:      []nv12.Dimensions{{Width: 2, Height: 4}, {Width: 4, Height: 2}},
			},
			hasCand: true,
			want:    []string{"Inspection Summary", "raw-yuv", "Matches dimensions:", "yes", "2x4, 4x2"},
		},
		{
			name: "container",
			report: inspect.Report{
				Kind:   inspect.KindContainer,
				Format: inspect.FormatPNG,
				Size:   100,
			},
			want:     []string{"container", "png"},
			dontWant: []string{"Matches dimensions", "Possible dimensions", "Codec"},
		},
		{
			name: "mp4 container",
			report: inspect.Report{
				Kind:       inspect.KindContainer,
				Format:     inspect.FormatMP4,
				Codec:      "avc1",
				Size:       2048,
				Dimensions: &nv12.Dimensions{Width: 1280, Height: 720},
			},
			want: []string{"mp4", "Codec:", "avc1", "1280x720"},
		},
		{
			name: "raw with signature collision",
			report: inspect.Report{
				Kind:             inspect.KindRawYUV,
				Size:             24,
				Dimensions:       &nv12.Dimensions{Width: 4, Height: 4},
				MatchesCandidate: true,
				Collision:        inspect.FormatJPEG,
			},
			hasCand: true,
			want:    []string{"raw-yuv", "Looks like:", "jpeg"},
		},
		{
			name: "mismatch",
			report: inspect.Report{
				Kind: inspect.KindUnknown,
				Size: 7,
			},
			hasCand: true,
			want:    []string{"unknown", "no"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := NewBuilder(OperationInspect).
				WithInput("file.bin", int64(tt.report.Size)).
				WithInspection(tt.report, tt.hasCand).
				Build()

			result := NewTextFormatter().Format(summary)

			for _, w := range tt.want {
				if !strings.Contains(result, w) {
					t.Errorf("expected output to contain %q\n%s", w, result)
				}
			}
			for _, w := range tt.dontWant {
				if strings.Contains(result, w) {
					t.Errorf("expected output NOT to contain %q\n%s", w, result)
				}
			}
		})
	}
}

func TestTextFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Conversion Summary": "変換サマリー",
			"Input":              "入力",
			"Warning":            "警告",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	summary := NewBuilder(OperationConvert).
		WithInput("a.bmp", 10).
		WithWarning("unusual extension").
		Build()

	result := NewTextFormatter(WithTranslator(translator)).Format(summary)

	for _, want := range []string{"変換サマリー", "入力:", "警告:", "unusual extension"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected output to contain %q\n%s", want, result)
		}
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 bytes"},
		{999, "999 bytes"},
		{1000, "1.0 kB (1,000 bytes)"},
		{1500000, "1.5 MB (1,500,000 bytes)"},
	}

	for _, tt := range tests {
		if got := Bytes(tt.n); got != tt.want {
			t.Errorf("Bytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return string(s.Operation) })

	if got := f.Format(NewSummary(OperationInspect)); got != "inspect" {
		t.Errorf("expected inspect, got %s", got)
	}
}
