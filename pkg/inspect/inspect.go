// Package inspect classifies byte buffers for diagnostic display: raw NV12
// payloads by size arithmetic, image and MP4 containers by their signature
// bytes.
package inspect

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/yuvnv12/pkg/nv12"
)

// Kind is the classification of an inspected buffer.
type Kind string

const (
	KindRawYUV    Kind = "raw-yuv"
	KindContainer Kind = "container"
	KindUnknown   Kind = "unknown"
)

// Format identifies an image container.
type Format string

const (
	FormatNone Format = ""
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
	FormatMP4  Format = "mp4"
)

// DefaultMaxSuggestions is the number of candidate dimensions offered for
// raw buffers when Options.MaxSuggestions is zero.
const DefaultMaxSuggestions = 5

// maxSuggestedWidth bounds the width search for suggestions.
const maxSuggestedWidth = 10000

// Report describes an inspected buffer.
type Report struct {
	Kind   Kind
	Format Format
	Size   int

	// Dimensions is set for raw buffers (the candidate) and for containers
	// whose header could be parsed.
	Dimensions *nv12.Dimensions

	// Codec is the sample entry type of the first video track of an MP4
	// container, such as "avc1" or "av01".
	Codec string

	// MatchesCandidate reports whether the candidate is a valid NV12 size
	// (positive, even) and Size equals its frame size, regardless of Kind.
	MatchesCandidate bool

	// Collision is set on a raw report whose first bytes also carry a short
	// container signature that did not parse as a header.
	Collision Format

	// Suggestions lists even dimensions whose NV12 frame size equals Size.
	// Only filled for raw and unknown buffers.
	Suggestions []nv12.Dimensions
}

// Options tunes Inspect.
type Options struct {
	MaxSuggestions int
}

// Inspect classifies data. candidate may be nil. The result never depends on
// anything but data and candidate, and data is not modified.
func Inspect(data []byte, candidate *nv12.Dimensions) Report {
	return InspectWithOptions(data, candidate, Options{})
}

// InspectWithOptions is Inspect with explicit options.
func InspectWithOptions(data []byte, candidate *nv12.Dimensions, opts Options) Report {
	report := Report{
		Kind: KindUnknown,
		Size: len(data),
	}

	if candidate != nil && candidate.Validate() == nil {
		report.MatchesCandidate = len(data) == candidate.FrameSize()
	}

	if format := Sniff(data); format != FormatNone {
		container := report
		container.Kind = KindContainer
		container.Format = format
		parsed := probeHeader(data, format, &container)
		if parsed || !report.MatchesCandidate || strongSignature(format) {
			return container
		}
		report.Collision = format
	}

	if report.MatchesCandidate {
		report.Kind = KindRawYUV
		d := *candidate
		report.Dimensions = &d
	}

	limit := opts.MaxSuggestions
	if limit == 0 {
		limit = DefaultMaxSuggestions
	}
	report.Suggestions = SuggestDimensions(len(data), limit)

	return report
}

// probeHeader fills the container dimensions (and codec for MP4) from the
// header of data and reports whether it parsed.
func probeHeader(data []byte, format Format, report *Report) bool {
	if format == FormatMP4 {
		track, err := ProbeVideoTrack(data)
		if err != nil {
			return false
		}
		report.Codec = track.Codec
		report.Dimensions = &nv12.Dimensions{Width: track.Width, Height: track.Height}
		return true
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	report.Dimensions = &nv12.Dimensions{Width: cfg.Width, Height: cfg.Height}
	return true
}

// SuggestDimensions returns up to limit even (width, height) pairs, widths
// ascending, whose NV12 frame size is exactly size bytes.
func SuggestDimensions(size, limit int) []nv12.Dimensions {
	if size <= 0 || size%3 != 0 || limit <= 0 {
		return nil
	}
	pixels := size / 3 * 2

	var dims []nv12.Dimensions
	for w := 2; w < maxSuggestedWidth && w <= pixels; w += 2 {
		if pixels%w != 0 {
			continue
		}
		h := pixels / w
		if h%2 != 0 {
			continue
		}
		dims = append(dims, nv12.Dimensions{Width: w, Height: h})
		if len(dims) >= limit {
			break
		}
	}
	return dims
}
