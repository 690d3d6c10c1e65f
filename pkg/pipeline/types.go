package pipeline

import (
	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/ports"
)

// =============================================================================
// Convert Stage Types
// =============================================================================

// ConvertInput names an image file to convert to NV12.
type ConvertInput struct {
	InputPath  string
	OutputPath string
}

// ConvertResult describes a written NV12 file.
type ConvertResult struct {
	Dimensions nv12.Dimensions
	// InputSize is the size of the source image file in bytes.
	InputSize int64
	// OutputSize is the size of the NV12 file, always Dimensions.FrameSize().
	OutputSize int
	// UnusualExtension is set when the input was not .jpg, .jpeg or .png.
	UnusualExtension bool
}

// =============================================================================
// Restore Stage Types
// =============================================================================

// RestoreInput names an NV12 file and the dimensions it was written with.
type RestoreInput struct {
	InputPath string
	Width     int
	Height    int

	// OutputPath receives the decoded image. Empty skips writing.
	OutputPath string
	// PlanesPath receives a Y/U/V plane overview. Empty skips rendering.
	PlanesPath string

	ImageOptions ports.EncodeOptions
	PlaneStyle   ports.PlaneStyle
}

// RestoreResult describes a decoded NV12 file.
type RestoreResult struct {
	Dimensions nv12.Dimensions
	// InputSize is the NV12 file size in bytes.
	InputSize int
	// OutputSize is the written image file size, zero when none was written.
	OutputSize int64
	// Image is the decoded frame.
	Image ports.RGBImage
	// PlanesWritten is set when a plane overview was saved.
	PlanesWritten bool
}

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput names a file to inspect.
type ProbeInput struct {
	Path string
	// Candidate is the expected NV12 frame size, if known.
	Candidate *nv12.Dimensions
	// MaxSuggestions bounds Report.Suggestions. Zero uses the default.
	MaxSuggestions int
}

// ProbeResult is the inspection report for a file.
type ProbeResult struct {
	Path   string
	Report inspect.Report
}
