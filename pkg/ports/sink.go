package ports

import (
	"image"

	"github.com/user/yuvnv12/pkg/nv12"
)

// DebugSink receives intermediate results of a restore for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SavePlanes saves each plane of a frame as a grayscale image.
	SavePlanes(p nv12.Planes) error

	// SaveVisualization saves a rendered plane overview.
	SaveVisualization(img image.Image) error
}
