package ports

import (
	"image"
	"image/color"

	"github.com/user/yuvnv12/pkg/nv12"
)

// PlaneStyle controls plane visualizations.
type PlaneStyle struct {
	Background color.Color
	LabelColor color.Color
	// ScaleChroma draws U and V at luma resolution (replicated) instead of
	// their native half resolution.
	ScaleChroma bool
}

// PlaneRenderer draws the Y, U and V planes of a frame side by side.
type PlaneRenderer interface {
	RenderPlanes(p nv12.Planes, style PlaneStyle) (image.Image, error)
}
