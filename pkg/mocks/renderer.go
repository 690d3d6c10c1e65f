package mocks

import (
	"image"

	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/ports"
)

// PlaneRenderer is a mock implementation of ports.PlaneRenderer.
type PlaneRenderer struct {
	RenderPlanesFunc func(p nv12.Planes, style ports.PlaneStyle) (image.Image, error)

	Calls int
}

func (m *PlaneRenderer) RenderPlanes(p nv12.Planes, style ports.PlaneStyle) (image.Image, error) {
	m.Calls++
	if m.RenderPlanesFunc != nil {
		return m.RenderPlanesFunc(p, style)
	}
	return image.NewGray(image.Rect(0, 0, p.Width, p.Height)), nil
}

var _ ports.PlaneRenderer = (*PlaneRenderer)(nil)
