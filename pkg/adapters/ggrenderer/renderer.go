// Package ggrenderer draws NV12 plane overviews using the gg library.
package ggrenderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/ports"
)

const (
	// Padding is the gap around and between panels.
	Padding = 8
	// LabelHeight is the band above the panels reserved for captions.
	LabelHeight = 20
)

// Renderer implements ports.PlaneRenderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderPlanes draws the Y, U and V planes of p as grayscale panels from
// left to right, each captioned with its name and size.
func (r *Renderer) RenderPlanes(p nv12.Planes, style ports.PlaneStyle) (image.Image, error) {
	if err := nv12.Validate(p.Width, p.Height); err != nil {
		return nil, err
	}
	cw, ch := p.Width/2, p.Height/2
	if len(p.Y) != p.Width*p.Height || len(p.U) != cw*ch || len(p.V) != cw*ch {
		return nil, fmt.Errorf("ggrenderer: plane sizes do not match %dx%d", p.Width, p.Height)
	}

	bg := style.Background
	if bg == nil {
		bg = color.Black
	}
	fg := style.LabelColor
	if fg == nil {
		fg = color.White
	}

	yImg := PlaneImage(p.Y, p.Width, p.Height)
	uImg := PlaneImage(p.U, cw, ch)
	vImg := PlaneImage(p.V, cw, ch)
	if style.ScaleChroma {
		uImg = ScalePlane(uImg, p.Width, p.Height)
		vImg = ScalePlane(vImg, p.Width, p.Height)
	}

	panels := []struct {
		name string
		img  *image.Gray
	}{
		{"Y", yImg},
		{"U", uImg},
		{"V", vImg},
	}

	width, height := CanvasSize(p.Width, p.Height, style.ScaleChroma)
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()

	x := Padding
	for _, panel := range panels {
		b := panel.img.Bounds()
		dc.DrawImage(panel.img, x, LabelHeight+Padding)

		dc.SetColor(fg)
		label := fmt.Sprintf("%s %dx%d", panel.name, b.Dx(), b.Dy())
		dc.DrawStringAnchored(label, float64(x), float64(LabelHeight)/2+Padding/2, 0, 0.5)

		x += b.Dx() + Padding
	}

	return dc.Image(), nil
}

// CanvasSize returns the size of the overview RenderPlanes produces for a
// width x height frame.
func CanvasSize(width, height int, scaleChroma bool) (int, int) {
	cw, ch := width/2, height/2
	if scaleChroma {
		cw, ch = width, height
	}
	w := Padding + width + Padding + cw + Padding + cw + Padding
	h := LabelHeight + Padding + max(height, ch) + Padding
	return w, h
}

// PlaneImage wraps a single plane as a grayscale image without copying.
func PlaneImage(plane []byte, width, height int) *image.Gray {
	return &image.Gray{
		Pix:    plane,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// ScalePlane resizes a plane with nearest-neighbour sampling, matching how
// chroma is replicated on decode.
func ScalePlane(src *image.Gray, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

var _ ports.PlaneRenderer = (*Renderer)(nil)
