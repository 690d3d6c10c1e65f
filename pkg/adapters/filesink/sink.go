// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/ports"
)

// Sink saves debug output as PNG files under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.ImageCodec
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, codec ports.ImageCodec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SavePlanes writes y.png, u.png and v.png. Chroma planes keep their native
// half resolution.
func (s *Sink) SavePlanes(p nv12.Planes) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return fmt.Errorf("create debug dir: %w", err)
	}

	cw, ch := p.Width/2, p.Height/2
	planes := []struct {
		name string
		data []byte
		w, h int
	}{
		{"y.png", p.Y, p.Width, p.Height},
		{"u.png", p.U, cw, ch},
		{"v.png", p.V, cw, ch},
	}

	for _, plane := range planes {
		img := grayToRGB(plane.data, plane.w, plane.h)
		path := filepath.Join(s.baseDir, plane.name)
		if err := s.codec.EncodeFile(path, img, ports.EncodeOptions{Format: ports.FormatPNG}); err != nil {
			return fmt.Errorf("save plane %s: %w", plane.name, err)
		}
	}
	return nil
}

// SaveVisualization writes planes.png.
func (s *Sink) SaveVisualization(img image.Image) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return fmt.Errorf("create debug dir: %w", err)
	}
	path := filepath.Join(s.baseDir, "planes.png")
	if err := s.codec.EncodeFile(path, ports.ToRGB(img), ports.EncodeOptions{Format: ports.FormatPNG}); err != nil {
		return fmt.Errorf("save visualization: %w", err)
	}
	return nil
}

func grayToRGB(plane []byte, width, height int) ports.RGBImage {
	pix := make([]byte, len(plane)*3)
	for i, v := range plane {
		pix[3*i] = v
		pix[3*i+1] = v
		pix[3*i+2] = v
	}
	return ports.RGBImage{Pix: pix, Width: width, Height: height}
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
