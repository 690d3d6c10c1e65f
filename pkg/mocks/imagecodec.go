package mocks

import (
	"fmt"
	"sync"

	"github.com/user/yuvnv12/pkg/ports"
)

// ImageCodec is a mock implementation of ports.ImageCodec backed by a map of
// decoded images.
type ImageCodec struct {
	mu      sync.Mutex
	images  map[string]ports.RGBImage
	Encoded []EncodeFileCall

	DecodeFileFunc func(path string) (ports.RGBImage, error)
	EncodeFileFunc func(path string, img ports.RGBImage, opts ports.EncodeOptions) error
}

// EncodeFileCall records a call to EncodeFile.
type EncodeFileCall struct {
	Path  string
	Image ports.RGBImage
	Opts  ports.EncodeOptions
}

// NewImageCodec creates a new mock ImageCodec.
func NewImageCodec() *ImageCodec {
	return &ImageCodec{images: make(map[string]ports.RGBImage)}
}

// AddImage registers an image returned by DecodeFile for path.
func (m *ImageCodec) AddImage(path string, img ports.RGBImage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[path] = img
}

func (m *ImageCodec) DecodeFile(path string) (ports.RGBImage, error) {
	if m.DecodeFileFunc != nil {
		return m.DecodeFileFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.images[path]
	if !ok {
		return ports.RGBImage{}, fmt.Errorf("%w: %s", ports.ErrUnsupportedFormat, path)
	}
	return img, nil
}

func (m *ImageCodec) EncodeFile(path string, img ports.RGBImage, opts ports.EncodeOptions) error {
	m.mu.Lock()
	m.Encoded = append(m.Encoded, EncodeFileCall{Path: path, Image: img, Opts: opts})
	m.mu.Unlock()
	if m.EncodeFileFunc != nil {
		return m.EncodeFileFunc(path, img, opts)
	}
	return nil
}

var _ ports.ImageCodec = (*ImageCodec)(nil)
