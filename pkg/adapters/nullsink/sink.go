// Package nullsink provides the DebugSink used when --debug is off.
package nullsink

import (
	"image"

	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/ports"
)

// Sink drops decoded planes and plane overviews. Restore skips unpacking
// planes for it because Enabled is false.
type Sink struct{}

// New creates a Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled always reports false.
func (s *Sink) Enabled() bool {
	return false
}

// SavePlanes discards p.
func (s *Sink) SavePlanes(p nv12.Planes) error {
	return nil
}

// SaveVisualization discards img.
func (s *Sink) SaveVisualization(img image.Image) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
