package mocks

import (
	"image"

	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	EnabledValue bool

	SavePlanesFunc        func(p nv12.Planes) error
	SaveVisualizationFunc func(img image.Image) error

	// Recorded calls for verification
	SavedPlanes         []nv12.Planes
	SavedVisualizations []image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{EnabledValue: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.EnabledValue
}

func (m *DebugSink) SavePlanes(p nv12.Planes) error {
	m.SavedPlanes = append(m.SavedPlanes, p)
	if m.SavePlanesFunc != nil {
		return m.SavePlanesFunc(p)
	}
	return nil
}

func (m *DebugSink) SaveVisualization(img image.Image) error {
	m.SavedVisualizations = append(m.SavedVisualizations, img)
	if m.SaveVisualizationFunc != nil {
		return m.SaveVisualizationFunc(img)
	}
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
