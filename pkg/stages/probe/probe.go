// Package probe implements the file inspection stage.
package probe

import (
	"context"
	"fmt"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/pipeline"
	"github.com/user/yuvnv12/pkg/ports"
)

// Stage reads a file and classifies it as an image container, a raw NV12
// frame or unknown data.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("probe"),
	}
}

// Execute inspects input.Path.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	result := pipeline.ProbeResult{Path: input.Path}

	exists, err := s.fs.Exists(input.Path)
	if err != nil {
		return result, fmt.Errorf("check input: %w", err)
	}
	if !exists {
		return result, fmt.Errorf("%w: %s", pipeline.ErrInputNotFound, input.Path)
	}

	data, err := s.fs.ReadFile(input.Path)
	if err != nil {
		return result, fmt.Errorf("read input: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	report := inspect.InspectWithOptions(data, input.Candidate, inspect.Options{
		MaxSuggestions: input.MaxSuggestions,
	})

	switch report.Kind {
	case inspect.KindContainer:
		s.logger.Debug("Detected %s container", string(report.Format))
	case inspect.KindRawYUV:
		s.logger.Debug("Buffer matches %dx%d NV12", report.Dimensions.Width, report.Dimensions.Height)
	default:
		s.logger.Debug("Unrecognized buffer of %d bytes", report.Size)
	}

	result.Report = report
	return result, nil
}

var _ pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult] = (*Stage)(nil)
