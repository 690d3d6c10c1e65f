// Package convert implements the image to NV12 conversion stage.
package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/pipeline"
	"github.com/user/yuvnv12/pkg/ports"
)

// Stage reads an image file and writes it as a raw NV12 frame.
type Stage struct {
	fs     ports.FileSystem
	codec  ports.ImageCodec
	nv12   *nv12.Codec
	logger ports.Logger
}

// NewStage creates a new convert stage. workers is passed to nv12.Options.
func NewStage(fs ports.FileSystem, codec ports.ImageCodec, logger ports.Logger, workers int) *Stage {
	return &Stage{
		fs:     fs,
		codec:  codec,
		nv12:   nv12.NewCodec(nv12.Options{Workers: workers}),
		logger: logger.WithComponent("convert"),
	}
}

// Execute converts input.InputPath to an NV12 file at input.OutputPath.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	result := pipeline.ConvertResult{}

	exists, err := s.fs.Exists(input.InputPath)
	if err != nil {
		return result, fmt.Errorf("check input: %w", err)
	}
	if !exists {
		return result, fmt.Errorf("%w: %s", pipeline.ErrInputNotFound, input.InputPath)
	}

	if !IsSupportedExtension(input.InputPath) {
		s.logger.Warn("Input extension %q is not .jpg, .jpeg or .png; trying anyway", filepath.Ext(input.InputPath))
		result.UnusualExtension = true
	}

	if size, err := s.fs.Size(input.InputPath); err == nil {
		result.InputSize = size
	}

	s.logger.Debug("Decoding image %s", input.InputPath)
	img, err := s.codec.DecodeFile(input.InputPath)
	if err != nil {
		return result, fmt.Errorf("decode image: %w", err)
	}
	s.logger.Debug("Decoded %dx%d image", img.Width, img.Height)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	s.logger.Debug("Encoding NV12 with %d workers", s.nv12.Workers())
	data, err := s.nv12.Encode(img.Pix, img.Width, img.Height)
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := s.fs.WriteFile(input.OutputPath, data); err != nil {
		return result, fmt.Errorf("write output: %w", err)
	}
	s.logger.Debug("Wrote %d bytes", len(data))

	result.Dimensions = nv12.Dimensions{Width: img.Width, Height: img.Height}
	result.OutputSize = len(data)
	return result, nil
}

// IsSupportedExtension reports whether path has a .jpg, .jpeg or .png
// extension, case-insensitively.
func IsSupportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

var _ pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult] = (*Stage)(nil)
