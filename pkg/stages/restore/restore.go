// Package restore implements the NV12 to image restoration stage.
package restore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/pipeline"
	"github.com/user/yuvnv12/pkg/ports"
)

// Stage decodes a raw NV12 file back to RGB, optionally saving the image and
// a rendering of its planes.
type Stage struct {
	fs       ports.FileSystem
	codec    ports.ImageCodec
	renderer ports.PlaneRenderer
	sink     ports.DebugSink
	nv12     *nv12.Codec
	logger   ports.Logger
}

// NewStage creates a new restore stage.
func NewStage(fs ports.FileSystem, codec ports.ImageCodec, renderer ports.PlaneRenderer, sink ports.DebugSink, logger ports.Logger, workers int) *Stage {
	return &Stage{
		fs:       fs,
		codec:    codec,
		renderer: renderer,
		sink:     sink,
		nv12:     nv12.NewCodec(nv12.Options{Workers: workers}),
		logger:   logger.WithComponent("restore"),
	}
}

// Execute decodes input.InputPath as a width x height NV12 frame.
func (s *Stage) Execute(ctx context.Context, input pipeline.RestoreInput) (pipeline.RestoreResult, error) {
	result := pipeline.RestoreResult{}

	if format := inspect.FormatFromExtension(filepath.Ext(input.InputPath)); format != inspect.FormatNone && format != inspect.FormatMP4 {
		return result, fmt.Errorf("%w: %s has a %s extension", pipeline.ErrImageInput, input.InputPath, format)
	}

	exists, err := s.fs.Exists(input.InputPath)
	if err != nil {
		return result, fmt.Errorf("check input: %w", err)
	}
	if !exists {
		return result, fmt.Errorf("%w: %s", pipeline.ErrInputNotFound, input.InputPath)
	}

	s.logger.Debug("Reading NV12 frame %s", input.InputPath)
	data, err := s.fs.ReadFile(input.InputPath)
	if err != nil {
		return result, fmt.Errorf("read input: %w", err)
	}
	result.InputSize = len(data)

	s.logger.Debug("Decoding NV12 with %d workers", s.nv12.Workers())
	pix, err := s.nv12.Decode(data, input.Width, input.Height)
	if err != nil {
		return result, err
	}
	result.Dimensions = nv12.Dimensions{Width: input.Width, Height: input.Height}
	result.Image = ports.RGBImage{Pix: pix, Width: input.Width, Height: input.Height}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if input.OutputPath != "" {
		if err := s.codec.EncodeFile(input.OutputPath, result.Image, input.ImageOptions); err != nil {
			return result, fmt.Errorf("write image: %w", err)
		}
		if size, err := s.fs.Size(input.OutputPath); err == nil {
			result.OutputSize = size
		}
	}

	if input.PlanesPath == "" && !s.sink.Enabled() {
		return result, nil
	}

	// Size was validated by Decode.
	planes, err := nv12.UnpackPlanes(data, input.Width, input.Height)
	if err != nil {
		return result, err
	}

	if input.PlanesPath != "" {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.writePlanes(input.PlanesPath, planes, input); err != nil {
			return result, err
		}
		result.PlanesWritten = true
	}

	if s.sink.Enabled() {
		s.logger.Debug("Saving debug planes")
		if err := s.sink.SavePlanes(planes); err != nil {
			s.logger.Warn("Failed to save debug planes: %s", err.Error())
		}
	}

	return result, nil
}

func (s *Stage) writePlanes(path string, planes nv12.Planes, input pipeline.RestoreInput) error {
	s.logger.Debug("Rendering plane overview")
	img, err := s.renderer.RenderPlanes(planes, input.PlaneStyle)
	if err != nil {
		return fmt.Errorf("render planes: %w", err)
	}

	opts := input.ImageOptions
	opts.Format = ports.FormatPNG
	if err := s.codec.EncodeFile(path, ports.ToRGB(img), opts); err != nil {
		return fmt.Errorf("write planes: %w", err)
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveVisualization(img); err != nil {
			s.logger.Warn("Failed to save debug planes: %s", err.Error())
		}
	}
	return nil
}

var _ pipeline.Stage[pipeline.RestoreInput, pipeline.RestoreResult] = (*Stage)(nil)
