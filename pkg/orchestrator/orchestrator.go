// Package orchestrator coordinates the convert, restore and probe stages.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/pipeline"
	"github.com/user/yuvnv12/pkg/ports"
)

// ErrPartialDimensions is returned by an inspect run given only one of width
// and height.
var ErrPartialDimensions = errors.New("orchestrator: width and height must be given together")

// Mode selects the operation Run performs.
type Mode int

const (
	// ModeConvert writes an image file as an NV12 frame.
	ModeConvert Mode = iota
	// ModeRestore decodes an NV12 frame back to an image.
	ModeRestore
	// ModeInspect classifies a file without converting it.
	ModeInspect
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeConvert:
		return "convert"
	case ModeRestore:
		return "restore"
	case ModeInspect:
		return "inspect"
	default:
		return "unknown"
	}
}

// Config contains all configuration for a run.
type Config struct {
	Mode Mode

	// Input/output
	InputPath  string
	OutputPath string
	PlanesPath string

	// Frame dimensions for restore, and the candidate for inspect.
	Width  int
	Height int

	// Image output
	ImageFormat ports.ImageFormat
	JPEGQuality int
	PlaneStyle  ports.PlaneStyle

	// Inspection
	MaxSuggestions int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeConvert,
		ImageFormat:    ports.FormatPNG,
		JPEGQuality:    90,
		MaxSuggestions: inspect.DefaultMaxSuggestions,
	}
}

// Orchestrator dispatches a run to the matching stage.
type Orchestrator struct {
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult]
	restoreStage pipeline.Stage[pipeline.RestoreInput, pipeline.RestoreResult]
	probeStage   pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult],
	restoreStage pipeline.Stage[pipeline.RestoreInput, pipeline.RestoreResult],
	probeStage pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult],
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		convertStage: convertStage,
		restoreStage: restoreStage,
		probeStage:   probeStage,
		logger:       logger,
	}
}

// Run executes config.Mode.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	switch config.Mode {
	case ModeConvert:
		return o.convert(ctx, config)
	case ModeRestore:
		return o.restore(ctx, config)
	case ModeInspect:
		return o.inspect(ctx, config)
	default:
		return RunResult{}, fmt.Errorf("unknown mode %d", config.Mode)
	}
}

func (o *Orchestrator) convert(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Converting %s to NV12", config.InputPath)

	res, err := o.convertStage.Execute(ctx, pipeline.ConvertInput{
		InputPath:  config.InputPath,
		OutputPath: config.OutputPath,
	})
	if err != nil {
		o.logger.Error("Failed to convert: %s", err.Error())
		return RunResult{}, fmt.Errorf("convert stage: %w", err)
	}
	o.logger.Info("Output saved to %s", config.OutputPath)

	return RunResult{
		Mode:             ModeConvert,
		InputPath:        config.InputPath,
		OutputPath:       config.OutputPath,
		Dimensions:       res.Dimensions,
		InputSize:        res.InputSize,
		OutputSize:       int64(res.OutputSize),
		UnusualExtension: res.UnusualExtension,
	}, nil
}

func (o *Orchestrator) restore(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Restoring %s (%dx%d)", config.InputPath, config.Width, config.Height)

	res, err := o.restoreStage.Execute(ctx, pipeline.RestoreInput{
		InputPath:  config.InputPath,
		Width:      config.Width,
		Height:     config.Height,
		OutputPath: config.OutputPath,
		PlanesPath: config.PlanesPath,
		ImageOptions: ports.EncodeOptions{
			Format:  config.ImageFormat,
			Quality: config.JPEGQuality,
		},
		PlaneStyle: config.PlaneStyle,
	})
	if err != nil {
		o.logger.Error("Failed to restore: %s", err.Error())
		return RunResult{}, fmt.Errorf("restore stage: %w", err)
	}
	if config.OutputPath != "" {
		o.logger.Info("Output saved to %s", config.OutputPath)
	}
	if res.PlanesWritten {
		o.logger.Info("Output saved to %s", config.PlanesPath)
	}

	return RunResult{
		Mode:          ModeRestore,
		InputPath:     config.InputPath,
		OutputPath:    config.OutputPath,
		PlanesPath:    config.PlanesPath,
		Dimensions:    res.Dimensions,
		InputSize:     int64(res.InputSize),
		OutputSize:    res.OutputSize,
		PlanesWritten: res.PlanesWritten,
	}, nil
}

func (o *Orchestrator) inspect(ctx context.Context, config Config) (RunResult, error) {
	if (config.Width == 0) != (config.Height == 0) {
		return RunResult{}, fmt.Errorf("%w: got %dx%d", ErrPartialDimensions, config.Width, config.Height)
	}

	o.logger.Info("Inspecting %s", config.InputPath)

	input := pipeline.ProbeInput{
		Path:           config.InputPath,
		MaxSuggestions: config.MaxSuggestions,
	}
	if config.Width != 0 || config.Height != 0 {
		input.Candidate = &nv12.Dimensions{Width: config.Width, Height: config.Height}
	}

	res, err := o.probeStage.Execute(ctx, input)
	if err != nil {
		o.logger.Error("Failed to inspect: %s", err.Error())
		return RunResult{}, fmt.Errorf("probe stage: %w", err)
	}

	report := res.Report
	result := RunResult{
		Mode:      ModeInspect,
		InputPath: config.InputPath,
		InputSize: int64(report.Size),
		Report:    &report,

		HasCandidate: input.Candidate != nil,
	}
	if report.Dimensions != nil {
		result.Dimensions = *report.Dimensions
	}
	return result, nil
}

// RunResult contains the results of a run for summary generation.
type RunResult struct {
	Mode Mode

	InputPath  string
	OutputPath string
	PlanesPath string

	// Dimensions of the frame; zero for inspected files of unknown size.
	Dimensions nv12.Dimensions

	// File sizes in bytes.
	InputSize  int64
	OutputSize int64

	UnusualExtension bool
	PlanesWritten    bool

	// Report is set in ModeInspect. HasCandidate tells whether
	// Report.MatchesCandidate was computed against given dimensions.
	Report       *inspect.Report
	HasCandidate bool
}
