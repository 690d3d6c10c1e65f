// Package summarizer builds human-readable reports of conversions and
// inspections.
package summarizer

import (
	"time"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/nv12"
)

// Operation names what a Summary describes.
type Operation string

const (
	OperationConvert Operation = "convert"
	OperationRestore Operation = "restore"
	OperationInspect Operation = "inspect"
)

// Summary contains the data shown after a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	Operation   Operation

	// Files
	Input  FileInfo
	Output FileInfo

	// Frame is zero when the dimensions are unknown.
	Frame nv12.Dimensions

	// Inspection is set for OperationInspect.
	Inspection *InspectionInfo

	Warnings []string
}

// FileInfo describes a file by path and size in bytes.
type FileInfo struct {
	Path string
	Size int64
}

// InspectionInfo is the part of an inspect.Report worth printing.
type InspectionInfo struct {
	Kind             inspect.Kind
	Format           inspect.Format
	Codec            string
	Collision        inspect.Format
	HasCandidate     bool
	MatchesCandidate bool
	Suggestions      []nv12.Dimensions
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary(op Operation) *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
		Operation:   op,
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder(op Operation) *Builder {
	return &Builder{
		summary: NewSummary(op),
	}
}

// WithInput sets the input file.
func (b *Builder) WithInput(path string, size int64) *Builder {
	b.summary.Input = FileInfo{Path: path, Size: size}
	return b
}

// WithOutput sets the output file.
func (b *Builder) WithOutput(path string, size int64) *Builder {
	b.summary.Output = FileInfo{Path: path, Size: size}
	return b
}

// WithFrame sets the frame dimensions.
func (b *Builder) WithFrame(d nv12.Dimensions) *Builder {
	b.summary.Frame = d
	return b
}

// WithInspection copies the printable fields of report. hasCandidate tells
// whether MatchesCandidate is meaningful.
func (b *Builder) WithInspection(report inspect.Report, hasCandidate bool) *Builder {
	b.summary.Inspection = &InspectionInfo{
		Kind:             report.Kind,
		Format:           report.Format,
		Codec:            report.Codec,
		Collision:        report.Collision,
		HasCandidate:     hasCandidate,
		MatchesCandidate: report.MatchesCandidate,
		Suggestions:      report.Suggestions,
	}
	if report.Dimensions != nil {
		b.summary.Frame = *report.Dimensions
	}
	return b
}

// WithWarning appends a warning line.
func (b *Builder) WithWarning(msg string) *Builder {
	b.summary.Warnings = append(b.summary.Warnings, msg)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
