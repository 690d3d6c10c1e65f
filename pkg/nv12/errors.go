package nv12

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension matches any *DimensionError via errors.Is.
	ErrDimension = errors.New("nv12: invalid dimensions")

	// ErrSizeMismatch matches any *SizeMismatchError via errors.Is.
	ErrSizeMismatch = errors.New("nv12: buffer size mismatch")
)

// DimensionError reports a width or height that cannot be 4:2:0 subsampled.
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("nv12: image dimensions must be positive even numbers, got %dx%d", e.Width, e.Height)
}

// Is reports whether target is ErrDimension.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}

// Layout names the buffer layout a SizeMismatchError refers to.
type Layout string

const (
	LayoutNV12  Layout = "nv12"
	LayoutRGB24 Layout = "rgb24"
)

// SizeMismatchError reports a buffer whose length does not fit the declared dimensions.
type SizeMismatchError struct {
	Layout   Layout
	Width    int
	Height   int
	// Expected is negative when the dimensions have no representable size.
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	if e.Expected < 0 {
		return fmt.Sprintf("nv12: %s size mismatch for %dx%d: no representable frame size, got %d bytes",
			e.Layout, e.Width, e.Height, e.Actual)
	}
	return fmt.Sprintf("nv12: %s size mismatch for %dx%d: expected %d bytes, got %d",
		e.Layout, e.Width, e.Height, e.Expected, e.Actual)
}

// Is reports whether target is ErrSizeMismatch.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}
