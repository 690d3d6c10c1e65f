package nv12

import "fmt"

// Dimensions is the pixel extent of a frame.
type Dimensions struct {
	Width  int
	Height int
}

// Validate checks d with Validate.
func (d Dimensions) Validate() error {
	return Validate(d.Width, d.Height)
}

// Pixels returns Width*Height.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// FrameSize returns the NV12 byte size for d.
func (d Dimensions) FrameSize() int {
	return FrameSize(d.Width, d.Height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Validate returns a *DimensionError unless width and height are both
// positive and even. 4:2:0 subsampling tiles the image in 2x2 blocks, so
// there is no remainder row or column to handle.
func Validate(width, height int) error {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return &DimensionError{Width: width, Height: height}
	}
	return nil
}
