package pipeline

import "errors"

var (
	// ErrInputNotFound is returned when a stage input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrImageInput is returned when an NV12 read is given an image file.
	ErrImageInput = errors.New("input looks like an image file, not raw NV12")
)
