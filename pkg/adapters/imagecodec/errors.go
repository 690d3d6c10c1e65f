package imagecodec

import (
	"fmt"

	"github.com/user/yuvnv12/pkg/ports"
)

// UnsupportedFormatError is returned when a file is not a decodable image.
// It matches ports.ErrUnsupportedFormat via errors.Is.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("imagecodec: %s: %s", e.Path, ports.ErrUnsupportedFormat)
	}
	return fmt.Sprintf("imagecodec: %s: %s: %s", e.Path, ports.ErrUnsupportedFormat, e.Reason)
}

// Is reports whether target is ports.ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ports.ErrUnsupportedFormat
}
