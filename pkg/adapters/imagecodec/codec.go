// Package imagecodec loads and saves image files as packed RGB buffers.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/yuvnv12/pkg/inspect"
	"github.com/user/yuvnv12/pkg/ports"
)

// DefaultJPEGQuality is used when EncodeOptions.Quality is out of range.
const DefaultJPEGQuality = 90

// Codec implements ports.ImageCodec on top of image decoders from the
// standard library and golang.org/x/image.
type Codec struct {
	fs ports.FileSystem
}

// New creates a Codec reading and writing through fs.
func New(fs ports.FileSystem) *Codec {
	return &Codec{fs: fs}
}

// DecodeFile reads and decodes an image file.
func (c *Codec) DecodeFile(path string) (ports.RGBImage, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return ports.RGBImage{}, fmt.Errorf("read image: %w", err)
	}
	return Decode(path, data)
}

// Decode decodes image data. path is used for error messages only.
func Decode(path string, data []byte) (ports.RGBImage, error) {
	switch inspect.Sniff(data) {
	case inspect.FormatNone:
		return ports.RGBImage{}, &UnsupportedFormatError{Path: path, Reason: "no known image signature"}
	case inspect.FormatMP4:
		return ports.RGBImage{}, &UnsupportedFormatError{Path: path, Reason: "MP4 video, not a still image"}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ports.RGBImage{}, &UnsupportedFormatError{Path: path, Reason: err.Error()}
	}
	return ports.ToRGB(img), nil
}

// EncodeFile encodes img and writes it through the file system.
func (c *Codec) EncodeFile(path string, img ports.RGBImage, opts ports.EncodeOptions) error {
	data, err := Encode(img, FormatForPath(path, opts.Format), opts.Quality)
	if err != nil {
		return err
	}
	if err := c.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// Encode encodes img in the given format.
func Encode(img ports.RGBImage, format ports.ImageFormat, quality int) ([]byte, error) {
	if len(img.Pix) != img.Width*img.Height*3 {
		return nil, fmt.Errorf("imagecodec: pixel buffer is %d bytes, want %d for %dx%d",
			len(img.Pix), img.Width*img.Height*3, img.Width, img.Height)
	}

	rgba := ports.FromRGB(img)
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		if err := jpeg.Encode(&buf, rgba, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, rgba); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ports.ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// FormatForPath picks the output format from the path extension.
func FormatForPath(path string, fallback ports.ImageFormat) ports.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ports.FormatJPEG
	case ".png":
		return ports.FormatPNG
	default:
		return fallback
	}
}

var _ ports.ImageCodec = (*Codec)(nil)
