package ports

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned by an ImageCodec that cannot recognize an
// image container.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// String returns the lower-case format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses "png", "jpeg" or "jpg".
func ParseImageFormat(s string) (ImageFormat, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return FormatPNG, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// RGBImage is a decoded image as packed 8-bit RGB triples, row-major, with
// no stride padding.
type RGBImage struct {
	Pix    []byte
	Width  int
	Height int
}

// EncodeOptions controls ImageCodec.EncodeFile.
type EncodeOptions struct {
	// Format is used when the path extension does not name a format.
	Format ImageFormat
	// Quality is the JPEG quality (1-100).
	Quality int
}

// ImageCodec loads and saves image files as packed RGB.
type ImageCodec interface {
	// DecodeFile reads and decodes an image file. Alpha is discarded.
	DecodeFile(path string) (RGBImage, error)

	// EncodeFile encodes img and writes it to path. The format follows the
	// path extension, falling back to opts.Format.
	EncodeFile(path string, img RGBImage, opts EncodeOptions) error
}

// ToRGB flattens img to packed RGB. Alpha is dropped without compositing,
// keeping the straight (non-premultiplied) colour.
func ToRGB(img image.Image) RGBImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		out := pix[y*w*3 : (y+1)*w*3]
		for x := 0; x < w; x++ {
			out[3*x] = row[4*x]
			out[3*x+1] = row[4*x+1]
			out[3*x+2] = row[4*x+2]
		}
	}
	return RGBImage{Pix: pix, Width: w, Height: h}
}

// FromRGB expands packed RGB to an opaque *image.RGBA.
func FromRGB(img RGBImage) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, j := 0, 0; i < len(img.Pix); i, j = i+3, j+4 {
		rgba.Pix[j] = img.Pix[i]
		rgba.Pix[j+1] = img.Pix[i+1]
		rgba.Pix[j+2] = img.Pix[i+2]
		rgba.Pix[j+3] = 0xff
	}
	return rgba
}
