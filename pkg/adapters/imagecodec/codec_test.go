package imagecodec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/yuvnv12/pkg/mocks"
	"github.com/user/yuvnv12/pkg/ports"
)

func testImage(w, h int) ports.RGBImage {
	pix := make([]byte, w*h*3)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	return ports.RGBImage{Pix: pix, Width: w, Height: h}
}

func TestCodec_PNGRoundTrip(t *testing.T) {
	fs := mocks.NewFileSystem()
	codec := New(fs)
	src := testImage(6, 4)

	if err := codec.EncodeFile("/out/test.png", src, ports.EncodeOptions{}); err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	data, ok := fs.GetFile("/out/test.png")
	if !ok {
		t.Fatal("expected file to be written")
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("expected PNG signature")
	}

	got, err := codec.DecodeFile("/out/test.png")
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if got.Width != 6 || got.Height != 4 {
		t.Fatalf("expected 6x4, got %dx%d", got.Width, got.Height)
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("PNG round trip should be lossless")
	}
}

func TestCodec_JPEGByExtension(t *testing.T) {
	fs := mocks.NewFileSystem()
	codec := New(fs)

	// Format in options is only a fallback
	err := codec.EncodeFile("/out/test.jpg", testImage(8, 8), ports.EncodeOptions{Format: ports.FormatPNG})
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	data, _ := fs.GetFile("/out/test.jpg")
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		t.Error("expected JPEG signature")
	}
}

func TestCodec_FallbackFormat(t *testing.T) {
	fs := mocks.NewFileSystem()
	codec := New(fs)

	err := codec.EncodeFile("/out/image.out", testImage(2, 2), ports.EncodeOptions{Format: ports.FormatJPEG, Quality: 50})
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	data, _ := fs.GetFile("/out/image.out")
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		t.Error("expected JPEG signature from fallback format")
	}
}

func TestCodec_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("disk full")
	}
	codec := New(fs)

	if err := codec.EncodeFile("/out/test.png", testImage(2, 2), ports.EncodeOptions{}); err == nil {
		t.Error("expected error from write failure")
	}
}

func TestDecode_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"raw bytes", make([]byte, 24)},
		{"truncated png", []byte("\x89PNG\r\n\x1a\n")},
		{"mp4", []byte("\x00\x00\x00\x18ftypisom\x00\x00\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("input.bin", tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ports.ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
			var ufe *UnsupportedFormatError
			if !errors.As(err, &ufe) || ufe.Path != "input.bin" {
				t.Errorf("expected UnsupportedFormatError for input.bin, got %v", err)
			}
		})
	}
}

func TestCodec_DecodeReadError(t *testing.T) {
	codec := New(mocks.NewFileSystem())

	_, err := codec.DecodeFile("/missing.png")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ports.ErrUnsupportedFormat) {
		t.Error("read failure should not be reported as unsupported format")
	}
}

func TestEncode_BufferSizeMismatch(t *testing.T) {
	img := ports.RGBImage{Pix: make([]byte, 10), Width: 2, Height: 2}
	if _, err := Encode(img, ports.FormatPNG, 0); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}

func TestDecode_PalettedPNG(t *testing.T) {
	pal := color.Palette{color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	img.SetColorIndex(1, 1, 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	got, err := Decode("p.png", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Pix[0] != 255 || got.Pix[2] != 0 {
		t.Errorf("expected red first pixel, got %v", got.Pix[:3])
	}
	last := got.Pix[9:12]
	if last[0] != 0 || last[2] != 255 {
		t.Errorf("expected blue last pixel, got %v", last)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		fallback ports.ImageFormat
		want     ports.ImageFormat
	}{
		{"a.png", ports.FormatJPEG, ports.FormatPNG},
		{"a.PNG", ports.FormatJPEG, ports.FormatPNG},
		{"a.jpg", ports.FormatPNG, ports.FormatJPEG},
		{"a.jpeg", ports.FormatPNG, ports.FormatJPEG},
		{"a.yuv", ports.FormatJPEG, ports.FormatJPEG},
		{"noext", ports.FormatPNG, ports.FormatPNG},
	}

	for _, tt := range tests {
		if got := FormatForPath(tt.path, tt.fallback); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
