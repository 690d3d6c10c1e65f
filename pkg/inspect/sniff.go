package inspect

import (
	"bytes"
	"encoding/binary"
	"strings"
)

type signature struct {
	format Format
	match  func(data []byte) bool
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xff, 0xd8, 0xff}
)

var signatures = []signature{
	{FormatPNG, prefix(pngMagic)},
	{FormatJPEG, prefix(jpegMagic)},
	{FormatGIF, func(data []byte) bool {
		return bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a"))
	}},
	{FormatWebP, func(data []byte) bool {
		return len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
	}},
	{FormatTIFF, func(data []byte) bool {
		return bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*"))
	}},
	{FormatBMP, isBMP},
	{FormatMP4, func(data []byte) bool {
		return len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp"))
	}},
}

// isBMP checks the DIB header size as well, since "BM" alone is too weak to
// tell a bitmap from raw luma samples.
func isBMP(data []byte) bool {
	if len(data) < 18 || data[0] != 'B' || data[1] != 'M' {
		return false
	}
	switch binary.LittleEndian.Uint32(data[14:18]) {
	case 12, 40, 52, 56, 64, 108, 124:
		return true
	}
	return false
}

// strongSignature reports whether format is identified by at least eight
// fixed bytes. Shorter signatures can occur at the start of raw luma.
func strongSignature(format Format) bool {
	return format == FormatPNG || format == FormatWebP
}

func prefix(magic []byte) func([]byte) bool {
	return func(data []byte) bool {
		return bytes.HasPrefix(data, magic)
	}
}

// Sniff returns the container format whose signature data starts with, or
// FormatNone.
func Sniff(data []byte) Format {
	for _, sig := range signatures {
		if sig.match(data) {
			return sig.format
		}
	}
	return FormatNone
}

// FormatFromExtension maps a lower-case file extension including the dot to
// a container format.
func FormatFromExtension(ext string) Format {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".png":
		return FormatPNG
	case ".gif":
		return FormatGIF
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	case ".webp":
		return FormatWebP
	case ".mp4", ".m4v", ".mov":
		return FormatMP4
	default:
		return FormatNone
	}
}
