// Package nv12 converts between packed 8-bit RGB buffers and the NV12
// (YUV 4:2:0 semi-planar, BT.601 full range) byte layout.
//
// Layout of an NV12 frame of width w and height h:
//
//	offset 0    : Y plane, w*h bytes, row-major
//	offset w*h  : UV plane, w*(h/2) bytes of interleaved U,V pairs over a
//	              (w/2)x(h/2) grid, row-major
//	total       : w*h*3/2 bytes
//
// There is no header; width and height travel out of band. Encoding averages
// each 2x2 chroma block, decoding replicates it.
package nv12

import (
	"runtime"
	"sync"
)

// Options configures a Codec.
type Options struct {
	// Workers is the number of goroutines used for the per-pixel and
	// per-block passes. Values <= 1 run on the calling goroutine;
	// negative values use runtime.NumCPU().
	Workers int
}

// Codec encodes and decodes NV12 frames. A Codec holds no per-call state and
// is safe for concurrent use.
type Codec struct {
	workers int
}

// NewCodec creates a Codec.
func NewCodec(opts Options) *Codec {
	workers := opts.Workers
	if workers < 0 {
		workers = runtime.NumCPU()
	}
	if workers == 0 {
		workers = 1
	}
	return &Codec{workers: workers}
}

// Workers returns the number of goroutines the codec splits work across.
func (c *Codec) Workers() int {
	return c.workers
}

var defaultCodec = NewCodec(Options{})

// Encode converts a packed RGB buffer to NV12 using a single goroutine.
func Encode(pix []byte, width, height int) ([]byte, error) {
	return defaultCodec.Encode(pix, width, height)
}

// Decode converts an NV12 buffer to packed RGB using a single goroutine.
func Decode(data []byte, width, height int) ([]byte, error) {
	return defaultCodec.Decode(data, width, height)
}

// Encode converts pix, width*height packed RGB triples, to an NV12 frame.
func (c *Codec) Encode(pix []byte, width, height int) ([]byte, error) {
	planes, err := c.Split(pix, width, height)
	if err != nil {
		return nil, err
	}
	return Pack(planes.Y, planes.U, planes.V, width, height), nil
}

// Decode converts an NV12 frame back to width*height packed RGB triples.
// The size check runs before dimension validation so that any length other
// than width*height*3/2 is reported as a size mismatch.
func (c *Codec) Decode(data []byte, width, height int) ([]byte, error) {
	if err := checkFrameSize(data, width, height); err != nil {
		return nil, err
	}
	if err := Validate(width, height); err != nil {
		return nil, err
	}

	y, uSub, vSub, err := Unpack(data, width, height)
	if err != nil {
		return nil, err
	}
	return c.merge(Planes{Y: y, U: uSub, V: vSub, Width: width, Height: height}), nil
}

// Split validates pix and converts it to planes without serializing them.
func (c *Codec) Split(pix []byte, width, height int) (Planes, error) {
	if err := Validate(width, height); err != nil {
		return Planes{}, err
	}
	if n, ok := byteSize(width, height, 3); !ok || len(pix) != n {
		expected := -1
		if ok {
			expected = n
		}
		return Planes{}, &SizeMismatchError{
			Layout:   LayoutRGB24,
			Width:    width,
			Height:   height,
			Expected: expected,
			Actual:   len(pix),
		}
	}
	return c.split(pix, width, height), nil
}

func (c *Codec) split(pix []byte, width, height int) Planes {
	n := width * height
	y := make([]byte, n)
	uFull := make([]byte, n)
	vFull := make([]byte, n)

	c.parallel(height, func(start, end int) {
		for i := start * width; i < end*width; i++ {
			p := 3 * i
			y[i], uFull[i], vFull[i] = RGBToYUV(pix[p], pix[p+1], pix[p+2])
		}
	})

	cn := (width / 2) * (height / 2)
	uSub := make([]byte, cn)
	vSub := make([]byte, cn)
	c.parallel(height/2, func(start, end int) {
		downsampleRows(uFull, vFull, uSub, vSub, width, start, end)
	})

	return Planes{Y: y, U: uSub, V: vSub, Width: width, Height: height}
}

func (c *Codec) merge(p Planes) []byte {
	width, height := p.Width, p.Height
	n := width * height
	uFull := make([]byte, n)
	vFull := make([]byte, n)
	c.parallel(height/2, func(start, end int) {
		upsampleRows(p.U, p.V, uFull, vFull, width, start, end)
	})

	out := make([]byte, 3*n)
	c.parallel(height, func(start, end int) {
		for i := start * width; i < end*width; i++ {
			o := 3 * i
			out[o], out[o+1], out[o+2] = YUVToRGB(p.Y[i], uFull[i], vFull[i])
		}
	})
	return out
}

// parallel splits [0, rows) into contiguous bands, one per worker. Every
// band writes a disjoint region, so the result does not depend on
// scheduling.
func (c *Codec) parallel(rows int, fn func(start, end int)) {
	workers := c.workers
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		fn(0, rows)
		return
	}

	band := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < rows; start += band {
		end := start + band
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
