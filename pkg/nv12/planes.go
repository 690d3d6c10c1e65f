package nv12

import "math"

// Planes holds a frame split into a full-resolution luma plane and
// subsampled U and V planes of (Width/2)*(Height/2) samples each.
type Planes struct {
	Y      []byte
	U      []byte
	V      []byte
	Width  int
	Height int
}

// FrameSize returns the exact NV12 byte size for width x height, or -1 when
// width*height*3 does not fit in an int.
func FrameSize(width, height int) int {
	n, ok := byteSize(width, height, 3)
	if !ok {
		return -1
	}
	return n / 2
}

// byteSize returns width*height*k for k > 0, or false when the product
// overflows int.
func byteSize(width, height, k int) (int, bool) {
	if width == math.MinInt || height == math.MinInt {
		return 0, false
	}
	w, h := width, height
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	if w != 0 && h > math.MaxInt/k/w {
		return 0, false
	}
	return width * height * k, true
}

// Pack serializes the luma plane followed by the interleaved U,V plane.
func Pack(y, uSub, vSub []byte, width, height int) []byte {
	lumaSize := width * height
	out := make([]byte, FrameSize(width, height))
	copy(out, y[:lumaSize])
	interleave(out[lumaSize:], uSub, vSub)
	return out
}

// Unpack splits an NV12 buffer into its luma plane and de-interleaved U and V
// planes. The returned luma plane aliases data.
func Unpack(data []byte, width, height int) (y, uSub, vSub []byte, err error) {
	if err := checkFrameSize(data, width, height); err != nil {
		return nil, nil, nil, err
	}
	lumaSize := width * height
	y = data[:lumaSize:lumaSize]
	uSub, vSub = deinterleave(data[lumaSize:])
	return y, uSub, vSub, nil
}

// UnpackPlanes is Unpack returning a Planes value.
func UnpackPlanes(data []byte, width, height int) (Planes, error) {
	y, u, v, err := Unpack(data, width, height)
	if err != nil {
		return Planes{}, err
	}
	return Planes{Y: y, U: u, V: v, Width: width, Height: height}, nil
}

// checkFrameSize compares 2*len against 3*w*h so that dimensions whose pixel
// count is odd can never match. Dimensions whose size overflows never match.
func checkFrameSize(data []byte, width, height int) error {
	n, ok := byteSize(width, height, 3)
	if !ok || 2*len(data) != n {
		return &SizeMismatchError{
			Layout:   LayoutNV12,
			Width:    width,
			Height:   height,
			Expected: FrameSize(width, height),
			Actual:   len(data),
		}
	}
	return nil
}

func interleave(dst, u, v []byte) {
	for i := range u {
		dst[2*i] = u[i]
		dst[2*i+1] = v[i]
	}
}

func deinterleave(uv []byte) (u, v []byte) {
	n := len(uv) / 2
	u = make([]byte, n)
	v = make([]byte, n)
	for i := 0; i < n; i++ {
		u[i] = uv[2*i]
		v[i] = uv[2*i+1]
	}
	return u, v
}
