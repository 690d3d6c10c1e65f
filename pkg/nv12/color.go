package nv12

import "math"

// BT.601 full-range coefficients.
const (
	kYR = 0.299
	kYG = 0.587
	kYB = 0.114

	kUR = -0.168736
	kUG = -0.331264
	kUB = 0.5

	kVR = 0.5
	kVG = -0.418688
	kVB = -0.081312

	kRV = 1.402
	kGU = -0.344136
	kGV = -0.714136
	kBU = 1.772

	chromaOffset = 128
)

// RGBToYUV converts one pixel from RGB to full-range BT.601 YUV.
func RGBToYUV(r, g, b uint8) (y, u, v uint8) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	y = clamp(kYR*rf + kYG*gf + kYB*bf)
	u = clamp(kUR*rf + kUG*gf + kUB*bf + chromaOffset)
	v = clamp(kVR*rf + kVG*gf + kVB*bf + chromaOffset)
	return y, u, v
}

// YUVToRGB converts one full-range BT.601 YUV sample back to RGB.
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	yf := float64(y)
	uf := float64(u) - chromaOffset
	vf := float64(v) - chromaOffset
	r = clamp(yf + kRV*vf)
	g = clamp(yf + kGU*uf + kGV*vf)
	b = clamp(yf + kBU*uf)
	return r, g, b
}

// clamp rounds to the nearest integer and saturates to [0, 255].
func clamp(x float64) uint8 {
	x = math.Round(x)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
