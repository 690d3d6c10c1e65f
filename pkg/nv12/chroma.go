package nv12

// Downsample reduces full-resolution chroma planes to one sample per 2x2
// block. Each output sample is the rounded mean of the four inputs.
// width and height must already be validated.
func Downsample(uFull, vFull []byte, width, height int) (uSub, vSub []byte) {
	n := (width / 2) * (height / 2)
	uSub = make([]byte, n)
	vSub = make([]byte, n)
	downsampleRows(uFull, vFull, uSub, vSub, width, 0, height/2)
	return uSub, vSub
}

// downsampleRows fills subsampled rows [start, end).
func downsampleRows(uFull, vFull, uSub, vSub []byte, width, start, end int) {
	cw := width / 2
	for cy := start; cy < end; cy++ {
		top := 2 * cy * width
		bottom := top + width
		out := cy * cw
		for cx := 0; cx < cw; cx++ {
			x := 2 * cx
			uSub[out+cx] = average4(uFull[top+x], uFull[top+x+1], uFull[bottom+x], uFull[bottom+x+1])
			vSub[out+cx] = average4(vFull[top+x], vFull[top+x+1], vFull[bottom+x], vFull[bottom+x+1])
		}
	}
}

// Upsample expands subsampled chroma back to full resolution by copying
// each sample into all four positions of its 2x2 block. Decoding never
// interpolates.
func Upsample(uSub, vSub []byte, width, height int) (uFull, vFull []byte) {
	uFull = make([]byte, width*height)
	vFull = make([]byte, width*height)
	upsampleRows(uSub, vSub, uFull, vFull, width, 0, height/2)
	return uFull, vFull
}

// upsampleRows fills the full-resolution rows covered by subsampled rows [start, end).
func upsampleRows(uSub, vSub, uFull, vFull []byte, width, start, end int) {
	cw := width / 2
	for cy := start; cy < end; cy++ {
		top := 2 * cy * width
		bottom := top + width
		in := cy * cw
		for cx := 0; cx < cw; cx++ {
			x := 2 * cx
			u, v := uSub[in+cx], vSub[in+cx]
			uFull[top+x], uFull[top+x+1], uFull[bottom+x], uFull[bottom+x+1] = u, u, u, u
			vFull[top+x], vFull[top+x+1], vFull[bottom+x], vFull[bottom+x+1] = v, v, v, v
		}
	}
}

func average4(a, b, c, d uint8) uint8 {
	// The sum of four bytes is at most 1020, so the mean cannot exceed 255.
	return uint8((int(a) + int(b) + int(c) + int(d) + 2) / 4)
}
