package fastpixel

import "math"

// Luma coefficients (ITU-R BT.601).
const (
	LumaRed   = 0.299
	LumaGreen = 0.587
	LumaBlue  = 0.114
)

// Chroma coefficients of full-range YCbCr (JFIF). Both chroma values are
// offset by 128 so that grays sit at the middle of [0,255].
const (
	CbRed   = -0.168736
	CbGreen = -0.331264
	CbBlue  = 0.5

	CrRed   = 0.5
	CrGreen = -0.418688
	CrBlue  = -0.081312

	chromaOffset = 128
)

// luma returns round(r*LumaRed + g*LumaGreen + b*LumaBlue), capped at 255.
func luma(r, g, b int) int {
	l := int(math.Round(float64(r)*LumaRed + float64(g)*LumaGreen + float64(b)*LumaBlue))
	return min(l, 255)
}

// chroma returns the rounded weighted sum plus offset, clamped to [0,255].
func chroma(r, g, b int, kr, kg, kb float64) int {
	c := int(math.Round(chromaOffset + float64(r)*kr + float64(g)*kg + float64(b)*kb))
	return max(0, min(c, 255))
}

// hue returns the HSV hue in whole degrees [0,360).
// Grays (max == min) have no hue and report 0. When two channels share the
// maximum, red wins over green and green over blue.
func hue(r, g, b int) int {
	mn := min(r, g, b)
	mx := max(r, g, b)
	if mx == mn {
		return 0
	}

	span := float64(mx - mn)
	var h float64
	switch mx {
	case r:
		h = 60 * (float64(g-b) / span)
	case g:
		h = 60 * (2 + float64(b-r)/span)
	default:
		h = 60 * (4 + float64(r-g)/span)
	}

	// Halves round up, so -0.5 becomes 0 rather than 359.
	deg := int(math.Floor(h + 0.5))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// saturation returns (max-min)/max, or 0 for black.
func saturation(r, g, b int) float64 {
	mx := max(r, g, b)
	if mx == 0 {
		return 0
	}
	return float64(mx-min(r, g, b)) / float64(mx)
}

// value returns max(r, g, b).
func value(r, g, b int) int {
	return max(r, g, b)
}

// averageGrayscale returns (r+g+b)/3 with integer division.
func averageGrayscale(r, g, b int) int {
	return (r + g + b) / 3
}
