// Package color provides the color math of the resampling pipeline.
//
// Pixels travel through the pipeline as normalized linear-light floats.
// Bytes are decoded with the sRGB EOTF on the way in and re-encoded with its
// inverse on the way out; filtering in linear light keeps averages of bright
// and dark regions from darkening.
//
// The byte decode uses a process-wide 256-entry table that is built on first
// use and released by FreeLookupTables.
//
// References:
//   - sRGB (IEC 61966-2-1): https://www.w3.org/Graphics/Color/sRGB
//   - CIE 1976 L*u*v*: https://en.wikipedia.org/wiki/CIELUV
package color

import "math"

const (
	// srgbBreak is the encoded value where the EOTF leaves its linear segment.
	srgbBreak = 0.0404482

	// linearBreak is srgbBreak mapped to linear light.
	linearBreak = 0.0031308
)

// SRGBToLinear decodes a normalized sRGB value (0..1) to linear light.
func SRGBToLinear(s float32) float32 {
	if s <= srgbBreak {
		return s / 12.92
	}
	return float32(math.Pow((float64(s)+0.055)/1.055, 2.4))
}

// LinearToSRGB encodes linear light to sRGB on the byte scale (0..255).
// The result is not clamped or rounded; pass it through UcharClampFF.
func LinearToSRGB(l float32) float32 {
	if l <= linearBreak {
		return l * 12.92 * 255
	}
	return float32(1.055*255*math.Pow(float64(l), 1/2.4) - 14.025)
}

// UcharClampFF rounds v to the nearest integer and saturates to 0..255.
// NaN maps to 0.
func UcharClampFF(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 254.5:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// LinearToByte is UcharClampFF(LinearToSRGB(l)).
func LinearToByte(l float32) uint8 {
	return UcharClampFF(LinearToSRGB(l))
}
