// Package weighting builds the interpolation weights used to resample a
// line of pixels.
//
// A Filter names one of a fixed set of kernels. NewDetails resolves it to a
// Details value carrying the weight function, its half-support (window) and
// blur. Contributions turns Details and a source/destination length pair
// into one ContributionWindow per destination sample.
//
// Kernel families:
//   - box and triangle
//   - cubic, parametrized by (B, C) as in Mitchell and Netravali,
//     "Reconstruction Filters in Computer Graphics" (1988)
//   - windowed sinc (Lanczos), tapered by a second sinc lobe or a Hann window
package weighting

import (
	"strings"

	"github.com/gogpu/fastscaling"
)

// Filter identifies an interpolation kernel.
type Filter uint8

const (
	// Robidoux is a cubic tuned for minimal ringing; the zero value.
	Robidoux Filter = iota

	// RobidouxSharp is a sharper Robidoux variant.
	RobidouxSharp

	// Box averages the samples under each destination pixel.
	Box

	// Triangle is linear interpolation.
	Triangle

	// Hermite is the cubic with B=0, C=0 and unit support.
	Hermite

	// CubicBSpline is the smoothing cubic B=1, C=0. It never goes negative.
	CubicBSpline

	// Cubic is the cubic with B=0, C=1.
	Cubic

	// CubicFast evaluates B=0, C=1 with fixed coefficients.
	CubicFast

	// CatmullRom is the interpolating cubic B=0, C=0.5.
	CatmullRom

	// Mitchell is the cubic B=1/3, C=1/3.
	Mitchell

	// Lanczos2 is sinc windowed by sinc over two lobes.
	Lanczos2

	// Lanczos2Sharp is Lanczos2 with a slightly narrowed kernel.
	Lanczos2Sharp

	// Lanczos3 is sinc windowed by sinc over three lobes.
	Lanczos3

	// Lanczos3Sharp is Lanczos3 with a slightly narrowed kernel.
	Lanczos3Sharp

	// Lanczos2Windowed is two-lobe sinc tapered by a Hann window.
	Lanczos2Windowed

	// Lanczos2SharpWindowed is Lanczos2Windowed with Lanczos2Sharp's blur.
	Lanczos2SharpWindowed

	// Lanczos3Windowed is three-lobe sinc tapered by a Hann window.
	Lanczos3Windowed

	// Lanczos3SharpWindowed is Lanczos3Windowed with Lanczos3Sharp's blur.
	Lanczos3SharpWindowed

	filterCount
)

var filterNames = [filterCount]string{
	Robidoux:              "Robidoux",
	RobidouxSharp:         "RobidouxSharp",
	Box:                   "Box",
	Triangle:              "Triangle",
	Hermite:               "Hermite",
	CubicBSpline:          "CubicBSpline",
	Cubic:                 "Cubic",
	CubicFast:             "CubicFast",
	CatmullRom:            "CatmullRom",
	Mitchell:              "Mitchell",
	Lanczos2:              "Lanczos2",
	Lanczos2Sharp:         "Lanczos2Sharp",
	Lanczos3:              "Lanczos3",
	Lanczos3Sharp:         "Lanczos3Sharp",
	Lanczos2Windowed:      "Lanczos2Windowed",
	Lanczos2SharpWindowed: "Lanczos2SharpWindowed",
	Lanczos3Windowed:      "Lanczos3Windowed",
	Lanczos3SharpWindowed: "Lanczos3SharpWindowed",
}

// Filters returns every supported filter in declaration order.
func Filters() []Filter {
	out := make([]Filter, filterCount)
	for i := range out {
		out[i] = Filter(i)
	}
	return out
}

// IsValid reports whether f is a known filter.
func (f Filter) IsValid() bool {
	return f < filterCount
}

// String returns the filter name.
func (f Filter) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return filterNames[f]
}

// ParseFilter looks a filter up by name. Matching ignores case, spaces,
// dashes and underscores, so "lanczos-3-sharp" finds Lanczos3Sharp.
// Unknown names fail with KindInvalidFilterParameter.
func ParseFilter(name string) (Filter, error) {
	key := normalizeName(name)
	for i, n := range filterNames {
		if normalizeName(n) == key {
			return Filter(i), nil
		}
	}
	return 0, fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "weighting: unknown filter %q", name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
