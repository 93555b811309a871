package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/bitmap"
)

// luvOffset is added to u* and v* so encoded chroma stays non-negative.
const luvOffset = 100

// LinearToLUV converts one B, G, R, A pixel of linear light to CIE L*u*v*
// (D65) in place. On return px[0] is L* (0..100), px[1] is u*+100, px[2]
// is v*+100 and px[3] is unchanged.
func LinearToLUV(px *[4]float32) {
	x, y, z := colorful.LinearRgbToXyz(float64(px[2]), float64(px[1]), float64(px[0]))
	l, u, v := colorful.XyzToLuvWhiteRef(x, y, z, colorful.D65)
	px[0] = float32(l * 100)
	px[1] = float32(u*100 + luvOffset)
	px[2] = float32(v*100 + luvOffset)
}

// LUVToLinear is the inverse of LinearToLUV.
func LUVToLinear(px *[4]float32) {
	l := float64(px[0]) / 100
	u := (float64(px[1]) - luvOffset) / 100
	v := (float64(px[2]) - luvOffset) / 100
	x, y, z := colorful.LuvToXyzWhiteRef(l, u, v, colorful.D65)
	r, g, b := colorful.XyzToLinearRgb(x, y, z)
	px[0] = float32(b)
	px[1] = float32(g)
	px[2] = float32(r)
}

// LinearToLUVRows applies LinearToLUV to count rows of f starting at row.
// f must have 4 channels.
func LinearToLUVRows(f *bitmap.Float, row, count int) error {
	return forEachPixel(f, row, count, LinearToLUV)
}

// LUVToLinearRows applies LUVToLinear to count rows of f starting at row.
func LUVToLinearRows(f *bitmap.Float, row, count int) error {
	return forEachPixel(f, row, count, LUVToLinear)
}

func forEachPixel(f *bitmap.Float, row, count int, fn func(*[4]float32)) error {
	if f == nil {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "color: nil float buffer")
	}
	if f.Channels != 4 {
		return fastscaling.Errorf(fastscaling.KindInvalidPixelFormat, "color: LUV needs 4 channels, got %d", f.Channels)
	}
	if row < 0 || count < 0 || row+count > f.H {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch, "color: rows [%d,%d) outside height %d", row, row+count, f.H)
	}
	seg := f.Rows(row, count)
	for i := 0; i < len(seg); i += 4 {
		fn((*[4]float32)(seg[i : i+4]))
	}
	return nil
}
