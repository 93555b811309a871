package bitmap

import (
	"math"

	"github.com/gogpu/fastscaling"
)

// Float is an owned buffer of normalized linear-light samples.
//
// Samples are stored row-major with Channels interleaved values per pixel.
// For 4-channel buffers the channel order is B, G, R, A, matching Bgra.
// A Float is never a window.
type Float struct {
	W        int
	H        int
	Channels int
	Pixels   []float32

	// AlphaPremultiplied is true when color samples are pre-scaled by alpha.
	AlphaPremultiplied bool

	// AlphaMeaningful is false when the fourth channel must be treated as 1.
	AlphaMeaningful bool
}

// FloatBytes returns the storage size of a w x h float buffer, or -1 on
// overflow.
func FloatBytes(w, h, channels int) int64 {
	if w <= 0 || h <= 0 || channels <= 0 {
		return 0
	}
	n := int64(w) * int64(channels)
	if n > math.MaxInt64/4/int64(h) {
		return -1
	}
	return n * int64(h) * 4
}

// NewFloat allocates a zeroed float buffer. Channels must be 3 or 4.
func NewFloat(w, h, channels int) (*Float, error) {
	if channels != 3 && channels != 4 {
		return nil, fastscaling.Errorf(fastscaling.KindInvalidPixelFormat, "bitmap: %d float channels", channels)
	}
	if w <= 0 || h <= 0 {
		return nil, fastscaling.Errorf(fastscaling.KindDimensionMismatch, "bitmap: invalid float dimensions %dx%d", w, h)
	}
	size := FloatBytes(w, h, channels)
	if size < 0 || size/4 > int64(math.MaxInt) {
		return nil, fastscaling.Errorf(fastscaling.KindOutOfMemory, "bitmap: float buffer %dx%dx%d overflows", w, h, channels)
	}
	return &Float{
		W:               w,
		H:               h,
		Channels:        channels,
		Pixels:          make([]float32, w*h*channels),
		AlphaMeaningful: channels == 4,
	}, nil
}

// FloatCount returns W*H*Channels.
func (f *Float) FloatCount() int {
	return f.W * f.H * f.Channels
}

// Stride returns the number of samples per row.
func (f *Float) Stride() int {
	return f.W * f.Channels
}

// Row returns the samples of row y.
func (f *Float) Row(y int) []float32 {
	s := f.Stride()
	return f.Pixels[y*s : (y+1)*s]
}

// Rows returns the samples of rows [y, y+n).
func (f *Float) Rows(y, n int) []float32 {
	s := f.Stride()
	return f.Pixels[y*s : (y+n)*s]
}

// Clear zeroes every sample and resets the flags.
func (f *Float) Clear() {
	clear(f.Pixels)
	f.AlphaPremultiplied = false
	f.AlphaMeaningful = f.Channels == 4
}
