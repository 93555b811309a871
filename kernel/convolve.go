package kernel

import (
	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/bitmap"
)

// Unsharp mask blur parameters.
const (
	SharpenSigma  = 1.4
	SharpenRadius = 4
)

// Convolve applies k to f in place, first along rows and then along
// columns. Samples beyond the edges repeat the edge sample.
func Convolve(f *bitmap.Float, k *Kernel) error {
	if f == nil {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "kernel: nil float buffer")
	}
	if err := k.validate(); err != nil {
		return err
	}
	ch := f.Channels

	line := make([]float32, max(f.W, f.H)*ch)
	out := make([]float32, len(line))

	for y := range f.H {
		row := f.Row(y)
		copy(line, row)
		convolveLine(out[:len(row)], line[:len(row)], f.W, ch, k)
		applyThreshold(row, out[:len(row)], line[:len(row)], k)
	}

	stride := f.Stride()
	col := line[:f.H*ch]
	res := out[:f.H*ch]
	for x := range f.W {
		for y := range f.H {
			copy(col[y*ch:(y+1)*ch], f.Pixels[y*stride+x*ch:y*stride+(x+1)*ch])
		}
		convolveLine(res, col, f.H, ch, k)
		for y := range f.H {
			dst := f.Pixels[y*stride+x*ch : y*stride+(x+1)*ch]
			applyThreshold(dst, res[y*ch:(y+1)*ch], col[y*ch:(y+1)*ch], k)
		}
	}
	return nil
}

// convolveLine convolves n interleaved pixels of ch channels from src into dst.
func convolveLine(dst, src []float32, n, ch int, k *Kernel) {
	r := k.Radius
	for i := range n {
		o := dst[i*ch : (i+1)*ch]
		clear(o)
		for t, w := range k.Weights {
			j := min(max(i+t-r, 0), n-1)
			s := src[j*ch : (j+1)*ch]
			for c := range ch {
				o[c] += s[c] * w
			}
		}
	}
}

// applyThreshold writes conv (or orig, where the change is gated off) to dst.
func applyThreshold(dst, conv, orig []float32, k *Kernel) {
	lo, hi := k.ThresholdMinChange, k.ThresholdMaxChange
	if lo <= 0 && hi <= 0 {
		copy(dst, conv)
		return
	}
	for i := range dst {
		d := conv[i] - orig[i]
		if d < 0 {
			d = -d
		}
		if d >= lo && (hi <= 0 || d <= hi) {
			dst[i] = conv[i]
		} else {
			dst[i] = orig[i]
		}
	}
}

// Sharpen applies an unsharp mask to f in place:
//
//	f = f + percent/100 * (f - blur(f))
//
// where blur is a Gaussian (SharpenSigma, SharpenRadius). scratch must
// match f's shape; nil allocates one. A non-positive percent is a no-op.
func Sharpen(f *bitmap.Float, percent float64, scratch *bitmap.Float) error {
	if f == nil {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "kernel: nil float buffer")
	}
	if percent <= 0 {
		return nil
	}
	if scratch == nil {
		var err error
		if scratch, err = bitmap.NewFloat(f.W, f.H, f.Channels); err != nil {
			return err
		}
	}
	if scratch.W != f.W || scratch.H != f.H || scratch.Channels != f.Channels {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch,
			"kernel: scratch %dx%dx%d for %dx%dx%d", scratch.W, scratch.H, scratch.Channels, f.W, f.H, f.Channels)
	}
	blur, err := CachedGaussian(SharpenSigma, SharpenRadius)
	if err != nil {
		return err
	}

	copy(scratch.Pixels, f.Pixels)
	if err := Convolve(scratch, blur); err != nil {
		return err
	}
	amount := float32(percent / 100)
	for i, v := range f.Pixels {
		f.Pixels[i] = v + amount*(v-scratch.Pixels[i])
	}
	return nil
}
