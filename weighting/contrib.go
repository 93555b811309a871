package weighting

import (
	"math"

	"github.com/gogpu/fastscaling"
)

// ContributionWindow lists the source samples feeding one destination
// sample: Weights[i] applies to source index Left+i. Left and Right are
// inclusive and always within [0, sourceLength-1].
type ContributionWindow struct {
	Left    int
	Right   int
	Weights []float32
}

// Len returns the number of taps.
func (c ContributionWindow) Len() int {
	return c.Right - c.Left + 1
}

// Sum returns the sum of the weights in float64.
func (c ContributionWindow) Sum() float64 {
	var s float64
	for _, w := range c.Weights {
		s += float64(w)
	}
	return s
}

// LineContributions holds one ContributionWindow per destination sample.
type LineContributions struct {
	Windows []ContributionWindow

	// MaxTaps is the widest window, useful for sizing scratch rows.
	MaxTaps int

	SourceLength int
}

// Contributions computes the contribution windows for resampling a line of
// srcLen samples to dstLen samples.
//
// With ratio r = dstLen/srcLen, destination index d samples source
// coordinate s = (d+0.5)/r - 0.5. When minifying (r < 1) the kernel is
// stretched by 1/r so it band-limits the source. Taps falling outside the
// source are folded into the nearest edge sample, and each window is
// renormalized to sum to 1.
func Contributions(d *Details, srcLen, dstLen int) (*LineContributions, error) {
	if d == nil {
		return nil, fastscaling.Errorf(fastscaling.KindNullArgument, "weighting: nil details")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	if srcLen <= 0 || dstLen <= 0 {
		return nil, fastscaling.Errorf(fastscaling.KindDimensionMismatch, "weighting: lengths %d -> %d", srcLen, dstLen)
	}

	ratio := float64(dstLen) / float64(srcLen)
	scale := 1.0
	window := d.Window
	if ratio < 1 {
		scale = ratio
		window = d.Window / ratio
	}

	lc := &LineContributions{
		Windows:      make([]ContributionWindow, dstLen),
		SourceLength: srcLen,
	}
	// Taps are bounded by the window; one scratch slice serves every row.
	raw := make([]float64, 0, int(math.Ceil(2*window))+2)

	for di := range dstLen {
		center := (float64(di)+0.5)/ratio - 0.5
		first := int(math.Ceil(center - window))
		last := max(int(math.Floor(center+window)), first)

		left := clampIndex(first, srcLen)
		right := clampIndex(last, srcLen)
		raw = raw[:right-left+1]
		clear(raw)

		var total float64
		for tap := first; tap <= last; tap++ {
			w := d.Weight((float64(tap) - center) * scale)
			if w == 0 {
				continue
			}
			raw[clampIndex(tap, srcLen)-left] += w
			total += w
		}

		cw := ContributionWindow{Left: left, Right: right, Weights: make([]float32, len(raw))}
		if math.Abs(total) < 1e-12 {
			// Degenerate kernel sample: take the nearest source pixel.
			n := clampIndex(int(math.Floor(center+0.5)), srcLen)
			cw = ContributionWindow{Left: n, Right: n, Weights: []float32{1}}
		} else {
			for i, w := range raw {
				cw.Weights[i] = float32(w / total)
			}
			trimZeros(&cw)
		}

		lc.Windows[di] = cw
		lc.MaxTaps = max(lc.MaxTaps, cw.Len())
	}

	fastscaling.Logger().Debug("weighting: contributions",
		"filter", d.Filter.String(), "src", srcLen, "dst", dstLen, "maxTaps", lc.MaxTaps)
	return lc, nil
}

// trimZeros drops zero weights at both ends of the window.
func trimZeros(c *ContributionWindow) {
	lo, hi := 0, len(c.Weights)-1
	for lo < hi && c.Weights[lo] == 0 {
		lo++
	}
	for hi > lo && c.Weights[hi] == 0 {
		hi--
	}
	c.Weights = c.Weights[lo : hi+1]
	c.Right = c.Left + hi
	c.Left += lo
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
