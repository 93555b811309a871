// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/fastscaling/bitmap"
	"github.com/gogpu/fastscaling/weighting"
)

// scaleHorizontal resamples every row of src into dst (dst.W columns).
func scaleHorizontal(src, dst *bitmap.Float, lc *weighting.LineContributions) {
	ch := src.Channels
	for y := range src.H {
		in := src.Row(y)
		out := dst.Row(y)
		for x, cw := range lc.Windows {
			o := out[x*ch : (x+1)*ch]
			clear(o)
			for k, w := range cw.Weights {
				s := in[(cw.Left+k)*ch : (cw.Left+k+1)*ch]
				for c := range ch {
					o[c] += s[c] * w
				}
			}
		}
	}
	dst.AlphaPremultiplied = src.AlphaPremultiplied
	dst.AlphaMeaningful = src.AlphaMeaningful
}

// scaleVertical resamples every column of src into dst (dst.H rows). Rows
// are accumulated whole so memory is walked sequentially.
func scaleVertical(src, dst *bitmap.Float, lc *weighting.LineContributions) {
	for y, cw := range lc.Windows {
		out := dst.Row(y)
		clear(out)
		for k, w := range cw.Weights {
			in := src.Row(cw.Left + k)
			for i, v := range in {
				out[i] += v * w
			}
		}
	}
	dst.AlphaPremultiplied = src.AlphaPremultiplied
	dst.AlphaMeaningful = src.AlphaMeaningful
}

// halvingDivisor returns the box pre-reduction factor for scaling sw x sh
// to dw x dh, or 1 when pre-reduction does not apply.
func halvingDivisor(sw, sh, dw, dh int, interpolateLast float64) int {
	if interpolateLast <= 1 {
		return 1
	}
	ratio := min(float64(sw)/float64(dw), float64(sh)/float64(dh))
	if ratio < interpolateLast {
		return 1
	}
	return max(int(ratio/interpolateLast), 1)
}

// halvedSize returns the size of an n-sample line reduced by div.
func halvedSize(n, div int) int {
	return (n + div - 1) / div
}

// halve box-reduces src by div into dst, which must be
// halvedSize(src.W, div) x halvedSize(src.H, div). Blocks clipped by the
// right or bottom edge average the samples they cover.
func halve(src, dst *bitmap.Float, div int) {
	ch := src.Channels
	acc := make([]float32, dst.Stride())
	counts := make([]int, dst.W)
	for dy := range dst.H {
		clear(acc)
		clear(counts)
		y0 := dy * div
		y1 := min(y0+div, src.H)
		for y := y0; y < y1; y++ {
			in := src.Row(y)
			for x := range src.W {
				dx := x / div
				counts[dx]++
				a := acc[dx*ch : (dx+1)*ch]
				s := in[x*ch : (x+1)*ch]
				for c := range ch {
					a[c] += s[c]
				}
			}
		}
		out := dst.Row(dy)
		for dx := range dst.W {
			inv := 1 / float32(counts[dx])
			for c := range ch {
				out[dx*ch+c] = acc[dx*ch+c] * inv
			}
		}
	}
	dst.AlphaPremultiplied = src.AlphaPremultiplied
	dst.AlphaMeaningful = src.AlphaMeaningful
}
