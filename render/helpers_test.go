// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/fastscaling/bitmap"
)

func newFilled(t *testing.T, w, h int, f bitmap.Format, px [4]uint8) *bitmap.Bgra {
	t.Helper()
	b, err := bitmap.NewBgra(w, h, f)
	if err != nil {
		t.Fatalf("NewBgra(%d, %d, %v) error = %v", w, h, f, err)
	}
	b.Fill(px[0], px[1], px[2], px[3])
	return b
}

// checkUniform fails unless every pixel of b is within tol of want.
func checkUniform(t *testing.T, b *bitmap.Bgra, want [4]uint8, tol int) {
	t.Helper()
	bpp := b.Format().BytesPerPixel()
	for y := range b.Height() {
		row := b.Row(y)
		for x := range b.Width() {
			p := row[x*bpp : x*bpp+bpp]
			for c := range bpp {
				d := int(p[c]) - int(want[c])
				if d < -tol || d > tol {
					t.Fatalf("pixel (%d,%d) channel %d = %d, want %d±%d", x, y, c, p[c], want[c], tol)
				}
			}
		}
	}
}

func render(t *testing.T, src, canvas *bitmap.Bgra, d *Details, opts ...Option) *Renderer {
	t.Helper()
	r, err := NewRenderer(src, canvas, d, opts...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return r
}
