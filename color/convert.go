package color

import (
	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/bitmap"
)

// Rec. 709 luma weights, applied in linear light for Gray8 output.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

func checkStrip(b *bitmap.Bgra, bRow int, f *bitmap.Float, fRow, count int) error {
	if !b.Valid() || f == nil {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "color: missing buffer")
	}
	if b.Width() != f.W {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch, "color: bitmap width %d, float width %d", b.Width(), f.W)
	}
	if count < 0 || bRow < 0 || fRow < 0 || bRow+count > b.Height() || fRow+count > f.H {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch,
			"color: %d rows at %d/%d outside %d/%d", count, bRow, fRow, b.Height(), f.H)
	}
	return nil
}

// SRGBToLinearRows decodes count rows of src starting at srcRow into dst
// starting at dstRow.
//
// Gray8 sources are replicated into the three color channels. Premultiplied
// sources are demultiplied before the EOTF is applied. A 4-channel
// destination receives alpha (1 when the source has none or its alpha is
// not meaningful) and linear color premultiplied by it; a 3-channel
// destination receives straight color. dst's alpha flags are updated to
// match.
func SRGBToLinearRows(src *bitmap.Bgra, srcRow int, dst *bitmap.Float, dstRow, count int) error {
	if err := checkStrip(src, srcRow, dst, dstRow, count); err != nil {
		return err
	}
	t := LookupTables()
	format := src.Format()
	bpp := format.BytesPerPixel()
	ch := dst.Channels
	hasAlpha := format.HasAlpha() && src.AlphaMeaningful

	for i := range count {
		in := src.Row(srcRow + i)
		out := dst.Row(dstRow + i)
		for x := range src.Width() {
			c, a := decode(t, format, src.AlphaPremultiplied, hasAlpha, in[x*bpp:x*bpp+bpp])
			o := out[x*ch : x*ch+ch]
			if ch != 4 {
				o[0], o[1], o[2] = c[0], c[1], c[2]
				continue
			}
			o[0], o[1], o[2], o[3] = c[0]*a, c[1]*a, c[2]*a, a
		}
	}
	if ch == 4 {
		dst.AlphaPremultiplied = true
		dst.AlphaMeaningful = hasAlpha
	} else {
		dst.AlphaPremultiplied = false
		dst.AlphaMeaningful = false
	}
	return nil
}

// DemultiplyAlpha converts count rows of f starting at row from
// premultiplied to straight alpha. It is a no-op for straight or 3-channel
// buffers. The AlphaPremultiplied flag describes the whole buffer, so it is
// left set; callers clear it once every strip has been converted.
func DemultiplyAlpha(f *bitmap.Float, row, count int) error {
	if f == nil {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "color: nil float buffer")
	}
	if !f.AlphaPremultiplied || f.Channels != 4 {
		return nil
	}
	if row < 0 || count < 0 || row+count > f.H {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch, "color: rows [%d,%d) outside height %d", row, row+count, f.H)
	}
	seg := f.Rows(row, count)
	for i := 0; i < len(seg); i += 4 {
		a := seg[i+3]
		if a <= 0 || a == 1 {
			continue
		}
		inv := 1 / a
		seg[i] *= inv
		seg[i+1] *= inv
		seg[i+2] *= inv
	}
	return nil
}

// decode reads one stored pixel as straight linear color and alpha.
func decode(t *Tables, format bitmap.Format, premultiplied, alphaMeaningful bool, p []byte) (c [3]float32, a float32) {
	if format == bitmap.Gray8 {
		l := t.Linear[p[0]]
		return [3]float32{l, l, l}, 1
	}
	a = 1
	if format.HasAlpha() && alphaMeaningful {
		a = t.Normalized[p[3]]
	}
	if premultiplied && a > 0 && a < 1 {
		for i := range 3 {
			c[i] = SRGBToLinear(min(float32(p[i])/255/a, 1))
		}
		return c, a
	}
	return [3]float32{t.Linear[p[0]], t.Linear[p[1]], t.Linear[p[2]]}, a
}

// over composites straight color c with alpha a over background (bc, ba).
func over(c [3]float32, a float32, bc [3]float32, ba float32) ([3]float32, float32) {
	if a >= 1 || ba <= 0 {
		return c, a
	}
	k := ba * (1 - a)
	oa := a + k
	if oa <= 0 {
		return [3]float32{}, 0
	}
	var out [3]float32
	for i := range 3 {
		out[i] = (c[i]*a + bc[i]*k) / oa
	}
	return out, oa
}

// LinearToSRGBRows encodes count rows of src starting at srcRow into dst
// starting at dstRow, compositing according to dst.Compositing.
//
// Premultiplied sources are demultiplied per pixel. Gray8 destinations
// receive linear-light luma. Destinations without stored alpha keep the
// straight color; Bgr32 padding is written as 255.
func LinearToSRGBRows(src *bitmap.Float, srcRow int, dst *bitmap.Bgra, dstRow, count int) error {
	if err := checkStrip(dst, dstRow, src, srcRow, count); err != nil {
		return err
	}
	t := LookupTables()
	format := dst.Format()
	bpp := format.BytesPerPixel()
	ch := src.Channels

	var matte [3]float32
	var matteA float32
	if dst.Compositing == bitmap.CompositeBlendWithMatte {
		m := dst.Matte
		matte, matteA = decode(t, bitmap.Bgra32, false, true, m[:])
	}

	for i := range count {
		in := src.Row(srcRow + i)
		out := dst.Row(dstRow + i)
		for x := range src.W {
			s := in[x*ch : x*ch+ch]
			p := out[x*bpp : x*bpp+bpp]

			c := [3]float32{s[0], s[1], s[2]}
			a := float32(1)
			if ch == 4 {
				a = min(max(s[3], 0), 1)
				if src.AlphaPremultiplied && a > 0 {
					c[0], c[1], c[2] = c[0]/a, c[1]/a, c[2]/a
				}
			}

			switch dst.Compositing {
			case bitmap.CompositeBlendWithSelf:
				bc, ba := decode(t, format, dst.AlphaPremultiplied, dst.AlphaMeaningful, p)
				c, a = over(c, a, bc, ba)
			case bitmap.CompositeBlendWithMatte:
				c, a = over(c, a, matte, matteA)
			}

			switch format {
			case bitmap.Gray8:
				p[0] = LinearToByte(lumaB*c[0] + lumaG*c[1] + lumaR*c[2])
				continue
			case bitmap.Bgra32:
				if dst.AlphaMeaningful {
					p[3] = UcharClampFF(a * 255)
				} else {
					p[3] = 255
				}
				if dst.AlphaMeaningful && dst.AlphaPremultiplied {
					for k := range 3 {
						p[k] = UcharClampFF(LinearToSRGB(c[k]) * a)
					}
					continue
				}
			case bitmap.Bgr32:
				p[3] = 255
			}
			p[0], p[1], p[2] = LinearToByte(c[0]), LinearToByte(c[1]), LinearToByte(c[2])
		}
	}
	return nil
}
