package bitmap

import "github.com/gogpu/fastscaling"

// FlipX mirrors the buffer horizontally in place.
func FlipX(b *Bgra) error {
	if !b.Valid() {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: flip of a destroyed buffer")
	}
	bpp := b.format.BytesPerPixel()
	var tmp [4]byte
	for y := range b.height {
		row := b.Row(y)
		for l, r := 0, (b.width-1)*bpp; l < r; l, r = l+bpp, r-bpp {
			copy(tmp[:bpp], row[l:l+bpp])
			copy(row[l:l+bpp], row[r:r+bpp])
			copy(row[r:r+bpp], tmp[:bpp])
		}
	}
	return nil
}

// FlipY mirrors the buffer vertically in place.
func FlipY(b *Bgra) error {
	if !b.Valid() {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: flip of a destroyed buffer")
	}
	tmp := make([]byte, b.format.RowBytes(b.width))
	for top, bot := 0, b.height-1; top < bot; top, bot = top+1, bot-1 {
		rt, rb := b.Row(top), b.Row(bot)
		copy(tmp, rt)
		copy(rt, rb)
		copy(rb, tmp)
	}
	return nil
}

// Transpose writes the transpose of src into dst. dst must be
// src.Height() x src.Width() with the same format and must not alias src.
func Transpose(dst, src *Bgra) error {
	if !dst.Valid() || !src.Valid() {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: transpose with a destroyed buffer")
	}
	if dst.format != src.format || dst.width != src.height || dst.height != src.width {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch,
			"bitmap: transpose %dx%d %v into %dx%d %v", src.width, src.height, src.format, dst.width, dst.height, dst.format)
	}
	bpp := src.format.BytesPerPixel()
	for y := range src.height {
		row := src.Row(y)
		for x := range src.width {
			d := x*dst.stride + y*bpp
			copy(dst.pix[d:d+bpp], row[x*bpp:(x+1)*bpp])
		}
	}
	return nil
}

// TransposeInPlace transposes b. Square buffers are transposed by swapping
// pixels. A non-square owned buffer is re-laid out with new storage and a
// tight stride, and windows cut from it before stop being Valid; a
// non-square window or borrowed buffer cannot change shape and fails with
// KindDimensionMismatch.
func TransposeInPlace(b *Bgra) error {
	if !b.Valid() {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: transpose of a destroyed buffer")
	}
	bpp := b.format.BytesPerPixel()

	if b.width == b.height {
		var tmp [4]byte
		for y := range b.height {
			for x := y + 1; x < b.width; x++ {
				p := y*b.stride + x*bpp
				q := x*b.stride + y*bpp
				copy(tmp[:bpp], b.pix[p:p+bpp])
				copy(b.pix[p:p+bpp], b.pix[q:q+bpp])
				copy(b.pix[q:q+bpp], tmp[:bpp])
			}
		}
		return nil
	}

	if b.storage != storageOwned {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch,
			"bitmap: cannot transpose non-square %dx%d buffer that does not own its storage", b.width, b.height)
	}

	t := &Bgra{
		pix:    make([]byte, b.format.RowBytes(b.height)*b.width),
		width:  b.height,
		height: b.width,
		stride: b.format.RowBytes(b.height),
		format: b.format,
	}
	if err := Transpose(t, b); err != nil {
		return err
	}
	b.pix, b.width, b.height, b.stride = t.pix, t.width, t.height, t.stride
	b.gen++
	return nil
}
