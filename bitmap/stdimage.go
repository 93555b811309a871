package bitmap

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fastscaling"
)

// FromImage copies any image.Image into a new Bgra32 buffer with straight
// alpha. Zero-sized images fail with KindDimensionMismatch.
func FromImage(img image.Image) (*Bgra, error) {
	if img == nil {
		return nil, fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: nil image")
	}
	r := img.Bounds()
	b, err := NewBgra(r.Dx(), r.Dy(), Bgra32)
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		xdraw.Copy(nrgba, image.Point{}, img, r, xdraw.Src, nil)
	}

	for y := range b.height {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*b.width]
		dst := b.Row(y)
		for i := 0; i < len(src); i += 4 {
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = src[i+3]
		}
	}
	return b, nil
}

// ToImage copies the buffer into a new image.NRGBA. Premultiplied buffers
// are demultiplied; formats without meaningful alpha become opaque.
func (b *Bgra) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	if !b.Valid() {
		return img
	}
	bpp := b.format.BytesPerPixel()
	alpha := b.format.HasAlpha() && b.AlphaMeaningful

	for y := range b.height {
		src := b.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+4*b.width]
		for x := range b.width {
			s := src[x*bpp : (x+1)*bpp]
			d := dst[x*4 : x*4+4]
			if b.format == Gray8 {
				d[0], d[1], d[2], d[3] = s[0], s[0], s[0], 255
				continue
			}
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], 255
			if !alpha {
				continue
			}
			a := s[3]
			d[3] = a
			if b.AlphaPremultiplied && a != 0 && a != 255 {
				for c := range 3 {
					v := (uint32(d[c])*255 + uint32(a)/2) / uint32(a)
					d[c] = uint8(min(v, 255))
				}
			}
		}
	}
	return img
}
