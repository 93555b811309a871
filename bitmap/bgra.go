package bitmap

import (
	"math"

	"github.com/gogpu/fastscaling"
)

// CompositingMode selects how rendered pixels are combined with a canvas.
type CompositingMode uint8

const (
	// CompositeReplace overwrites the canvas.
	CompositeReplace CompositingMode = iota

	// CompositeBlendWithSelf blends source-over the canvas' existing pixels.
	CompositeBlendWithSelf

	// CompositeBlendWithMatte blends source-over the Matte color.
	CompositeBlendWithMatte
)

// String returns a string representation of the mode.
func (m CompositingMode) String() string {
	switch m {
	case CompositeReplace:
		return "Replace"
	case CompositeBlendWithSelf:
		return "BlendWithSelf"
	case CompositeBlendWithMatte:
		return "BlendWithMatte"
	default:
		return "Unknown"
	}
}

// storage tells who releases a buffer's pixels.
type storage uint8

const (
	storageOwned    storage = iota // allocated by NewBgra, released by Destroy
	storageBorrowed                // external slice from FromRaw
	storageWindow                  // view into a parent Bgra
)

// Bgra is a strided pixel buffer.
//
// Geometry (width, height, stride, format) is fixed at construction; the
// flags below it may be changed freely by the caller. No bounds
// re-validation happens per pixel: Row and Pixels expose the raw storage and
// callers must respect the declared extents.
//
// Thread safety: a Bgra needs external synchronization for writes.
type Bgra struct {
	pix       []byte
	width     int
	height    int
	stride    int
	format    Format
	storage   storage
	parent    *Bgra
	parentGen uint32 // parent's layout generation when the window was cut
	gen       uint32 // bumped when storage is replaced
	destroyed bool

	// AlphaMeaningful is false when the alpha byte must be ignored on read
	// and written as 255.
	AlphaMeaningful bool

	// AlphaPremultiplied is true when color bytes are pre-scaled by alpha.
	AlphaPremultiplied bool

	// Compositing controls how the renderer writes into this buffer when it
	// is the canvas.
	Compositing CompositingMode

	// Matte is the B, G, R, A background used by CompositeBlendWithMatte.
	Matte [4]uint8
}

func validateGeometry(width, height int, format Format) error {
	if !format.IsValid() {
		return fastscaling.Errorf(fastscaling.KindInvalidPixelFormat, "bitmap: format %d", format)
	}
	if width <= 0 || height <= 0 {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch, "bitmap: invalid dimensions %dx%d", width, height)
	}
	return nil
}

// checkedSize returns stride*height, failing with KindOutOfMemory on overflow.
func checkedSize(stride, height int) (int, error) {
	if stride > 0 && height > math.MaxInt/stride {
		return 0, fastscaling.Errorf(fastscaling.KindOutOfMemory, "bitmap: %d rows of %d bytes overflow", height, stride)
	}
	return stride * height, nil
}

// NewBgra allocates an owning buffer with a tight stride. Storage starts
// zeroed.
func NewBgra(width, height int, format Format) (*Bgra, error) {
	if err := validateGeometry(width, height, format); err != nil {
		return nil, err
	}
	return NewBgraWithStride(width, height, format, format.RowBytes(width))
}

// NewBgraWithStride allocates an owning buffer with a custom stride for
// row padding. Stride must be at least format.RowBytes(width).
func NewBgraWithStride(width, height int, format Format, stride int) (*Bgra, error) {
	if err := validateGeometry(width, height, format); err != nil {
		return nil, err
	}
	if stride < format.RowBytes(width) {
		return nil, fastscaling.Errorf(fastscaling.KindDimensionMismatch, "bitmap: stride %d too small for width %d", stride, width)
	}
	size, err := checkedSize(stride, height)
	if err != nil {
		return nil, err
	}
	return &Bgra{
		pix:             make([]byte, size),
		width:           width,
		height:          height,
		stride:          stride,
		format:          format,
		storage:         storageOwned,
		AlphaMeaningful: format.HasAlpha(),
	}, nil
}

// FromRaw wraps existing data without copying. The buffer borrows data:
// Destroy never releases it and the caller must keep it valid.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Bgra, error) {
	if data == nil {
		return nil, fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: nil pixel data")
	}
	if err := validateGeometry(width, height, format); err != nil {
		return nil, err
	}
	if stride < format.RowBytes(width) {
		return nil, fastscaling.Errorf(fastscaling.KindDimensionMismatch, "bitmap: stride %d too small for width %d", stride, width)
	}
	need := (height-1)*stride + format.RowBytes(width)
	if len(data) < need {
		return nil, fastscaling.Errorf(fastscaling.KindDimensionMismatch, "bitmap: data has %d bytes, need %d", len(data), need)
	}
	return &Bgra{
		pix:             data[:need],
		width:           width,
		height:          height,
		stride:          stride,
		format:          format,
		storage:         storageBorrowed,
		AlphaMeaningful: format.HasAlpha(),
	}, nil
}

// Window returns a header-only view of the rectangle (x, y, width, height).
// The view aliases b's storage at byte offset y*stride + x*bytesPerPixel,
// inherits b's stride, format and flags, and stays valid only while b does.
func (b *Bgra) Window(x, y, width, height int) (*Bgra, error) {
	if !b.Valid() {
		return nil, fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: window over a destroyed buffer")
	}
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > b.width || y+height > b.height {
		return nil, fastscaling.Errorf(fastscaling.KindDimensionMismatch,
			"bitmap: window (%d,%d %dx%d) outside %dx%d", x, y, width, height, b.width, b.height)
	}

	bpp := b.format.BytesPerPixel()
	offset := y*b.stride + x*bpp
	end := (y+height-1)*b.stride + (x+width)*bpp

	return &Bgra{
		pix:                b.pix[offset:end],
		width:              width,
		height:             height,
		stride:             b.stride,
		format:             b.format,
		storage:            storageWindow,
		parent:             b,
		parentGen:          b.gen,
		AlphaMeaningful:    b.AlphaMeaningful,
		AlphaPremultiplied: b.AlphaPremultiplied,
		Compositing:        b.Compositing,
		Matte:              b.Matte,
	}, nil
}

// Destroy releases the buffer. An owning buffer drops its storage exactly
// once; a window or borrowed buffer only detaches its header, so the parent
// storage is never affected. Destroy is idempotent.
func (b *Bgra) Destroy() {
	if b == nil || b.destroyed {
		return
	}
	b.destroyed = true
	b.pix = nil
	b.parent = nil
}

// Valid reports whether the buffer and every buffer it borrows from are
// alive. A window goes stale when its parent's storage is re-laid out, as
// by TransposeInPlace on a non-square buffer.
func (b *Bgra) Valid() bool {
	for p := b; p != nil; p = p.parent {
		if p.destroyed {
			return false
		}
		if p.parent != nil && p.parent.gen != p.parentGen {
			return false
		}
	}
	return b != nil
}

// IsWindow reports whether b is a view into another Bgra.
func (b *Bgra) IsWindow() bool {
	return b.storage == storageWindow
}

// Owned reports whether Destroy releases b's storage.
func (b *Bgra) Owned() bool {
	return b.storage == storageOwned
}

// Parent returns the buffer a window was created from, or nil.
func (b *Bgra) Parent() *Bgra {
	return b.parent
}

// Width returns the image width in pixels.
func (b *Bgra) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Bgra) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Bgra) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Bgra) Format() Format {
	return b.format
}

// Pixels returns the raw storage. For a window, index 0 is the window's
// first pixel and rows are Stride bytes apart.
func (b *Bgra) Pixels() []byte {
	return b.pix
}

// Row returns the width*bytesPerPixel bytes of row y.
// Returns nil if y is out of bounds or the buffer is not valid.
func (b *Bgra) Row(y int) []byte {
	if y < 0 || y >= b.height || !b.Valid() {
		return nil
	}
	start := y * b.stride
	return b.pix[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in Pixels.
// Returns -1 if coordinates are out of bounds.
func (b *Bgra) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// SameGeometry reports whether a and b have equal width, height and format.
func SameGeometry(a, b *Bgra) bool {
	return a.width == b.width && a.height == b.height && a.format == b.format
}

// Fill sets every pixel to the given color. Grayscale formats store the
// Rec. 709 luma of the color; formats without alpha ignore a.
func (b *Bgra) Fill(blue, green, red, alpha uint8) {
	if !b.Valid() {
		return
	}
	bpp := b.format.BytesPerPixel()
	var px [4]byte
	switch b.format {
	case Gray8:
		px[0] = byte((2126*int(red) + 7152*int(green) + 722*int(blue) + 5000) / 10000)
	case Bgr24:
		px = [4]byte{blue, green, red, 0}
	case Bgr32:
		px = [4]byte{blue, green, red, 255}
	case Bgra32:
		px = [4]byte{blue, green, red, alpha}
	}
	for y := range b.height {
		row := b.Row(y)
		for i := 0; i < len(row); i += bpp {
			copy(row[i:i+bpp], px[:bpp])
		}
	}
}

// CopyPixels copies src into dst row by row. Both must share geometry.
func CopyPixels(dst, src *Bgra) error {
	if !dst.Valid() || !src.Valid() {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "bitmap: copy with a destroyed buffer")
	}
	if !SameGeometry(dst, src) {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch,
			"bitmap: copy %dx%d %v into %dx%d %v", src.width, src.height, src.format, dst.width, dst.height, dst.format)
	}
	for y := range src.height {
		copy(dst.Row(y), src.Row(y))
	}
	return nil
}
