package bitmap

// Rect is a pixel rectangle; X2 and Y2 are exclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// Width returns X2-X1.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns Y2-Y1.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// DetectContent returns the bounding box of pixels that differ from the
// top-left pixel by more than threshold, measured as Euclidean distance
// over the stored channels on the 0..255 scale. Alpha takes part only when
// it is meaningful. A uniform buffer yields an empty Rect.
func DetectContent(b *Bgra, threshold float64) Rect {
	if !b.Valid() {
		return Rect{}
	}
	bpp := b.format.BytesPerPixel()
	channels := bpp
	if b.format == Bgr32 || (b.format == Bgra32 && !b.AlphaMeaningful) {
		channels = 3
	}
	ref := b.Row(0)[:bpp]
	limit := threshold * threshold

	minX, minY := b.width, b.height
	maxX, maxY := -1, -1
	for y := range b.height {
		row := b.Row(y)
		for x := range b.width {
			px := row[x*bpp : x*bpp+bpp]
			var d float64
			for c := range channels {
				diff := float64(px[c]) - float64(ref[c])
				d += diff * diff
			}
			if d <= limit {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return Rect{}
	}
	return Rect{X1: minX, Y1: minY, X2: maxX + 1, Y2: maxY + 1}
}
