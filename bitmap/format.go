// Package bitmap provides the pixel buffers the renderer reads and writes.
//
// A Bgra buffer is a strided byte raster in one of the BGR-ordered formats.
// It either owns its storage or borrows it: a window created with
// (*Bgra).Window aliases a rectangle of its parent, inherits the parent's
// stride and is never allowed to release the parent's memory. A Float
// buffer is owned scratch storage of normalized linear-light samples used
// between pipeline stages.
package bitmap

// Format represents a pixel storage format. Channel order is always
// blue, green, red, then alpha.
type Format uint8

const (
	// formatInvalid is the zero value so that an unset Format is rejected.
	formatInvalid Format = iota

	// Gray8 is 8-bit grayscale (1 byte per pixel).
	Gray8

	// Bgr24 is 24-bit BGR (3 bytes per pixel, no alpha).
	Bgr24

	// Bgr32 is 32-bit BGRX (4 bytes per pixel). The fourth byte is padding
	// and is ignored on read; it is written as 255.
	Bgr32

	// Bgra32 is 32-bit BGRA (4 bytes per pixel).
	Bgra32

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of stored channels.
	Channels int

	// HasAlpha indicates if the fourth byte carries alpha.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	Gray8:  {BytesPerPixel: 1, Channels: 1, IsGrayscale: true},
	Bgr24:  {BytesPerPixel: 3, Channels: 3},
	Bgr32:  {BytesPerPixel: 4, Channels: 4},
	Bgra32: {BytesPerPixel: 4, Channels: 4, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case Gray8:
		return "Gray8"
	case Bgr24:
		return "Bgr24"
	case Bgr32:
		return "Bgr32"
	case Bgra32:
		return "Bgra32"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f > formatInvalid && f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// FloatChannels returns the channel count of a float buffer holding this
// format: 4 when alpha is stored, 3 otherwise.
func (f Format) FloatChannels() int {
	if f.HasAlpha() {
		return 4
	}
	return 3
}
