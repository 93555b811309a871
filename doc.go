// Package fastscaling is the numeric core of an image resizing library.
//
// # Overview
//
// Given a source raster and a target geometry, fastscaling produces a
// resampled raster with optional sharpening, convolution, color matrix,
// flips and transpose. All color math runs in linear light: sRGB bytes are
// decoded into a float buffer, resampled, filtered and encoded again.
//
// # Quick Start
//
//	src, _ := bitmap.NewBgra(400, 300, bitmap.Bgra32)
//	dst, _ := bitmap.NewBgra(200, 150, bitmap.Bgra32)
//
//	details := render.DefaultDetails()
//	details.SharpenPercentGoal = 15
//
//	r, err := render.NewRenderer(src, dst, details)
//	if err != nil {
//		return err
//	}
//	defer r.Destroy()
//	if err := r.Render(); err != nil {
//		return err
//	}
//
// # Architecture
//
// The module is organized into:
//   - bitmap: pixel buffers, windows (non-owning views), float scratch buffers
//   - color: sRGB and LUV conversion, gamma lookup tables, strip conversion
//   - weighting: interpolation filters and contribution tables
//   - kernel: Gaussian kernels, convolution, unsharp mask, color matrix
//   - render: the renderer state machine that sequences the stages
//
// This package holds what every sub-package shares: error kinds, the
// [Context] error sink and the package logger.
//
// # Concurrency
//
// A Renderer is single-threaded and synchronous. Distinct renderers over
// disjoint buffers may run on separate goroutines. The gamma lookup tables
// are process-wide; see color.FreeLookupTables.
package fastscaling

// Version information
const (
	// Version is the current version of the library
	Version = "0.4.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 4

	// VersionPatch is the patch version
	VersionPatch = 0
)
