// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render sequences buffer conversion, resampling, convolution and
// geometric transforms into a single scale operation.
//
// # Modes
//
// A Renderer runs in one of two modes:
//
//   - TwoBuffer: reads a source and writes a canvas of arbitrary size.
//   - InPlace: operates on a single buffer. Only sharpening, convolution,
//     color matrices and post-transforms are available, since there is no
//     second buffer to resample into.
//
// # Pipeline
//
// Render executes these stages in order, skipping those that have nothing
// to do:
//
//  1. Decode source rows to premultiplied linear float.
//  2. Optional integer box pre-reduction (Details.InterpolateLastPercent).
//  3. Horizontal resample to the canvas width.
//  4. Vertical resample to the canvas height.
//  5. KernelA, KernelB, then unsharp masking.
//  6. Demultiply alpha, then apply the color matrix.
//  7. Encode to the canvas, compositing per canvas.Compositing.
//  8. Transpose, then flip x, then flip y.
//
// When the source and canvas share geometry and no stage beyond the copy
// is requested, Render copies the rows directly so the output is
// bit-identical to the input.
//
// # Usage
//
//	src, _ := bitmap.NewBgra(400, 300, bitmap.Bgra32)
//	dst, _ := bitmap.NewBgra(200, 150, bitmap.Bgra32)
//
//	d := render.DefaultDetails()
//	d.SharpenPercentGoal = 15
//
//	r, err := render.NewRenderer(src, dst, d)
//	if err != nil {
//	    return err
//	}
//	defer r.Destroy()
//	if err := r.Render(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// A Renderer is not thread-safe. Renderers working on disjoint buffers may
// run concurrently; they share only the color lookup tables and the
// scratch pool, both of which are synchronized.
package render
