// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/kernel"
	"github.com/gogpu/fastscaling/weighting"
)

// Details configures a render.
type Details struct {
	// Filter selects the interpolation kernel.
	Filter weighting.Filter

	// Interpolation overrides Filter with resolved details, e.g. a custom
	// blur from weighting.NewDetailsWithBlur.
	Interpolation *weighting.Details

	// SharpenPercentGoal is the unsharp mask strength in percent; 0 disables.
	SharpenPercentGoal float64

	// KernelA and KernelB are applied in order after resampling.
	KernelA *kernel.Kernel
	KernelB *kernel.Kernel

	// ColorMatrix is applied to straight-alpha linear color before encoding.
	ColorMatrix *kernel.ColorMatrix

	PostFlipX     bool
	PostFlipY     bool
	PostTranspose bool

	// EnableProfiling records per-stage timings, available from
	// (*Renderer).Profile after Render.
	EnableProfiling bool

	// InterpolateLastPercent enables integer box pre-reduction when greater
	// than 1: a source at least that many times larger than the canvas is
	// first reduced by floor(min(sw/dw, sh/dh) / InterpolateLastPercent).
	InterpolateLastPercent float64
}

// DefaultDetails returns the default configuration: Robidoux filtering
// with every optional stage disabled.
func DefaultDetails() *Details {
	return &Details{Filter: weighting.Robidoux}
}

// interpolation resolves the weighting details to use.
func (d *Details) interpolation() (*weighting.Details, error) {
	if d.Interpolation != nil {
		return d.Interpolation, nil
	}
	return weighting.NewDetails(d.Filter)
}

// hasFloatStages reports whether any stage needs the float pipeline even
// without resampling.
func (d *Details) hasFloatStages() bool {
	return d.SharpenPercentGoal > 0 || d.KernelA != nil || d.KernelB != nil || d.ColorMatrix != nil
}

// hasTransforms reports whether any post-transform is requested.
func (d *Details) hasTransforms() bool {
	return d.PostFlipX || d.PostFlipY || d.PostTranspose
}

func (d *Details) validate() error {
	if d == nil {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "render: nil details")
	}
	if math.IsNaN(d.SharpenPercentGoal) || math.IsInf(d.SharpenPercentGoal, 0) {
		return fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "render: sharpen %v", d.SharpenPercentGoal)
	}
	if math.IsNaN(d.InterpolateLastPercent) {
		return fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "render: interpolate-last percent is NaN")
	}
	if d.Interpolation == nil && !d.Filter.IsValid() {
		return fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "render: filter %d", d.Filter)
	}
	return nil
}
