// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/bitmap"
	"github.com/gogpu/fastscaling/color"
	"github.com/gogpu/fastscaling/kernel"
	"github.com/gogpu/fastscaling/weighting"
)

// Mode selects how a Renderer uses its buffers.
type Mode uint8

const (
	// TwoBuffer reads a source and writes a separate canvas.
	TwoBuffer Mode = iota

	// InPlace transforms a single buffer without resampling.
	InPlace
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case TwoBuffer:
		return "TwoBuffer"
	case InPlace:
		return "InPlace"
	default:
		return "Unknown"
	}
}

// State is a Renderer lifecycle state.
type State uint8

const (
	// StateCreated is the zero value. Constructors return bound renderers,
	// so it is only observed on a zero Renderer, which fails to render.
	StateCreated State = iota

	// StateBound means buffers and details are attached and validated.
	StateBound

	// StateRendered follows a successful Render. Render may run again.
	StateRendered

	// StateDestroyed is terminal: scratch is released and Render fails.
	StateDestroyed
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateBound:
		return "Bound"
	case StateRendered:
		return "Rendered"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Renderer runs the scale pipeline over bound buffers.
//
// Render may be called repeatedly; each call overwrites the canvas.
// Destroy releases scratch buffers only, never the source or canvas.
type Renderer struct {
	mode    Mode
	state   State
	source  *bitmap.Bgra
	canvas  *bitmap.Bgra
	details *Details
	opts    options
	interp  *weighting.Details

	scratch []*bitmap.Float
	profile *Profile
}

// New creates a renderer in the given mode. In InPlace mode canvas must be
// nil or the source itself; any other canvas fails with
// KindDimensionMismatch because an in-place render cannot change size.
// details is not copied; do not modify it while the renderer is in use.
func New(mode Mode, source, canvas *bitmap.Bgra, details *Details, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r, err := newRenderer(mode, source, canvas, details, o)
	if err != nil {
		o.ctx.SetLastError(err)
		return nil, err
	}
	return r, nil
}

// NewRenderer creates a TwoBuffer renderer scaling source onto canvas.
func NewRenderer(source, canvas *bitmap.Bgra, details *Details, opts ...Option) (*Renderer, error) {
	return New(TwoBuffer, source, canvas, details, opts...)
}

// NewInPlace creates an InPlace renderer over buf.
func NewInPlace(buf *bitmap.Bgra, details *Details, opts ...Option) (*Renderer, error) {
	return New(InPlace, buf, nil, details, opts...)
}

func newRenderer(mode Mode, source, canvas *bitmap.Bgra, details *Details, o options) (*Renderer, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	if !source.Valid() {
		return nil, fastscaling.Errorf(fastscaling.KindNullArgument, "render: missing source")
	}
	switch mode {
	case TwoBuffer:
		if !canvas.Valid() {
			return nil, fastscaling.Errorf(fastscaling.KindNullArgument, "render: missing canvas")
		}
	case InPlace:
		if canvas != nil && canvas != source {
			return nil, fastscaling.Errorf(fastscaling.KindDimensionMismatch,
				"render: in-place renderer cannot write %dx%d into a separate %dx%d canvas",
				source.Width(), source.Height(), canvas.Width(), canvas.Height())
		}
		canvas = source
	default:
		return nil, fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "render: mode %d", mode)
	}

	r := &Renderer{
		mode:    mode,
		source:  source,
		canvas:  canvas,
		details: details,
		opts:    o,
	}
	if mode == TwoBuffer {
		interp, err := details.interpolation()
		if err != nil {
			return nil, err
		}
		r.interp = interp
	}
	r.state = StateBound
	return r, nil
}

// Mode returns the renderer mode.
func (r *Renderer) Mode() Mode { return r.mode }

// State returns the lifecycle state.
func (r *Renderer) State() State { return r.state }

// Profile returns the timings of the last successful render, or nil when
// profiling is disabled.
func (r *Renderer) Profile() *Profile { return r.profile }

// Render executes the pipeline. Failures leave the renderer bound, release
// the scratch acquired so far and are recorded on the renderer's Context.
func (r *Renderer) Render() (err error) {
	defer func() {
		if err != nil {
			r.opts.ctx.SetLastError(err)
		}
	}()
	if r.state == StateDestroyed {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "render: renderer destroyed")
	}
	if !r.source.Valid() || !r.canvas.Valid() {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "render: bound buffer was destroyed")
	}
	r.releaseScratch()

	prof := newProfiler(r.details.EnableProfiling)
	endTotal := prof.start(StageTotal)
	if r.mode == InPlace {
		err = r.renderInPlace(prof)
	} else {
		err = r.renderTwoBuffer(prof)
	}
	endTotal()
	if err != nil {
		r.releaseScratch()
		return err
	}
	r.profile = nil
	if prof != nil {
		r.profile = prof.p
	}
	r.state = StateRendered
	return nil
}

// Destroy returns scratch buffers to the pool. It is idempotent.
func (r *Renderer) Destroy() {
	if r == nil || r.state == StateDestroyed {
		return
	}
	r.releaseScratch()
	r.profile = nil
	r.state = StateDestroyed
}

func (r *Renderer) acquire(w, h, ch int) (*bitmap.Float, error) {
	f, err := r.opts.pool.Get(w, h, ch)
	if err != nil {
		return nil, err
	}
	r.scratch = append(r.scratch, f)
	return f, nil
}

func (r *Renderer) releaseScratch() {
	for _, f := range r.scratch {
		r.opts.pool.Put(f)
	}
	r.scratch = r.scratch[:0]
}

// isIdentity reports whether the render reduces to a row copy.
func (r *Renderer) isIdentity() bool {
	d := r.details
	return bitmap.SameGeometry(r.source, r.canvas) &&
		!d.hasTransforms() && !d.hasFloatStages() &&
		r.canvas.Compositing == bitmap.CompositeReplace &&
		r.source.AlphaPremultiplied == r.canvas.AlphaPremultiplied
}

// floatChannels picks the working channel count for src rendered to dst.
func floatChannels(src, dst *bitmap.Bgra) int {
	if (src.Format().HasAlpha() && src.AlphaMeaningful) || dst.Format().HasAlpha() {
		return 4
	}
	return 3
}

// addBytes sums scratch sizes, propagating -1 (overflow).
func addBytes(sizes ...int64) int64 {
	var total int64
	for _, s := range sizes {
		if s < 0 || total+s < total {
			return -1
		}
		total += s
	}
	return total
}

func (r *Renderer) renderTwoBuffer(prof *profiler) error {
	src, canvas, d := r.source, r.canvas, r.details
	if err := r.opts.limits.Check(canvas.Width(), canvas.Height()); err != nil {
		return err
	}

	if r.isIdentity() {
		end := prof.start(StageCopy)
		defer end()
		return bitmap.CopyPixels(canvas, src)
	}

	target := canvas
	if d.PostTranspose {
		tmp, err := bitmap.NewBgra(canvas.Height(), canvas.Width(), canvas.Format())
		if err != nil {
			return err
		}
		defer tmp.Destroy()
		tmp.AlphaMeaningful = canvas.AlphaMeaningful
		tmp.AlphaPremultiplied = canvas.AlphaPremultiplied
		tmp.Compositing = canvas.Compositing
		tmp.Matte = canvas.Matte
		if canvas.Compositing == bitmap.CompositeBlendWithSelf {
			if err := bitmap.Transpose(tmp, canvas); err != nil {
				return err
			}
		}
		target = tmp
	}

	sw, sh := src.Width(), src.Height()
	tw, th := target.Width(), target.Height()
	ch := floatChannels(src, target)
	div := halvingDivisor(sw, sh, tw, th, d.InterpolateLastPercent)
	hw, hh := halvedSize(sw, div), halvedSize(sh, div)

	sizes := []int64{bitmap.FloatBytes(sw, sh, ch)}
	if div > 1 {
		sizes = append(sizes, bitmap.FloatBytes(hw, hh, ch))
	}
	if hw != tw {
		sizes = append(sizes, bitmap.FloatBytes(tw, hh, ch))
	}
	if hh != th {
		sizes = append(sizes, bitmap.FloatBytes(tw, th, ch))
	}
	if d.SharpenPercentGoal > 0 {
		sizes = append(sizes, bitmap.FloatBytes(tw, th, ch))
	}
	budget := addBytes(sizes...)
	if err := r.opts.limits.checkScratch(budget); err != nil {
		return err
	}
	fastscaling.Logger().Debug("render: two-buffer",
		"src", [2]int{sw, sh}, "dst", [2]int{tw, th}, "filter", r.interp.Filter.String(),
		"channels", ch, "halving", div, "scratchBytes", budget)

	buf, err := r.acquire(sw, sh, ch)
	if err != nil {
		return err
	}
	if err := r.decode(prof, src, buf); err != nil {
		return err
	}

	if div > 1 {
		end := prof.start(StageHalve)
		small, err := r.acquire(hw, hh, ch)
		if err != nil {
			return err
		}
		halve(buf, small, div)
		buf = small
		end()
	}

	if buf.W != tw {
		end := prof.start(StageHorizontal)
		lc, err := weighting.Contributions(r.interp, buf.W, tw)
		if err != nil {
			return err
		}
		out, err := r.acquire(tw, buf.H, ch)
		if err != nil {
			return err
		}
		scaleHorizontal(buf, out, lc)
		buf = out
		end()
	}

	if buf.H != th {
		end := prof.start(StageVertical)
		lc, err := weighting.Contributions(r.interp, buf.H, th)
		if err != nil {
			return err
		}
		out, err := r.acquire(tw, th, ch)
		if err != nil {
			return err
		}
		scaleVertical(buf, out, lc)
		buf = out
		end()
	}

	if err := r.finish(prof, buf, target); err != nil {
		return err
	}

	if target != canvas {
		end := prof.start(StageTranspose)
		err := bitmap.Transpose(canvas, target)
		end()
		if err != nil {
			return err
		}
	}
	return r.flip(prof, canvas)
}

func (r *Renderer) renderInPlace(prof *profiler) error {
	b, d := r.source, r.details
	w, h := b.Width(), b.Height()
	if d.PostTranspose {
		w, h = h, w
	}
	if err := r.opts.limits.Check(w, h); err != nil {
		return err
	}

	if d.hasFloatStages() {
		ch := b.Format().FloatChannels()
		size := bitmap.FloatBytes(b.Width(), b.Height(), ch)
		sizes := []int64{size}
		if d.SharpenPercentGoal > 0 {
			sizes = append(sizes, size)
		}
		if err := r.opts.limits.checkScratch(addBytes(sizes...)); err != nil {
			return err
		}
		buf, err := r.acquire(b.Width(), b.Height(), ch)
		if err != nil {
			return err
		}
		if err := r.decode(prof, b, buf); err != nil {
			return err
		}
		// The buffer is its own source; blending it over itself is meaningless.
		mode := b.Compositing
		b.Compositing = bitmap.CompositeReplace
		err = r.finish(prof, buf, b)
		b.Compositing = mode
		if err != nil {
			return err
		}
	}

	if d.PostTranspose {
		end := prof.start(StageTranspose)
		err := bitmap.TransposeInPlace(b)
		end()
		if err != nil {
			return err
		}
	}
	return r.flip(prof, b)
}

// decode converts src into buf in strips.
func (r *Renderer) decode(prof *profiler, src *bitmap.Bgra, buf *bitmap.Float) error {
	end := prof.start(StageDecode)
	defer end()
	step := r.opts.stripHeight
	for y := 0; y < src.Height(); y += step {
		n := min(step, src.Height()-y)
		if err := color.SRGBToLinearRows(src, y, buf, y, n); err != nil {
			return err
		}
	}
	return nil
}

// finish runs the float stages on buf and encodes it into dst.
func (r *Renderer) finish(prof *profiler, buf *bitmap.Float, dst *bitmap.Bgra) error {
	d := r.details
	step := r.opts.stripHeight

	if d.KernelA != nil || d.KernelB != nil {
		end := prof.start(StageConvolve)
		for _, k := range []*kernel.Kernel{d.KernelA, d.KernelB} {
			if k == nil {
				continue
			}
			if err := kernel.Convolve(buf, k); err != nil {
				end()
				return err
			}
		}
		end()
	}

	if d.SharpenPercentGoal > 0 {
		end := prof.start(StageSharpen)
		scratch, err := r.acquire(buf.W, buf.H, buf.Channels)
		if err != nil {
			end()
			return err
		}
		err = kernel.Sharpen(buf, d.SharpenPercentGoal, scratch)
		end()
		if err != nil {
			return err
		}
	}

	end := prof.start(StageDemultiply)
	for y := 0; y < buf.H; y += step {
		if err := color.DemultiplyAlpha(buf, y, min(step, buf.H-y)); err != nil {
			end()
			return err
		}
	}
	buf.AlphaPremultiplied = false
	end()

	if d.ColorMatrix != nil {
		end := prof.start(StageColorMatrix)
		err := kernel.ApplyColorMatrix(buf, d.ColorMatrix, 0, buf.H)
		end()
		if err != nil {
			return err
		}
	}

	end = prof.start(StageEncode)
	defer end()
	for y := 0; y < buf.H; y += step {
		if err := color.LinearToSRGBRows(buf, y, dst, y, min(step, buf.H-y)); err != nil {
			return err
		}
	}
	return nil
}

// flip applies the requested flips to b, x first.
func (r *Renderer) flip(prof *profiler, b *bitmap.Bgra) error {
	if r.details.PostFlipX {
		end := prof.start(StageFlipX)
		err := bitmap.FlipX(b)
		end()
		if err != nil {
			return err
		}
	}
	if r.details.PostFlipY {
		end := prof.start(StageFlipY)
		err := bitmap.FlipY(b)
		end()
		if err != nil {
			return err
		}
	}
	return nil
}
