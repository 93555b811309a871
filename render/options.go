// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/bitmap"
)

// DefaultStripHeight is the number of rows converted per color strip.
const DefaultStripHeight = 32

// Option configures a Renderer during creation.
//
// Example:
//
//	ctx := fastscaling.NewContext()
//	r, err := render.NewRenderer(src, dst, d,
//	    render.WithContext(ctx),
//	    render.WithLimits(render.Limits{TotalWidth: 8000, TotalHeight: 8000}),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	ctx         *fastscaling.Context
	limits      Limits
	stripHeight int
	pool        *bitmap.Pool
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		limits:      Limits{},
		stripHeight: DefaultStripHeight,
		pool:        bitmap.DefaultPool(),
	}
}

// WithContext records every error the renderer returns on ctx.
func WithContext(ctx *fastscaling.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithLimits bounds the renders of a renderer. Without it a renderer is
// unbounded.
func WithLimits(l Limits) Option {
	return func(o *options) {
		o.limits = l
	}
}

// WithStripHeight sets how many rows each color conversion call handles.
// Values below 1 are ignored.
func WithStripHeight(rows int) Option {
	return func(o *options) {
		if rows > 0 {
			o.stripHeight = rows
		}
	}
}

// WithPool sets the pool scratch buffers are drawn from and returned to.
// A nil pool is ignored.
func WithPool(p *bitmap.Pool) Option {
	return func(o *options) {
		if p != nil {
			o.pool = p
		}
	}
}
