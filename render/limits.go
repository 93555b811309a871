// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gogpu/fastscaling"
)

// LimitBehavior selects what happens when output exceeds Limits.
type LimitBehavior uint8

const (
	// LimitThrow fails the render with KindSizeLimitExceeded.
	LimitThrow LimitBehavior = iota

	// LimitIgnore logs a warning and renders anyway.
	LimitIgnore
)

// String returns the configuration spelling of b.
func (b LimitBehavior) String() string {
	switch b {
	case LimitThrow:
		return "throw"
	case LimitIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Environment keys read by LoadLimits.
const (
	EnvTotalWidth      = "FASTSCALING_TOTAL_WIDTH"
	EnvTotalHeight     = "FASTSCALING_TOTAL_HEIGHT"
	EnvTotalBehavior   = "FASTSCALING_TOTAL_BEHAVIOR"
	EnvMaxScratchBytes = "FASTSCALING_MAX_SCRATCH_BYTES"
)

// Limits bounds the work a single render may do.
type Limits struct {
	// TotalWidth and TotalHeight bound the canvas; 0 leaves that axis
	// unbounded.
	TotalWidth  int
	TotalHeight int

	// Behavior applies when the canvas exceeds TotalWidth x TotalHeight.
	Behavior LimitBehavior

	// MaxScratchBytes bounds the float scratch a render allocates;
	// 0 means unlimited. Exceeding it fails with KindOutOfMemory.
	MaxScratchBytes int64
}

// DefaultLimits returns 3200x3200 with LimitThrow and unlimited scratch.
// Renderers are unbounded unless limits are passed with WithLimits, for
// example the result of LoadLimits.
func DefaultLimits() Limits {
	return Limits{TotalWidth: 3200, TotalHeight: 3200, Behavior: LimitThrow}
}

// Fits reports whether a w x h canvas is within the total size.
func (l Limits) Fits(w, h int) bool {
	return (l.TotalWidth <= 0 || w <= l.TotalWidth) && (l.TotalHeight <= 0 || h <= l.TotalHeight)
}

// Check validates a w x h canvas against the limits.
func (l Limits) Check(w, h int) error {
	if l.Fits(w, h) {
		return nil
	}
	if l.Behavior == LimitIgnore {
		fastscaling.Logger().Warn("render: output exceeds size limits",
			"width", w, "height", h, "maxWidth", l.TotalWidth, "maxHeight", l.TotalHeight)
		return nil
	}
	return fastscaling.Errorf(fastscaling.KindSizeLimitExceeded,
		"output %dx%d exceeds the configured maximum %dx%d", w, h, l.TotalWidth, l.TotalHeight)
}

// checkScratch fails with KindOutOfMemory when bytes exceed the budget.
// A negative size means the computation overflowed.
func (l Limits) checkScratch(bytes int64) error {
	if bytes < 0 {
		return fastscaling.Errorf(fastscaling.KindOutOfMemory, "render: scratch size overflows")
	}
	if l.MaxScratchBytes > 0 && bytes > l.MaxScratchBytes {
		return fastscaling.Errorf(fastscaling.KindOutOfMemory,
			"render: %d scratch bytes exceed the %d byte budget", bytes, l.MaxScratchBytes)
	}
	return nil
}

// LoadLimits starts from DefaultLimits, applies the given dotenv files in
// order and then the process environment, which takes precedence.
// Non-positive totals revert to the defaults with a warning.
func LoadLimits(files ...string) (Limits, error) {
	vals := map[string]string{}
	if len(files) > 0 {
		env, err := godotenv.Read(files...)
		if err != nil {
			return Limits{}, fmt.Errorf("render: read limits: %w", err)
		}
		vals = env
	}
	for _, key := range []string{EnvTotalWidth, EnvTotalHeight, EnvTotalBehavior, EnvMaxScratchBytes} {
		if v, ok := os.LookupEnv(key); ok {
			vals[key] = v
		}
	}
	return parseLimits(vals)
}

func parseLimits(vals map[string]string) (Limits, error) {
	l := DefaultLimits()
	def := l

	atoi := func(key string, dst *int) error {
		v, ok := vals[key]
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("render: %s: %w", key, err)
		}
		*dst = n
		return nil
	}
	if err := atoi(EnvTotalWidth, &l.TotalWidth); err != nil {
		return Limits{}, err
	}
	if err := atoi(EnvTotalHeight, &l.TotalHeight); err != nil {
		return Limits{}, err
	}
	if l.TotalWidth < 1 || l.TotalHeight < 1 {
		fastscaling.Logger().Warn("render: total limits must be positive, reverting to defaults",
			"width", l.TotalWidth, "height", l.TotalHeight)
		l.TotalWidth, l.TotalHeight = def.TotalWidth, def.TotalHeight
	}

	if v, ok := vals[EnvTotalBehavior]; ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "throw", "throwexception":
			l.Behavior = LimitThrow
		case "ignore", "ignorelimits":
			l.Behavior = LimitIgnore
		default:
			return Limits{}, fmt.Errorf("render: %s: unknown behavior %q", EnvTotalBehavior, v)
		}
	}

	if v, ok := vals[EnvMaxScratchBytes]; ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Limits{}, fmt.Errorf("render: %s: %w", EnvMaxScratchBytes, err)
		}
		l.MaxScratchBytes = max(n, 0)
	}
	return l, nil
}
