// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stage names recorded by the profiler.
const (
	StageTotal       = "render"
	StageDecode      = "decode"
	StageHalve       = "halve"
	StageHorizontal  = "scale horizontal"
	StageVertical    = "scale vertical"
	StageConvolve    = "convolve"
	StageSharpen     = "sharpen"
	StageDemultiply  = "demultiply"
	StageColorMatrix = "color matrix"
	StageEncode      = "encode"
	StageCopy        = "copy"
	StageTranspose   = "transpose"
	StageFlipX       = "flip x"
	StageFlipY       = "flip y"
)

// StageTiming is one profiled pipeline stage.
type StageTiming struct {
	Name     string
	Start    time.Time
	Duration time.Duration
}

// Profile holds the stage timings of the last render.
type Profile struct {
	Stages []StageTiming
}

// profiler records stage timings; a nil profiler records nothing.
type profiler struct {
	p *Profile
}

func newProfiler(enabled bool) *profiler {
	if !enabled {
		return nil
	}
	return &profiler{p: &Profile{}}
}

// start begins a stage and returns the func that ends it.
func (pr *profiler) start(name string) func() {
	if pr == nil {
		return func() {}
	}
	t := time.Now()
	return func() {
		pr.p.Stages = append(pr.p.Stages, StageTiming{Name: name, Start: t, Duration: time.Since(t)})
	}
}

// Stage returns the first timing with the given name.
func (p *Profile) Stage(name string) (StageTiming, bool) {
	for _, s := range p.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageTiming{}, false
}

// Report formats the stages as a table of nanosecond counts with digit
// grouping.
func (p *Profile) Report() string {
	pr := message.NewPrinter(language.English)
	var b strings.Builder
	for _, s := range p.Stages {
		pr.Fprintf(&b, "%-18s %15d ns\n", s.Name, s.Duration.Nanoseconds())
	}
	return b.String()
}
