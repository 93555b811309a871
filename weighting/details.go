package weighting

import (
	"math"

	"github.com/gogpu/fastscaling"
)

// family selects the shared evaluator behind a filter.
type family uint8

const (
	familyBox family = iota
	familyTriangle
	familyCubic
	familyCubicFast
	familySinc // sinc windowed by sinc
	familyHann // sinc windowed by a Hann taper
)

// Blur factors of the sharpened and tuned variants.
const (
	mitchellBlur      = 7.0 / 8.0
	robidouxBlur      = 1 / 1.1685777620836932
	robidouxSharpBlur = 1 / 1.105822933719019
	lanczos2SharpBlur = 0.9549963639785485
	lanczos3SharpBlur = 0.9812505644269356
)

// Details is a resolved interpolation kernel.
//
// Weight(x) is defined on [-Window, Window] and is zero outside it. Window
// already includes Blur: the native kernel is stretched by Blur along x.
type Details struct {
	Filter Filter

	// Window is the half-support in destination-scale source pixels.
	Window float64

	// Blur widens (>1) or narrows (<1) the kernel.
	Blur float64

	fam    family
	native float64 // window of the unblurred kernel
	b, c   float64 // cubic parameters
	p      [3]float64
	q      [4]float64
}

type filterDef struct {
	fam    family
	native float64
	blur   float64
	b, c   float64
}

var filterDefs = [filterCount]filterDef{
	Robidoux:              {familyCubic, 2, robidouxBlur, 0.37821575509399867, 0.31089212245300067},
	RobidouxSharp:         {familyCubic, 2, robidouxSharpBlur, 0.2620145123990142, 0.3689927438004929},
	Box:                   {familyBox, 0.5, 1, 0, 0},
	Triangle:              {familyTriangle, 1, 1, 0, 0},
	Hermite:               {familyCubic, 1, 1, 0, 0},
	CubicBSpline:          {familyCubic, 2, 1, 1, 0},
	Cubic:                 {familyCubic, 2, 1, 0, 1},
	CubicFast:             {familyCubicFast, 2, 1, 0, 1},
	CatmullRom:            {familyCubic, 2, 1, 0, 0.5},
	Mitchell:              {familyCubic, 2, mitchellBlur, 1.0 / 3, 1.0 / 3},
	Lanczos2:              {familySinc, 2, 1, 0, 0},
	Lanczos2Sharp:         {familySinc, 2, lanczos2SharpBlur, 0, 0},
	Lanczos3:              {familySinc, 3, 1, 0, 0},
	Lanczos3Sharp:         {familySinc, 3, lanczos3SharpBlur, 0, 0},
	Lanczos2Windowed:      {familyHann, 2, 1, 0, 0},
	Lanczos2SharpWindowed: {familyHann, 2, lanczos2SharpBlur, 0, 0},
	Lanczos3Windowed:      {familyHann, 3, 1, 0, 0},
	Lanczos3SharpWindowed: {familyHann, 3, lanczos3SharpBlur, 0, 0},
}

// NewDetails resolves f with its default blur.
func NewDetails(f Filter) (*Details, error) {
	if !f.IsValid() {
		return nil, fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "weighting: filter %d", f)
	}
	return NewDetailsWithBlur(f, filterDefs[f].blur)
}

// NewDetailsWithBlur resolves f with an explicit blur. A blur that leaves a
// non-positive or non-finite window fails with KindInvalidFilterParameter.
func NewDetailsWithBlur(f Filter, blur float64) (*Details, error) {
	if !f.IsValid() {
		return nil, fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "weighting: filter %d", f)
	}
	def := filterDefs[f]
	d := &Details{
		Filter: f,
		Window: def.native * blur,
		Blur:   blur,
		fam:    def.fam,
		native: def.native,
		b:      def.b,
		c:      def.c,
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	if d.fam == familyCubic {
		b, c := def.b, def.c
		d.p = [3]float64{1 - b/3, -3 + 2*b + c, 2 - 1.5*b - c}
		d.q = [4]float64{4*b/3 + 4*c, -8*c - 2*b, b + 5*c, -b/6 - c}
	}
	return d, nil
}

func (d *Details) validate() error {
	if !(d.Window > 0) || math.IsInf(d.Window, 0) || !(d.Blur > 0) {
		return fastscaling.Errorf(fastscaling.KindInvalidFilterParameter,
			"weighting: %v window %v (blur %v) must be positive", d.Filter, d.Window, d.Blur)
	}
	return nil
}

// BC returns the cubic parameters of a cubic-family filter.
func (d *Details) BC() (b, c float64) {
	return d.b, d.c
}

// Weight evaluates the kernel at offset x.
func (d *Details) Weight(x float64) float64 {
	if d.fam == familyBox {
		t := x / d.Blur
		if t >= -0.5 && t < 0.5 {
			return 1
		}
		return 0
	}
	ax := math.Abs(x)
	t := ax / d.Blur
	if ax >= d.Window || t >= d.native {
		return 0
	}
	switch d.fam {
	case familyTriangle:
		return 1 - t
	case familyCubic:
		if t < 1 {
			return d.p[0] + t*t*(d.p[1]+t*d.p[2])
		}
		return d.q[0] + t*(d.q[1]+t*(d.q[2]+t*d.q[3]))
	case familyCubicFast:
		if t < 1 {
			return 1 - 2*t*t + t*t*t
		}
		return 4 - 8*t + 5*t*t - t*t*t
	case familySinc:
		return sinc(t) * sinc(t/d.native)
	case familyHann:
		return sinc(t) * (0.5 + 0.5*math.Cos(math.Pi*t/d.native))
	}
	return 0
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}
