package weighting

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/fastscaling"
)

func mustDetails(t *testing.T, f Filter) *Details {
	t.Helper()
	d, err := NewDetails(f)
	if err != nil {
		t.Fatalf("NewDetails(%v) error = %v", f, err)
	}
	return d
}

// sampleRange reports the min and max weight over (from, to).
func sampleRange(d *Details, from, to float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	const steps = 200
	for i := 1; i < steps; i++ {
		x := from + (to-from)*float64(i)/steps
		w := d.Weight(x)
		lo, hi = math.Min(lo, w), math.Max(hi, w)
	}
	return lo, hi
}

func TestFilterShapes(t *testing.T) {
	tests := []struct {
		filter   Filter
		negative [2]float64 // interval expected to dip below zero, if any
		end      float64    // weight is zero at and beyond end
	}{
		{Hermite, [2]float64{}, 1},
		{Triangle, [2]float64{}, 1},
		{CubicBSpline, [2]float64{}, 2},
		{CatmullRom, [2]float64{1, 2}, 2},
		{Cubic, [2]float64{1, 2}, 2},
		{CubicFast, [2]float64{1, 2}, 2},
		{Mitchell, [2]float64{1.05, 1.7}, 1.75},
		{Robidoux, [2]float64{1.05, 1.65}, 2 * robidouxBlur},
		{RobidouxSharp, [2]float64{1.05, 1.75}, 2 * robidouxSharpBlur},
		{Lanczos2, [2]float64{1, 2}, 2},
		{Lanczos2Sharp, [2]float64{0.96, 1.86}, 2 * lanczos2SharpBlur},
		{Lanczos3, [2]float64{1, 2}, 3},
		{Lanczos3Sharp, [2]float64{0.99, 1.95}, 3 * lanczos3SharpBlur},
		{Lanczos2Windowed, [2]float64{1, 2}, 2},
		{Lanczos2SharpWindowed, [2]float64{0.96, 1.86}, 2 * lanczos2SharpBlur},
		{Lanczos3Windowed, [2]float64{1, 2}, 3},
		{Lanczos3SharpWindowed, [2]float64{0.99, 1.95}, 3 * lanczos3SharpBlur},
	}
	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			d := mustDetails(t, tt.filter)
			if math.Abs(d.Window-tt.end) > 1e-9 {
				t.Errorf("Window = %v, want %v", d.Window, tt.end)
			}
			for _, x := range []float64{tt.end, tt.end + 1e-9, tt.end + 0.5, -tt.end, 100} {
				if w := d.Weight(x); w != 0 {
					t.Errorf("Weight(%v) = %v, want exactly 0", x, w)
				}
			}
			if tt.negative == ([2]float64{}) {
				if lo, _ := sampleRange(d, -tt.end, tt.end); lo < 0 {
					t.Errorf("min weight = %v, want non-negative", lo)
				}
				return
			}
			if _, hi := sampleRange(d, tt.negative[0], tt.negative[1]); hi >= 0 {
				t.Errorf("max weight on %v = %v, want negative", tt.negative, hi)
			}
			if w := d.Weight(0.5); w <= 0 {
				t.Errorf("Weight(0.5) = %v, want positive", w)
			}
		})
	}
}

func TestLanczos3SecondLobe(t *testing.T) {
	d := mustDetails(t, Lanczos3)
	if lo, _ := sampleRange(d, 2, 3); lo <= 0 {
		t.Errorf("min weight on (2,3) = %v, want positive", lo)
	}
}

func TestBoxSupport(t *testing.T) {
	d := mustDetails(t, Box)
	tests := []struct {
		x    float64
		want float64
	}{
		{-0.5, 1},
		{-0.25, 1},
		{0, 1},
		{0.49, 1},
		{0.5, 0},
		{-0.51, 0},
		{0.75, 0},
	}
	for _, tt := range tests {
		if got := d.Weight(tt.x); got != tt.want {
			t.Errorf("Weight(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestInterpolatingFiltersAtZero(t *testing.T) {
	for _, f := range []Filter{Box, Triangle, Hermite, CatmullRom, Cubic, CubicFast, Lanczos2, Lanczos3, Lanczos3Windowed} {
		d := mustDetails(t, f)
		if w := d.Weight(0); math.Abs(w-1) > 1e-12 {
			t.Errorf("%v Weight(0) = %v, want 1", f, w)
		}
		if w := d.Weight(1); math.Abs(w) > 1e-12 && f != Box {
			t.Errorf("%v Weight(1) = %v, want 0", f, w)
		}
	}
}

func TestCubicFastMatchesCubic(t *testing.T) {
	fast := mustDetails(t, CubicFast)
	ref := mustDetails(t, Cubic)
	for x := -2.0; x <= 2; x += 0.01 {
		if math.Abs(fast.Weight(x)-ref.Weight(x)) > 1e-12 {
			t.Fatalf("Weight(%v): fast %v, cubic %v", x, fast.Weight(x), ref.Weight(x))
		}
	}
}

func TestMitchellBC(t *testing.T) {
	b, c := mustDetails(t, Mitchell).BC()
	if b != 1.0/3 || c != 1.0/3 {
		t.Errorf("BC() = %v, %v", b, c)
	}
}

func TestNewDetailsErrors(t *testing.T) {
	if _, err := NewDetails(filterCount); !errors.Is(err, fastscaling.ErrInvalidFilterParameter) {
		t.Errorf("unknown filter error = %v", err)
	}
	for _, blur := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewDetailsWithBlur(Lanczos3, blur); !errors.Is(err, fastscaling.ErrInvalidFilterParameter) {
			t.Errorf("blur %v error = %v, want ErrInvalidFilterParameter", blur, err)
		}
	}
	d, err := NewDetailsWithBlur(Triangle, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d.Window != 2 || d.Weight(1) != 0.5 {
		t.Errorf("blurred triangle window %v, Weight(1) = %v", d.Window, d.Weight(1))
	}
}

func TestParseFilter(t *testing.T) {
	for _, f := range Filters() {
		got, err := ParseFilter(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFilter(%q) = %v, %v", f.String(), got, err)
		}
	}
	tests := []struct {
		name string
		want Filter
	}{
		{"lanczos-3-sharp", Lanczos3Sharp},
		{"CATMULL_ROM", CatmullRom},
		{"cubic b spline", CubicBSpline},
	}
	for _, tt := range tests {
		if got, err := ParseFilter(tt.name); err != nil || got != tt.want {
			t.Errorf("ParseFilter(%q) = %v, %v, want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseFilter("nearest"); !errors.Is(err, fastscaling.ErrInvalidFilterParameter) {
		t.Errorf("ParseFilter(nearest) error = %v", err)
	}
	if Filter(200).String() != "Unknown" {
		t.Error("invalid filter should print Unknown")
	}
}
