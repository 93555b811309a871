package color

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/bitmap"
)

func newBgra(t *testing.T, w, h int, f bitmap.Format) *bitmap.Bgra {
	t.Helper()
	b, err := bitmap.NewBgra(w, h, f)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newFloat(t *testing.T, w, h, ch int) *bitmap.Float {
	t.Helper()
	f, err := bitmap.NewFloat(w, h, ch)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestSRGBToLinearRowsPremultiplies(t *testing.T) {
	src := newBgra(t, 2, 1, bitmap.Bgra32)
	copy(src.Pixels(), []byte{255, 128, 0, 255, 255, 255, 255, 51})
	dst := newFloat(t, 2, 1, 4)

	if err := SRGBToLinearRows(src, 0, dst, 0, 1); err != nil {
		t.Fatal(err)
	}
	if !dst.AlphaPremultiplied || !dst.AlphaMeaningful {
		t.Error("destination flags not set")
	}
	want := []float32{1, SRGBToLinear(128.0 / 255), 0, 1, 0.2, 0.2, 0.2, 0.2}
	for i, w := range want {
		if math.Abs(float64(dst.Pixels[i]-w)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, dst.Pixels[i], w)
		}
	}
}

func TestSRGBToLinearRowsPremultipliedSource(t *testing.T) {
	src := newBgra(t, 2, 1, bitmap.Bgra32)
	copy(src.Pixels(), []byte{100, 100, 100, 128, 0, 0, 0, 0})
	src.AlphaPremultiplied = true
	f := newFloat(t, 2, 1, 4)

	if err := SRGBToLinearRows(src, 0, f, 0, 1); err != nil {
		t.Fatal(err)
	}
	a := float32(128) / 255
	lin := SRGBToLinear(100/255.0/a) * a
	want := []float32{lin, lin, lin, a, 0, 0, 0, 0}
	for i, w := range want {
		if math.Abs(float64(f.Pixels[i]-w)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, f.Pixels[i], w)
		}
	}

	dst := newBgra(t, 2, 1, bitmap.Bgra32)
	dst.AlphaPremultiplied = true
	if err := LinearToSRGBRows(f, 0, dst, 0, 1); err != nil {
		t.Fatal(err)
	}
	for i, w := range src.Pixels() {
		if d := int(dst.Pixels()[i]) - int(w); d < -1 || d > 1 {
			t.Fatalf("round trip = %v, want %v", dst.Pixels(), src.Pixels())
		}
	}
}

func TestSRGBToLinearRowsExpandsFormats(t *testing.T) {
	tests := []struct {
		name   string
		format bitmap.Format
		bytes  []byte
		want   []float32
	}{
		{"gray", bitmap.Gray8, []byte{255}, []float32{1, 1, 1, 1}},
		{"bgr24", bitmap.Bgr24, []byte{0, 255, 0}, []float32{0, 1, 0, 1}},
		{"bgr32 padding ignored", bitmap.Bgr32, []byte{255, 0, 0, 0}, []float32{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newBgra(t, 1, 1, tt.format)
			copy(src.Pixels(), tt.bytes)
			dst := newFloat(t, 1, 1, 4)
			if err := SRGBToLinearRows(src, 0, dst, 0, 1); err != nil {
				t.Fatal(err)
			}
			for i, w := range tt.want {
				if dst.Pixels[i] != w {
					t.Errorf("sample %d = %v, want %v", i, dst.Pixels[i], w)
				}
			}
			if dst.AlphaMeaningful {
				t.Error("alpha should not be meaningful")
			}
		})
	}
}

func TestSRGBToLinearRowsStrip(t *testing.T) {
	src := newBgra(t, 3, 10, bitmap.Bgr24)
	src.Fill(255, 255, 255, 0)
	dst := newFloat(t, 3, 4, 3)
	if err := SRGBToLinearRows(src, 6, dst, 1, 2); err != nil {
		t.Fatal(err)
	}
	if dst.Row(0)[0] != 0 || dst.Row(3)[0] != 0 {
		t.Error("rows outside the strip were written")
	}
	if dst.Row(1)[0] != 1 || dst.Row(2)[8] != 1 {
		t.Error("strip rows not converted")
	}

	tests := []struct {
		name           string
		srcRow, dstRow int
		count          int
		want           error
	}{
		{"past source", 9, 0, 2, fastscaling.ErrDimensionMismatch},
		{"past dest", 0, 3, 2, fastscaling.ErrDimensionMismatch},
		{"negative", -1, 0, 1, fastscaling.ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SRGBToLinearRows(src, tt.srcRow, dst, tt.dstRow, tt.count)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	wide := newFloat(t, 4, 4, 3)
	if err := SRGBToLinearRows(src, 0, wide, 0, 1); !errors.Is(err, fastscaling.ErrDimensionMismatch) {
		t.Errorf("width mismatch error = %v", err)
	}
	if err := SRGBToLinearRows(src, 0, nil, 0, 1); !errors.Is(err, fastscaling.ErrNullArgument) {
		t.Errorf("nil float error = %v", err)
	}
}

func TestDemultiplyAlpha(t *testing.T) {
	f := newFloat(t, 3, 1, 4)
	copy(f.Pixels, []float32{0.1, 0.2, 0.3, 0.5, 0, 0, 0, 0, 0.4, 0.4, 0.4, 1})
	f.AlphaPremultiplied = true
	if err := DemultiplyAlpha(f, 0, 1); err != nil {
		t.Fatal(err)
	}
	want := []float32{0.2, 0.4, 0.6, 0.5, 0, 0, 0, 0, 0.4, 0.4, 0.4, 1}
	for i, w := range want {
		if math.Abs(float64(f.Pixels[i]-w)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, f.Pixels[i], w)
		}
	}

	f.AlphaPremultiplied = false
	before := append([]float32(nil), f.Pixels...)
	if err := DemultiplyAlpha(f, 0, 1); err != nil {
		t.Fatal(err)
	}
	for i := range before {
		if before[i] != f.Pixels[i] {
			t.Fatal("straight buffer was modified")
		}
	}
}

func TestLinearToSRGBRowsRoundTrip(t *testing.T) {
	src := newBgra(t, 256, 1, bitmap.Bgra32)
	row := src.Row(0)
	for x := range 256 {
		row[x*4+0] = byte(x)
		row[x*4+1] = byte(255 - x)
		row[x*4+2] = byte(x / 2)
		row[x*4+3] = 255
	}
	f := newFloat(t, 256, 1, 4)
	if err := SRGBToLinearRows(src, 0, f, 0, 1); err != nil {
		t.Fatal(err)
	}
	dst := newBgra(t, 256, 1, bitmap.Bgra32)
	if err := LinearToSRGBRows(f, 0, dst, 0, 1); err != nil {
		t.Fatal(err)
	}
	if string(dst.Row(0)) != string(src.Row(0)) {
		t.Error("opaque round trip is not exact")
	}
}

func TestLinearToSRGBRowsCompositing(t *testing.T) {
	half := func() *bitmap.Float {
		f := newFloat(t, 1, 1, 4)
		copy(f.Pixels, []float32{1, 1, 1, 0.5}) // white at 50%, straight
		return f
	}

	tests := []struct {
		name  string
		setup func(*bitmap.Bgra)
		want  [4]byte
	}{
		{"replace", func(b *bitmap.Bgra) {}, [4]byte{255, 255, 255, 128}},
		{"blend with opaque black self", func(b *bitmap.Bgra) {
			b.Fill(0, 0, 0, 255)
			b.Compositing = bitmap.CompositeBlendWithSelf
		}, [4]byte{LinearToByte(0.5), LinearToByte(0.5), LinearToByte(0.5), 255}},
		{"blend with transparent self", func(b *bitmap.Bgra) {
			b.Compositing = bitmap.CompositeBlendWithSelf
		}, [4]byte{255, 255, 255, 128}},
		{"blend with matte", func(b *bitmap.Bgra) {
			b.Compositing = bitmap.CompositeBlendWithMatte
			b.Matte = [4]uint8{0, 0, 255, 255}
		}, [4]byte{LinearToByte(0.5), LinearToByte(0.5), 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := newBgra(t, 1, 1, bitmap.Bgra32)
			tt.setup(dst)
			if err := LinearToSRGBRows(half(), 0, dst, 0, 1); err != nil {
				t.Fatal(err)
			}
			var got [4]byte
			copy(got[:], dst.Pixels())
			if got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinearToSRGBRowsFormats(t *testing.T) {
	f := newFloat(t, 1, 1, 4)
	copy(f.Pixels, []float32{0.25, 0.5, 0.5, 0.5})
	f.AlphaPremultiplied = true // straight color is (0.5, 1, 1)

	tests := []struct {
		format bitmap.Format
		want   []byte
	}{
		{bitmap.Gray8, []byte{LinearToByte(lumaB*0.5 + lumaG + lumaR)}},
		{bitmap.Bgr24, []byte{LinearToByte(0.5), 255, 255}},
		{bitmap.Bgr32, []byte{LinearToByte(0.5), 255, 255, 255}},
		{bitmap.Bgra32, []byte{LinearToByte(0.5), 255, 255, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			dst := newBgra(t, 1, 1, tt.format)
			if err := LinearToSRGBRows(f, 0, dst, 0, 1); err != nil {
				t.Fatal(err)
			}
			if got := dst.Pixels(); string(got) != string(tt.want) {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}
