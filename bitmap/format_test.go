package bitmap

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format   Format
		bpp      int
		alpha    bool
		gray     bool
		channels int
		name     string
	}{
		{Gray8, 1, false, true, 3, "Gray8"},
		{Bgr24, 3, false, false, 3, "Bgr24"},
		{Bgr32, 4, false, false, 3, "Bgr32"},
		{Bgra32, 4, true, false, 4, "Bgra32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.format.IsValid() {
				t.Fatalf("%v.IsValid() = false", tt.format)
			}
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
			if got := tt.format.IsGrayscale(); got != tt.gray {
				t.Errorf("IsGrayscale() = %v, want %v", got, tt.gray)
			}
			if got := tt.format.FloatChannels(); got != tt.channels {
				t.Errorf("FloatChannels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.format.RowBytes(10); got != 10*tt.bpp {
				t.Errorf("RowBytes(10) = %d, want %d", got, 10*tt.bpp)
			}
		})
	}
}

func TestFormatInvalid(t *testing.T) {
	for _, f := range []Format{0, formatCount, 255} {
		if f.IsValid() {
			t.Errorf("Format(%d).IsValid() = true", f)
		}
		if f.BytesPerPixel() != 0 {
			t.Errorf("Format(%d).BytesPerPixel() = %d, want 0", f, f.BytesPerPixel())
		}
		if f.String() != "Unknown" {
			t.Errorf("Format(%d).String() = %q", f, f.String())
		}
	}
}
