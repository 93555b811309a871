package bitmap

import "testing"

func TestDetectContent(t *testing.T) {
	b, err := NewBgra(200, 150, Bgra32)
	if err != nil {
		t.Fatal(err)
	}
	b.Fill(255, 255, 255, 255)
	win, _ := b.Window(30, 20, 100, 75)
	win.Fill(30, 30, 30, 255)
	win.Destroy()

	got := DetectContent(b, 20)
	want := Rect{X1: 30, Y1: 20, X2: 130, Y2: 95}
	if got != want {
		t.Errorf("DetectContent() = %+v, want %+v", got, want)
	}
	if got.Width() != 100 || got.Height() != 75 {
		t.Errorf("size = %dx%d, want 100x75", got.Width(), got.Height())
	}
}

func TestDetectContentThreshold(t *testing.T) {
	b, _ := NewBgra(10, 10, Bgr24)
	b.Fill(100, 100, 100, 0)
	off := b.PixelOffset(4, 6)
	b.Pixels()[off] = 110 // distance 10

	if r := DetectContent(b, 20); !r.Empty() {
		t.Errorf("below threshold: got %+v, want empty", r)
	}
	if r := DetectContent(b, 5); r != (Rect{X1: 4, Y1: 6, X2: 5, Y2: 7}) {
		t.Errorf("above threshold: got %+v", r)
	}
}

func TestDetectContentIgnoresPadding(t *testing.T) {
	b, _ := NewBgra(4, 4, Bgr32)
	b.Pixels()[b.PixelOffset(2, 2)+3] = 9
	if r := DetectContent(b, 0); !r.Empty() {
		t.Errorf("padding byte counted as content: %+v", r)
	}
}
