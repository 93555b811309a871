package kernel

import (
	"github.com/gogpu/fastscaling"
	"github.com/gogpu/fastscaling/bitmap"
)

// ColorMatrix is a 5x5 color transform in row-vector form:
//
//	[R' G' B' A' 1] = [R G B A 1] * M
//
// Rows and columns are ordered R, G, B, A, bias; row 4 holds the offsets.
// Values are applied to linear-light samples in 0..1.
type ColorMatrix [5][5]float32

// IdentityColorMatrix passes colors through unchanged.
func IdentityColorMatrix() ColorMatrix {
	var m ColorMatrix
	for i := range 5 {
		m[i][i] = 1
	}
	return m
}

// BrightnessMatrix scales R, G and B by factor.
func BrightnessMatrix(factor float32) ColorMatrix {
	m := IdentityColorMatrix()
	m[0][0], m[1][1], m[2][2] = factor, factor, factor
	return m
}

// SaturationMatrix blends each color towards its Rec. 709 luma.
// factor: 0 = grayscale, 1 = unchanged, 2 = oversaturated.
func SaturationMatrix(factor float32) ColorMatrix {
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - factor
	m := IdentityColorMatrix()
	lum := [3]float32{lumR, lumG, lumB}
	for i := range 3 {
		for j := range 3 {
			m[i][j] = inv * lum[i]
			if i == j {
				m[i][j] += factor
			}
		}
	}
	return m
}

// GrayscaleMatrix maps colors to their Rec. 709 luma.
func GrayscaleMatrix() ColorMatrix {
	return SaturationMatrix(0)
}

// InvertMatrix inverts R, G and B.
func InvertMatrix() ColorMatrix {
	m := IdentityColorMatrix()
	for i := range 3 {
		m[i][i] = -1
		m[4][i] = 1
	}
	return m
}

// OpacityMatrix scales alpha by factor.
func OpacityMatrix(factor float32) ColorMatrix {
	m := IdentityColorMatrix()
	m[3][3] = factor
	return m
}

// Multiply returns the matrix applying m first, then other.
func (m ColorMatrix) Multiply(other ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for i := range 5 {
		for j := range 5 {
			var s float32
			for k := range 5 {
				s += m[i][k] * other[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Transform applies m to one R, G, B, A color.
func (m *ColorMatrix) Transform(r, g, b, a float32) (float32, float32, float32, float32) {
	in := [4]float32{r, g, b, a}
	var out [4]float32
	for j := range 4 {
		s := m[4][j]
		for i := range 4 {
			s += in[i] * m[i][j]
		}
		out[j] = s
	}
	return out[0], out[1], out[2], out[3]
}

// ApplyColorMatrix transforms count rows of f starting at row. f holds
// B, G, R[, A] samples with straight alpha; 3-channel buffers use alpha 1
// and discard the alpha result.
func ApplyColorMatrix(f *bitmap.Float, m *ColorMatrix, row, count int) error {
	if f == nil || m == nil {
		return fastscaling.Errorf(fastscaling.KindNullArgument, "kernel: nil color matrix argument")
	}
	if row < 0 || count < 0 || row+count > f.H {
		return fastscaling.Errorf(fastscaling.KindDimensionMismatch, "kernel: rows [%d,%d) outside height %d", row, row+count, f.H)
	}
	ch := f.Channels
	seg := f.Rows(row, count)
	for i := 0; i < len(seg); i += ch {
		p := seg[i : i+ch]
		a := float32(1)
		if ch == 4 {
			a = p[3]
		}
		r, g, b, a := m.Transform(p[2], p[1], p[0], a)
		p[0], p[1], p[2] = b, g, r
		if ch == 4 {
			p[3] = a
		}
	}
	return nil
}
