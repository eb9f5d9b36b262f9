// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestMulAlpha(t *testing.T) {
	tests := []struct {
		in    color.NRGBA
		alpha float32
		want  color.NRGBA
	}{
		{color.NRGBA{R: 10, A: 0xff}, 1, color.NRGBA{R: 10, A: 0xff}},
		{color.NRGBA{R: 10, A: 0xff}, 0.5, color.NRGBA{R: 10, A: 0x80}},
		{color.NRGBA{G: 20, A: 200}, 0.75, color.NRGBA{G: 20, A: 150}},
		{color.NRGBA{B: 30, A: 200}, 0, color.NRGBA{B: 30, A: 0}},
		{color.NRGBA{B: 30, A: 200}, 2, color.NRGBA{B: 30, A: 200}},
	}
	for _, tc := range tests {
		if got := MulAlpha(tc.in, tc.alpha); got != tc.want {
			t.Errorf("MulAlpha(%v, %v) = %v, want %v", tc.in, tc.alpha, got, tc.want)
		}
	}
}

func TestPremultiply_Boundary(t *testing.T) {
	for col := 0; col <= 0xFF; col++ {
		for alpha := 0; alpha <= 0xFF; alpha++ {
			in := color.NRGBA{R: uint8(col), A: uint8(alpha)}
			premul := Premultiply(in)
			if premul.A != uint8(alpha) {
				t.Errorf("%v: got %v expected %v", in, premul.A, alpha)
			}
			if premul.R > premul.A {
				t.Errorf("%v: R=%v > A=%v", in, premul.R, premul.A)
			}
		}
	}
}

var sink color.NRGBA

func BenchmarkMulAlpha(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = MulAlpha(color.NRGBA{R: byte(i), G: byte(i >> 8), B: byte(i >> 16), A: 0xFF}, 0.5)
	}
}
