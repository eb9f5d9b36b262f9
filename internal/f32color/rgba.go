// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements the color math shared by the button
// background and foreground.
package f32color

import (
	"image/color"
	"math"
)

// MulAlpha scales the alpha channel of c by alpha, clamped to [0; 1].
// The color channels are left untouched, since c is not premultiplied.
func MulAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	switch {
	case alpha <= 0:
		c.A = 0
	case alpha < 1:
		c.A = uint8(math.Round(float64(c.A) * float64(alpha)))
	}
	return c
}

// Premultiply converts c to a premultiplied color, suitable for
// compositing with image/draw.
func Premultiply(c color.NRGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8((uint16(c.R)*a + 127) / 255),
		G: uint8((uint16(c.G)*a + 127) / 255),
		B: uint8((uint16(c.B)*a + 127) / 255),
		A: c.A,
	}
}
