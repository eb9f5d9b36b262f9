// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/unit"
)

// Icon is an Image from IconVG data. It renders in a single color,
// the foreground color of the button.
type Icon struct {
	// Width is the natural width of the icon; the height follows the
	// aspect ratio of the icon. If zero, 24dp is used.
	Width unit.Dp

	src    []byte
	aspect float32
	// Cached values.
	img      *image.RGBA
	imgSize  int
	imgColor color.NRGBA
}

const defaultIconSize unit.Dp = 24

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("widget: decode icon: %w", err)
	}
	dx, dy := m.ViewBox.AspectRatio()
	return &Icon{src: data, aspect: dy / dx}, nil
}

func (ic *Icon) Size() f32.Point {
	w := ic.Width
	if w <= 0 {
		w = defaultIconSize
	}
	return f32.Pt(float32(w), float32(w)*ic.aspect)
}

// Image rasterizes the icon sz pixels wide in color col. The last
// image is cached.
func (ic *Icon) Image(sz int, col color.NRGBA) *image.RGBA {
	if sz == ic.imgSize && col == ic.imgColor && ic.img != nil {
		return ic.img
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * ic.aspect)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	r, g, b, a := col.RGBA()
	m.Palette[0] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.img = img
	ic.imgSize = sz
	ic.imgColor = col
	return img
}
