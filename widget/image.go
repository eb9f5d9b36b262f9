// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"gioui.org/x/configbutton/f32"
)

// Image is the content of an image element. The layout only needs
// its natural size; drawing is left to the renderer. Implementations
// must be comparable.
type Image interface {
	// Size returns the natural size in dp.
	Size() f32.Point
}

// Picture is an Image backed by a decoded bitmap.
type Picture struct {
	// Src is the image to display.
	Src image.Image
	// Scale is the ratio of image pixels to
	// dps. If Scale is zero Picture falls back to
	// a scale that match a standard 72 DPI.
	Scale float32
}

const defaultScale = float32(160.0 / 72.0)

// NewPicture decodes a PNG or JPEG image.
func NewPicture(r io.Reader) (*Picture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("widget: decode picture: %w", err)
	}
	return &Picture{Src: img}, nil
}

func (p *Picture) Size() f32.Point {
	scale := p.Scale
	if scale == 0 {
		scale = defaultScale
	}
	sz := p.Src.Bounds().Size()
	return f32.Pt(float32(sz.X)*scale, float32(sz.Y)*scale)
}
