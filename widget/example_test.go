// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"
	"image"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/text"
	"gioui.org/x/configbutton/widget"
)

// monospace measures every byte 8dp wide on 16dp lines.
type monospace struct{}

func (monospace) Measure(spans []text.Span, maxWidth float32) f32.Point {
	n := text.Len(spans)
	return f32.Pt(min(float32(n)*8, maxWidth), 16)
}

func ExampleButton() {
	cfg := widget.DefaultConfiguration()
	cfg.Image = &widget.Picture{Src: image.NewNRGBA(image.Rect(0, 0, 24, 24)), Scale: 1}
	cfg.Title = widget.Text{String: "Save"}
	cfg.Subtitle = widget.Text{String: "2 files"}
	cfg.ImagePlacement = widget.Top
	cfg.ImagePadding = 4
	cfg.TitlePadding = 2
	cfg.ContentInsets = layout.UniformInsets(10)

	b := &widget.Button{Text: monospace{}}
	b.SetConfiguration(cfg)
	sz := b.IntrinsicSize()
	fmt.Println("size:", sz)

	f := b.Layout(f32.Rect(0, 0, sz.X, sz.Y))
	fmt.Println("image:", f.Image)
	fmt.Println("title:", f.Title)
	fmt.Println("subtitle:", f.Subtitle)

	// Output:
	// size: (76,82)
	// image: (26,10)-(50,34)
	// title: (22,38)-(54,54)
	// subtitle: (10,56)-(66,72)
}
