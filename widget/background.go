// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"gioui.org/x/configbutton/f32"
)

// Layer is a background primitive of a Button, positioned relative to
// the button bounds.
type Layer struct {
	Kind  Element
	Frame f32.Rectangle
	// Radius is the corner radius of the rounded Corners.
	Radius  float32
	Corners Corners
	// Color is the fill, stroke or shadow color, or the tint of an
	// effect.
	Color color.NRGBA
	// Width is the stroke width.
	Width float32
	// Shadow parameters.
	Offset f32.Point
	Blur   float32

	Effect Effect
	Image  Image
	Fit    Fit
	View   ViewID
}

// Compose returns the active layers of bg laid over bounds, back to
// front: shadow, fill or effect, image, custom view and stroke. The
// stroke takes the tint color when bg has no stroke color.
func Compose(bg *Background, bounds f32.Rectangle, tint color.NRGBA) []Layer {
	if bg == nil {
		return nil
	}
	radius := bg.Corner.Radius(bounds.Size())
	corners := bg.Corners.Resolve()
	base := Layer{Frame: bounds, Radius: radius, Corners: corners}
	var layers []Layer
	if bg.Shadow.Color.Valid() {
		l := base
		l.Kind = ShadowLayer
		l.Color = bg.Shadow.Color.NRGBA()
		l.Offset = bg.Shadow.Offset
		l.Blur = max(float32(bg.Shadow.BlurRadius), 0)
		layers = append(layers, l)
	}
	switch {
	case bg.Effect != nil:
		l := base
		l.Kind = EffectLayer
		l.Effect = bg.Effect
		l.Color = bg.Fill.NRGBA()
		layers = append(layers, l)
	case bg.Fill.Valid():
		l := base
		l.Kind = FillLayer
		l.Color = bg.Fill.NRGBA()
		layers = append(layers, l)
	}
	if bg.Image != nil {
		l := base
		l.Kind = ImageLayer
		l.Image = bg.Image
		l.Fit = bg.ImageFit
		layers = append(layers, l)
	}
	if bg.CustomView != 0 {
		l := base
		l.Kind = CustomLayer
		l.View = bg.CustomView
		layers = append(layers, l)
	}
	if w := float32(bg.StrokeWidth); w > 0 {
		outset := float32(bg.StrokeOutset)
		l := base
		l.Kind = StrokeLayer
		l.Frame = bounds.Outset(outset)
		l.Width = w
		l.Color = bg.Stroke.Or(tint)
		if radius > 0 {
			l.Radius = max(radius+outset, 0)
		}
		layers = append(layers, l)
	}
	return layers
}

// Backdrop tracks the background layers attached to a Host.
type Backdrop struct {
	Host   Host
	Logger *log.Logger

	attached elements
	view     ViewID
	layers   []Layer
}

// Update composes bg over bounds and brings the host in line with the
// result. Layers are attached when they become active and detached
// when they become inactive; unchanged layers are left alone. A
// replaced custom view is detached before its successor is attached.
func (b *Backdrop) Update(bg *Background, bounds f32.Rectangle, tint color.NRGBA) []Layer {
	b.layers = Compose(bg, bounds, tint)
	var want elements
	for _, l := range b.layers {
		if l.Kind != CustomLayer {
			want.add(l.Kind)
		}
	}
	b.attached.sync(b.Host, want)
	var view ViewID
	if bg != nil {
		view = bg.CustomView
	}
	if view != b.view {
		if b.view != 0 && b.Host != nil {
			b.Host.DetachView(b.view)
		}
		if view != 0 && b.Host != nil {
			b.Host.AttachView(view)
		}
		b.logger().Debug("custom view changed", "from", b.view, "to", view)
		b.view = view
	}
	return b.layers
}

// Layers returns the layers of the last Update.
func (b *Backdrop) Layers() []Layer {
	return b.layers
}

// View returns the attached custom view, or zero.
func (b *Backdrop) View() ViewID {
	return b.view
}

// WillRemoveView must be called by the host before it removes view id
// from the background on its own. Removing the active custom view
// behind the Backdrop's back is a programming error: it panics in
// builds tagged debug and is logged otherwise.
func (b *Backdrop) WillRemoveView(id ViewID) {
	if id == 0 || id != b.view {
		return
	}
	if debugAssertions {
		panic(fmt.Sprintf("widget: custom view %d removed while in use; clear Background.CustomView instead", id))
	}
	b.logger().Error("custom view removed while in use", "view", id)
}

func (b *Backdrop) logger() *log.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return log.Default()
}
