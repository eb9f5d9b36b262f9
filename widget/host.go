// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "gioui.org/x/configbutton/f32"

// Element identifies a child primitive of a Button.
type Element uint8

const (
	ShadowLayer Element = iota
	FillLayer
	EffectLayer
	ImageLayer
	CustomLayer
	StrokeLayer
	IconElement
	IndicatorElement
	TitleElement
	SubtitleElement

	numElements
)

// Host is the view tree a Button attaches its primitives to. A Button
// attaches an element once when it becomes active and detaches it
// once when it becomes inactive.
type Host interface {
	Attach(e Element)
	Detach(e Element)
	// AttachView reparents the host owned view into the background.
	AttachView(id ViewID)
	// DetachView removes the view from the background without
	// destroying it.
	DetachView(id ViewID)
	// Invalidate requests a new layout pass.
	Invalidate()
}

// Sizer reports the natural size of an element that fits within
// limit. The activity indicator is measured with a Sizer.
type Sizer interface {
	SizeThatFits(limit f32.Point) f32.Point
}

// FixedSize is a Sizer of constant size.
type FixedSize f32.Point

func (s FixedSize) SizeThatFits(limit f32.Point) f32.Point {
	return f32.Point(s)
}

// elements is a set of Elements.
type elements uint16

func (s elements) has(e Element) bool {
	return s&(1<<e) != 0
}

func (s *elements) add(e Element) {
	*s |= 1 << e
}

// sync attaches the elements of want missing from s and detaches the
// elements of s missing from want.
func (s *elements) sync(h Host, want elements) {
	for e := Element(0); e < numElements; e++ {
		switch {
		case want.has(e) && !s.has(e):
			if h != nil {
				h.Attach(e)
			}
		case !want.has(e) && s.has(e):
			if h != nil {
				h.Detach(e)
			}
		}
	}
	*s = want
}

func (e Element) String() string {
	switch e {
	case ShadowLayer:
		return "Shadow"
	case FillLayer:
		return "Fill"
	case EffectLayer:
		return "Effect"
	case ImageLayer:
		return "Image"
	case CustomLayer:
		return "Custom"
	case StrokeLayer:
		return "Stroke"
	case IconElement:
		return "Icon"
	case IndicatorElement:
		return "Indicator"
	case TitleElement:
		return "Title"
	case SubtitleElement:
		return "Subtitle"
	default:
		panic("unreachable")
	}
}
