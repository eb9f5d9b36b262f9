// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "gioui.org/x/configbutton/f32"

// Fit scales an image to fit and clip to its frame.
type Fit uint8

const (
	// Unscaled does not alter the scale of an image.
	Unscaled Fit = iota
	// Contain scales the image as large as possible without cropping
	// and it preserves aspect-ratio.
	Contain
	// Cover scales the image to cover the frame and preserves
	// aspect-ratio.
	Cover
	// ScaleDown scales the image smaller without cropping,
	// when it exceeds the frame.
	// It preserves aspect-ratio.
	ScaleDown
	// Fill stretches the image to the frame and does not
	// preserve aspect-ratio.
	Fill
)

// Rect returns where an image of size sz is drawn in frame. The image
// is centered in frame; callers clip it to frame.
func (fit Fit) Rect(sz f32.Point, frame f32.Rectangle) f32.Rectangle {
	if fit == Fill {
		return frame
	}
	if fit == Unscaled || sz.X <= 0 || sz.Y <= 0 {
		return center(sz, frame)
	}

	fsz := frame.Size()
	scale := f32.Point{
		X: fsz.X / sz.X,
		Y: fsz.Y / sz.Y,
	}

	switch fit {
	case Contain:
		scale.X = min(scale.X, scale.Y)
	case Cover:
		scale.X = max(scale.X, scale.Y)
	case ScaleDown:
		scale.X = min(scale.X, scale.Y)

		// The image would need to be scaled up, no change needed.
		if scale.X >= 1 {
			return center(sz, frame)
		}
	}
	return center(sz.Mul(scale.X), frame)
}

func center(sz f32.Point, frame f32.Rectangle) f32.Rectangle {
	c := frame.Center()
	return f32.Rect(c.X-sz.X/2, c.Y-sz.Y/2, sz.X, sz.Y)
}

func (fit Fit) String() string {
	switch fit {
	case Unscaled:
		return "Unscaled"
	case Contain:
		return "Contain"
	case Cover:
		return "Cover"
	case ScaleDown:
		return "ScaleDown"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}
