// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/unit"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the placement of elements along one axis.
type Alignment uint8

// TextDirection is the layout direction of a user interface.
type TextDirection uint8

// HAlignment is the horizontal alignment of a control's content.
// The zero value centers the content.
type HAlignment uint8

// VAlignment is the vertical alignment of a control's content.
// The zero value centers the content.
type VAlignment uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	Start Alignment = iota
	End
	Middle
	// Fill stretches elements to the available space.
	Fill
)

const (
	LTR TextDirection = iota
	RTL
)

const (
	HCenter HAlignment = iota
	Left
	Right
	HFill
	// Leading is Left for LTR and Right for RTL.
	Leading
	// Trailing is Right for LTR and Left for RTL.
	Trailing
)

const (
	VCenter VAlignment = iota
	Top
	Bottom
	VFill
)

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt f32.Point) f32.Point {
	if a == Vertical {
		return f32.Point{X: pt.Y, Y: pt.X}
	}
	return pt
}

// Main returns the extent of sz along a.
func (a Axis) Main(sz f32.Point) float32 {
	return a.Convert(sz).X
}

// Cross returns the extent of sz across a.
func (a Axis) Cross(sz f32.Point) float32 {
	return a.Convert(sz).Y
}

// Other returns the axis perpendicular to a.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Resolve maps the alignment to an Alignment along the horizontal
// axis, mirroring Leading and Trailing for RTL.
func (h HAlignment) Resolve(dir TextDirection) Alignment {
	switch h {
	case Left:
		return Start
	case Right:
		return End
	case HFill:
		return Fill
	case Leading:
		if dir == RTL {
			return End
		}
		return Start
	case Trailing:
		if dir == RTL {
			return Start
		}
		return End
	default:
		return Middle
	}
}

// Alignment maps v to an Alignment along the vertical axis.
func (v VAlignment) Alignment() Alignment {
	switch v {
	case Top:
		return Start
	case Bottom:
		return End
	case VFill:
		return Fill
	default:
		return Middle
	}
}

// Inset is space around content, in absolute edges.
type Inset struct {
	Top, Right, Bottom, Left unit.Dp
}

// EdgeInsets are insets whose horizontal edges are either relative to
// the layout direction or absolute.
type EdgeInsets struct {
	Top, Bottom unit.Dp
	// Start and End are the leading and trailing insets, or the left
	// and right insets when Absolute is set.
	Start, End unit.Dp
	Absolute   bool
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Dp) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// DirectionalInsets returns direction-relative EdgeInsets.
func DirectionalInsets(top, leading, bottom, trailing unit.Dp) EdgeInsets {
	return EdgeInsets{Top: top, Bottom: bottom, Start: leading, End: trailing}
}

// AbsoluteInsets returns EdgeInsets that ignore the layout direction.
func AbsoluteInsets(in Inset) EdgeInsets {
	return EdgeInsets{Top: in.Top, Bottom: in.Bottom, Start: in.Left, End: in.Right, Absolute: true}
}

// UniformInsets returns EdgeInsets with v on every edge.
func UniformInsets(v unit.Dp) EdgeInsets {
	return EdgeInsets{Top: v, Bottom: v, Start: v, End: v}
}

// Resolve returns the absolute insets for a layout direction. Leading
// and trailing swap sides for RTL.
func (e EdgeInsets) Resolve(dir TextDirection) Inset {
	in := Inset{Top: e.Top, Bottom: e.Bottom, Left: e.Start, Right: e.End}
	if !e.Absolute && dir == RTL {
		in.Left, in.Right = e.End, e.Start
	}
	return in
}

// NonNegative returns in with negative edges replaced by zero.
func (in Inset) NonNegative() Inset {
	return Inset{
		Top:    in.Top.NonNegative(),
		Right:  in.Right.NonNegative(),
		Bottom: in.Bottom.NonNegative(),
		Left:   in.Left.NonNegative(),
	}
}

// Size returns the total horizontal and vertical insets.
func (in Inset) Size() f32.Point {
	return f32.Point{
		X: float32(in.Left + in.Right),
		Y: float32(in.Top + in.Bottom),
	}
}

// Apply returns r shrunk by the inset, clamped to a non-negative size.
func (in Inset) Apply(r f32.Rectangle) f32.Rectangle {
	return r.Inset(float32(in.Top), float32(in.Right), float32(in.Bottom), float32(in.Left))
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d TextDirection) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("unreachable")
	}
}

func (h HAlignment) String() string {
	switch h {
	case HCenter:
		return "Center"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case HFill:
		return "Fill"
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	default:
		panic("unreachable")
	}
}

func (v VAlignment) String() string {
	switch v {
	case VCenter:
		return "Center"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case VFill:
		return "Fill"
	default:
		panic("unreachable")
	}
}
