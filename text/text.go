// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures text for layout.

Sizes in this package are in device independent pixels (dp). Font
sizes are in scaled pixels (sp) and converted to dp with the Metric of
the Shaper.
*/
package text

import (
	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/font"
	"gioui.org/x/configbutton/unit"
)

// Font is a font description together with a size.
type Font struct {
	font.Font
	Size unit.Sp
}

// Span is a run of text in a single font. A sequence of spans forms
// rich text.
type Span struct {
	Text string
	Font Font
}

// Run is the part of a Span that falls on a single line.
type Run struct {
	// Span is the index of the source span.
	Span int
	Text string
	Font Font
	// X is the offset of the run from the start of the line.
	X     float32
	Width float32
}

// A Line contains the measurements of a line of text.
type Line struct {
	Runs []Run
	// Width is the width of the line, excluding trailing white space.
	Width float32
	// Ascent is the height above the baseline.
	Ascent float32
	// Descent is the height below the baseline, including
	// the line gap.
	Descent float32
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
}

// Size returns the size of the text, as wide as its widest line.
func (l Layout) Size() f32.Point {
	var sz f32.Point
	for _, line := range l.Lines {
		sz.X = max(sz.X, line.Width)
		sz.Y += line.Ascent + line.Descent
	}
	return sz
}

// Len returns the number of bytes of text in spans.
func Len(spans []Span) int {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	return n
}
