// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"math"

	"golang.org/x/image/vector"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/widget"
)

// segment is a line or a cubic Bézier curve ending at to.
type segment struct {
	ctrl0, ctrl1 f32.Point
	to           f32.Point
	cubic        bool
}

// roundRect adds the outline of r with the corners c rounded by
// radius to vr. Reversed outlines wind the other way and cut holes in
// forward outlines.
func roundRect(vr *vector.Rasterizer, r f32.Rectangle, radius float32, c widget.Corners, reverse bool) {
	// https://pomax.github.io/bezierinfo/#circles_cubic.
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q

	radius = min(radius, r.Dx()/2, r.Dy()/2)
	corner := func(mask widget.Corners) float32 {
		if radius > 0 && c&mask != 0 {
			return radius
		}
		return 0
	}
	nw, ne := corner(widget.TopLeft), corner(widget.TopRight)
	se, sw := corner(widget.BottomRight), corner(widget.BottomLeft)
	w, n, e, s := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	start := f32.Point{X: w + nw, Y: n}
	segs := [...]segment{
		{to: f32.Point{X: e - ne, Y: n}},
		{
			ctrl0: f32.Point{X: e - ne*iq, Y: n},
			ctrl1: f32.Point{X: e, Y: n + ne*iq},
			to:    f32.Point{X: e, Y: n + ne},
			cubic: true,
		},
		{to: f32.Point{X: e, Y: s - se}},
		{
			ctrl0: f32.Point{X: e, Y: s - se*iq},
			ctrl1: f32.Point{X: e - se*iq, Y: s},
			to:    f32.Point{X: e - se, Y: s},
			cubic: true,
		},
		{to: f32.Point{X: w + sw, Y: s}},
		{
			ctrl0: f32.Point{X: w + sw*iq, Y: s},
			ctrl1: f32.Point{X: w, Y: s - sw*iq},
			to:    f32.Point{X: w, Y: s - sw},
			cubic: true,
		},
		{to: f32.Point{X: w, Y: n + nw}},
		{
			ctrl0: f32.Point{X: w, Y: n + nw*iq},
			ctrl1: f32.Point{X: w + nw*iq, Y: n},
			to:    start,
			cubic: true,
		},
	}
	vr.MoveTo(start.X, start.Y)
	if !reverse {
		for _, sg := range segs {
			add(vr, sg)
		}
	} else {
		for i := len(segs) - 1; i >= 0; i-- {
			sg := segs[i]
			from := start
			if i > 0 {
				from = segs[i-1].to
			}
			add(vr, segment{ctrl0: sg.ctrl1, ctrl1: sg.ctrl0, to: from, cubic: sg.cubic})
		}
	}
	vr.ClosePath()
}

func add(vr *vector.Rasterizer, sg segment) {
	if sg.cubic {
		vr.CubeTo(sg.ctrl0.X, sg.ctrl0.Y, sg.ctrl1.X, sg.ctrl1.Y, sg.to.X, sg.to.Y)
		return
	}
	vr.LineTo(sg.to.X, sg.to.Y)
}
