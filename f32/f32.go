// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle, extended with the size arithmetic used by
measuring layouts.

The coordinate space has the origin in the top left
corner with the axes extending right and down.

A Point doubles as a size, where X is the width and Y the
height.
*/
package f32

import (
	"math"
	"strconv"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Inf is the effectively infinite extent of an unbounded dimension.
var Inf = float32(math.Inf(+1))

// Unbounded is the size that represents no limit in either
// dimension.
var Unbounded = Point{X: Inf, Y: Inf}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rect returns the rectangle with origin (x, y) and size (w, h).
func Rect(x, y, w, h float32) Rectangle {
	return Rectangle{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// ClampNonNegative floors each dimension of p at zero.
func (p Point) ClampNonNegative() Point {
	return Point{X: max(p.X, 0), Y: max(p.Y, 0)}
}

// Limit returns the componentwise minimum of p and limit.
func (p Point) Limit(limit Point) Point {
	return Point{X: min(p.X, limit.X), Y: min(p.Y, limit.Y)}
}

// Max returns the componentwise maximum of p and p2.
func (p Point) Max(p2 Point) Point {
	return Point{X: max(p.X, p2.X), Y: max(p.Y, p2.Y)}
}

// Min returns the componentwise minimum of p and p2.
func (p Point) Min(p2 Point) Point {
	return p.Limit(p2)
}

// IsUnbounded reports whether either dimension of p is infinite.
func (p Point) IsUnbounded() bool {
	return math.IsInf(float64(p.X), +1) || math.IsInf(float64(p.Y), +1)
}

// Size returns r's width and height.
func (r Rectangle) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Inset shrinks r by the given edge amounts. The resulting size is
// clamped so that Max is never to the upper left of Min.
func (r Rectangle) Inset(top, right, bottom, left float32) Rectangle {
	r.Min.X += left
	r.Min.Y += top
	r.Max.X -= right
	r.Max.Y -= bottom
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Outset grows r by v on every side. A negative v shrinks r, but
// never past an empty rectangle centered on r.
func (r Rectangle) Outset(v float32) Rectangle {
	if v >= 0 {
		return Rectangle{
			Min: Point{X: r.Min.X - v, Y: r.Min.Y - v},
			Max: Point{X: r.Max.X + v, Y: r.Max.Y + v},
		}
	}
	c := r.Center()
	out := Rectangle{
		Min: Point{X: min(r.Min.X-v, c.X), Y: min(r.Min.Y-v, c.Y)},
		Max: Point{X: max(r.Max.X+v, c.X), Y: max(r.Max.Y+v, c.Y)},
	}
	return out
}

// Intersect returns the intersection of r and s.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Union returns the union of r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X - p.X, r.Min.Y - p.Y},
		Point{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}

// String returns a string representation of p.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(float64(p.X), 'f', -1, 32) +
		"," + strconv.FormatFloat(float64(p.Y), 'f', -1, 32) + ")"
}

// String returns a string representation of r.
func (r Rectangle) String() string {
	return r.Min.String() + "-" + r.Max.String()
}
