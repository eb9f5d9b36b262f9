// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster paints laid out buttons into images with a software
rasterizer.

Hosts with a view system render the layers of a widget.Frame
themselves; the Rasterizer serves previews, command line tools and
tests.
*/
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	xdraw "golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/internal/f32color"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/text"
	"gioui.org/x/configbutton/unit"
	"gioui.org/x/configbutton/widget"
)

// Rasterizer paints widget.Frames. The zero Rasterizer paints one
// pixel per dp with the Go regular font.
type Rasterizer struct {
	// Shaper lays out the labels. Labels fit their frames only if it
	// measures like the TextMeasurer of the button.
	Shaper *text.Shaper
	// Scale is the number of pixels per dp. Zero means 1.
	Scale float32
	// View paints the host view id within r, if set.
	View   func(dst draw.Image, id widget.ViewID, r image.Rectangle)
	Logger *log.Logger

	faces map[faceKey]xfont.Face
}

type faceKey struct {
	font *sfnt.Font
	ppem fixed.Int26_6
}

// Frame paints f into dst, back to front.
func (r *Rasterizer) Frame(f widget.Frame, dst *image.RGBA) {
	for _, l := range f.Layers {
		r.layer(dst, l)
	}
	r.content(dst, f)
	r.label(dst, f.TitleSpans, f.Title, f.TitleColor, f.TextAlignment)
	r.label(dst, f.SubtitleSpans, f.Subtitle, f.SubtitleColor, f.TextAlignment)
}

func (r *Rasterizer) layer(dst *image.RGBA, l widget.Layer) {
	s := r.scale()
	frame := scaleRect(l.Frame, s)
	radius := l.Radius * s
	switch l.Kind {
	case widget.ShadowLayer:
		blur := l.Blur * s
		sf := frame.Add(l.Offset.Mul(s))
		m := mask(pixels(sf.Outset(2*blur)), func(vr *vector.Rasterizer, off f32.Point) {
			roundRect(vr, sf.Add(off), radius, l.Corners, false)
		})
		if m == nil {
			return
		}
		boxBlur(m.Pix, m.Rect.Dx(), m.Rect.Dy(), m.Stride, 1, int(math.Round(float64(blur))))
		draw.DrawMask(dst, m.Rect, uniform(l.Color), image.Point{}, m, m.Rect.Min, draw.Over)
	case widget.FillLayer:
		fill(dst, pixels(frame), l.Color, func(vr *vector.Rasterizer, off f32.Point) {
			roundRect(vr, frame.Add(off), radius, l.Corners, false)
		})
	case widget.EffectLayer:
		r.effect(dst, l, frame, radius)
	case widget.ImageLayer:
		if l.Image == nil {
			return
		}
		m := mask(pixels(frame), func(vr *vector.Rasterizer, off f32.Point) {
			roundRect(vr, frame.Add(off), radius, l.Corners, false)
		})
		dr := pixels(scaleRect(l.Fit.Rect(l.Image.Size(), l.Frame), s))
		r.image(dst, l.Image, dr, m, color.NRGBA{A: 0xff})
	case widget.CustomLayer:
		if r.View != nil {
			r.View(dst, l.View, pixels(frame).Intersect(dst.Bounds()))
		}
	case widget.StrokeLayer:
		w := l.Width * s
		outer, inner := frame.Outset(w/2), frame.Outset(-w/2)
		fill(dst, pixels(outer), l.Color, func(vr *vector.Rasterizer, off f32.Point) {
			roundRect(vr, outer.Add(off), grow(radius, w/2), l.Corners, false)
			if inner.Dx() > 0 && inner.Dy() > 0 {
				roundRect(vr, inner.Add(off), grow(radius, -w/2), l.Corners, true)
			}
		})
	}
}

// effect paints an effect layer. Blur effects blur the pixels below
// the layer; the color of the layer tints the result.
func (r *Rasterizer) effect(dst *image.RGBA, l widget.Layer, frame f32.Rectangle, radius float32) {
	m := mask(pixels(frame), func(vr *vector.Rasterizer, off f32.Point) {
		roundRect(vr, frame.Add(off), radius, l.Corners, false)
	})
	if m == nil {
		return
	}
	switch e := l.Effect.(type) {
	case widget.Blur:
		clip := m.Rect.Intersect(dst.Bounds())
		if clip.Empty() {
			break
		}
		below := image.NewRGBA(clip)
		draw.Draw(below, clip, dst, clip.Min, draw.Src)
		rad := int(math.Round(float64(float32(e.Radius) * r.scale())))
		boxBlur(below.Pix, clip.Dx(), clip.Dy(), below.Stride, 4, rad)
		draw.DrawMask(dst, clip, below, clip.Min, m, clip.Min, draw.Over)
	default:
		r.logger().Debug("unsupported effect", "effect", l.Effect.EffectName())
	}
	if l.Color.A > 0 {
		draw.DrawMask(dst, m.Rect, uniform(l.Color), image.Point{}, m, m.Rect.Min, draw.Over)
	}
}

// content paints the image or the activity indicator.
func (r *Rasterizer) content(dst *image.RGBA, f widget.Frame) {
	s := r.scale()
	frame := scaleRect(f.Image, s)
	switch {
	case f.Indicator:
		d := min(frame.Dx(), frame.Dy())
		if d <= 0 {
			return
		}
		w := max(d/8, 1)
		c := frame.Center()
		ring := f32.Rectangle{Min: c.Sub(f32.Pt(d/2, d/2)), Max: c.Add(f32.Pt(d/2, d/2))}
		outer, inner := ring, ring.Outset(-w)
		fill(dst, pixels(outer), f.Foreground, func(vr *vector.Rasterizer, off f32.Point) {
			roundRect(vr, outer.Add(off), d/2, widget.AllCorners, false)
			roundRect(vr, inner.Add(off), d/2-w, widget.AllCorners, true)
		})
	case f.Icon != nil:
		dr := pixels(scaleRect(widget.Contain.Rect(f.Icon.Size(), f.Image), s))
		r.image(dst, f.Icon, dr, nil, f.Foreground)
	}
}

// image paints img scaled to dr, masked by m if set. Icons are
// painted in color fg.
func (r *Rasterizer) image(dst *image.RGBA, img widget.Image, dr image.Rectangle, m *image.Alpha, fg color.NRGBA) {
	if dr.Empty() {
		return
	}
	var src image.Image
	switch img := img.(type) {
	case *widget.Picture:
		src = img.Src
	case *widget.Icon:
		src = img.Image(dr.Dx(), fg)
	default:
		r.logger().Warn("unsupported image", "type", fmt.Sprintf("%T", img))
		return
	}
	scaled := image.NewRGBA(dr)
	xdraw.CatmullRom.Scale(scaled, dr, src, src.Bounds(), draw.Src, nil)
	if m == nil {
		draw.Draw(dst, dr, scaled, dr.Min, draw.Over)
		return
	}
	draw.DrawMask(dst, dr, scaled, dr.Min, m, dr.Min, draw.Over)
}

// label paints spans within frame. Lines are aligned by align, where
// layout.Start is left.
func (r *Rasterizer) label(dst *image.RGBA, spans []text.Span, frame f32.Rectangle, col color.NRGBA, align layout.Alignment) {
	if len(spans) == 0 || frame.Empty() {
		return
	}
	s := r.scale()
	clip := pixels(scaleRect(frame, s)).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	d := xfont.Drawer{
		Dst: dst.SubImage(clip).(*image.RGBA),
		Src: uniform(col),
	}
	y := frame.Min.Y
	for _, line := range r.shaper().Layout(spans, frame.Dx()).Lines {
		x := frame.Min.X
		switch align {
		case layout.Middle:
			x += (frame.Dx() - line.Width) / 2
		case layout.End:
			x += frame.Dx() - line.Width
		}
		y += line.Ascent
		for _, run := range line.Runs {
			face, err := r.face(run.Font)
			if err != nil {
				r.logger().Error("label face", "err", err)
				return
			}
			d.Face = face
			d.Dot = fixed.Point26_6{X: toFixed((x + run.X) * s), Y: toFixed(y * s)}
			d.DrawString(strings.TrimRight(run.Text, "\r\n"))
		}
		y += line.Descent
	}
}

func (r *Rasterizer) face(f text.Font) (xfont.Face, error) {
	sh := r.shaper()
	sf := sh.Face(f.Font)
	k := faceKey{font: sf, ppem: fixed.Int26_6(float32(sh.PixelsPerEm(f)) * r.scale())}
	if face, ok := r.faces[k]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    float64(k.ppem) / 64,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: %v: %w", f.Font, err)
	}
	if r.faces == nil {
		r.faces = make(map[faceKey]xfont.Face)
	}
	r.faces[k] = face
	return face, nil
}

func (r *Rasterizer) shaper() *text.Shaper {
	if r.Shaper == nil {
		r.Shaper = text.NewShaper(unit.Metric{}, nil)
	}
	return r.Shaper
}

func (r *Rasterizer) scale() float32 {
	if r.Scale > 0 {
		return r.Scale
	}
	return 1
}

func (r *Rasterizer) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// fill paints the path built by build in color col, clipped to clip.
func fill(dst *image.RGBA, clip image.Rectangle, col color.NRGBA, build func(vr *vector.Rasterizer, off f32.Point)) {
	if clip.Intersect(dst.Bounds()).Empty() || col.A == 0 {
		return
	}
	m := mask(clip, build)
	draw.DrawMask(dst, clip, uniform(col), image.Point{}, m, clip.Min, draw.Over)
}

// mask returns the coverage of the path built by build within clip.
func mask(clip image.Rectangle, build func(vr *vector.Rasterizer, off f32.Point)) *image.Alpha {
	if clip.Empty() {
		return nil
	}
	vr := vector.NewRasterizer(clip.Dx(), clip.Dy())
	vr.DrawOp = draw.Src
	build(vr, f32.Pt(-float32(clip.Min.X), -float32(clip.Min.Y)))
	m := image.NewAlpha(clip)
	vr.Draw(m, clip, image.Opaque, image.Point{})
	return m
}

func uniform(c color.NRGBA) *image.Uniform {
	return image.NewUniform(f32color.Premultiply(c))
}

// grow adjusts a corner radius by d, keeping square corners square.
func grow(radius, d float32) float32 {
	if radius <= 0 {
		return 0
	}
	return max(radius+d, 0)
}

func scaleRect(r f32.Rectangle, s float32) f32.Rectangle {
	return f32.Rectangle{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
}

// pixels returns the smallest integer rectangle covering r.
func pixels(r f32.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(int(math.Floor(float64(r.Min.X))), int(math.Floor(float64(r.Min.Y)))),
		Max: image.Pt(int(math.Ceil(float64(r.Max.X))), int(math.Ceil(float64(r.Max.Y)))),
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}
