// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/text"
	"gioui.org/x/configbutton/unit"
)

// TextMeasurer measures spans of text wrapped at maxWidth. It is
// implemented by *text.Shaper.
type TextMeasurer interface {
	Measure(spans []text.Span, maxWidth float32) f32.Point
}

// Params are the inputs of a content layout besides the available
// space.
type Params struct {
	Config     Configuration
	Horizontal layout.HAlignment
	Vertical   layout.VAlignment
	Direction  layout.TextDirection
}

// Frames is the arrangement of a button. Hidden elements have empty
// frames.
type Frames struct {
	// Image is the frame of the image or the activity indicator.
	Image      f32.Rectangle
	Title      f32.Rectangle
	Subtitle   f32.Rectangle
	Background f32.Rectangle
}

// Content measures and arranges the image, title and subtitle of a
// button. The zero Content measures text with the Go regular font and
// sizes the activity indicator 20dp square.
type Content struct {
	Text      TextMeasurer
	Indicator Sizer

	// cache of the last unbounded measurement.
	cached bool
	key    Params
	limit  f32.Point
	size   f32.Point
}

// children are the measured elements of a layout.
type children struct {
	placement ImagePlacement
	// Sizes of the elements, zero for hidden elements.
	image, title, subtitle f32.Point

	showImage, showTitle, showSubtitle bool
	imagePad, titlePad                 float32
}

const defaultIndicatorSize = 20

// Equal reports whether p and p2 produce the same layout.
func (p Params) Equal(p2 Params) bool {
	return p.Horizontal == p2.Horizontal && p.Vertical == p2.Vertical &&
		p.Direction == p2.Direction && p.Config.Equal(p2.Config)
}

// Measure returns the size of the content, including the content
// insets, that fits within limit. The last measurement with an
// unbounded dimension is cached until the parameters or the limit
// change, or Invalidate is called.
func (c *Content) Measure(p Params, limit f32.Point) f32.Point {
	unbounded := limit.IsUnbounded()
	if unbounded && c.cached && c.limit == limit && c.key.Equal(p) {
		return c.size
	}
	insets := p.Config.ContentInsets.Resolve(p.Direction).NonNegative().Size()
	ch := c.measure(&p, limit.ClampNonNegative().Sub(insets).ClampNonNegative())
	sz := ch.size().Add(insets)
	if unbounded {
		c.cached, c.limit, c.size = true, limit, sz
		c.key = Params{
			Config:     p.Config.Clone(),
			Horizontal: p.Horizontal,
			Vertical:   p.Vertical,
			Direction:  p.Direction,
		}
	}
	return sz
}

// Invalidate drops the cached measurement. Call it when the text
// measurer or the indicator change size.
func (c *Content) Invalidate() {
	c.cached = false
	c.key = Params{}
}

// Arrange lays out the content within bounds.
func (c *Content) Arrange(p Params, bounds f32.Rectangle) Frames {
	f := Frames{Background: bounds}
	box := p.Config.ContentInsets.Resolve(p.Direction).NonNegative().Apply(bounds)
	ch := c.measure(&p, box.Size())
	axis := ch.placement.Axis()
	halign := p.Horizontal.Resolve(p.Direction)
	valign := p.Vertical.Alignment()
	mainAlign, crossAlign := halign, valign
	if axis == layout.Vertical {
		mainAlign, crossAlign = valign, halign
	}
	if axis == layout.Vertical {
		ch.arrangeStacked(&f, box, mainAlign, crossAlign)
	} else {
		ch.arrangeBeside(&f, box, mainAlign, crossAlign)
	}
	if ch.showTitle && ch.showSubtitle {
		reconcile(&f.Title, &f.Subtitle, p.Config.ResolveTitleAlignment(p.Direction))
	}
	return f
}

// slot is an element laid out along the main axis.
type slot struct {
	frame *f32.Rectangle
	size  f32.Point
	image bool
	rigid bool
}

// slots returns the visible elements in packing order. The title
// always precedes the subtitle; Bottom moves the image after them.
func (ch *children) slots(f *Frames) []slot {
	var s []slot
	img := slot{frame: &f.Image, size: ch.image, image: true, rigid: true}
	if ch.showImage && ch.placement != Bottom {
		s = append(s, img)
	}
	if ch.showTitle {
		s = append(s, slot{frame: &f.Title, size: ch.title, rigid: ch.showSubtitle})
	}
	if ch.showSubtitle {
		s = append(s, slot{frame: &f.Subtitle, size: ch.subtitle})
	}
	if ch.showImage && ch.placement == Bottom {
		s = append(s, img)
	}
	return s
}

// gap returns the padding between two adjacent slots.
func (ch *children) gap(a, b slot) float32 {
	if a.image || b.image {
		return ch.imagePad
	}
	return ch.titlePad
}

// arrangeStacked lays out every element on its own row along the
// vertical axis.
func (ch *children) arrangeStacked(f *Frames, box f32.Rectangle, mainAlign, crossAlign layout.Alignment) {
	const axis = layout.Vertical
	slots := ch.slots(f)
	flex := make([]layout.FlexChild, len(slots))
	cross := make([]float32, len(slots))
	for i, s := range slots {
		flex[i] = layout.FlexChild{Size: axis.Main(s.size), Rigid: s.rigid}
		if i > 0 {
			flex[i].Gap = ch.gap(slots[i-1], s)
		}
		cross[i] = axis.Cross(s.size)
	}
	org, sz := axis.Convert(box.Min), axis.Convert(box.Size())
	mains := layout.Flex(mainAlign, org.X, sz.X, flex...)
	crosses := layout.Stack(crossAlign, org.Y, sz.Y, cross...)
	for i, s := range slots {
		*s.frame = frame(axis, mains[i], crosses[i])
	}
}

// arrangeBeside lays out the image beside a block of text rows.
func (ch *children) arrangeBeside(f *Frames, box f32.Rectangle, mainAlign, crossAlign layout.Alignment) {
	const axis = layout.Horizontal
	var slots []slot
	showText := ch.showTitle || ch.showSubtitle
	var block f32.Rectangle
	if ch.showImage {
		slots = append(slots, slot{frame: &f.Image, size: ch.image, image: true, rigid: true})
	}
	if showText {
		slots = append(slots, slot{frame: &block, size: ch.textSize()})
	}
	if ch.placement == Right && len(slots) == 2 {
		slots[0], slots[1] = slots[1], slots[0]
	}
	flex := make([]layout.FlexChild, len(slots))
	cross := make([]float32, len(slots))
	for i, s := range slots {
		flex[i] = layout.FlexChild{Size: axis.Main(s.size), Rigid: s.rigid}
		if i > 0 {
			flex[i].Gap = ch.imagePad
		}
		cross[i] = axis.Cross(s.size)
	}
	mains := layout.Flex(mainAlign, box.Min.X, box.Dx(), flex...)
	crosses := layout.Stack(crossAlign, box.Min.Y, box.Dy(), cross...)
	for i, s := range slots {
		*s.frame = frame(axis, mains[i], crosses[i])
	}
	if !showText {
		return
	}
	// Rows of the block.
	var rows []*f32.Rectangle
	var widths []float32
	var heights []layout.FlexChild
	if ch.showTitle {
		rows = append(rows, &f.Title)
		widths = append(widths, ch.title.X)
		heights = append(heights, layout.FlexChild{Size: ch.title.Y, Rigid: ch.showSubtitle})
	}
	if ch.showSubtitle {
		rows = append(rows, &f.Subtitle)
		widths = append(widths, ch.subtitle.X)
		heights = append(heights, layout.FlexChild{Size: ch.subtitle.Y, Gap: ch.titlePad})
	}
	rowAlign, colAlign := layout.Start, layout.Start
	if mainAlign == layout.Fill {
		rowAlign = layout.Fill
	}
	if crossAlign == layout.Fill {
		colAlign = layout.Fill
	}
	xs := layout.Stack(rowAlign, block.Min.X, block.Dx(), widths...)
	ys := layout.Flex(colAlign, block.Min.Y, block.Dy(), heights...)
	for i, r := range rows {
		*r = frame(axis, xs[i], ys[i])
	}
}

// frame converts main and cross axis spans to a rectangle.
func frame(axis layout.Axis, main, cross layout.Span) f32.Rectangle {
	pos := axis.Convert(f32.Pt(main.Pos, cross.Pos))
	sz := axis.Convert(f32.Pt(main.Size, cross.Size))
	return f32.Rect(pos.X, pos.Y, sz.X, sz.Y)
}

// reconcile aligns the narrower of the title and subtitle frames with
// the wider one.
func reconcile(title, subtitle *f32.Rectangle, align layout.Alignment) {
	narrow, wide := title, subtitle
	if title.Dx() > subtitle.Dx() {
		narrow, wide = subtitle, title
	}
	if narrow.Dx() == wide.Dx() {
		return
	}
	var x float32
	switch align {
	case layout.Start, layout.Fill:
		x = wide.Min.X
	case layout.Middle:
		x = wide.Min.X + (wide.Dx()-narrow.Dx())/2
	case layout.End:
		x = wide.Max.X - narrow.Dx()
	}
	*narrow = narrow.Add(f32.Pt(x-narrow.Min.X, 0))
}

// measure measures the visible elements within the content size, in
// priority order: image, title, subtitle.
func (c *Content) measure(p *Params, content f32.Point) children {
	cfg := &p.Config
	ch := children{
		placement:    cfg.ImagePlacement.Resolve(p.Direction),
		showImage:    cfg.imageVisible(),
		showTitle:    cfg.Title.Visible(),
		showSubtitle: cfg.Subtitle.Visible(),
	}
	if ch.showImage && (ch.showTitle || ch.showSubtitle) {
		ch.imagePad = float32(cfg.ImagePadding.NonNegative())
	}
	if ch.showTitle && ch.showSubtitle {
		ch.titlePad = float32(cfg.TitlePadding.NonNegative())
	}
	if ch.showImage {
		ch.image = c.imageSize(cfg, content)
	}
	var limit f32.Point
	if ch.placement.Axis() == layout.Vertical {
		limit = f32.Pt(content.X, content.Y-ch.image.Y-ch.imagePad)
	} else {
		limit = f32.Pt(content.X-ch.image.X-ch.imagePad, content.Y)
	}
	limit = limit.ClampNonNegative()
	if ch.showTitle {
		ch.title = c.measureText(cfg.Title.Runs(cfg.titleFont()), limit)
	}
	limit = f32.Pt(limit.X, limit.Y-ch.title.Y-ch.titlePad).ClampNonNegative()
	if ch.showSubtitle {
		ch.subtitle = c.measureText(cfg.Subtitle.Runs(cfg.subtitleFont()), limit)
	}
	return ch
}

func (c *Content) imageSize(cfg *Configuration, limit f32.Point) f32.Point {
	var sz f32.Point
	switch {
	case cfg.ShowsActivityIndicator:
		ind := c.Indicator
		if ind == nil {
			ind = FixedSize{X: defaultIndicatorSize, Y: defaultIndicatorSize}
		}
		sz = ind.SizeThatFits(limit)
	case cfg.Image != nil:
		sz = cfg.Image.Size()
	}
	return sz.Limit(limit).ClampNonNegative()
}

func (c *Content) measureText(runs []text.Span, limit f32.Point) f32.Point {
	if c.Text == nil {
		c.Text = text.NewShaper(unit.Metric{}, nil)
	}
	return c.Text.Measure(runs, limit.X).Limit(limit).ClampNonNegative()
}

// textSize returns the size of the text rows stacked vertically.
func (ch *children) textSize() f32.Point {
	return f32.Point{
		X: max(ch.title.X, ch.subtitle.X),
		Y: ch.title.Y + ch.titlePad + ch.subtitle.Y,
	}
}

// size returns the size of the arranged elements.
func (ch *children) size() f32.Point {
	axis := ch.placement.Axis()
	img := axis.Convert(ch.image)
	txt := axis.Convert(ch.textSize())
	return axis.Convert(f32.Point{
		X: img.X + ch.imagePad + txt.X,
		Y: max(img.Y, txt.Y),
	})
}
