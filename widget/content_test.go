// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"strings"
	"testing"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/text"
)

// fakeText measures text from a table, or 10x20 per byte.
type fakeText struct {
	sizes map[string]f32.Point
	calls int
}

func (f *fakeText) Measure(spans []text.Span, maxWidth float32) f32.Point {
	f.calls++
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	if sz, ok := f.sizes[b.String()]; ok {
		return sz
	}
	return f32.Pt(float32(b.Len())*10, 20)
}

type fakeImage f32.Point

func (i fakeImage) Size() f32.Point { return f32.Point(i) }

func newFakeText() *fakeText {
	return &fakeText{sizes: map[string]f32.Point{
		"Home":     {X: 60, Y: 20},
		"Title":    {X: 60, Y: 20},
		"Subtitle": {X: 80, Y: 16},
	}}
}

func TestContentLeadingScenario(t *testing.T) {
	c := Content{Text: newFakeText()}
	p := Params{
		Config: Configuration{
			Image:         fakeImage{X: 24, Y: 24},
			Title:         Text{String: "Home"},
			ContentInsets: layout.UniformInsets(8),
			ImagePadding:  6,
		},
		Horizontal: layout.Leading,
	}
	f := c.Arrange(p, f32.Rect(0, 0, 200, 80))
	if want := f32.Rect(8, 28, 24, 24); f.Image != want {
		t.Errorf("image frame %v, want %v", f.Image, want)
	}
	if want := f32.Rect(38, 30, 60, 20); f.Title != want {
		t.Errorf("title frame %v, want %v", f.Title, want)
	}
	if f.Image.Center().Y != f.Title.Center().Y {
		t.Errorf("image and title midlines differ: %v != %v", f.Image.Center().Y, f.Title.Center().Y)
	}
	if f.Subtitle != (f32.Rectangle{}) {
		t.Errorf("hidden subtitle has frame %v", f.Subtitle)
	}
	if want := f32.Pt(106, 40); c.Measure(p, f32.Unbounded) != want {
		t.Errorf("measured %v, want %v", c.Measure(p, f32.Unbounded), want)
	}
}

func TestContentEmpty(t *testing.T) {
	var c Content
	p := Params{Config: Configuration{
		ContentInsets: layout.EdgeInsets{Top: 3, Bottom: 5, Start: 7, End: 11},
		ImagePadding:  10,
		TitlePadding:  10,
	}}
	f := c.Arrange(p, f32.Rect(0, 0, 100, 50))
	for name, r := range map[string]f32.Rectangle{"image": f.Image, "title": f.Title, "subtitle": f.Subtitle} {
		if r.Size() != (f32.Point{}) {
			t.Errorf("%s frame %v is not empty", name, r)
		}
	}
	if got, want := c.Measure(p, f32.Unbounded), f32.Pt(18, 8); got != want {
		t.Errorf("measured %v, want insets %v", got, want)
	}
}

func TestContentPaddingGating(t *testing.T) {
	tests := []struct {
		name string
		cfg  Configuration
		want f32.Point
	}{
		{"image only", Configuration{Image: fakeImage{X: 24, Y: 24}, ImagePadding: 100, TitlePadding: 100}, f32.Pt(24, 24)},
		{"title only", Configuration{Title: Text{String: "Title"}, ImagePadding: 100, TitlePadding: 100}, f32.Pt(60, 20)},
		{"subtitle only above", Configuration{
			Subtitle:       Text{String: "Subtitle"},
			ImagePlacement: Top,
			ImagePadding:   100,
			TitlePadding:   100,
		}, f32.Pt(80, 16)},
		{"image and subtitle", Configuration{
			Image:          fakeImage{X: 24, Y: 24},
			Subtitle:       Text{String: "Subtitle"},
			ImagePlacement: Top,
			ImagePadding:   4,
			TitlePadding:   100,
		}, f32.Pt(80, 24+4+16)},
		{"negative padding", Configuration{
			Image:        fakeImage{X: 24, Y: 24},
			Title:        Text{String: "Title"},
			ImagePadding: -30,
		}, f32.Pt(84, 24)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Content{Text: newFakeText()}
			if got := c.Measure(Params{Config: tc.cfg}, f32.Unbounded); got != tc.want {
				t.Errorf("measured %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContentMirroring(t *testing.T) {
	for _, insets := range []layout.EdgeInsets{
		layout.UniformInsets(8),
		layout.DirectionalInsets(0, 20, 0, 4),
	} {
		c := Content{Text: newFakeText()}
		p := Params{
			Config: Configuration{
				Image:         fakeImage{X: 24, Y: 24},
				Title:         Text{String: "Home"},
				ContentInsets: insets,
				ImagePadding:  6,
			},
			Horizontal: layout.Leading,
		}
		bounds := f32.Rect(0, 0, 200, 80)
		ltr := c.Arrange(p, bounds)
		p.Direction = layout.RTL
		rtl := c.Arrange(p, bounds)
		for _, pair := range [][2]f32.Rectangle{{ltr.Image, rtl.Image}, {ltr.Title, rtl.Title}} {
			l, r := pair[0], pair[1]
			if r.Min.X != bounds.Dx()-l.Max.X || r.Dx() != l.Dx() || r.Min.Y != l.Min.Y {
				t.Errorf("insets %+v: RTL frame %v does not mirror LTR frame %v", insets, r, l)
			}
		}
	}
}

func TestContentAbsoluteInsets(t *testing.T) {
	c := Content{Text: newFakeText()}
	p := Params{
		Config: Configuration{
			Title:         Text{String: "Title"},
			ContentInsets: layout.AbsoluteInsets(layout.Inset{Left: 20}),
		},
		Horizontal: layout.Left,
		Direction:  layout.RTL,
	}
	f := c.Arrange(p, f32.Rect(0, 0, 200, 20))
	if f.Title.Min.X != 20 {
		t.Errorf("absolute inset mirrored: title at %v", f.Title)
	}
}

func TestContentRoundTrip(t *testing.T) {
	placements := []ImagePlacement{Leading, Trailing, Top, Bottom, Left, Right}
	hs := []layout.HAlignment{layout.HCenter, layout.Left, layout.Right, layout.HFill, layout.Leading, layout.Trailing}
	vs := []layout.VAlignment{layout.VCenter, layout.Top, layout.Bottom, layout.VFill}
	natural := map[string]f32.Point{"image": {X: 24, Y: 24}, "title": {X: 60, Y: 20}, "subtitle": {X: 80, Y: 16}}
	for _, pl := range placements {
		for _, h := range hs {
			for _, v := range vs {
				for _, dir := range []layout.TextDirection{layout.LTR, layout.RTL} {
					name := fmt.Sprintf("%v/%v/%v/%v", pl, h, v, dir)
					c := Content{Text: newFakeText()}
					p := Params{
						Config: Configuration{
							Image:          fakeImage{X: 24, Y: 24},
							Title:          Text{String: "Title"},
							Subtitle:       Text{String: "Subtitle"},
							ImagePlacement: pl,
							ContentInsets:  layout.DirectionalInsets(4, 8, 6, 10),
							ImagePadding:   5,
							TitlePadding:   3,
						},
						Horizontal: h,
						Vertical:   v,
						Direction:  dir,
					}
					sz := c.Measure(p, f32.Unbounded)
					bounds := f32.Rect(0, 0, sz.X, sz.Y)
					f := c.Arrange(p, bounds)
					frames := map[string]f32.Rectangle{"image": f.Image, "title": f.Title, "subtitle": f.Subtitle}
					for el, r := range frames {
						want := natural[el]
						if r.Dx() < want.X || r.Dy() < want.Y {
							t.Errorf("%s: %s clipped to %v, want at least %v", name, el, r.Size(), want)
						}
						if r.Min.X < bounds.Min.X || r.Min.Y < bounds.Min.Y || r.Max.X > bounds.Max.X || r.Max.Y > bounds.Max.Y {
							t.Errorf("%s: %s frame %v outside %v", name, el, r, bounds)
						}
					}
					if again := c.Arrange(p, bounds); again != f {
						t.Errorf("%s: arrange is not idempotent: %+v != %+v", name, again, f)
					}
				}
			}
		}
	}
}

func TestContentFill(t *testing.T) {
	cfg := Configuration{
		Image:          fakeImage{X: 24, Y: 24},
		Title:          Text{String: "Title"},
		Subtitle:       Text{String: "Subtitle"},
		ImagePlacement: Top,
		ImagePadding:   5,
		TitlePadding:   3,
	}
	c := Content{Text: newFakeText()}
	bounds := f32.Rect(0, 0, 100, 200)
	f := c.Arrange(Params{Config: cfg, Horizontal: layout.HFill, Vertical: layout.VFill}, bounds)
	if want := f32.Rect(0, 0, 100, 24); f.Image != want {
		t.Errorf("image frame %v, want %v", f.Image, want)
	}
	if want := f32.Rect(0, 29, 100, 20); f.Title != want {
		t.Errorf("title frame %v, want %v", f.Title, want)
	}
	if want := f32.Rect(0, 52, 100, 148); f.Subtitle != want {
		t.Errorf("subtitle frame %v, want %v", f.Subtitle, want)
	}

	cfg.ImagePlacement = Bottom
	f = c.Arrange(Params{Config: cfg, Vertical: layout.VFill}, bounds)
	if want := f32.Rect(38, 176, 24, 24); f.Image != want {
		t.Errorf("bottom image frame %v, want %v", f.Image, want)
	}
	if want := f32.Rect(20, 0, 60, 20); f.Title != want {
		t.Errorf("bottom title frame %v, want %v", f.Title, want)
	}
	if want := f32.Rect(10, 23, 80, 148); f.Subtitle != want {
		t.Errorf("bottom subtitle frame %v, want %v", f.Subtitle, want)
	}
}

func TestContentBottomOrder(t *testing.T) {
	cfg := Configuration{
		Image:          fakeImage{X: 24, Y: 24},
		Title:          Text{String: "Title"},
		Subtitle:       Text{String: "Subtitle"},
		ImagePlacement: Bottom,
		ImagePadding:   5,
		TitlePadding:   3,
	}
	c := Content{Text: newFakeText()}
	f := c.Arrange(Params{Config: cfg}, f32.Rect(0, 0, 100, 200))
	tests := []struct {
		name      string
		got, want f32.Rectangle
	}{
		{"title", f.Title, f32.Rect(20, 66, 60, 20)},
		{"subtitle", f.Subtitle, f32.Rect(10, 89, 80, 16)},
		{"image", f.Image, f32.Rect(38, 110, 24, 24)},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s frame %v, want %v", tc.name, tc.got, tc.want)
		}
	}
	if f.Title.Max.Y > f.Subtitle.Min.Y || f.Subtitle.Max.Y > f.Image.Min.Y {
		t.Errorf("bottom order: title %v subtitle %v image %v", f.Title, f.Subtitle, f.Image)
	}
	for _, pl := range []ImagePlacement{Top, Bottom, Leading, Trailing, Left, Right} {
		cfg.ImagePlacement = pl
		f := c.Arrange(Params{Config: cfg}, f32.Rect(0, 0, 200, 200))
		if f.Title.Max.Y > f.Subtitle.Min.Y {
			t.Errorf("%v: subtitle %v above title %v", pl, f.Subtitle, f.Title)
		}
	}
}

func TestContentFillImageOnly(t *testing.T) {
	c := Content{}
	p := Params{
		Config:     Configuration{Image: fakeImage{X: 24, Y: 24}},
		Horizontal: layout.HFill,
		Vertical:   layout.VFill,
	}
	f := c.Arrange(p, f32.Rect(0, 0, 50, 40))
	if want := f32.Rect(0, 0, 50, 40); f.Image != want {
		t.Errorf("sole image frame %v, want %v", f.Image, want)
	}
}

func TestContentTrailing(t *testing.T) {
	c := Content{Text: newFakeText()}
	p := Params{
		Config: Configuration{
			Image:          fakeImage{X: 24, Y: 24},
			Title:          Text{String: "Title"},
			ImagePlacement: Trailing,
			ImagePadding:   6,
		},
		Horizontal: layout.Left,
		Vertical:   layout.Top,
	}
	f := c.Arrange(p, f32.Rect(0, 0, 200, 40))
	if want := f32.Rect(0, 2, 60, 20); f.Title != want {
		t.Errorf("title frame %v, want %v", f.Title, want)
	}
	if want := f32.Rect(66, 0, 24, 24); f.Image != want {
		t.Errorf("image frame %v, want %v", f.Image, want)
	}
}

func TestContentReconcile(t *testing.T) {
	tests := []struct {
		align TitleAlignment
		check func(title, subtitle f32.Rectangle) bool
	}{
		{LeftAlignment, func(t, s f32.Rectangle) bool { return t.Min.X == s.Min.X }},
		{RightAlignment, func(t, s f32.Rectangle) bool { return t.Max.X == s.Max.X }},
		{CenterAlignment, func(t, s f32.Rectangle) bool { return t.Center().X == s.Center().X }},
		{LeadingAlignment, func(t, s f32.Rectangle) bool { return t.Min.X == s.Min.X }},
	}
	for _, tc := range tests {
		for _, pl := range []ImagePlacement{Top, Leading} {
			c := Content{Text: newFakeText()}
			p := Params{
				Config: Configuration{
					Image:          fakeImage{X: 24, Y: 24},
					Title:          Text{String: "Title"},
					Subtitle:       Text{String: "Subtitle"},
					ImagePlacement: pl,
					TitleAlignment: tc.align,
				},
				Horizontal: layout.Leading,
			}
			f := c.Arrange(p, f32.Rect(0, 0, 300, 100))
			if !tc.check(f.Title, f.Subtitle) {
				t.Errorf("%v/%v: title %v not aligned with subtitle %v", tc.align, pl, f.Title, f.Subtitle)
			}
			if f.Title.Dx() != 60 || f.Subtitle.Dx() != 80 {
				t.Errorf("%v/%v: reconciliation resized rows: %v %v", tc.align, pl, f.Title, f.Subtitle)
			}
		}
	}
}

func TestContentPriority(t *testing.T) {
	c := Content{Text: newFakeText()}
	p := Params{Config: Configuration{
		Image:          fakeImage{X: 24, Y: 24},
		Title:          Text{String: "Title"},
		Subtitle:       Text{String: "Subtitle"},
		ImagePlacement: Top,
	}}
	f := c.Arrange(p, f32.Rect(0, 0, 100, 50))
	if f.Image.Dy() != 24 || f.Title.Dy() != 20 {
		t.Errorf("image %v or title %v compressed before subtitle", f.Image, f.Title)
	}
	if got := f.Subtitle.Dy(); got != 6 {
		t.Errorf("subtitle height %v, want 6", got)
	}
	f = c.Arrange(p, f32.Rect(0, 0, 100, 10))
	if f.Image.Dy() != 10 || f.Title.Dy() != 0 || f.Subtitle.Dy() != 0 {
		t.Errorf("tiny bounds: %+v", f)
	}
}

func TestContentIndicator(t *testing.T) {
	c := Content{}
	p := Params{Config: Configuration{Image: fakeImage{X: 100, Y: 100}, ShowsActivityIndicator: true}}
	if got, want := c.Measure(p, f32.Unbounded), f32.Pt(20, 20); got != want {
		t.Errorf("indicator measured %v, want %v", got, want)
	}
	c.Indicator = FixedSize{X: 30, Y: 10}
	c.Invalidate()
	if got, want := c.Measure(p, f32.Unbounded), f32.Pt(30, 10); got != want {
		t.Errorf("custom indicator measured %v, want %v", got, want)
	}
}

func TestContentMeasureCache(t *testing.T) {
	ft := newFakeText()
	c := Content{Text: ft}
	p := Params{Config: Configuration{Title: Text{String: "Title"}}}
	c.Measure(p, f32.Unbounded)
	n := ft.calls
	c.Measure(p, f32.Unbounded)
	if ft.calls != n {
		t.Error("unbounded measurement was not cached")
	}
	c.Measure(p, f32.Pt(100, 100))
	if ft.calls == n {
		t.Error("bounded measurement was cached")
	}
	n = ft.calls
	p.Direction = layout.RTL
	c.Measure(p, f32.Unbounded)
	if ft.calls == n {
		t.Error("cache ignored a direction change")
	}
	n = ft.calls
	p.Config.Title.String = "Other"
	if got := c.Measure(p, f32.Unbounded); got != f32.Pt(50, 20) || ft.calls == n {
		t.Errorf("cache ignored a title change: %v", got)
	}
	n = ft.calls
	c.Invalidate()
	c.Measure(p, f32.Unbounded)
	if ft.calls == n {
		t.Error("Invalidate kept the cached measurement")
	}
}

func TestContentRichTitle(t *testing.T) {
	c := Content{Text: newFakeText()}
	p := Params{Config: Configuration{Title: Text{Spans: []text.Span{{Text: "Ti"}, {Text: "tle"}}}}}
	if got := c.Measure(p, f32.Unbounded); got != f32.Pt(60, 20) {
		t.Errorf("rich title measured %v", got)
	}
	p.Config.Title = Text{Spans: []text.Span{{Text: ""}}}
	if got := c.Measure(p, f32.Unbounded); got != (f32.Point{}) {
		t.Errorf("empty rich title measured %v", got)
	}
}
