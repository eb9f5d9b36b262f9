// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"slices"
	"testing"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/runloop"
)

type countingProvider struct {
	PlainProvider
	calls int
	last  State
}

func (p *countingProvider) Configuration(base Configuration, s State) Configuration {
	p.calls++
	p.last = s
	return p.PlainProvider.Configuration(base, s)
}

func homeConfig() Configuration {
	c := DefaultConfiguration()
	c.Image = fakeImage{X: 24, Y: 24}
	c.Title = Text{String: "Home"}
	c.ContentInsets = layout.UniformInsets(8)
	c.ImagePadding = 6
	c.Background.Fill = ColorOf(green)
	return c
}

func TestButtonCoalesce(t *testing.T) {
	var loop runloop.Loop
	p := new(countingProvider)
	b := &Button{Provider: p, Scheduler: &loop, Text: newFakeText()}
	b.SetConfiguration(homeConfig())
	b.SetHighlighted(true)
	b.SetTint(red)
	b.SetSelected(true)
	if p.calls != 0 {
		t.Fatalf("provider ran %d times before the checkpoint", p.calls)
	}
	if n := loop.Pending(); n != 1 {
		t.Fatalf("%d pending tasks, want 1", n)
	}
	if n := loop.Flush(); n != 1 {
		t.Errorf("flushed %d tasks, want 1", n)
	}
	if p.calls != 1 || p.last != Highlighted {
		t.Errorf("provider ran %d times in state %v, want once in Highlighted", p.calls, p.last)
	}
	b.Effective()
	b.Layout(f32.Rect(0, 0, 100, 40))
	if p.calls != 1 {
		t.Errorf("provider ran %d times, want 1", p.calls)
	}
}

func TestButtonEffectiveFlushes(t *testing.T) {
	var loop runloop.Loop
	b := &Button{Scheduler: &loop}
	c := homeConfig()
	b.SetConfiguration(c)
	b.SetEnabled(false)
	eff := b.Effective()
	if got := eff.Background.Fill.NRGBA().A; got != 0x80 {
		t.Errorf("disabled fill alpha %#x, want 0x80", got)
	}
	if b.State() != Disabled || b.Enabled() {
		t.Errorf("state %v", b.State())
	}
	if n := loop.Flush(); n != 1 {
		t.Errorf("flushed %d tasks, want 1", n)
	}
	if !b.Configuration().Equal(c) {
		t.Error("base configuration changed by the provider")
	}
}

func TestButtonEqualConfiguration(t *testing.T) {
	var loop runloop.Loop
	h := new(recorder)
	b := &Button{Scheduler: &loop, Host: h}
	b.SetConfiguration(homeConfig())
	loop.Flush()
	h.take()
	b.SetConfiguration(homeConfig())
	b.SetEnabled(true)
	b.SetHighlighted(false)
	if n := loop.Pending(); n != 0 {
		t.Errorf("%d pending tasks after no-op changes", n)
	}
	if len(h.events) != 0 {
		t.Errorf("host events %q", h.events)
	}
}

func TestButtonHost(t *testing.T) {
	h := new(recorder)
	b := &Button{Host: h, Text: newFakeText()}
	c := homeConfig()
	b.SetConfiguration(c)
	steps := []struct {
		name   string
		update func()
		events []string
		change Change
	}{
		{"initial", func() {}, []string{"attach Icon", "attach Title", "attach Fill"}, ContentChange | BackgroundChange | ColorChange},
		{"subtitle", func() {
			c.Subtitle = Text{String: "Subtitle"}
			b.SetConfiguration(c)
		}, []string{"attach Subtitle"}, ContentChange},
		{"indicator", func() {
			c.ShowsActivityIndicator = true
			b.SetConfiguration(c)
		}, []string{"detach Icon", "attach Indicator"}, ContentChange},
		{"highlight", func() {
			b.SetHighlighted(true)
		}, nil, BackgroundChange | ColorChange},
		{"custom view", func() {
			c.Background.CustomView = 9
			b.SetConfiguration(c)
		}, []string{"attach view 9"}, BackgroundChange},
		{"no background", func() {
			c.Background = nil
			b.SetConfiguration(c)
		}, []string{"detach Fill", "detach view 9"}, BackgroundChange},
		{"no content", func() {
			c.Title, c.Subtitle = Text{}, Text{}
			c.ShowsActivityIndicator, c.Image = false, nil
			b.SetConfiguration(c)
		}, []string{"detach Indicator", "detach Title", "detach Subtitle"}, ContentChange},
	}
	for _, s := range steps {
		s.update()
		if got := h.take(); !slices.Equal(got, s.events) {
			t.Errorf("%s: host events %q, want %q", s.name, got, s.events)
		}
		if got := b.Changes(); got != s.change {
			t.Errorf("%s: changes %b, want %b", s.name, got, s.change)
		}
	}
	if h.invalidated == 0 {
		t.Error("host never invalidated")
	}
}

func TestButtonLayout(t *testing.T) {
	b := &Button{Text: newFakeText()}
	b.SetConfiguration(homeConfig())
	b.SetAlignment(layout.Leading, layout.VCenter)
	f := b.Layout(f32.Rect(0, 0, 200, 80))
	if want := f32.Rect(8, 28, 24, 24); f.Image != want {
		t.Errorf("image frame %v, want %v", f.Image, want)
	}
	if want := f32.Rect(38, 30, 60, 20); f.Title != want {
		t.Errorf("title frame %v, want %v", f.Title, want)
	}
	if f.Foreground != DefaultTint || f.TitleColor != DefaultTint {
		t.Errorf("foreground %v title %v, want tint %v", f.Foreground, f.TitleColor, DefaultTint)
	}
	if len(f.Layers) != 1 || f.Layers[0].Kind != FillLayer || f.Layers[0].Frame != f.Background {
		t.Errorf("layers %+v", f.Layers)
	}
	if f.Icon != (fakeImage{X: 24, Y: 24}) || f.Indicator || f.State != Normal {
		t.Errorf("frame %+v", f)
	}
	if len(f.TitleSpans) != 1 || f.TitleSpans[0].Text != "Home" || f.TitleSpans[0].Font.Size != defaultTitleSize {
		t.Errorf("title runs %+v", f.TitleSpans)
	}
	if f.TextAlignment != layout.Start {
		t.Errorf("text alignment %v", f.TextAlignment)
	}

	b.SetDirection(layout.RTL)
	f = b.Layout(f32.Rect(0, 0, 200, 80))
	if want := f32.Rect(168, 28, 24, 24); f.Image != want {
		t.Errorf("RTL image frame %v, want %v", f.Image, want)
	}
	if f.TextAlignment != layout.End {
		t.Errorf("RTL text alignment %v", f.TextAlignment)
	}

	b.SetHighlighted(true)
	f = b.Layout(f32.Rect(0, 0, 200, 80))
	if f.State != Highlighted || f.Foreground.A != 0xbf {
		t.Errorf("highlighted state %v foreground %v", f.State, f.Foreground)
	}
}

func TestButtonTint(t *testing.T) {
	c := DefaultConfiguration()
	c.Background.StrokeWidth = 1
	b := NewButton(c)
	stroke := func() Layer {
		layers := b.Layout(f32.Rect(0, 0, 10, 10)).Layers
		if len(layers) != 1 {
			t.Fatalf("layers %+v", layers)
		}
		return layers[0]
	}
	if got := stroke().Color; got != DefaultTint {
		t.Errorf("stroke %v, want default tint", got)
	}
	b.SetTint(red)
	if got := stroke().Color; got != red || b.Tint() != red {
		t.Errorf("stroke %v, want %v", got, red)
	}
	if got := b.Effective().ForegroundColor.NRGBA(); got != red {
		t.Errorf("foreground %v, want tint", got)
	}
	c.ForegroundColor = ColorOf(blue)
	c.Background.Stroke = ColorOf(green)
	b.SetConfiguration(c)
	if got := stroke().Color; got != green {
		t.Errorf("stroke %v, want %v", got, green)
	}
	if got := b.Effective().ForegroundColor.NRGBA(); got != blue {
		t.Errorf("foreground %v, want %v", got, blue)
	}
}

func TestButtonIntrinsicSize(t *testing.T) {
	c := DefaultConfiguration()
	c.Title = Text{String: "Title"}
	b := &Button{Text: newFakeText()}
	b.SetConfiguration(c)
	if got, want := b.IntrinsicSize(), f32.Pt(60, 20); got != want {
		t.Errorf("intrinsic size %v, want %v", got, want)
	}
	b.PreferredMaxWidth = 40
	if got, want := b.IntrinsicSize(), f32.Pt(40, 20); got != want {
		t.Errorf("limited intrinsic size %v, want %v", got, want)
	}
	if got, want := b.SizeThatFits(f32.Pt(100, 10)), f32.Pt(60, 10); got != want {
		t.Errorf("size that fits %v, want %v", got, want)
	}
}

func TestButtonIndicatorChange(t *testing.T) {
	c := DefaultConfiguration()
	c.ShowsActivityIndicator = true
	b := NewButton(c)
	if got := b.IntrinsicSize(); got != f32.Pt(20, 20) {
		t.Errorf("default indicator size %v", got)
	}
	b.Indicator = FixedSize{X: 32, Y: 32}
	if got := b.IntrinsicSize(); got != f32.Pt(32, 32) {
		t.Errorf("indicator size %v after replacing the indicator", got)
	}
}

func TestButtonProvider(t *testing.T) {
	b := NewButton(homeConfig())
	b.SetProvider(ProviderFunc(func(base Configuration, s State) Configuration {
		base.Title = Text{String: "Replaced"}
		return base
	}))
	if got := b.Effective().Title.String; got != "Replaced" {
		t.Errorf("title %q", got)
	}
	if got := b.Configuration().Title.String; got != "Home" {
		t.Errorf("base title %q", got)
	}
}

func TestButtonSelected(t *testing.T) {
	var loop runloop.Loop
	p := new(countingProvider)
	b := &Button{Provider: p, Scheduler: &loop}
	b.SetConfiguration(homeConfig())
	loop.Flush()
	before := b.Effective()
	calls := p.calls
	b.SetSelected(true)
	if !b.Selected() || b.State() != Normal {
		t.Errorf("selected %v state %v", b.Selected(), b.State())
	}
	if n := loop.Pending(); n != 1 {
		t.Fatalf("%d pending tasks, want 1", n)
	}
	loop.Flush()
	if p.last != Normal {
		t.Errorf("provider state %v, want Normal", p.last)
	}
	if !b.Effective().Equal(before) || b.Changes() != 0 {
		t.Errorf("selection changed the effective configuration: changes %b", b.Changes())
	}
	if p.calls > calls+1 {
		t.Errorf("provider ran %d times for one selection change", p.calls-calls)
	}
}
