// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/charmbracelet/log"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/runloop"
	"gioui.org/x/configbutton/text"
)

// Button is a control whose content and appearance follow a
// Configuration. Changes to the configuration or to the interaction
// state are coalesced through a runloop.Scheduler and applied to the
// Host in a single update.
//
// The zero Button is enabled, has no content and updates immediately.
type Button struct {
	// Provider derives the configuration for the interaction state.
	// A nil Provider dims disabled and highlighted buttons like
	// PlainProvider.
	Provider Provider
	// Text measures the title and subtitle.
	Text TextMeasurer
	// Indicator measures the activity indicator.
	Indicator Sizer
	Host      Host
	// Scheduler defers updates. A nil Scheduler updates immediately.
	Scheduler runloop.Scheduler
	Logger    *log.Logger
	// PreferredMaxWidth limits the width of IntrinsicSize when
	// positive.
	PreferredMaxWidth float32

	config    Configuration
	effective Configuration
	updated   bool
	changes   Change

	tint        Color
	disabled    bool
	highlighted bool
	selected    bool
	horizontal  layout.HAlignment
	vertical    layout.VAlignment
	direction   layout.TextDirection

	dirty    bool
	task     *runloop.Task
	plain    PlainProvider
	content  Content
	backdrop Backdrop
	attached elements
	bounds   f32.Rectangle
}

// Frame is the laid out state of a Button.
type Frame struct {
	Frames
	// Layers are the background layers, back to front.
	Layers []Layer
	State  State
	// Icon is the image shown in Frames.Image, unless Indicator is
	// set.
	Icon      Image
	Indicator bool
	// TitleSpans and SubtitleSpans are the text of the labels in
	// their fonts.
	TitleSpans, SubtitleSpans []text.Span
	// Foreground colors the image and the indicator.
	Foreground    color.NRGBA
	TitleColor    color.NRGBA
	SubtitleColor color.NRGBA
	// TextAlignment aligns the lines of the labels; layout.Start is
	// left.
	TextAlignment layout.Alignment
}

// Change is a set of differences between two effective
// configurations.
type Change uint8

const (
	// ContentChange reports a change of the image, the text, or
	// their arrangement.
	ContentChange Change = 1 << iota
	BackgroundChange
	ColorChange
)

// DefaultTint is the tint color of a Button without one.
var DefaultTint = color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}

// NewButton returns an enabled Button with configuration c.
func NewButton(c Configuration) *Button {
	b := new(Button)
	b.SetConfiguration(c)
	return b
}

// Configuration returns the base configuration.
func (b *Button) Configuration() Configuration {
	return b.config.Clone()
}

// SetConfiguration replaces the base configuration. Setting a
// configuration equal to the current one does nothing.
func (b *Button) SetConfiguration(c Configuration) {
	if b.config.Equal(c) {
		return
	}
	b.config = c.Clone()
	b.SetNeedsUpdate()
}

// Effective returns the configuration in effect, applying any pending
// update.
func (b *Button) Effective() Configuration {
	b.flush()
	return b.effective.Clone()
}

// State returns the interaction state.
func (b *Button) State() State {
	return StateOf(!b.disabled, b.highlighted)
}

func (b *Button) Enabled() bool     { return !b.disabled }
func (b *Button) Highlighted() bool { return b.highlighted }
func (b *Button) Selected() bool    { return b.selected }

func (b *Button) SetEnabled(enabled bool) {
	if b.disabled != !enabled {
		b.disabled = !enabled
		b.SetNeedsUpdate()
	}
}

func (b *Button) SetHighlighted(highlighted bool) {
	if b.highlighted != highlighted {
		b.highlighted = highlighted
		b.SetNeedsUpdate()
	}
}

// SetSelected sets the selected flag. Selection does not change the
// State passed to the Provider; a change only requests an update.
func (b *Button) SetSelected(selected bool) {
	if b.selected != selected {
		b.selected = selected
		b.SetNeedsUpdate()
	}
}

// Tint returns the tint color.
func (b *Button) Tint() color.NRGBA {
	return b.tint.Or(DefaultTint)
}

// SetTint sets the fallback color of the foreground and the stroke.
func (b *Button) SetTint(c color.NRGBA) {
	if b.tint != ColorOf(c) {
		b.tint = ColorOf(c)
		b.SetNeedsUpdate()
	}
}

// SetProvider replaces the Provider and requests an update.
func (b *Button) SetProvider(p Provider) {
	b.Provider = p
	b.SetNeedsUpdate()
}

// SetAlignment sets the alignment of the content within the bounds.
func (b *Button) SetAlignment(h layout.HAlignment, v layout.VAlignment) {
	if b.horizontal != h || b.vertical != v {
		b.horizontal, b.vertical = h, v
		b.invalidate()
	}
}

// SetDirection sets the layout direction.
func (b *Button) SetDirection(d layout.TextDirection) {
	if b.direction != d {
		b.direction = d
		b.invalidate()
	}
}

// SetNeedsUpdate marks the button dirty and schedules an update.
// Repeated calls before the update runs are coalesced.
func (b *Button) SetNeedsUpdate() {
	b.dirty = true
	if b.task == nil {
		b.task = runloop.NewTask(b.flush)
	}
	s := b.Scheduler
	if s == nil {
		s = runloop.Immediate{}
	}
	s.Commit(b.task)
}

// Changes returns the differences applied by the last update.
func (b *Button) Changes() Change {
	return b.changes
}

func (b *Button) flush() {
	if b.dirty || !b.updated {
		b.Update()
	}
}

// Update derives the effective configuration now and applies its
// differences to the host.
func (b *Button) Update() {
	b.dirty = false
	st := b.State()
	eff := b.provider().Configuration(b.resolvedBase(), st)
	var ch Change
	if b.updated {
		ch = diff(b.effective, eff)
	} else {
		ch = ContentChange | BackgroundChange | ColorChange
	}
	b.effective, b.updated, b.changes = eff, true, ch
	if ch == 0 {
		b.logger().Debug("button update without changes", "state", st)
		return
	}
	if ch&ContentChange != 0 {
		b.content.Invalidate()
		b.attached.sync(b.Host, b.contentElements())
	}
	if ch&BackgroundChange != 0 {
		b.syncBackdrop()
		b.backdrop.Update(eff.Background, b.bounds, b.Tint())
	}
	b.logger().Debug("button updated", "state", st, "content", ch&ContentChange != 0,
		"background", ch&BackgroundChange != 0, "colors", ch&ColorChange != 0)
	b.invalidate()
}

// Layout arranges the button within bounds.
func (b *Button) Layout(bounds f32.Rectangle) Frame {
	b.flush()
	eff := &b.effective
	b.bounds = bounds
	b.syncBackdrop()
	b.backdrop.Update(eff.Background, bounds, b.Tint())
	fg := eff.ForegroundColor.Or(b.Tint())
	f := Frame{
		Frames:        b.content.Arrange(b.params(), bounds),
		Layers:        b.backdrop.Layers(),
		State:         b.State(),
		Indicator:     eff.ShowsActivityIndicator,
		Foreground:    fg,
		TitleColor:    eff.TitleColor.Or(fg),
		SubtitleColor: eff.SubtitleColor.Or(fg),
		TextAlignment: eff.ResolveTitleAlignment(b.direction),
		TitleSpans:    eff.Title.Runs(eff.titleFont()),
		SubtitleSpans: eff.Subtitle.Runs(eff.subtitleFont()),
	}
	if !f.Indicator {
		f.Icon = eff.Image
	}
	return f
}

// SizeThatFits returns the size of the button within limit.
func (b *Button) SizeThatFits(limit f32.Point) f32.Point {
	b.flush()
	return b.content.Measure(b.params(), limit)
}

// IntrinsicSize returns the natural size of the button, no wider than
// PreferredMaxWidth if set.
func (b *Button) IntrinsicSize() f32.Point {
	limit := f32.Unbounded
	if b.PreferredMaxWidth > 0 {
		limit.X = b.PreferredMaxWidth
	}
	return b.SizeThatFits(limit)
}

// WillRemoveView reports that the host is about to remove view id
// from the background. See Backdrop.WillRemoveView.
func (b *Button) WillRemoveView(id ViewID) {
	b.syncBackdrop()
	b.backdrop.WillRemoveView(id)
}

func (b *Button) params() Params {
	if b.Text != nil && b.content.Text != b.Text {
		b.content.Text = b.Text
		b.content.Invalidate()
	}
	if b.content.Indicator != b.Indicator {
		b.content.Indicator = b.Indicator
		b.content.Invalidate()
	}
	return Params{
		Config:     b.effective,
		Horizontal: b.horizontal,
		Vertical:   b.vertical,
		Direction:  b.direction,
	}
}

func (b *Button) syncBackdrop() {
	b.backdrop.Host = b.Host
	b.backdrop.Logger = b.Logger
}

// resolvedBase returns the base configuration with the tint in place
// of missing foreground and stroke colors.
func (b *Button) resolvedBase() Configuration {
	c := b.config.Clone()
	tint := b.Tint()
	if !c.ForegroundColor.Valid() {
		c.ForegroundColor = ColorOf(tint)
	}
	if bg := c.Background; bg != nil && bg.StrokeWidth > 0 && !bg.Stroke.Valid() {
		bg.Stroke = ColorOf(tint)
	}
	return c
}

func (b *Button) contentElements() elements {
	var e elements
	c := &b.effective
	switch {
	case c.ShowsActivityIndicator:
		e.add(IndicatorElement)
	case c.Image != nil:
		e.add(IconElement)
	}
	if c.Title.Visible() {
		e.add(TitleElement)
	}
	if c.Subtitle.Visible() {
		e.add(SubtitleElement)
	}
	return e
}

func (b *Button) provider() Provider {
	if b.Provider != nil {
		return b.Provider
	}
	return &b.plain
}

func (b *Button) invalidate() {
	if b.Host != nil {
		b.Host.Invalidate()
	}
}

func (b *Button) logger() *log.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return log.Default()
}

// diff compares the content, background and colors of two
// configurations.
func diff(prev, next Configuration) Change {
	var ch Change
	if prev.Image != next.Image ||
		prev.ShowsActivityIndicator != next.ShowsActivityIndicator ||
		!prev.Title.Equal(next.Title) || !prev.Subtitle.Equal(next.Subtitle) ||
		prev.TitleFont != next.TitleFont || prev.SubtitleFont != next.SubtitleFont ||
		prev.ImagePlacement != next.ImagePlacement ||
		prev.TitleAlignment != next.TitleAlignment ||
		prev.ContentInsets != next.ContentInsets ||
		prev.ImagePadding != next.ImagePadding || prev.TitlePadding != next.TitlePadding {
		ch |= ContentChange
	}
	if !prev.Background.Equal(next.Background) {
		ch |= BackgroundChange
	}
	if prev.ForegroundColor != next.ForegroundColor ||
		prev.TitleColor != next.TitleColor || prev.SubtitleColor != next.SubtitleColor {
		ch |= ColorChange
	}
	return ch
}
