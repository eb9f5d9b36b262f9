// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"slices"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/font"
	"gioui.org/x/configbutton/internal/f32color"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/text"
	"gioui.org/x/configbutton/unit"
)

// Configuration describes the content and appearance of a Button.
// It is a value: a Button compares a new Configuration with its
// current one and recomputes only when they differ.
type Configuration struct {
	// Image is shown next to the text unless ShowsActivityIndicator
	// is set.
	Image                  Image
	ShowsActivityIndicator bool
	Title, Subtitle        Text
	// TitleFont and SubtitleFont apply to plain text and to spans
	// without a size. A zero size selects 17sp and 15sp respectively.
	TitleFont, SubtitleFont text.Font
	ImagePlacement          ImagePlacement
	TitleAlignment          TitleAlignment
	ContentInsets           layout.EdgeInsets
	// ImagePadding is the space between the image and the text.
	ImagePadding unit.Dp
	// TitlePadding is the space between the title and the subtitle.
	TitlePadding unit.Dp
	// ForegroundColor colors the image and the activity indicator,
	// and the text without a color of its own. When unset, the tint
	// color of the Button is used.
	ForegroundColor Color
	TitleColor      Color
	SubtitleColor   Color
	// Background is drawn behind the content. A nil Background draws
	// nothing.
	Background *Background
}

// Background describes the layers behind the content of a Button.
type Background struct {
	Fill   Color
	Stroke Color
	// StrokeWidth enables the stroke when positive.
	StrokeWidth unit.Dp
	// StrokeOutset grows the stroke frame beyond the bounds, or
	// shrinks it when negative.
	StrokeOutset unit.Dp
	Corner       CornerStyle
	// Corners selects the rounded corners. The zero value rounds all
	// of them.
	Corners Corners
	// Effect replaces the fill layer. The fill color then tints the
	// content of the effect.
	Effect Effect
	// CustomView is a host owned view shown above the image.
	CustomView ViewID
	Image      Image
	ImageFit   Fit
	Shadow     Shadow
}

// Shadow is drawn beneath every other background layer when its color
// is set.
type Shadow struct {
	Color      Color
	Offset     f32.Point
	BlurRadius unit.Dp
}

// Text is plain or rich text. Spans take precedence over String when
// they contain any text.
type Text struct {
	String string
	Spans  []text.Span
}

// Color is an optional color. The zero Color is unset.
type Color struct {
	c   color.NRGBA
	set bool
}

// CornerStyle selects the corner radius of a Background.
type CornerStyle struct {
	kind   cornerKind
	radius unit.Dp
}

type cornerKind uint8

// Corners is a set of rectangle corners.
type Corners uint8

// Effect is an opaque visual effect, such as Blur, rendered by the
// host. Implementations must be comparable.
type Effect interface {
	EffectName() string
}

// Blur is a background blur effect.
type Blur struct {
	Radius unit.Dp
}

// ViewID is a handle to a view owned by the host. The zero ViewID
// denotes no view.
type ViewID uint64

// ImagePlacement is the position of the image relative to the text.
type ImagePlacement uint8

// TitleAlignment is the horizontal alignment of the title and
// subtitle.
type TitleAlignment uint8

const (
	cornerNone cornerKind = iota
	cornerFixed
	cornerCapsule
)

// NoCorner selects square corners.
var NoCorner = CornerStyle{}

// Capsule selects corners rounded by half the shorter side.
var Capsule = CornerStyle{kind: cornerCapsule}

const (
	TopLeft Corners = 1 << iota
	TopRight
	BottomLeft
	BottomRight

	AllCorners = TopLeft | TopRight | BottomLeft | BottomRight
)

const (
	// Leading places the image before the text in the layout
	// direction.
	Leading ImagePlacement = iota
	// Trailing places the image after the text in the layout
	// direction.
	Trailing
	Top
	Bottom
	Left
	Right
)

const (
	// AutomaticAlignment derives the alignment from the image
	// placement.
	AutomaticAlignment TitleAlignment = iota
	LeadingAlignment
	CenterAlignment
	TrailingAlignment
	LeftAlignment
	RightAlignment
)

const (
	defaultTitleSize    unit.Sp = 17
	defaultSubtitleSize unit.Sp = 15
	// defaultShadowRadius is the blur radius of a new Background.
	defaultShadowRadius unit.Dp = 3
)

// DefaultConfiguration returns the configuration of a new Button:
// leading image placement, automatic title alignment and an empty
// background.
func DefaultConfiguration() Configuration {
	bg := DefaultBackground()
	return Configuration{Background: &bg}
}

// DefaultBackground returns a Background without visible layers,
// that rounds all corners and scales images to fill.
func DefaultBackground() Background {
	return Background{
		Corners:  AllCorners,
		ImageFit: Fill,
		Shadow:   Shadow{BlurRadius: defaultShadowRadius},
	}
}

// ColorOf returns c as a set Color.
func ColorOf(c color.NRGBA) Color {
	return Color{c: c, set: true}
}

// Valid reports whether the color is set.
func (c Color) Valid() bool {
	return c.set
}

// NRGBA returns the color, or transparent black if unset.
func (c Color) NRGBA() color.NRGBA {
	return c.c
}

// Or returns the color if set, or fallback otherwise.
func (c Color) Or(fallback color.NRGBA) color.NRGBA {
	if c.set {
		return c.c
	}
	return fallback
}

// MulAlpha scales the alpha of a set color.
func (c Color) MulAlpha(alpha float32) Color {
	if !c.set {
		return c
	}
	return ColorOf(f32color.MulAlpha(c.c, alpha))
}

// FixedCorner selects corners of radius r.
func FixedCorner(r unit.Dp) CornerStyle {
	return CornerStyle{kind: cornerFixed, radius: r}
}

// Radius returns the corner radius for a rectangle of size sz.
func (c CornerStyle) Radius(sz f32.Point) float32 {
	switch c.kind {
	case cornerFixed:
		return max(float32(c.radius), 0)
	case cornerCapsule:
		return max(min(sz.X, sz.Y)/2, 0)
	default:
		return 0
	}
}

func (c CornerStyle) String() string {
	switch c.kind {
	case cornerNone:
		return "none"
	case cornerFixed:
		return "fixed(" + c.radius.String() + ")"
	case cornerCapsule:
		return "capsule"
	default:
		panic("unreachable")
	}
}

// Resolve returns the corners, or AllCorners for the empty set.
func (c Corners) Resolve() Corners {
	if c == 0 {
		return AllCorners
	}
	return c
}

func (b Blur) EffectName() string {
	return "blur"
}

// Visible reports whether the text has any content.
func (t Text) Visible() bool {
	return len(t.String) > 0 || text.Len(t.Spans) > 0
}

// Runs returns the text as spans. Spans without a font size take the
// size of f; plain text is a single span in font f.
func (t Text) Runs(f text.Font) []text.Span {
	if text.Len(t.Spans) == 0 {
		if t.String == "" {
			return nil
		}
		return []text.Span{{Text: t.String, Font: f}}
	}
	runs := make([]text.Span, len(t.Spans))
	for i, s := range t.Spans {
		if s.Font.Size <= 0 {
			s.Font.Size = f.Size
		}
		if s.Font.Font == (font.Font{}) {
			s.Font.Font = f.Font
		}
		runs[i] = s
	}
	return runs
}

// Equal reports whether t and t2 have the same content.
func (t Text) Equal(t2 Text) bool {
	return t.String == t2.String && slices.Equal(t.Spans, t2.Spans)
}

// Resolve maps leading and trailing placements to left or right
// according to the layout direction.
func (p ImagePlacement) Resolve(dir layout.TextDirection) ImagePlacement {
	switch p {
	case Leading:
		if dir == layout.RTL {
			return Right
		}
		return Left
	case Trailing:
		if dir == layout.RTL {
			return Left
		}
		return Right
	default:
		return p
	}
}

// Axis returns the axis along which the image and the text are laid
// out.
func (p ImagePlacement) Axis() layout.Axis {
	switch p {
	case Top, Bottom:
		return layout.Vertical
	default:
		return layout.Horizontal
	}
}

// Equal reports whether c and c2 describe the same button.
func (c Configuration) Equal(c2 Configuration) bool {
	if c.Image != c2.Image ||
		c.ShowsActivityIndicator != c2.ShowsActivityIndicator ||
		!c.Title.Equal(c2.Title) || !c.Subtitle.Equal(c2.Subtitle) ||
		c.TitleFont != c2.TitleFont || c.SubtitleFont != c2.SubtitleFont ||
		c.ImagePlacement != c2.ImagePlacement ||
		c.TitleAlignment != c2.TitleAlignment ||
		c.ContentInsets != c2.ContentInsets ||
		c.ImagePadding != c2.ImagePadding || c.TitlePadding != c2.TitlePadding ||
		c.ForegroundColor != c2.ForegroundColor ||
		c.TitleColor != c2.TitleColor || c.SubtitleColor != c2.SubtitleColor {
		return false
	}
	return c.Background.Equal(c2.Background)
}

// Equal reports whether b and b2 are both nil or describe the same
// background.
func (b *Background) Equal(b2 *Background) bool {
	if b == nil || b2 == nil {
		return b == b2
	}
	return *b == *b2
}

// Clone returns a copy of c that shares no spans or background with
// c.
func (c Configuration) Clone() Configuration {
	c.Title.Spans = slices.Clone(c.Title.Spans)
	c.Subtitle.Spans = slices.Clone(c.Subtitle.Spans)
	if c.Background != nil {
		bg := *c.Background
		c.Background = &bg
	}
	return c
}

// imageVisible reports whether the image or the activity indicator
// is shown.
func (c *Configuration) imageVisible() bool {
	return c.ShowsActivityIndicator || c.Image != nil
}

func (c *Configuration) titleFont() text.Font {
	f := c.TitleFont
	if f.Size <= 0 {
		f.Size = defaultTitleSize
	}
	return f
}

func (c *Configuration) subtitleFont() text.Font {
	f := c.SubtitleFont
	if f.Size <= 0 {
		f.Size = defaultSubtitleSize
	}
	return f
}

// ResolveTitleAlignment returns the horizontal alignment of the title
// and subtitle in absolute terms: layout.Start is left, layout.End is
// right.
//
// The automatic alignment follows the image: leading and trailing
// images pull the text to their edge, top and bottom images center
// it, and left and right images pull it to their side regardless of
// direction. Without an image the text is aligned to the leading
// edge.
func (c *Configuration) ResolveTitleAlignment(dir layout.TextDirection) layout.Alignment {
	leading, trailing := layout.Start, layout.End
	if dir == layout.RTL {
		leading, trailing = trailing, leading
	}
	switch c.TitleAlignment {
	case LeadingAlignment:
		return leading
	case TrailingAlignment:
		return trailing
	case CenterAlignment:
		return layout.Middle
	case LeftAlignment:
		return layout.Start
	case RightAlignment:
		return layout.End
	}
	if !c.imageVisible() {
		return leading
	}
	switch c.ImagePlacement {
	case Leading:
		return leading
	case Trailing:
		return trailing
	case Left:
		return layout.Start
	case Right:
		return layout.End
	default:
		return layout.Middle
	}
}

func (p ImagePlacement) String() string {
	switch p {
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("unreachable")
	}
}

func (a TitleAlignment) String() string {
	switch a {
	case AutomaticAlignment:
		return "Automatic"
	case LeadingAlignment:
		return "Leading"
	case CenterAlignment:
		return "Center"
	case TrailingAlignment:
		return "Trailing"
	case LeftAlignment:
		return "Left"
	case RightAlignment:
		return "Right"
	default:
		panic("unreachable")
	}
}
