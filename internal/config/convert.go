// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/font"
	"gioui.org/x/configbutton/layout"
	"gioui.org/x/configbutton/text"
	"gioui.org/x/configbutton/unit"
	"gioui.org/x/configbutton/widget"
)

var builtins = map[string][]byte{
	"add":      icons.ContentAdd,
	"check":    icons.NavigationCheck,
	"close":    icons.NavigationClose,
	"delete":   icons.ActionDelete,
	"favorite": icons.ActionFavorite,
	"home":     icons.ActionHome,
	"search":   icons.ActionSearch,
	"send":     icons.ContentSend,
	"settings": icons.ActionSettings,
	"share":    icons.SocialShare,
}

// Configuration returns the button configuration described by f.
func (f *File) Configuration() (widget.Configuration, error) {
	c := widget.DefaultConfiguration()
	var err error
	if c.Image, err = f.image(f.Image); err != nil {
		return c, fmt.Errorf("image: %w", err)
	}
	c.ShowsActivityIndicator = f.ShowsActivityIndicator
	c.Title = widget.Text{String: f.Title}
	c.Subtitle = widget.Text{String: f.Subtitle}
	if c.TitleFont, err = f.TitleFont.font(); err != nil {
		return c, fmt.Errorf("title_font: %w", err)
	}
	if c.SubtitleFont, err = f.SubtitleFont.font(); err != nil {
		return c, fmt.Errorf("subtitle_font: %w", err)
	}
	if c.ImagePlacement, err = parsePlacement(f.Placement); err != nil {
		return c, err
	}
	if c.TitleAlignment, err = parseTitleAlignment(f.TitleAlignment); err != nil {
		return c, err
	}
	c.ContentInsets = f.Insets.edgeInsets()
	c.ImagePadding = unit.Dp(f.ImagePadding)
	c.TitlePadding = unit.Dp(f.TitlePadding)
	colors := []struct {
		key string
		dst *widget.Color
	}{
		{f.Foreground, &c.ForegroundColor},
		{f.TitleColor, &c.TitleColor},
		{f.SubtitleColor, &c.SubtitleColor},
	}
	for _, col := range colors {
		if *col.dst, err = ParseColor(col.key); err != nil {
			return c, err
		}
	}
	if f.Background == nil {
		return c, nil
	}
	if err := f.background(f.Background, c.Background); err != nil {
		return c, fmt.Errorf("background: %w", err)
	}
	return c, nil
}

// Params returns the layout parameters of the button besides its
// configuration.
func (f *File) Params() (h layout.HAlignment, v layout.VAlignment, dir layout.TextDirection, err error) {
	if h, err = parseHAlignment(f.Horizontal); err != nil {
		return
	}
	if v, err = parseVAlignment(f.Vertical); err != nil {
		return
	}
	dir, err = parseDirection(f.Direction)
	return
}

// Apply configures b as described by f.
func (f *File) Apply(b *widget.Button) error {
	c, err := f.Configuration()
	if err != nil {
		return err
	}
	h, v, dir, err := f.Params()
	if err != nil {
		return err
	}
	tint, err := ParseColor(f.Tint)
	if err != nil {
		return fmt.Errorf("tint: %w", err)
	}
	if tint.Valid() {
		b.SetTint(tint.NRGBA())
	}
	b.SetAlignment(h, v)
	b.SetDirection(dir)
	b.SetEnabled(!f.State.Disabled)
	b.SetHighlighted(f.State.Highlighted)
	b.SetSelected(f.State.Selected)
	b.PreferredMaxWidth = f.MaxWidth
	b.SetConfiguration(c)
	return nil
}

func (f *File) background(src *Background, bg *widget.Background) error {
	var err error
	if bg.Fill, err = ParseColor(src.Fill); err != nil {
		return err
	}
	if bg.Stroke, err = ParseColor(src.Stroke); err != nil {
		return err
	}
	bg.StrokeWidth = unit.Dp(src.StrokeWidth)
	bg.StrokeOutset = unit.Dp(src.StrokeOutset)
	switch strings.ToLower(src.Corner) {
	case "":
		if src.Radius > 0 {
			bg.Corner = widget.FixedCorner(unit.Dp(src.Radius))
		}
	case "none":
		bg.Corner = widget.NoCorner
	case "fixed":
		bg.Corner = widget.FixedCorner(unit.Dp(src.Radius))
	case "capsule":
		bg.Corner = widget.Capsule
	default:
		return fmt.Errorf("unknown corner style %q", src.Corner)
	}
	if bg.Corners, err = parseCorners(src.Corners); err != nil {
		return err
	}
	if src.Blur > 0 {
		bg.Effect = widget.Blur{Radius: unit.Dp(src.Blur)}
	}
	bg.CustomView = widget.ViewID(src.CustomView)
	if bg.Image, err = f.image(src.Image); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	if bg.ImageFit, err = parseFit(src.ImageFit); err != nil {
		return err
	}
	if sh := src.Shadow; sh != nil {
		if bg.Shadow.Color, err = ParseColor(sh.Color); err != nil {
			return fmt.Errorf("shadow: %w", err)
		}
		bg.Shadow.Offset = f32.Pt(sh.Offset[0], sh.Offset[1])
		if sh.Blur != nil {
			bg.Shadow.BlurRadius = unit.Dp(*sh.Blur)
		}
	}
	return nil
}

func (f *File) image(img *Image) (widget.Image, error) {
	if img == nil {
		return nil, nil
	}
	set := 0
	for _, s := range []string{img.Icon, img.Picture, img.Builtin} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of icon, picture and builtin must be set")
	}
	switch {
	case img.Builtin != "":
		data, ok := builtins[strings.ToLower(img.Builtin)]
		if !ok {
			return nil, fmt.Errorf("unknown builtin icon %q", img.Builtin)
		}
		return newIcon(data, img.Width)
	case img.Icon != "":
		data, err := os.ReadFile(f.path(img.Icon))
		if err != nil {
			return nil, err
		}
		return newIcon(data, img.Width)
	default:
		r, err := os.Open(f.path(img.Picture))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		p, err := widget.NewPicture(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", img.Picture, err)
		}
		p.Scale = img.Scale
		return p, nil
	}
}

func newIcon(data []byte, width float32) (*widget.Icon, error) {
	ic, err := widget.NewIcon(data)
	if err != nil {
		return nil, err
	}
	ic.Width = unit.Dp(width)
	return ic, nil
}

func (f *File) path(p string) string {
	if filepath.IsAbs(p) || f.dir == "" {
		return p
	}
	return filepath.Join(f.dir, p)
}

func (fnt Font) font() (text.Font, error) {
	tf := text.Font{Size: unit.Sp(fnt.Size)}
	tf.Typeface = font.Typeface(fnt.Typeface)
	if fnt.Weight != "" {
		w, ok := font.ParseWeight(fnt.Weight)
		if !ok {
			return tf, fmt.Errorf("unknown weight %q", fnt.Weight)
		}
		tf.Weight = w
	}
	if fnt.Style != "" {
		s, ok := font.ParseStyle(fnt.Style)
		if !ok {
			return tf, fmt.Errorf("unknown style %q", fnt.Style)
		}
		tf.Style = s
	}
	return tf, nil
}

func (in Insets) edgeInsets() layout.EdgeInsets {
	if in.Left != 0 || in.Right != 0 {
		return layout.AbsoluteInsets(layout.Inset{
			Top:    unit.Dp(in.Top + in.All),
			Bottom: unit.Dp(in.Bottom + in.All),
			Left:   unit.Dp(in.Left + in.All),
			Right:  unit.Dp(in.Right + in.All),
		})
	}
	return layout.DirectionalInsets(
		unit.Dp(in.Top+in.All),
		unit.Dp(in.Leading+in.All),
		unit.Dp(in.Bottom+in.All),
		unit.Dp(in.Trailing+in.All),
	)
}

// ParseColor parses a color in #rgb, #rrggbb or #rrggbbaa notation.
// The empty string is the unset color.
func ParseColor(s string) (widget.Color, error) {
	if s == "" {
		return widget.Color{}, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	b, err := hex.DecodeString(h)
	if err != nil || len(b) != 4 {
		return widget.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return widget.ColorOf(color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}), nil
}

// lookup returns the value named s in values, or the zero value for
// the empty string.
func lookup[T any](kind, s string, values map[string]T) (T, error) {
	var zero T
	if s == "" {
		return zero, nil
	}
	v, ok := values[strings.ToLower(s)]
	if !ok {
		return zero, fmt.Errorf("unknown %s %q", kind, s)
	}
	return v, nil
}

func parsePlacement(s string) (widget.ImagePlacement, error) {
	return lookup("placement", s, map[string]widget.ImagePlacement{
		"leading":  widget.Leading,
		"trailing": widget.Trailing,
		"top":      widget.Top,
		"bottom":   widget.Bottom,
		"left":     widget.Left,
		"right":    widget.Right,
	})
}

func parseTitleAlignment(s string) (widget.TitleAlignment, error) {
	return lookup("title alignment", s, map[string]widget.TitleAlignment{
		"automatic": widget.AutomaticAlignment,
		"leading":   widget.LeadingAlignment,
		"center":    widget.CenterAlignment,
		"trailing":  widget.TrailingAlignment,
		"left":      widget.LeftAlignment,
		"right":     widget.RightAlignment,
	})
}

func parseHAlignment(s string) (layout.HAlignment, error) {
	return lookup("horizontal alignment", s, map[string]layout.HAlignment{
		"center":   layout.HCenter,
		"left":     layout.Left,
		"right":    layout.Right,
		"fill":     layout.HFill,
		"leading":  layout.Leading,
		"trailing": layout.Trailing,
	})
}

func parseVAlignment(s string) (layout.VAlignment, error) {
	return lookup("vertical alignment", s, map[string]layout.VAlignment{
		"center": layout.VCenter,
		"top":    layout.Top,
		"bottom": layout.Bottom,
		"fill":   layout.VFill,
	})
}

func parseDirection(s string) (layout.TextDirection, error) {
	return lookup("direction", s, map[string]layout.TextDirection{
		"ltr": layout.LTR,
		"rtl": layout.RTL,
	})
}

func parseFit(s string) (widget.Fit, error) {
	if s == "" {
		return widget.Fill, nil
	}
	return lookup("image fit", s, map[string]widget.Fit{
		"unscaled":   widget.Unscaled,
		"contain":    widget.Contain,
		"cover":      widget.Cover,
		"scale-down": widget.ScaleDown,
		"fill":       widget.Fill,
	})
}

func parseCorners(names []string) (widget.Corners, error) {
	var c widget.Corners
	for _, n := range names {
		v, err := lookup("corner", n, map[string]widget.Corners{
			"top-left":     widget.TopLeft,
			"top-right":    widget.TopRight,
			"bottom-left":  widget.BottomLeft,
			"bottom-right": widget.BottomRight,
			"all":          widget.AllCorners,
		})
		if err != nil {
			return 0, err
		}
		c |= v
	}
	return c, nil
}
