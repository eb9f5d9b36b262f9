// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses TrueType and OpenType font files into faces
// for text measurement.
package opentype

import (
	"fmt"
	"strings"

	giofont "gioui.org/x/configbutton/font"
	"golang.org/x/image/font/sfnt"
)

// Face is a thread-safe representation of a loaded font. For efficiency, applications
// should construct a face for any given font file once, reusing it across different
// text shapers.
type Face struct {
	face      *sfnt.Font
	family    string
	subfamily string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return newFace(f), nil
}

// ParseCollection parse an Opentype font file, with support for collections.
// Single font files are supported, returning a slice with length 1.
// The returned fonts are automatically wrapped in a font.FontFace with
// inferred font metadata.
func ParseCollection(src []byte) ([]giofont.FontFace, error) {
	c, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make([]giofont.FontFace, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		ff := newFace(f)
		out[i] = giofont.FontFace{
			Face: ff,
			Font: ff.Font(),
		}
	}
	return out, nil
}

func newFace(f *sfnt.Font) Face {
	var buf sfnt.Buffer
	family, _ := f.Name(&buf, sfnt.NameIDFamily)
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	return Face{face: f, family: family, subfamily: sub}
}

// Face returns the parsed font.
func (f Face) Face() *sfnt.Font {
	return f.face
}

// Font returns a font.Font with metadata inferred from the family and
// subfamily names of the font.
// BUG: the only Variants that can be detected automatically are
// "Mono" and "Smallcaps".
func (f Face) Font() giofont.Font {
	fnt := giofont.Font{
		Typeface: giofont.Typeface(f.family),
		Style:    f.style(),
		Weight:   f.weight(),
	}
	for _, v := range []string{"Mono", "Smallcaps"} {
		if name, ok := strings.CutSuffix(f.family, " "+v); ok {
			fnt.Typeface = giofont.Typeface(name)
			fnt.Variant = giofont.Variant(v)
		}
	}
	return fnt
}

func (f Face) style() giofont.Style {
	if strings.Contains(strings.ToLower(f.subfamily), "italic") {
		return giofont.Italic
	}
	return giofont.Regular
}

func (f Face) weight() giofont.Weight {
	sub := strings.ToLower(f.subfamily)
	// Longest names first, so that "semibold" is not taken for "bold".
	for _, w := range []giofont.Weight{
		giofont.ExtraLight, giofont.ExtraBold, giofont.SemiBold,
		giofont.Medium, giofont.Black, giofont.Light, giofont.Thin, giofont.Bold,
	} {
		if strings.Contains(sub, strings.ToLower(w.String())) {
			return w
		}
	}
	return giofont.Normal
}
