// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as a collection of font faces
// for text.NewShaper.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"gioui.org/x/configbutton/font"
	"gioui.org/x/configbutton/font/opentype"
)

// Typeface is the typeface name of every face in the collection.
const Typeface font.Typeface = "Go"

var (
	regOnce    sync.Once
	reg        []font.FontFace
	once       sync.Once
	collection []font.FontFace
)

// faces lists the remaining faces of the collection, after the
// regular face.
var faces = []struct {
	font font.Font
	ttf  []byte
}{
	{font.Font{Style: font.Italic}, goitalic.TTF},
	{font.Font{Weight: font.Bold}, gobold.TTF},
	{font.Font{Style: font.Italic, Weight: font.Bold}, gobolditalic.TTF},
	{font.Font{Weight: font.Medium}, gomedium.TTF},
	{font.Font{Weight: font.Medium, Style: font.Italic}, gomediumitalic.TTF},
	{font.Font{Variant: "Mono"}, gomono.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold}, gomonobold.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold, Style: font.Italic}, gomonobolditalic.TTF},
	{font.Font{Variant: "Mono", Style: font.Italic}, gomonoitalic.TTF},
	{font.Font{Variant: "Smallcaps"}, gosmallcaps.TTF},
	{font.Font{Variant: "Smallcaps", Style: font.Italic}, gosmallcapsitalic.TTF},
}

func loadRegular() {
	regOnce.Do(func() {
		reg = []font.FontFace{parse(font.Font{}, goregular.TTF)}
		collection = append(collection, reg[0])
	})
}

// Regular returns a collection of only the Go regular font face.
// Label measurement in tests and the command line tool use it when
// the full collection is not needed.
func Regular() []font.FontFace {
	loadRegular()
	return reg
}

// Collection returns a collection of all available Go font faces.
func Collection() []font.FontFace {
	loadRegular()
	once.Do(func() {
		for _, f := range faces {
			collection = append(collection, parse(f.font, f.ttf))
		}
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

func parse(fnt font.Font, ttf []byte) font.FontFace {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	fnt.Typeface = Typeface
	return font.FontFace{Font: fnt, Face: face}
}
