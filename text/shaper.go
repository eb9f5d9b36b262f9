// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"gioui.org/x/configbutton/f32"
	giofont "gioui.org/x/configbutton/font"
	"gioui.org/x/configbutton/font/gofont"
	"gioui.org/x/configbutton/unit"
)

// Shaper lays out and measures spans of text with a collection of
// font faces. Layouts are cached. A Shaper is safe for concurrent
// use.
type Shaper struct {
	metric unit.Metric
	faces  []giofont.FontFace

	mu    sync.Mutex
	buf   sfnt.Buffer
	cache layoutCache
}

type glyph struct {
	r    rune
	span int
	// kern is the kerning against the previous glyph of the span.
	kern fixed.Int26_6
	adv  fixed.Int26_6
}

// NewShaper returns a Shaper for the faces of collection, converting
// font sizes to dp with m. An empty collection selects the Go regular
// face.
func NewShaper(m unit.Metric, collection []giofont.FontFace) *Shaper {
	if len(collection) == 0 {
		collection = gofont.Regular()
	}
	return &Shaper{metric: m, faces: collection}
}

// Measure returns the size of spans laid out within maxWidth.
func (s *Shaper) Measure(spans []Span, maxWidth float32) f32.Point {
	return s.Layout(spans, maxWidth).Size()
}

// Layout breaks spans into lines no wider than maxWidth, breaking at
// white space where possible. Newlines always break. A single word
// wider than maxWidth is broken between runes.
func (s *Shaper) Layout(spans []Span, maxWidth float32) Layout {
	if Len(spans) == 0 {
		return Layout{}
	}
	if !(maxWidth > 0) {
		maxWidth = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := layoutKey{maxWidth: maxWidth, spans: encode(spans)}
	if l, ok := s.cache.Get(k); ok {
		return l
	}
	l := s.layout(spans, maxWidth)
	s.cache.Put(k, l)
	return l
}

// Face returns the face that best matches f. Typeface mismatches
// weigh most, followed by variant, style and weight distance.
func (s *Shaper) Face(f giofont.Font) *sfnt.Font {
	best, bestScore := 0, math.MaxInt
	for i, ff := range s.faces {
		score := 0
		if f.Typeface != "" && ff.Font.Typeface != f.Typeface {
			score += 10000
		}
		if ff.Font.Variant != f.Variant {
			score += 2000
		}
		if ff.Font.Style != f.Style {
			score += 1000
		}
		d := int(ff.Font.Weight - f.Weight)
		if d < 0 {
			d = -d
		}
		score += d
		if score < bestScore {
			best, bestScore = i, score
		}
	}
	return s.faces[best].Face.Face()
}

// PixelsPerEm returns the size of f in dp, in fixed point.
func (s *Shaper) PixelsPerEm(f Font) fixed.Int26_6 {
	dp := s.metric.SpToDp(f.Size)
	return fixed.Int26_6(math.Round(float64(dp) * 64))
}

func (s *Shaper) layout(spans []Span, maxWidth float32) Layout {
	limit := fixed.Int26_6(math.MaxInt32)
	if maxWidth < float32(limit)/64 {
		limit = fixed.Int26_6(math.Round(float64(maxWidth) * 64))
	}
	var lines []Line
	var line []glyph
	var x fixed.Int26_6
	// wordEnd is the index in line following the last white space.
	wordEnd := 0
	cur := 0
	for si, sp := range spans {
		ppem := s.PixelsPerEm(sp.Font)
		if ppem <= 0 {
			continue
		}
		cur = si
		face := s.Face(sp.Font.Font)
		prev := sfnt.GlyphIndex(0)
		for _, r := range sp.Text {
			if r == '\n' {
				lines = append(lines, s.line(spans, si, line))
				line, x, wordEnd, prev = nil, 0, 0, 0
				continue
			}
			g, err := face.GlyphIndex(&s.buf, r)
			if err != nil {
				continue
			}
			adv, err := face.GlyphAdvance(&s.buf, g, ppem, font.HintingNone)
			if err != nil {
				continue
			}
			var k fixed.Int26_6
			if prev != 0 {
				if kern, err := face.Kern(&s.buf, prev, g, ppem, font.HintingNone); err == nil {
					k = kern
				}
			}
			prev = g
			space := unicode.IsSpace(r)
			// Break the line if we're out of space. Trailing white space
			// hangs past the limit.
			if !space && len(line) > 0 && x+k+adv > limit {
				var rest []glyph
				if wordEnd > 0 && wordEnd < len(line) {
					rest = append(rest, line[wordEnd:]...)
					line = line[:wordEnd]
				}
				lines = append(lines, s.line(spans, si, line))
				line, x, wordEnd = rest, 0, 0
				if len(line) > 0 {
					line[0].kern = 0
				}
				for _, g := range line {
					x += g.kern + g.adv
				}
				if len(line) == 0 {
					k = 0
				}
			}
			line = append(line, glyph{r: r, span: si, kern: k, adv: adv})
			x += k + adv
			if space {
				wordEnd = len(line)
			}
		}
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, s.line(spans, cur, line))
	}
	return Layout{Lines: lines}
}

// line builds a Line from glyphs. The metrics of span fallback are used
// for lines without glyphs.
func (s *Shaper) line(spans []Span, fallback int, glyphs []glyph) Line {
	var l Line
	if len(glyphs) == 0 {
		l.Ascent, l.Descent = s.metrics(spans[fallback].Font)
		return l
	}
	var x, width fixed.Int26_6
	measured := make(map[int]bool)
	var b strings.Builder
	for i, g := range glyphs {
		if i == 0 || glyphs[i-1].span != g.span {
			if i > 0 {
				l.Runs[len(l.Runs)-1].Text = b.String()
				b.Reset()
			}
			l.Runs = append(l.Runs, Run{Span: g.span, Font: spans[g.span].Font, X: fixedToFloat(x)})
			if !measured[g.span] {
				measured[g.span] = true
				a, d := s.metrics(spans[g.span].Font)
				l.Ascent = max(l.Ascent, a)
				l.Descent = max(l.Descent, d)
			}
		}
		if i > 0 {
			x += g.kern
		}
		b.WriteRune(g.r)
		x += g.adv
		run := &l.Runs[len(l.Runs)-1]
		run.Width = fixedToFloat(x) - run.X
		if !unicode.IsSpace(g.r) {
			width = x
		}
	}
	l.Runs[len(l.Runs)-1].Text = b.String()
	l.Width = fixedToFloat(width)
	return l
}

func (s *Shaper) metrics(f Font) (ascent, descent float32) {
	ppem := s.PixelsPerEm(f)
	if ppem <= 0 {
		return 0, 0
	}
	m, err := s.Face(f.Font).Metrics(&s.buf, ppem, font.HintingNone)
	if err != nil {
		return 0, 0
	}
	// m.Height is equal to m.Ascent + m.Descent + linegap.
	// Compute the descent including the linegap.
	return fixedToFloat(m.Ascent), fixedToFloat(max(m.Height-m.Ascent, m.Descent))
}

func encode(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		f := sp.Font
		fmt.Fprintf(&b, "%s\x00%s\x00%d\x00%d\x00%g\x00%d:%s", f.Typeface, f.Variant, f.Style, f.Weight, f.Size, len(sp.Text), sp.Text)
	}
	return b.String()
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
