// SPDX-License-Identifier: Unlicense OR MIT

package widget

// State is the interaction state of a Button.
type State uint8

const (
	Normal State = iota
	Disabled
	Highlighted

	numStates
)

// StateOf returns the state of a control. Disabled takes priority over
// highlighted.
func StateOf(enabled, highlighted bool) State {
	switch {
	case !enabled:
		return Disabled
	case highlighted:
		return Highlighted
	default:
		return Normal
	}
}

// Provider derives the configuration in effect for an interaction
// state from a base configuration.
type Provider interface {
	Configuration(base Configuration, s State) Configuration
}

// ProviderFunc adapts a function to a Provider.
type ProviderFunc func(base Configuration, s State) Configuration

func (f ProviderFunc) Configuration(base Configuration, s State) Configuration {
	return f(base, s)
}

// PlainProvider dims the colors of a configuration outside the normal
// state and removes its shadow. Derived configurations are cached per
// state until the base configuration changes.
type PlainProvider struct {
	// Overlay returns the alpha multiplier for a state, and whether
	// to apply it. A nil Overlay uses DefaultOverlay.
	Overlay func(s State) (alpha float32, ok bool)

	base   Configuration
	valid  bool
	cache  [numStates]Configuration
	cached [numStates]bool
}

// DefaultOverlay returns 0.5 for disabled and 0.75 for highlighted
// buttons.
func DefaultOverlay(s State) (float32, bool) {
	switch s {
	case Disabled:
		return 0.5, true
	case Highlighted:
		return 0.75, true
	default:
		return 1, false
	}
}

func (p *PlainProvider) Configuration(base Configuration, s State) Configuration {
	if !p.valid || !p.base.Equal(base) {
		p.base = base.Clone()
		p.valid = true
		p.cached = [numStates]bool{}
	}
	if !p.cached[s] {
		p.cache[s] = p.derive(base.Clone(), s)
		p.cached[s] = true
	}
	return p.cache[s].Clone()
}

func (p *PlainProvider) derive(c Configuration, s State) Configuration {
	overlay := p.Overlay
	if overlay == nil {
		overlay = DefaultOverlay
	}
	if alpha, ok := overlay(s); ok {
		c.ForegroundColor = c.ForegroundColor.MulAlpha(alpha)
		c.TitleColor = c.TitleColor.MulAlpha(alpha)
		c.SubtitleColor = c.SubtitleColor.MulAlpha(alpha)
		if bg := c.Background; bg != nil {
			bg.Fill = bg.Fill.MulAlpha(alpha)
			bg.Stroke = bg.Stroke.MulAlpha(alpha)
		}
	}
	if s != Normal && c.Background != nil {
		c.Background.Shadow.Color = Color{}
	}
	return c
}

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Disabled:
		return "Disabled"
	case Highlighted:
		return "Highlighted"
	default:
		panic("unreachable")
	}
}
