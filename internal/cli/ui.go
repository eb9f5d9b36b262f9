// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/widget"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	styleLabel = lipgloss.NewStyle().Foreground(colorDim).Width(12)
)

const iconSuccess = "✓"

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, StyleSuccess.Render(iconSuccess)+" "+msg)
}

// printRow prints a label and its value in aligned columns.
func printRow(w io.Writer, label, value string) {
	fmt.Fprintln(w, styleLabel.Render(label)+StyleValue.Render(value))
}

// printFrame prints the frames and background layers of f.
func printFrame(w io.Writer, f widget.Frame) {
	fmt.Fprintln(w, StyleTitle.Render("frame"))
	printRow(w, "state", f.State.String())
	printRow(w, "background", f.Background.String())
	if f.Indicator {
		printRow(w, "indicator", f.Image.String())
	} else if f.Icon != nil {
		printRow(w, "image", f.Image.String())
	}
	if len(f.TitleSpans) > 0 {
		printRow(w, "title", f.Title.String())
	}
	if len(f.SubtitleSpans) > 0 {
		printRow(w, "subtitle", f.Subtitle.String())
	}
	if len(f.Layers) == 0 {
		return
	}
	fmt.Fprintln(w, StyleTitle.Render("layers"))
	for _, l := range f.Layers {
		v := l.Frame.String()
		if l.Radius > 0 {
			v += " radius " + formatFloat(l.Radius)
		}
		printRow(w, l.Kind.String(), v)
	}
}

func formatSize(sz f32.Point) string {
	return formatFloat(sz.X) + "x" + formatFloat(sz.Y)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
