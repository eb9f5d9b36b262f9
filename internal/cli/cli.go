// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the cbutton command line interface.
//
// The commands load a button file with package config and print its
// intrinsic size, print its laid out frames, or render it to a PNG
// image:
//
//	cbutton measure save.yaml
//	cbutton layout save.yaml --width 200 --height 44
//	cbutton render save.toml -o save.png --scale 2
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gioui.org/x/configbutton/internal/config"
	"gioui.org/x/configbutton/text"
	"gioui.org/x/configbutton/unit"
	"gioui.org/x/configbutton/widget"
)

// Log levels for main.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds the state shared by the commands.
type CLI struct {
	Logger *log.Logger

	shaper *text.Shaper
}

// New returns a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand returns the cbutton command with its subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "cbutton",
		Short:         "Lay out and render configuration driven buttons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.measureCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	return root
}

// button returns a button configured by the file at path. Buttons
// update immediately and measure text with the Go fonts.
func (c *CLI) button(path string) (*widget.Button, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	b := &widget.Button{Text: c.textShaper(), Logger: c.Logger}
	if err := f.Apply(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Logger.Debug("loaded button", "path", path, "state", b.State())
	return b, nil
}

func (c *CLI) textShaper() *text.Shaper {
	if c.shaper == nil {
		c.shaper = text.NewShaper(unit.Metric{}, nil)
	}
	return c.shaper
}
