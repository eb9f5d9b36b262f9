// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"github.com/spf13/cobra"

	"gioui.org/x/configbutton/f32"
	"gioui.org/x/configbutton/widget"
)

// bounds returns the bounds of a button of size w by h, where zero
// sizes are replaced by the intrinsic size of b.
func bounds(b *widget.Button, w, h float32) f32.Rectangle {
	if w <= 0 || h <= 0 {
		sz := b.IntrinsicSize()
		if w <= 0 {
			w = sz.X
		}
		if h <= 0 {
			h = sz.Y
		}
	}
	return f32.Rect(0, 0, w, h)
}

func (c *CLI) layoutCommand() *cobra.Command {
	var width, height float32
	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the frames of a laid out button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.button(args[0])
			if err != nil {
				return err
			}
			f := b.Layout(bounds(b, width, height))
			printFrame(cmd.OutOrStdout(), f)
			return nil
		},
	}
	cmd.Flags().Float32Var(&width, "width", 0, "button width in dp (default intrinsic width)")
	cmd.Flags().Float32Var(&height, "height", 0, "button height in dp (default intrinsic height)")
	return cmd
}
