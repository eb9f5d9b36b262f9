// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) measureCommand() *cobra.Command {
	var maxWidth float32
	cmd := &cobra.Command{
		Use:   "measure [file]",
		Short: "Print the intrinsic size of a button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.button(args[0])
			if err != nil {
				return err
			}
			if maxWidth > 0 {
				b.PreferredMaxWidth = maxWidth
			}
			printRow(cmd.OutOrStdout(), "size", formatSize(b.IntrinsicSize()))
			return nil
		},
	}
	cmd.Flags().Float32Var(&maxWidth, "max-width", 0, "preferred maximum width in dp, overriding the file")
	return cmd
}
