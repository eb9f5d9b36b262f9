// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gioui.org/x/configbutton/internal/config"
	"gioui.org/x/configbutton/raster"
)

type renderOpts struct {
	output     string
	scale      float32
	width      float32
	height     float32
	background string
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: 1}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a button to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err := c.render(args[0], opts); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote %s", opts.output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default input with .png extension)")
	cmd.Flags().Float32Var(&opts.scale, "scale", opts.scale, "pixels per dp")
	cmd.Flags().Float32Var(&opts.width, "width", 0, "button width in dp (default intrinsic width)")
	cmd.Flags().Float32Var(&opts.height, "height", 0, "button height in dp (default intrinsic height)")
	cmd.Flags().StringVar(&opts.background, "background", "", "color behind the button, such as #ffffff")
	return cmd
}

func (c *CLI) render(path string, opts renderOpts) error {
	if opts.scale <= 0 {
		return errors.New("render: scale must be positive")
	}
	bg, err := config.ParseColor(opts.background)
	if err != nil {
		return fmt.Errorf("render: background: %w", err)
	}
	b, err := c.button(path)
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)
	rect := bounds(b, opts.width, opts.height)
	f := b.Layout(rect)
	w := int(math.Ceil(float64(rect.Dx() * opts.scale)))
	h := int(math.Ceil(float64(rect.Dy() * opts.scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg.Valid() {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg.NRGBA()), image.Point{}, draw.Src)
	}
	r := raster.Rasterizer{Shaper: c.textShaper(), Scale: opts.scale, Logger: c.Logger}
	r.Frame(f, dst)

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(out, dst); err != nil {
		out.Close()
		return fmt.Errorf("render: %s: %w", opts.output, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %dx%d", w, h))
	return nil
}
