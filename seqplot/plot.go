// SPDX-License-Identifier: MIT

package seqplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/seqform/closedform"
	"github.com/katalvlaran/seqform/decompose"
)

// Options configures one rendering.
//
// Fields:
//   - Title — plot title; empty means the Form's own p-notation.
//   - Width, Height — canvas size in vg units.
//   - Samples — sample count for the smooth curve across the window;
//     0 picks a density that resolves the fastest cos² wiggle.
type Options struct {
	Title   string
	Width   vg.Length
	Height  vg.Length
	Samples int
}

// DefaultOptions returns an Options with default settings: a 16×10 cm
// canvas, auto title, auto sampling.
func DefaultOptions() Options {
	return Options{
		Width:  16 * vg.Centimeter,
		Height: 10 * vg.Centimeter,
	}
}

// Render draws the Form's continuous trigonometric interpolation over the
// window [0, length) together with the target sequence as a scatter
// overlay, and saves the image to path. The output format follows the
// path extension (.png, .svg, .pdf, ...), exactly as plot.Plot.Save
// resolves it.
//
// The target is left-padded with zeros to length under the decomposer's
// padding rule, so a Form built from a short target verifies visually
// against the same window it was assembled for.
//
// Returns decompose.ErrNonPositiveLength / decompose.ErrSequenceTooLong
// for a window that cannot hold the target, and a wrapped rendering error
// when the backend rejects the path or extension.
//
// Complexity: Time O(samples·terms·2^scale), Memory O(length+samples).
func Render(f closedform.Form, target []int, length int, path string, opts Options) error {
	window, err := decompose.PadTo(target, length)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = f.String()
	}
	p.X.Label.Text = "n"
	p.Y.Label.Text = "f(n)"
	p.Add(plotter.NewGrid())

	curve := plotter.NewFunction(f.TrigAt)
	curve.Samples = opts.Samples
	if curve.Samples <= 0 {
		curve.Samples = samplesFor(length)
	}
	curve.Color = color.RGBA{B: 255, A: 255}
	curve.Width = vg.Points(1.25)

	pts := make(plotter.XYs, len(window))
	for n, v := range window {
		pts[n].X = float64(n)
		pts[n].Y = float64(v)
	}
	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("seqplot: scatter: %w", err)
	}
	dots.GlyphStyle.Radius = vg.Points(3)
	dots.GlyphStyle.Color = color.RGBA{R: 220, A: 255}

	p.Add(curve, dots)
	p.Legend.Add("trig interpolation", curve)
	p.Legend.Add("target window", dots)
	p.Legend.Top = true

	p.X.Min, p.X.Max = -0.5, float64(length)-0.5
	p.Y.Min, p.Y.Max = yBounds(window)

	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("seqplot: save %s: %w", path, err)
	}

	return nil
}

// samplesFor picks a curve density that resolves the narrowest pulse:
// 32 samples per window index, clamped to a sane range.
func samplesFor(length int) int {
	s := 32 * length
	if s < 256 {
		s = 256
	}
	if s > 4096 {
		s = 4096
	}

	return s
}

// yBounds frames the window values with half a unit of margin, keeping
// zero in frame for all-zero windows.
func yBounds(window []int) (float64, float64) {
	lo, hi := 0, 0
	for _, v := range window {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return float64(lo) - 0.5, float64(hi) + 0.5
}
