// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqform/seqplot"
)

var (
	plotTarget   string
	plotStart    string
	plotLength   int
	plotScenario string
	plotOut      string
	plotTitle    string
	plotSamples  int

	plotCmd = &cobra.Command{
		Use:   "plot",
		Short: "Draw the smooth interpolation against the target window",
		Long: `Plot renders the form's continuous cos²-product interpolation as a
curve with the target sequence as points on the integer grid. The output
format follows the file extension (.png, .svg, .pdf, ...).`,
		RunE: runPlot,
	}
)

func init() {
	plotCmd.Flags().StringVarP(&plotTarget, "target", "t", "",
		`target window, comma-separated (e.g. "4,2,0,4")`)
	plotCmd.Flags().StringVar(&plotStart, "start", "",
		"prior state to extend, comma-separated")
	plotCmd.Flags().IntVarP(&plotLength, "length", "l", 0,
		"window length (0 derives it from the target)")
	plotCmd.Flags().StringVarP(&plotScenario, "scenario", "s", "",
		"YAML scenario file instead of flags")
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "seqform.png",
		"output image path (format by extension)")
	plotCmd.Flags().StringVar(&plotTitle, "title", "",
		"plot title (empty uses the scenario name or the formula)")
	plotCmd.Flags().IntVar(&plotSamples, "samples", 0,
		"curve samples (0 picks a density automatically)")
	plotCmd.MarkFlagsMutuallyExclusive("target", "scenario")
}

func runPlot(cmd *cobra.Command, args []string) error {
	name, start, target, length, err := resolveWindow(plotScenario, plotTarget, plotStart, plotLength)
	if err != nil {
		return err
	}

	f, err := buildForm(start, target, length)
	if err != nil {
		return err
	}

	opts := seqplot.DefaultOptions()
	opts.Samples = plotSamples
	opts.Title = plotTitle
	if opts.Title == "" && plotScenario != "" {
		opts.Title = name
	}
	if err = seqplot.Render(f, target, length, plotOut, opts); err != nil {
		return err
	}

	fmt.Println(styles.Heading.Render(name))
	fmt.Println("  f(n) =", styles.Formula.Render(f.String()))
	fmt.Println("  wrote", styles.Muted.Render(plotOut))

	return nil
}
