// SPDX-License-Identifier: MIT

// Command seqform demonstrates closed-form periodic encodings: it deduces
// one trigonometric formula for an integer window, verifies the formula
// against the window, and optionally draws the two together.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "seqform",
		Short: "Closed-form periodic encodings of integer sequences",
		Long: `seqform encodes a window of non-negative integers as one closed-form
expression built from scaled cos² pulses: f(n) = Σ wᵢ·p(aᵢ, n−sᵢ).

The pipeline decomposes the window into unit operations, assembles the
matching pulses at the smallest covering scale, and verifies that the
formula replays the window exactly.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(verbose)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"debug logging on stderr")
	rootCmd.AddCommand(encodeCmd, demoCmd, plotCmd)
}

// initLogging routes slog to stderr so styled reports own stdout; verbose
// lowers the threshold to debug.
func initLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Fail.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
