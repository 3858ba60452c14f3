// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqform/closedform"
)

var (
	demoLength int
	demoMax    int
	demoSeed   int64
	demoTrig   bool

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Encode a random window and verify the round trip",
		Long: `Demo draws a random target of integers in [0, max], encodes it, and
verifies that the closed form replays the window exactly. The generator is
deterministic: the same seed always produces the same target, and seed 0
means the fixed default seed.`,
		RunE: runDemo,
	}
)

func init() {
	demoCmd.Flags().IntVarP(&demoLength, "length", "l", 8, "window length")
	demoCmd.Flags().IntVar(&demoMax, "max", 0, "largest target value (0 means the window length)")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 0, "rng seed (0 uses the fixed default)")
	demoCmd.Flags().BoolVar(&demoTrig, "trig", false, "cross-check through the literal cosine products")
}

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the seed policy: seed==0 means defaultRNGSeed,
// anything else is used verbatim.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// rngFromSeed returns a deterministic generator under the seed policy.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoLength < 1 {
		return errors.New("--length must be at least 1")
	}
	maxValue := demoMax
	if maxValue <= 0 {
		maxValue = demoLength
	}

	seed := effectiveSeed(demoSeed)
	rng := rngFromSeed(seed)
	target := make([]int, demoLength)
	for i := range target {
		target[i] = rng.Intn(maxValue + 1)
	}
	slog.Debug("random target drawn", "seed", seed, "length", demoLength, "max", maxValue)

	f, err := buildForm(nil, target, demoLength)
	if err != nil {
		return err
	}
	window, err := f.Evaluate(demoLength)
	if err != nil {
		return err
	}
	ok, err := f.Check(target, demoLength)
	if err != nil {
		return err
	}

	printReport(fmt.Sprintf("demo (seed %d)", seed), f, target, window, true, ok)

	if demoTrig {
		trig, trigErr := f.EvaluateTrig(demoLength, closedform.DefaultTrigOptions())
		if trigErr != nil {
			return trigErr
		}
		verdict := styles.OK.Render("agrees")
		if !slices.Equal(trig, window) {
			verdict = styles.Fail.Render("diverges")
		}
		fmt.Println("  trig  :", verdict)
	}

	if !ok {
		return errors.New("verification failed: the form does not reproduce the target")
	}

	return nil
}
