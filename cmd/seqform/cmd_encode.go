// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqform/closedform"
	"github.com/katalvlaran/seqform/indicator"
	"github.com/katalvlaran/seqform/scenario"
)

var (
	encodeTarget   string
	encodeStart    string
	encodeLength   int
	encodeScenario string
	encodeCheck    bool
	encodeTrig     bool
	encodeLaTeX    bool

	encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode a target window as one closed form",
		Long: `Encode deduces the closed form for an explicit target window, given
either as a comma-separated flag or as a YAML scenario file. With --start
the encoding extends a prior state instead of building from zeros.

The command prints the formula, the replayed window, and the verification
verdict; a failed verification is a non-zero exit.`,
		RunE: runEncode,
	}
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeTarget, "target", "t", "",
		`target window, comma-separated (e.g. "4,2,0,4")`)
	encodeCmd.Flags().StringVar(&encodeStart, "start", "",
		"prior state to extend, comma-separated")
	encodeCmd.Flags().IntVarP(&encodeLength, "length", "l", 0,
		"window length (0 derives it from the target)")
	encodeCmd.Flags().StringVarP(&encodeScenario, "scenario", "s", "",
		"YAML scenario file instead of flags")
	encodeCmd.Flags().BoolVar(&encodeCheck, "check", true,
		"verify the form against the target")
	encodeCmd.Flags().BoolVar(&encodeTrig, "trig", false,
		"also print the expanded cosine form")
	encodeCmd.Flags().BoolVar(&encodeLaTeX, "latex", false,
		"also print the LaTeX form")
	encodeCmd.MarkFlagsMutuallyExclusive("target", "scenario")
}

func runEncode(cmd *cobra.Command, args []string) error {
	name, start, target, length, err := resolveWindow(encodeScenario, encodeTarget, encodeStart, encodeLength)
	if err != nil {
		return err
	}

	f, err := buildForm(start, target, length)
	if err != nil {
		return err
	}
	window, err := f.Evaluate(length)
	if err != nil {
		return err
	}

	ok := false
	if encodeCheck {
		if ok, err = f.Check(target, length); err != nil {
			return err
		}
	}

	printReport(name, f, target, window, encodeCheck, ok)
	if encodeTrig {
		fmt.Println("  trig  =", styles.Muted.Render(f.TrigString()))
	}
	if encodeLaTeX {
		fmt.Println("  latex =", styles.Muted.Render(f.LaTeX()))
	}

	if encodeCheck && !ok {
		return errors.New("verification failed: the form does not reproduce the target")
	}

	return nil
}

// resolveWindow turns either the explicit flag values or a scenario file
// into run inputs: display name, start state, target, window length.
func resolveWindow(scenarioPath, targetCSV, startCSV string, length int) (string, []int, []int, int, error) {
	if scenarioPath != "" {
		s, err := scenario.Load(scenarioPath)
		if err != nil {
			return "", nil, nil, 0, err
		}

		return s.Name, s.Start, s.Target, s.Length, nil
	}

	target, err := parseInts(targetCSV)
	if err != nil {
		return "", nil, nil, 0, fmt.Errorf("--target: %w", err)
	}
	if len(target) == 0 {
		return "", nil, nil, 0, errors.New("one of --target or --scenario is required")
	}
	start, err := parseInts(startCSV)
	if err != nil {
		return "", nil, nil, 0, fmt.Errorf("--start: %w", err)
	}
	if length == 0 {
		length = len(target)
	}

	return fmt.Sprintf("target %v", target), start, target, length, nil
}

// buildForm runs the pipeline: a base form covering the start state, then
// the extension to the target on top of it.
func buildForm(start, target []int, length int) (closedform.Form, error) {
	base := closedform.Form{}
	var err error
	if len(start) > 0 {
		if base, err = closedform.PFunc(nil, closedform.Form{}, start, length); err != nil {
			return closedform.Form{}, fmt.Errorf("base form: %w", err)
		}
		slog.Debug("base form built", "start", start, "terms", len(base.Terms()))
	}

	f, err := closedform.PFunc(start, base, target, length)
	if err != nil {
		return closedform.Form{}, err
	}

	if alpha, scaleErr := indicator.ScaleFor(length); scaleErr == nil {
		slog.Debug("form assembled",
			"alpha", alpha, "period", indicator.Period(alpha), "terms", len(f.Terms()))
	}

	return f, nil
}

// parseInts parses a comma-separated integer list; empty input is an
// empty list.
func parseInts(csv string) ([]int, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}

	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", p)
		}
		out = append(out, v)
	}

	return out, nil
}
