// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/seqform/closedform"
)

// Driver palette.
var (
	colorHeading = lipgloss.Color("#5F87FF") // periwinkle - run names
	colorFormula = lipgloss.Color("#AFD75F") // spring green - formulas
	colorOK      = lipgloss.Color("#2CD7C7") // teal - verification pass
	colorFail    = lipgloss.Color("#E74C3C") // red - failures and errors
	colorMuted   = lipgloss.Color("#6C7A89") // slate - secondary detail
)

// styles holds the pre-configured lipgloss styles for driver output.
var styles = struct {
	Heading lipgloss.Style
	Formula lipgloss.Style
	OK      lipgloss.Style
	Fail    lipgloss.Style
	Muted   lipgloss.Style
}{
	Heading: lipgloss.NewStyle().Bold(true).Foreground(colorHeading),
	Formula: lipgloss.NewStyle().Foreground(colorFormula),
	OK:      lipgloss.NewStyle().Bold(true).Foreground(colorOK),
	Fail:    lipgloss.NewStyle().Bold(true).Foreground(colorFail),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
}

// printReport writes the standard encoding report: run name, formula,
// replayed window, and the verification verdict when one was computed.
func printReport(name string, f closedform.Form, target, window []int, checked, ok bool) {
	fmt.Println(styles.Heading.Render(name))
	fmt.Printf("  target: %v\n", target)
	fmt.Printf("  f(n)  = %s\n", styles.Formula.Render(f.String()))
	fmt.Printf("  window: %v\n", window)
	if checked {
		verdict := styles.OK.Render("PASS")
		if !ok {
			verdict = styles.Fail.Render("FAIL")
		}
		fmt.Println("  check :", verdict)
	}
}
