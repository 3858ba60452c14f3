// SPDX-License-Identifier: MIT

// Package seqplot renders a closed form next to the window it encodes:
// the smooth cos²-product interpolation as a curve, the target sequence
// as points on the integer grid.
//
// The picture is the visual counterpart of closedform.Check — where the
// curve passes through a point, the formula reproduces that sample.
//
// ⚙️ Usage:
//
//	f, _ := closedform.PFunc(nil, closedform.Form{}, []int{4, 2, 0, 4}, 4)
//	err := seqplot.Render(f, []int{4, 2, 0, 4}, 4, "pulse.png", seqplot.DefaultOptions())
//
// The output format follows the file extension, as gonum/plot resolves it
// (.png, .svg, .pdf, ...).
package seqplot
