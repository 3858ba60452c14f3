// SPDX-License-Identifier: MIT

// Package closedform: textual renderings of a Form. Three surfaces share
// one folding step: unit terms collect into weighted groups keyed by
// (scale, shift) in first-appearance order, then each surface formats the
// groups its own way — compact p-notation, expanded cosine products, or
// LaTeX markup.
package closedform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqform/indicator"
)

// group is one collected pulse: weight·p(scale, n−shift).
type group struct {
	scale, shift int
	weight       int
}

// collect folds the unit terms into weighted groups, preserving
// first-appearance order and dropping groups whose weights cancel to zero.
func (f Form) collect() []group {
	idx := make(map[[2]int]int, len(f.terms))
	groups := make([]group, 0, len(f.terms))
	for _, t := range f.terms {
		key := [2]int{t.Scale, t.Shift}
		if i, ok := idx[key]; ok {
			groups[i].weight += t.Sign

			continue
		}
		idx[key] = len(groups)
		groups = append(groups, group{scale: t.Scale, shift: t.Shift, weight: t.Sign})
	}

	out := groups[:0]
	for _, g := range groups {
		if g.weight != 0 {
			out = append(out, g)
		}
	}

	return out
}

// String renders the Form in collected p-notation, first-appearance order:
//
//	4*p(3, n) + 2*p(3, n - 1) + 4*p(3, n - 3)
//
// A constant Form renders as its integer; a fully canceled Form as "0".
func (f Form) String() string {
	groups := f.collect()
	var b strings.Builder
	if f.constant != 0 || len(groups) == 0 {
		b.WriteString(strconv.Itoa(f.constant))
	}
	for _, g := range groups {
		writeSigned(&b, g.weight, pAtom(g.scale, g.shift), "*")
	}

	return b.String()
}

// TrigString renders the Form with every pulse expanded into its literal
// squared-cosine product:
//
//	2*cos(pi*n/2)^2 + cos(pi*(n - 1)/2)^2
//
// The scale-1 pulse is the empty product, so its group renders as the bare
// weight.
func (f Form) TrigString() string {
	groups := f.collect()
	var b strings.Builder
	if f.constant != 0 || len(groups) == 0 {
		b.WriteString(strconv.Itoa(f.constant))
	}
	for _, g := range groups {
		writeSigned(&b, g.weight, trigAtom(g.scale, g.shift), "*")
	}

	return b.String()
}

// LaTeX renders the expanded trigonometric form as LaTeX markup, e.g.
//
//	2\,\cos^2\left(\frac{\pi n}{2}\right) + \cos^2\left(\frac{\pi (n - 1)}{2}\right)
func (f Form) LaTeX() string {
	groups := f.collect()
	var b strings.Builder
	if f.constant != 0 || len(groups) == 0 {
		b.WriteString(strconv.Itoa(f.constant))
	}
	for _, g := range groups {
		writeSigned(&b, g.weight, latexAtom(g.scale, g.shift), `\,`)
	}

	return b.String()
}

// writeSigned appends one weighted atom to the sum under the usual sign
// conventions: the leading group carries at most a bare minus, later groups
// join with " + " or " - ", a unit weight drops its coefficient, and an
// empty atom (the folded empty product) renders as the weight alone.
func writeSigned(b *strings.Builder, w int, atom, sep string) {
	switch {
	case b.Len() == 0 && w < 0:
		b.WriteByte('-')
		w = -w
	case b.Len() == 0:
		// leading positive group: no sign
	case w < 0:
		b.WriteString(" - ")
		w = -w
	default:
		b.WriteString(" + ")
	}

	if atom == "" {
		b.WriteString(strconv.Itoa(w))

		return
	}
	if w != 1 {
		b.WriteString(strconv.Itoa(w))
		b.WriteString(sep)
	}
	b.WriteString(atom)
}

// pAtom renders one collected pulse in p-notation: p(scale, arg).
func pAtom(scale, shift int) string {
	return fmt.Sprintf("p(%d, %s)", scale, argString(shift))
}

// argString renders the shifted argument: "n", "n - 3" or "n + 1".
func argString(shift int) string {
	switch {
	case shift == 0:
		return "n"
	case shift > 0:
		return fmt.Sprintf("n - %d", shift)
	default:
		return fmt.Sprintf("n + %d", -shift)
	}
}

// trigAtom expands one pulse into its squared-cosine product; the scale-1
// pulse yields "" so the caller can fold it to its coefficient.
func trigAtom(scale, shift int) string {
	depth := indicator.Depth(scale)
	if depth == 0 {
		return ""
	}

	arg := argString(shift)
	if shift != 0 {
		arg = "(" + arg + ")"
	}
	parts := make([]string, depth)
	den := uint64(2)
	for q := range parts {
		parts[q] = fmt.Sprintf("cos(pi*%s/%d)^2", arg, den)
		den *= 2
	}

	return strings.Join(parts, "*")
}

// latexAtom is trigAtom in LaTeX markup, factors juxtaposed.
func latexAtom(scale, shift int) string {
	depth := indicator.Depth(scale)
	if depth == 0 {
		return ""
	}

	arg := argString(shift)
	if shift != 0 {
		arg = "(" + arg + ")"
	}
	parts := make([]string, depth)
	den := uint64(2)
	for q := range parts {
		parts[q] = fmt.Sprintf(`\cos^2\left(\frac{\pi %s}{%d}\right)`, arg, den)
		den *= 2
	}

	return strings.Join(parts, "")
}
