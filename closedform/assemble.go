// SPDX-License-Identifier: MIT

package closedform

import (
	"github.com/katalvlaran/seqform/decompose"
	"github.com/katalvlaran/seqform/indicator"
)

// Calculate — operation matrix → closed-form sum
//
// Description:
//
//	Calculate turns a Matrix of unit operations into a single closed-form
//	Form. One scale alpha = ScaleFor(length) covers the whole window, and
//	every matrix row becomes a handful of ±p(alpha, n−j) pulses. Because
//	p(alpha, ·) fires at n=0 on its own, position 0 must override the
//	row's base term instead of adding to it.
//
// Term rules, per row:
//   - the base term defaults to +p(alpha, n);
//   - step +1 at j≠0 — append +p(alpha, n−j);
//   - step −1 at j≠0 — append −p(alpha, n−j);
//   - step −1 at j=0 — the base term becomes −p(alpha, n) (sign flip at
//     the origin, overriding the default);
//   - step  0 at j=0 — the base term becomes p(alpha+1, n+1): a
//     denser-period pulse shifted left by one. Its first firing index is
//     Period(alpha+1)−1 ≥ 2·Period(alpha)−1, past the whole window, so the
//     row contributes nothing at the origin without colliding with the
//     +1/−1 cases.
//
// Complexity:
//
//	Time   = O(rounds·length)
//	Memory = O(rounds·length) terms
//
// Errors:
//   - indicator.ErrNonPositiveLength / indicator.ErrLengthTooLarge — from
//     scale selection, surfaced as-is.
//   - decompose.ErrRaggedMatrix / decompose.ErrBadStep — a row width other
//     than length, or an entry outside {-1, 0, +1}.

// Calculate assembles the Matrix into a Form over a window of length
// indices. An empty Matrix yields the constant-0 Form (after length
// validation); otherwise the result carries one base term per row plus one
// shifted term per non-zero off-origin step.
//
// Example:
//
//	ops, _ := decompose.Deduce(nil, []int{4, 2, 0, 4}, 4, decompose.DefaultOptions())
//	f, err := closedform.Calculate(ops, 4)
//	// f.String() == "4*p(3, n) + 2*p(3, n - 1) + 4*p(3, n - 3)"
func Calculate(ops decompose.Matrix, length int) (Form, error) {
	// One scale covers the whole window; this also validates length.
	alpha, err := indicator.ScaleFor(length)
	if err != nil {
		return Form{}, err
	}
	if len(ops) == 0 {
		return Form{}, nil
	}
	if err = ops.Validate(length); err != nil {
		return Form{}, err
	}

	// ScaleFor never exceeds MaxScale-1, so the companion scale is legal.
	blank := Term{Sign: 1, Shift: -1, Scale: alpha + 1}

	terms := make([]Term, 0, len(ops)*2)
	for _, step := range ops {
		base := Term{Sign: 1, Shift: 0, Scale: alpha}
		var shifted []Term
		for j, v := range step {
			if j == 0 {
				switch v {
				case -1:
					base.Sign = -1
				case 0:
					base = blank
				}

				continue
			}
			switch v {
			case 1:
				shifted = append(shifted, Term{Sign: 1, Shift: j, Scale: alpha})
			case -1:
				shifted = append(shifted, Term{Sign: -1, Shift: j, Scale: alpha})
			}
		}
		terms = append(terms, base)
		terms = append(terms, shifted...)
	}

	return Form{terms: terms}, nil
}
