// SPDX-License-Identifier: MIT

// Package closedform assembles operation matrices into closed-form periodic
// functions, evaluates them exactly, verifies them against the original
// sequence, and renders them as text.
//
// 🚀 What is a closed form here?
//
//	An immutable Form: an integer constant plus an ordered sum of unit
//	pulses Sign·p(Scale, n−Shift). Each matrix row from the decomposer
//	becomes a handful of pulses at one shared scale alpha, chosen so a
//	single period of p(alpha, ·) covers the whole window. Encoding
//	[4, 2, 0, 4] yields
//
//		f(n) = 4·p(3, n) + 2·p(3, n−1) + 4·p(3, n−3)
//
//	and f over n = 0..3 is exactly 4, 2, 0, 4 — then the window repeats
//	with period 8, forever.
//
// ✨ Key features:
//   - Calculate: matrix → Form, one scale per window, origin handled by
//     base-term override (no double counting at n=0)
//   - Evaluate: pure integer arithmetic, exact by construction
//   - EvaluateTrig: the same window through literal float64 cosine
//     products, with a drift tolerance — the demonstration path
//   - Check: exact, order-sensitive verification over the full window
//   - PFunc: decompose → assemble → add onto a base, in one call
//   - String / TrigString / LaTeX: collected p-notation, expanded cosine
//     products, LaTeX markup
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqform/closedform"
//
//	f, err := closedform.PFunc(nil, closedform.Form{}, []int{4, 2, 0, 4}, 4)
//	if err != nil {
//	  // handle decompose/indicator validation errors
//	}
//	seq, _ := f.Evaluate(4)            // [4 2 0 4]
//	ok, _ := f.Check([]int{4, 2, 0, 4}, 4) // true
//	fmt.Println(f)                     // 4*p(3, n) + 2*p(3, n - 1) + 4*p(3, n - 3)
//
// Performance:
//
//   - Calculate: O(rounds·length) time and terms
//   - Evaluate:  O(length·terms) time — every pulse is an O(1) mask test
//   - Check:     O(length·terms) time
//
// Errors:
//   - ErrNonPositiveLength, ErrBadSign, ErrBadTolerance, ErrInexact — this
//     package's own validation.
//   - indicator.* and decompose.* sentinels pass through Calculate, Check
//     and PFunc unchanged.
//
// The zero Form is the constant 0 and is ready to use; Forms are immutable
// and safe to share across goroutines.
package closedform
