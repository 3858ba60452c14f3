// SPDX-License-Identifier: MIT

// Package indicator implements the periodic indicator family p(a, n):
// products of squared cosines that equal exactly 1 on multiples of a power
// of two and exactly 0 on every other integer.
//
// 🚀 What is p(a, n)?
//
//	For a scale a ≥ 1 define the depth d = 2^(a-1) − 1 and
//
//		p(a, n) = Π_{q=1..d} cos²(n·π / 2^q)
//
//	The q-th factor vanishes precisely on odd multiples of 2^(q-1), so the
//	product is 1 when 2^d divides n and 0 on every other integer — a
//	periodic one-hot detector with period 2^d:
//	  • a=1 — empty product, the constant 1 (period 1)
//	  • a=2 — cos²(nπ/2), lights up on even n (period 2)
//	  • a=3 — three factors, lights up on multiples of 8 (period 8)
//	  • a=4 — seven factors, lights up on multiples of 128 (period 128)
//
// ✨ Key features:
//   - At(a, n): exact integer evaluation — one mask test, no floats involved
//   - TrigAt(a, x): the literal cosine product over real x, for plotting and
//     for cross-checking the closed form numerically
//   - ScaleFor(length): smallest scale whose period covers a window, computed
//     with integer bit arithmetic (math/bits), never floating logs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqform/indicator"
//
//	a, err := indicator.ScaleFor(4) // a = 3, period 8 ≥ 4
//	if err != nil {
//	  // handle ErrNonPositiveLength or ErrLengthTooLarge
//	}
//	indicator.At(a, 0) // 1
//	indicator.At(a, 3) // 0
//	indicator.At(a, 8) // 1 — the next period begins
//
// Performance:
//
//   - At:       Time O(1),    Memory O(1)
//   - TrigAt:   Time O(2^a),  Memory O(1)
//   - ScaleFor: Time O(1),    Memory O(1)
//
// Errors:
//   - ErrNonPositiveLength — ScaleFor(length) with length < 1.
//   - ErrLengthTooLarge    — window longer than MaxWindow (2^31) indices.
//   - ErrScaleTooSmall / ErrScaleTooLarge — CheckScale on a data-derived scale.
//
// At, TrigAt, Depth and Period panic on a scale outside [MinScale, MaxScale]:
// a scale that did not come from ScaleFor or pass CheckScale is a programmer
// error, not a data error.
package indicator
