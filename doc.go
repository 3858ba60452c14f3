// Package seqform turns finite sequences of non-negative integers into
// closed-form periodic functions — one formula, evaluated at n = 0,1,2,…,
// reproduces your sequence exactly.
//
// 🚀 What is seqform?
//
//	A small, deterministic library built around one identity: the product
//	of squared cosines
//
//		p(a, n) = Π_{q=1..2^(a-1)-1} cos²(n·π / 2^q)
//
//	equals 1 exactly when 2^(2^(a-1)-1) divides n, and 0 on every other
//	integer. Weighted, shifted copies of p act as one-hot masks over a
//	window of indices, so any finite integer sequence becomes one sum:
//		• indicator/  — the p(a, n) family: exact and trigonometric forms
//		• decompose/  — greedy unit-step decomposition of a target sequence
//		• closedform/ — assembly, evaluation, verification, rendering
//		• scenario/   — YAML scenario files for the demo driver
//		• seqplot/    — continuous interpolation plots (gonum/plot)
//		• cmd/seqform — the demonstration CLI
//
// ✨ Why choose seqform?
//
//   - Exact by construction – evaluation is pure integer arithmetic; the
//     cosine products exist to be admired (and plotted), not trusted
//   - Deterministic – no global state, no hidden randomness; the demo
//     driver seeds its generator explicitly
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure pipeline – immutable values in, immutable values out; safe for
//     concurrent use without coordination
//
// Quick example, the sequence 4, 2, 0, 4:
//
//	f(n) = 4·p(3, n) + 2·p(3, n−1) + 4·p(3, n−3)
//
//	f(0)=4  f(1)=2  f(2)=0  f(3)=4   — and then it repeats, forever.
//
// Dive into README.md for the full walk-through, or run
//
//	go run github.com/katalvlaran/seqform/cmd/seqform demo
package seqform
