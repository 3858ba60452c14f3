// SPDX-License-Identifier: MIT

// Package decompose reduces the gap between two integer sequences to a
// matrix of unit operations — the raw material the closed-form assembler
// turns into one periodic formula.
//
// 🚀 What is a decomposition?
//
//	Given a start sequence (usually all zeros) and a non-negative target,
//	Deduce walks every position one unit per round toward its target value
//	and records each round as a Step of {-1, 0, +1}:
//
//		start  [0 0 0 0]          target [4 2 0 4]
//
//		round 1  [ 1  1  0  1]    round 3  [ 1  0  0  1]
//		round 2  [ 1  1  0  1]    round 4  [ 1  0  0  1]
//
//	Replaying the four rows over the start reproduces the target exactly,
//	and the row count equals the largest single-position gap.
//
// ✨ Key features:
//   - exact termination: precisely max_j |start[j]−target[j]| rounds
//   - left-padding: shorter inputs gain leading zeros, longer inputs are
//     rejected (fail fast, never truncate)
//   - Matrix.Apply replay helper to assert the round-trip in tests
//   - optional round cap via Options.MaxRounds
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqform/decompose"
//
//	ops, err := decompose.Deduce(nil, []int{4, 2, 0, 4}, 4, decompose.DefaultOptions())
//	if err != nil {
//	  // handle ErrNonPositiveLength, ErrSequenceTooLong, ErrNegativeValue
//	}
//	got, _ := ops.Apply(nil) // [4 2 0 4]
//
// Performance:
//
//   - Time:   O(rounds·length), rounds = max_j |start[j]−target[j]|
//   - Memory: O(rounds·length)
//
// Restriction:
//
//	The walk supports non-negative, monotonically-approached targets only —
//	the intended use always starts from zeros. Negative entries anywhere are
//	rejected with ErrNegativeValue rather than silently reinterpreted; lifting
//	the restriction would change both the padding rule and the termination
//	bound.
package decompose
