// SPDX-License-Identifier: MIT

package decompose

// Deduce — greedy unit-step decomposition
//
// Description:
//
//	Deduce walks an accumulator from start toward target, one unit per
//	position per round, recording each round as a Step of {-1, 0, +1}.
//	Replaying the resulting Matrix over start reproduces target exactly,
//	which is what the closed-form assembler downstream relies on.
//
// Algorithm Outline:
//  1. Validate length ≥ 1. Left-pad start and target with leading zeros to
//     exactly length elements; longer inputs are rejected, never truncated.
//  2. Reject negative entries: the walk supports non-negative,
//     monotonically-approached targets only (see doc.go).
//  3. Until the accumulator equals target: emit one Step holding
//     sign(target[j] − acc[j]) at every position, apply it to the
//     accumulator, append it to the Matrix.
//  4. Every differing position moves one unit closer each round, so the
//     loop terminates after exactly max_j |start[j] − target[j]| rounds.
//
// Complexity:
//
//	Time   = O(rounds·length), rounds = max_j |start[j] − target[j]|
//	Memory = O(rounds·length)
//
// Errors:
//   - ErrNonPositiveLength — length < 1.
//   - ErrSequenceTooLong   — an input longer than length.
//   - ErrNegativeValue     — a negative entry in start or target.
//   - ErrNonConvergence    — a positive Options.MaxRounds below the derived
//     bound was exhausted before the accumulator reached the target.

// Deduce decomposes the gap between start and target into a Matrix of unit
// Steps over a window of length positions.
// Returns (matrix, error); the matrix is empty when start already equals
// target after padding.
//
// Example:
//
//	ops, err := decompose.Deduce(nil, []int{4, 2, 0, 4}, 4, decompose.DefaultOptions())
//	// ops replayed over [0,0,0,0] yields [4,2,0,4]
func Deduce(start, target []int, length int, opts Options) (Matrix, error) {
	if length < 1 {
		return nil, ErrNonPositiveLength
	}

	// Pad both inputs to the window, then lock in the non-negative domain.
	acc, err := PadTo(start, length)
	if err != nil {
		return nil, err
	}
	goal, err := PadTo(target, length)
	if err != nil {
		return nil, err
	}
	if err = checkNonNegative(acc); err != nil {
		return nil, err
	}
	if err = checkNonNegative(goal); err != nil {
		return nil, err
	}

	// Round cap: caller override or the exact derived bound.
	limit := opts.MaxRounds
	if limit <= 0 {
		limit = maxGap(acc, goal)
	}

	// Walk the accumulator toward the goal.
	var ops Matrix
	for rounds := 0; !equalSeq(acc, goal); rounds++ {
		if rounds >= limit {
			return nil, ErrNonConvergence
		}
		step := make(Step, length)
		for j := 0; j < length; j++ {
			switch {
			case acc[j] < goal[j]:
				step[j] = 1
				acc[j]++
			case acc[j] > goal[j]:
				step[j] = -1
				acc[j]--
			}
		}
		ops = append(ops, step)
	}

	return ops, nil
}

// Apply replays the Matrix over start and returns the resulting sequence.
// start is left-padded with leading zeros to the Matrix width first; an
// empty Matrix returns a copy of start unchanged.
//
// Returns ErrSequenceTooLong when start is wider than the Matrix,
// ErrRaggedMatrix or ErrBadStep when the Matrix itself is malformed.
//
// Complexity: Time O(rounds·width), Memory O(width).
func (m Matrix) Apply(start []int) ([]int, error) {
	if len(m) == 0 {
		out := make([]int, len(start))
		copy(out, start)

		return out, nil
	}

	width := m.Width()
	if err := m.Validate(width); err != nil {
		return nil, err
	}
	acc, err := PadTo(start, width)
	if err != nil {
		return nil, err
	}
	for _, step := range m {
		for j, v := range step {
			acc[j] += v
		}
	}

	return acc, nil
}

// PadTo returns a fresh copy of src left-padded with leading zeros to
// exactly length elements. The input is never mutated.
//
// Returns ErrNonPositiveLength when length < 1 and ErrSequenceTooLong when
// src already has more than length elements; padding never truncates.
//
// Complexity: Time O(length), Memory O(length).
func PadTo(src []int, length int) ([]int, error) {
	if length < 1 {
		return nil, ErrNonPositiveLength
	}
	if len(src) > length {
		return nil, ErrSequenceTooLong
	}

	out := make([]int, length)
	copy(out[length-len(src):], src)

	return out, nil
}

// checkNonNegative returns ErrNegativeValue on the first negative entry.
func checkNonNegative(seq []int) error {
	for _, v := range seq {
		if v < 0 {
			return ErrNegativeValue
		}
	}

	return nil
}

// maxGap returns max_j |a[j]-b[j]| for equal-length slices.
func maxGap(a, b []int) int {
	gap := 0
	for j := range a {
		d := a[j] - b[j]
		if d < 0 {
			d = -d
		}
		if d > gap {
			gap = d
		}
	}

	return gap
}

// equalSeq reports element-wise equality of equal-length slices.
func equalSeq(a, b []int) bool {
	for j := range a {
		if a[j] != b[j] {
			return false
		}
	}

	return true
}
