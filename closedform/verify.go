// SPDX-License-Identifier: MIT

package closedform

import (
	"github.com/katalvlaran/seqform/decompose"
)

// Check verifies that the Form reproduces original over a window of length
// indices: it evaluates exactly, left-pads original with leading zeros to
// length (the same rule the decomposer applies), and compares element-wise,
// order-sensitive, over the full window. No tolerance, no partial match.
//
// Check is read-only and deterministic: calling it any number of times
// returns the same verdict and never mutates the Form.
//
// Returns ErrNonPositiveLength when length < 1 and
// decompose.ErrSequenceTooLong when original has more than length entries.
//
// Complexity: Time O(length·terms), Memory O(length).
func (f Form) Check(original []int, length int) (bool, error) {
	got, err := f.Evaluate(length)
	if err != nil {
		return false, err
	}
	want, err := decompose.PadTo(original, length)
	if err != nil {
		return false, err
	}

	for n := range got {
		if got[n] != want[n] {
			return false, nil
		}
	}

	return true, nil
}
