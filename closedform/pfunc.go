// SPDX-License-Identifier: MIT

package closedform

import (
	"github.com/katalvlaran/seqform/decompose"
)

// PFunc — the full pipeline in one call
//
// Description:
//
//	PFunc decomposes the gap between start and target, assembles the
//	resulting operation matrix, and adds the new terms onto base. With an
//	all-zero start and a zero base it builds the target's function from
//	scratch; with a previously built base it extends the encoding instead
//	of rebuilding it.
//
// Consistency contract:
//
//	The decomposer walks from start, so base and start must describe the
//	same state: base should evaluate to start over the window. PFunc does
//	NOT validate this — verifying the combined Form against the target via
//	Check is the caller's acceptance test.
//
// Errors: everything Deduce and Calculate raise, surfaced as-is.

// PFunc builds base + closed-form(target − start) over a window of length
// indices, using the default decomposition options.
//
// Example:
//
//	f, err := closedform.PFunc(nil, closedform.Form{}, []int{4, 2, 0, 4}, 4)
//	ok, _ := f.Check([]int{4, 2, 0, 4}, 4) // true
//
// Complexity: Time O(rounds·length), Memory O(rounds·length).
func PFunc(start []int, base Form, target []int, length int) (Form, error) {
	ops, err := decompose.Deduce(start, target, length, decompose.DefaultOptions())
	if err != nil {
		return Form{}, err
	}

	assembled, err := Calculate(ops, length)
	if err != nil {
		return Form{}, err
	}

	return base.Add(assembled), nil
}
