// SPDX-License-Identifier: MIT

// Package closedform: sentinel errors for assembly, evaluation and
// verification. Errors raised by the building blocks keep their own
// prefixes: indicator.* scale/window errors and decompose.* matrix/padding
// errors pass through Calculate, Check and PFunc unchanged, so errors.Is
// against the origin package always works.
package closedform

import (
	"errors"
)

// Sentinel errors for closed-form operations.
var (
	// ErrNonPositiveLength indicates an evaluation window below 1 index.
	ErrNonPositiveLength = errors.New("closedform: length must be at least 1")
	// ErrBadSign indicates a hand-built Term with a sign other than -1 or +1.
	ErrBadSign = errors.New("closedform: term sign must be -1 or +1")
	// ErrBadTolerance indicates a negative TrigOptions.Tol.
	ErrBadTolerance = errors.New("closedform: tolerance must be non-negative")
	// ErrInexact indicates the trigonometric evaluation drifted further from
	// an integer than the configured tolerance at some window index.
	ErrInexact = errors.New("closedform: trigonometric evaluation drifted beyond tolerance")
)
