// SPDX-License-Identifier: MIT

// Package decompose defines core types, options, and sentinel errors
// for the decompose subpackage of github.com/katalvlaran/seqform.
package decompose

import (
	"errors"
)

// Sentinel errors for decomposition operations.
var (
	// ErrNonPositiveLength indicates a requested window length below 1.
	ErrNonPositiveLength = errors.New("decompose: length must be at least 1")
	// ErrSequenceTooLong indicates an input longer than the requested length.
	ErrSequenceTooLong = errors.New("decompose: sequence is longer than the requested length")
	// ErrNegativeValue indicates a negative entry in start or target.
	ErrNegativeValue = errors.New("decompose: sequence values must be non-negative")
	// ErrNonConvergence indicates the walk exceeded its round cap.
	ErrNonConvergence = errors.New("decompose: walk exceeded the round cap before reaching the target")
	// ErrRaggedMatrix indicates operation rows of differing widths.
	ErrRaggedMatrix = errors.New("decompose: all operation rows must have the same width")
	// ErrBadStep indicates an operation entry outside {-1, 0, +1}.
	ErrBadStep = errors.New("decompose: operation entries must be -1, 0 or +1")
)

// Step is one round of unit operations: one entry per window position,
// each -1, 0 or +1.
type Step []int

// Matrix is an ordered list of Steps. Replaying every Step over the start
// sequence reproduces the target; Deduce emits exactly
// max_j |start[j]-target[j]| rows.
type Matrix []Step

// Options contains tunable parameters for the decomposition walk.
type Options struct {
	// MaxRounds caps the number of rows Deduce may emit. Zero means the
	// derived bound max_j |start[j]-target[j]|, which the greedy walk meets
	// exactly; a positive cap below that bound aborts with ErrNonConvergence.
	MaxRounds int
}

// DefaultOptions returns an Options with default settings:
// MaxRounds=0 (derived bound).
func DefaultOptions() Options {
	return Options{MaxRounds: 0}
}

// Rounds returns the number of Steps in the Matrix.
func (m Matrix) Rounds() int { return len(m) }

// Width returns the window width the Matrix operates on: the length of its
// first row, or 0 for an empty Matrix.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Validate checks that every row has exactly width entries and every entry
// is -1, 0 or +1. Returns ErrRaggedMatrix or ErrBadStep on the first
// violation, nil otherwise.
//
// Complexity: Time O(rounds·width), Memory O(1).
func (m Matrix) Validate(width int) error {
	for _, step := range m {
		if len(step) != width {
			return ErrRaggedMatrix
		}
		for _, v := range step {
			if v < -1 || v > 1 {
				return ErrBadStep
			}
		}
	}

	return nil
}
