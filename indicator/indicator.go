// SPDX-License-Identifier: MIT

// Package indicator: exact and trigonometric evaluation of the p(a, n)
// family plus scale selection. This file defines:
//   - the scale domain constants (MinScale, MaxScale, MaxWindow),
//   - sentinel errors and CheckScale validation,
//   - Depth / Period (the structure of a scale),
//   - At (exact 0/1 evaluation) and TrigAt (literal cosine product),
//   - ScaleFor (smallest scale covering a window).
package indicator

import (
	"errors"
	"math"
	"math/bits"
)

// Scale domain. Depth roughly doubles per scale step, so periods grow
// super-exponentially: MaxScale is the last scale whose divisibility test
// fits 64-bit arithmetic (Depth(7) = 63, Period(7) = 2^63).
const (
	// MinScale is the smallest legal scale; p(1, n) is the constant 1.
	MinScale = 1

	// MaxScale is the largest legal scale. Depth(MaxScale) = 63, so the
	// divisibility mask Period−1 = 2^63−1 still fits in 64 bits.
	MaxScale = 7

	// MaxWindow is the longest window ScaleFor accepts: Period(MaxScale−1).
	// Capping the derived scale at MaxScale−1 keeps the denser companion
	// scale a+1 inside the legal domain for assembly.
	MaxWindow = int64(1) << 31
)

// Sentinel errors for indicator operations.
var (
	// ErrScaleTooSmall indicates a scale below MinScale.
	ErrScaleTooSmall = errors.New("indicator: scale must be at least 1")
	// ErrScaleTooLarge indicates a scale above MaxScale.
	ErrScaleTooLarge = errors.New("indicator: scale exceeds 7, the 64-bit period bound")
	// ErrNonPositiveLength indicates a window length below 1.
	ErrNonPositiveLength = errors.New("indicator: window length must be at least 1")
	// ErrLengthTooLarge indicates a window longer than MaxWindow indices.
	ErrLengthTooLarge = errors.New("indicator: window length exceeds 2^31")
)

// panicScaleRange is the stable message for programmer-error scales.
const panicScaleRange = "indicator: scale out of range [1, 7]"

// CheckScale reports whether a is a legal scale: nil when
// MinScale ≤ a ≤ MaxScale, ErrScaleTooSmall or ErrScaleTooLarge otherwise.
// Use it to validate scales that arrive as data rather than from ScaleFor.
//
// Complexity: Time O(1), Memory O(1).
func CheckScale(a int) error {
	switch {
	case a < MinScale:
		return ErrScaleTooSmall
	case a > MaxScale:
		return ErrScaleTooLarge
	}

	return nil
}

// Depth returns the number of cosine factors at scale a: 2^(a-1) − 1.
// Depth(1)=0 (empty product), Depth(2)=1, Depth(3)=3, Depth(4)=7, Depth(7)=63.
//
// Panics on a scale outside [MinScale, MaxScale].
//
// Complexity: Time O(1), Memory O(1).
func Depth(a int) int {
	mustScale(a)

	return 1<<(a-1) - 1
}

// Period returns the fundamental period of p(a, ·): 2^Depth(a).
// Period(1)=1, Period(2)=2, Period(3)=8, Period(4)=128, Period(7)=2^63.
// The result is a uint64 because Period(MaxScale) exceeds MaxInt64.
//
// Panics on a scale outside [MinScale, MaxScale].
//
// Complexity: Time O(1), Memory O(1).
func Period(a int) uint64 {
	return uint64(1) << Depth(a)
}

// At evaluates p(a, n) exactly: 1 when Period(a) divides n, 0 otherwise.
// The test is a single mask over the two's-complement bits of n, so it is
// exact for every integer n — negative shifts included — and involves no
// floating point at all.
//
// Panics on a scale outside [MinScale, MaxScale].
//
// Complexity: Time O(1), Memory O(1).
func At(a, n int) int {
	// n is divisible by 2^d exactly when its d low bits are zero;
	// two's complement makes the same mask correct for negative n.
	mask := uint64(1)<<Depth(a) - 1
	if uint64(int64(n))&mask == 0 {
		return 1
	}

	return 0
}

// TrigAt evaluates the literal product Π_{q=1..Depth(a)} cos²(x·π/2^q) at a
// real argument x. On integer x it agrees with At up to float64 rounding;
// between integers it interpolates smoothly, which is what the plotting
// surface draws. The empty product (a=1) is the constant 1.
//
// Panics on a scale outside [MinScale, MaxScale].
//
// Complexity: Time O(2^a), Memory O(1).
func TrigAt(a int, x float64) float64 {
	depth := Depth(a)
	prod := 1.0
	den := 2.0
	for q := 1; q <= depth; q++ {
		c := math.Cos(x * math.Pi / den)
		prod *= c * c
		den *= 2
	}

	return prod
}

// ScaleFor returns the smallest scale a with Period(a) ≥ length, so that a
// window of that many indices fits inside one period. The closed form
//
//	a = ceil(log2(log2(length) + 1) + 1)
//
// is computed with integer bit arithmetic: k = ceil(log2(length)) is the
// bit length of length−1, and the smallest a with Depth(a) ≥ k is
// 1 + bits.Len(k). The derived scale never exceeds MaxScale−1, keeping the
// denser companion scale a+1 available to assembly.
//
// Returns ErrNonPositiveLength when length < 1 and ErrLengthTooLarge when
// length > MaxWindow.
//
// Complexity: Time O(1), Memory O(1).
func ScaleFor(length int) (int, error) {
	if length < 1 {
		return 0, ErrNonPositiveLength
	}
	if int64(length) > MaxWindow {
		return 0, ErrLengthTooLarge
	}
	if length == 1 {
		return MinScale, nil
	}

	k := bits.Len(uint(length - 1)) // ceil(log2(length)) for length ≥ 2

	return 1 + bits.Len(uint(k)), nil
}

// mustScale panics with a stable message when a lies outside the scale domain.
func mustScale(a int) {
	if a < MinScale || a > MaxScale {
		panic(panicScaleRange)
	}
}
