// SPDX-License-Identifier: MIT

package closedform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqform/indicator"
)

// TrigOptions configures the demonstration evaluator that sums the literal
// cosine products in float64 instead of the exact integer kernel.
//
// Fields:
//   - Tol — largest residue |value − round(value)| accepted at any window
//     index before EvaluateTrig reports ErrInexact. Zero demands bit-exact
//     floats; DefaultTrigOptions picks a tolerance far above accumulated
//     cos² rounding noise and far below 1/2.
type TrigOptions struct {
	Tol float64
}

// DefaultTrigOptions returns a TrigOptions with default settings: Tol=1e-6.
func DefaultTrigOptions() TrigOptions {
	return TrigOptions{Tol: 1e-6}
}

// Evaluate computes the sequence the Form encodes: the value at every
// integer n from 0 to length−1, in order. A KindConstant Form broadcasts
// its constant over the whole window; a KindTerms Form sums
// Sign·p(Scale, n−Shift) over its terms plus the constant.
//
// The arithmetic is pure integers end to end — each pulse is an exact mask
// test — so the result can never suffer float rounding.
//
// Returns ErrNonPositiveLength when length < 1.
//
// Complexity: Time O(length·terms), Memory O(length).
func (f Form) Evaluate(length int) ([]int, error) {
	if length < 1 {
		return nil, ErrNonPositiveLength
	}

	out := make([]int, length)
	if f.Kind() == KindConstant {
		for n := range out {
			out[n] = f.constant
		}

		return out, nil
	}

	for n := 0; n < length; n++ {
		v := f.constant
		for _, t := range f.terms {
			v += t.Sign * indicator.At(t.Scale, n-t.Shift)
		}
		out[n] = v
	}

	return out, nil
}

// EvaluateTrig computes the same window as Evaluate but through the literal
// cosine products, rounding each float64 sum to the nearest integer. It
// exists to demonstrate that the trigonometric closed form genuinely
// reproduces the sequence; exact consumers should call Evaluate.
//
// Returns ErrBadTolerance for a negative opts.Tol, ErrNonPositiveLength for
// length < 1, and ErrInexact (wrapped with the offending index) when a sum
// lands further from an integer than opts.Tol.
//
// Complexity: Time O(length·terms·2^scale), Memory O(length).
func (f Form) EvaluateTrig(length int, opts TrigOptions) ([]int, error) {
	if opts.Tol < 0 {
		return nil, ErrBadTolerance
	}
	if length < 1 {
		return nil, ErrNonPositiveLength
	}

	out := make([]int, length)
	for n := 0; n < length; n++ {
		x := f.TrigAt(float64(n))
		r := math.Round(x)
		if math.Abs(x-r) > opts.Tol {
			return nil, fmt.Errorf("closedform: trig evaluation at n=%d residue %g: %w",
				n, math.Abs(x-r), ErrInexact)
		}
		out[n] = int(r)
	}

	return out, nil
}

// TrigAt evaluates the Form at a real argument x through the literal
// cosine products: constant + Σ Sign·Π cos²((x−Shift)·π/2^q). On integer x
// it agrees with Evaluate up to float64 rounding; between integers it is
// the smooth interpolation the plotting surface draws.
//
// Complexity: Time O(terms·2^scale), Memory O(1).
func (f Form) TrigAt(x float64) float64 {
	v := float64(f.constant)
	for _, t := range f.terms {
		v += float64(t.Sign) * indicator.TrigAt(t.Scale, x-float64(t.Shift))
	}

	return v
}
