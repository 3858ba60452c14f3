// SPDX-License-Identifier: MIT

// Package closedform: the Form value type and its structural accessors.
// A Form is immutable once built: constructors validate, accessors copy,
// and Add returns a fresh value, so Forms may be shared across goroutines
// without coordination.
package closedform

import (
	"github.com/katalvlaran/seqform/indicator"
)

// Kind discriminates the structural shape of a Form.
type Kind int

const (
	// KindConstant marks a Form with no indicator terms: a plain integer,
	// broadcast over whatever window it is evaluated on.
	KindConstant Kind = iota

	// KindTerms marks a Form carrying at least one indicator term.
	KindTerms
)

// Term is one signed, shifted unit pulse: Sign·p(Scale, n−Shift).
// A negative Shift moves the argument right: Shift=-1 means p(Scale, n+1).
type Term struct {
	// Sign is +1 or -1.
	Sign int
	// Shift is subtracted from the evaluation index n.
	Shift int
	// Scale selects the indicator family member, within
	// [indicator.MinScale, indicator.MaxScale].
	Scale int
}

// Form is an immutable closed-form function of one integer variable: an
// integer constant plus an ordered sum of unit Terms. The zero Form is the
// constant 0. Forms built by Calculate, New or Add always hold valid terms,
// which is what lets evaluation run without per-call validation.
type Form struct {
	constant int
	terms    []Term
}

// NewConstant returns the Form that is the plain integer c.
func NewConstant(c int) Form {
	return Form{constant: c}
}

// New builds a Form from a constant and explicit terms, validating each
// term's sign and scale. The terms slice is copied, never aliased.
//
// Returns ErrBadSign for a sign outside {-1, +1} and the indicator scale
// errors for a scale outside the legal domain.
//
// Complexity: Time O(terms), Memory O(terms).
func New(constant int, terms ...Term) (Form, error) {
	for _, t := range terms {
		if t.Sign != 1 && t.Sign != -1 {
			return Form{}, ErrBadSign
		}
		if err := indicator.CheckScale(t.Scale); err != nil {
			return Form{}, err
		}
	}

	f := Form{constant: constant}
	if len(terms) > 0 {
		f.terms = make([]Term, len(terms))
		copy(f.terms, terms)
	}

	return f, nil
}

// Kind reports the structural shape: KindConstant when the term list is
// empty, KindTerms otherwise. No runtime type inspection is ever needed.
func (f Form) Kind() Kind {
	if len(f.terms) == 0 {
		return KindConstant
	}

	return KindTerms
}

// Constant returns the integer constant component.
func (f Form) Constant() int { return f.constant }

// Terms returns a fresh copy of the unit-term list, in assembly order.
func (f Form) Terms() []Term {
	if len(f.terms) == 0 {
		return nil
	}
	out := make([]Term, len(f.terms))
	copy(out, f.terms)

	return out
}

// Add returns the sum of two Forms: constants added, term lists
// concatenated in order (f's terms first). Neither operand is mutated.
//
// Complexity: Time O(terms), Memory O(terms).
func (f Form) Add(g Form) Form {
	sum := Form{constant: f.constant + g.constant}
	if n := len(f.terms) + len(g.terms); n > 0 {
		sum.terms = make([]Term, 0, n)
		sum.terms = append(sum.terms, f.terms...)
		sum.terms = append(sum.terms, g.terms...)
	}

	return sum
}
