package closedform_test

import (
	"testing"

	"github.com/katalvlaran/seqform/closedform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustForm builds a Form from explicit terms, failing the test on
// constructor errors.
func mustForm(t *testing.T, constant int, terms ...closedform.Term) closedform.Form {
	t.Helper()

	f, err := closedform.New(constant, terms...)
	require.NoError(t, err)

	return f
}

// TestString_Canonical renders the worked scenario in collected
// p-notation, groups in first-appearance order.
func TestString_Canonical(t *testing.T) {
	f := canonicalForm(t)

	assert.Equal(t, "4*p(3, n) + 2*p(3, n - 1) + 4*p(3, n - 3)", f.String())
}

// TestString_ConstantForms renders KindConstant values as bare integers.
func TestString_ConstantForms(t *testing.T) {
	assert.Equal(t, "0", closedform.Form{}.String())
	assert.Equal(t, "7", closedform.NewConstant(7).String())
	assert.Equal(t, "-2", closedform.NewConstant(-2).String())
}

// TestString_SignConventions covers leading minus, minus joins, and the
// dropped unit coefficient.
func TestString_SignConventions(t *testing.T) {
	f := mustForm(t, 0, closedform.Term{Sign: -1, Shift: 0, Scale: 2})
	assert.Equal(t, "-p(2, n)", f.String())

	f = mustForm(t, 0,
		closedform.Term{Sign: -1, Shift: 0, Scale: 2},
		closedform.Term{Sign: -1, Shift: 0, Scale: 2},
		closedform.Term{Sign: -1, Shift: 0, Scale: 2})
	assert.Equal(t, "-3*p(2, n)", f.String())

	f = mustForm(t, 0,
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: -1, Shift: 1, Scale: 2})
	assert.Equal(t, "p(2, n) - p(2, n - 1)", f.String())

	f = mustForm(t, -2, closedform.Term{Sign: -1, Shift: 0, Scale: 2})
	assert.Equal(t, "-2 - p(2, n)", f.String())
}

// TestString_ShiftSpelling spells shifted arguments with the sign folded
// into the argument: a negative Shift moves the pulse left on paper.
func TestString_ShiftSpelling(t *testing.T) {
	f := mustForm(t, 0, closedform.Term{Sign: 1, Shift: -1, Scale: 3})
	assert.Equal(t, "p(3, n + 1)", f.String())

	f = mustForm(t, 0, closedform.Term{Sign: 1, Shift: 3, Scale: 3})
	assert.Equal(t, "p(3, n - 3)", f.String())
}

// TestString_Cancellation drops groups whose weights sum to zero; a fully
// canceled Form renders as "0".
func TestString_Cancellation(t *testing.T) {
	f := mustForm(t, 0,
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: -1, Shift: 0, Scale: 2})
	assert.Equal(t, "0", f.String())

	f = mustForm(t, 0,
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: -1, Shift: 0, Scale: 2},
		closedform.Term{Sign: 1, Shift: 1, Scale: 2})
	assert.Equal(t, "p(2, n - 1)", f.String())
}

// TestTrigString_ExpandsProducts expands each pulse into its literal
// squared-cosine product with halving frequencies.
func TestTrigString_ExpandsProducts(t *testing.T) {
	f := mustForm(t, 0,
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: 1, Shift: 1, Scale: 2})
	assert.Equal(t, "2*cos(pi*n/2)^2 + cos(pi*(n - 1)/2)^2", f.TrigString())

	f = mustForm(t, 0, closedform.Term{Sign: 1, Shift: 0, Scale: 3})
	assert.Equal(t, "cos(pi*n/2)^2*cos(pi*n/4)^2*cos(pi*n/8)^2", f.TrigString())

	f = mustForm(t, 0, closedform.Term{Sign: 1, Shift: 3, Scale: 3})
	assert.Equal(t,
		"cos(pi*(n - 3)/2)^2*cos(pi*(n - 3)/4)^2*cos(pi*(n - 3)/8)^2",
		f.TrigString())
}

// TestTrigString_ScaleOneFolds folds the empty product to its bare weight.
func TestTrigString_ScaleOneFolds(t *testing.T) {
	f := mustForm(t, 0,
		closedform.Term{Sign: 1, Shift: 0, Scale: 1},
		closedform.Term{Sign: 1, Shift: 0, Scale: 1},
		closedform.Term{Sign: 1, Shift: 0, Scale: 1},
		closedform.Term{Sign: 1, Shift: 0, Scale: 1},
		closedform.Term{Sign: 1, Shift: 0, Scale: 1})
	assert.Equal(t, "5*p(1, n)", f.String(), "p-notation keeps the pulse visible")
	assert.Equal(t, "5", f.TrigString(), "the empty product is the weight itself")
	assert.Equal(t, "5", f.LaTeX())
}

// TestLaTeX_Markup renders the expanded form in LaTeX, factors juxtaposed
// and the coefficient joined with a thin space.
func TestLaTeX_Markup(t *testing.T) {
	f := mustForm(t, 0,
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: 1, Shift: 1, Scale: 2})
	assert.Equal(t,
		`2\,\cos^2\left(\frac{\pi n}{2}\right) + \cos^2\left(\frac{\pi (n - 1)}{2}\right)`,
		f.LaTeX())

	f = mustForm(t, 0, closedform.Term{Sign: 1, Shift: 0, Scale: 3})
	assert.Equal(t,
		`\cos^2\left(\frac{\pi n}{2}\right)\cos^2\left(\frac{\pi n}{4}\right)\cos^2\left(\frac{\pi n}{8}\right)`,
		f.LaTeX())
}

// TestRender_AllSurfacesShareFolding puts one form through all three
// surfaces and expects identical group structure everywhere.
func TestRender_AllSurfacesShareFolding(t *testing.T) {
	f := mustForm(t, 1,
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: 1, Shift: 0, Scale: 2},
		closedform.Term{Sign: -1, Shift: 1, Scale: 2})

	assert.Equal(t, "1 + 2*p(2, n) - p(2, n - 1)", f.String())
	assert.Equal(t, "1 + 2*cos(pi*n/2)^2 - cos(pi*(n - 1)/2)^2", f.TrigString())
	assert.Equal(t,
		`1 + 2\,\cos^2\left(\frac{\pi n}{2}\right) - \cos^2\left(\frac{\pi (n - 1)}{2}\right)`,
		f.LaTeX())
}
