package decompose_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqform/decompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeduce_ConcreteScenario pins the reference walk for [0,0,0,0]→[4,2,0,4]:
// two mixed rows while position 1 still moves, then two rows for the tall
// positions only.
func TestDeduce_ConcreteScenario(t *testing.T) {
	ops, err := decompose.Deduce([]int{0, 0, 0, 0}, []int{4, 2, 0, 4}, 4, decompose.DefaultOptions())
	require.NoError(t, err)

	want := decompose.Matrix{
		{1, 1, 0, 1},
		{1, 1, 0, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
	}
	assert.Equal(t, want, ops, "greedy walk must emit the canonical rows")
	assert.Equal(t, 4, ops.Rounds(), "rounds must equal the largest gap")
	assert.Equal(t, 4, ops.Width())
}

// TestDeduce_EmptyWhenEqual verifies the zero-operation case: nothing to do
// yields an empty Matrix, not a row of zeros.
func TestDeduce_EmptyWhenEqual(t *testing.T) {
	ops, err := decompose.Deduce([]int{1, 2}, []int{1, 2}, 2, decompose.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, ops, "equal sequences need no operations")
	assert.Equal(t, 0, ops.Rounds())
	assert.Equal(t, 0, ops.Width(), "empty matrix has no width")
}

// TestDeduce_NilStartMeansZeros confirms that a nil start behaves as the
// all-zero sequence of the requested length.
func TestDeduce_NilStartMeansZeros(t *testing.T) {
	ops, err := decompose.Deduce(nil, []int{0, 0, 3}, 3, decompose.DefaultOptions())
	require.NoError(t, err)

	want := decompose.Matrix{
		{0, 0, 1},
		{0, 0, 1},
		{0, 0, 1},
	}
	assert.Equal(t, want, ops)
}

// TestDeduce_LeftPadding verifies that shorter inputs gain leading zeros:
// start [1] against target [2,1] must align 1 under the last position.
func TestDeduce_LeftPadding(t *testing.T) {
	ops, err := decompose.Deduce([]int{1}, []int{2, 1}, 2, decompose.DefaultOptions())
	require.NoError(t, err)

	// padded start [0,1], target [2,1]: only position 0 moves, twice.
	want := decompose.Matrix{
		{1, 0},
		{1, 0},
	}
	assert.Equal(t, want, ops)
}

// TestDeduce_DecreasingPositions exercises -1 steps: a start above the
// target walks down while another position walks up.
func TestDeduce_DecreasingPositions(t *testing.T) {
	ops, err := decompose.Deduce([]int{3, 0}, []int{1, 2}, 2, decompose.DefaultOptions())
	require.NoError(t, err)

	want := decompose.Matrix{
		{-1, 1},
		{-1, 1},
	}
	assert.Equal(t, want, ops)

	got, err := ops.Apply([]int{3, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got, "replay must land on the target")
}

// TestDeduce_RoundsEqualMaxGap checks the termination bound on a spread of
// shapes: the row count is exactly the largest per-position distance.
func TestDeduce_RoundsEqualMaxGap(t *testing.T) {
	cases := []struct {
		start, target []int
		length        int
		rounds        int
	}{
		{nil, []int{5}, 1, 5},
		{nil, []int{1, 1, 1, 1}, 4, 1},
		{nil, []int{0, 7, 2}, 3, 7},
		{[]int{2, 2}, []int{0, 9}, 2, 7},
	}
	for _, tc := range cases {
		ops, err := decompose.Deduce(tc.start, tc.target, tc.length, decompose.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, tc.rounds, ops.Rounds(), "rounds for %v→%v", tc.start, tc.target)
	}
}

// TestDeduce_Errors walks the validation surface: bad length, oversized
// input, negative entries, and an exhausted round cap.
func TestDeduce_Errors(t *testing.T) {
	opts := decompose.DefaultOptions()

	_, err := decompose.Deduce(nil, []int{1}, 0, opts)
	assert.ErrorIs(t, err, decompose.ErrNonPositiveLength, "length 0 must error")

	_, err = decompose.Deduce(nil, []int{1, 2, 3}, 2, opts)
	assert.ErrorIs(t, err, decompose.ErrSequenceTooLong, "target longer than length must error")

	_, err = decompose.Deduce([]int{1, 2, 3}, []int{1}, 2, opts)
	assert.ErrorIs(t, err, decompose.ErrSequenceTooLong, "start longer than length must error")

	_, err = decompose.Deduce(nil, []int{1, -2}, 2, opts)
	assert.ErrorIs(t, err, decompose.ErrNegativeValue, "negative target must error")

	_, err = decompose.Deduce([]int{-1}, []int{1}, 1, opts)
	assert.ErrorIs(t, err, decompose.ErrNegativeValue, "negative start must error")

	opts.MaxRounds = 2
	_, err = decompose.Deduce(nil, []int{5}, 1, opts)
	assert.ErrorIs(t, err, decompose.ErrNonConvergence, "cap below the bound must error")
}

// TestDeduce_CapAtBoundSucceeds ensures MaxRounds equal to the derived bound
// does not misfire: the walk finishes on the last permitted round.
func TestDeduce_CapAtBoundSucceeds(t *testing.T) {
	opts := decompose.DefaultOptions()
	opts.MaxRounds = 5

	ops, err := decompose.Deduce(nil, []int{5}, 1, opts)
	require.NoError(t, err)
	assert.Equal(t, 5, ops.Rounds())
}

// TestApply_RoundTrip replays deterministic pseudo-random decompositions and
// requires every one to land exactly on its target.
func TestApply_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		length := 1 + rng.Intn(16)
		target := make([]int, length)
		for j := range target {
			target[j] = rng.Intn(length + 1)
		}

		ops, err := decompose.Deduce(nil, target, length, decompose.DefaultOptions())
		require.NoError(t, err)

		got, err := ops.Apply(nil)
		require.NoError(t, err)
		if ops.Rounds() == 0 {
			// an all-zero target needs no operations, so the nil start replays as-is
			assert.Empty(t, got)

			continue
		}
		assert.Equal(t, target, got, "replay must reproduce target %v", target)
	}
}

// TestApply_EmptyMatrix returns the start untouched (fresh copy).
func TestApply_EmptyMatrix(t *testing.T) {
	var ops decompose.Matrix
	start := []int{7, 8}

	got, err := ops.Apply(start)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, got)

	got[0] = 0
	assert.Equal(t, []int{7, 8}, start, "Apply must copy, not alias")
}

// TestApply_Malformed rejects ragged rows, out-of-domain entries, and a
// start wider than the matrix.
func TestApply_Malformed(t *testing.T) {
	ragged := decompose.Matrix{{1, 0}, {1}}
	_, err := ragged.Apply(nil)
	assert.ErrorIs(t, err, decompose.ErrRaggedMatrix)

	bad := decompose.Matrix{{2, 0}}
	_, err = bad.Apply(nil)
	assert.ErrorIs(t, err, decompose.ErrBadStep)

	ok := decompose.Matrix{{1, 0}}
	_, err = ok.Apply([]int{1, 2, 3})
	assert.ErrorIs(t, err, decompose.ErrSequenceTooLong)
}

// TestPadTo covers the padding rule in isolation.
func TestPadTo(t *testing.T) {
	got, err := decompose.PadTo([]int{4, 2}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 4, 2}, got, "zeros must lead, not trail")

	src := []int{9}
	got, err = decompose.PadTo(src, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, got)
	got[0] = 0
	assert.Equal(t, []int{9}, src, "PadTo must copy, not alias")

	_, err = decompose.PadTo([]int{1, 2}, 1)
	assert.ErrorIs(t, err, decompose.ErrSequenceTooLong)

	_, err = decompose.PadTo(nil, 0)
	assert.ErrorIs(t, err, decompose.ErrNonPositiveLength)
}

// TestValidate accepts well-formed matrices and flags each defect kind.
func TestValidate(t *testing.T) {
	ops := decompose.Matrix{{1, 0, -1}, {0, 0, 0}}
	assert.NoError(t, ops.Validate(3))
	assert.ErrorIs(t, ops.Validate(2), decompose.ErrRaggedMatrix, "width mismatch is ragged")

	bad := decompose.Matrix{{1, -2}}
	assert.ErrorIs(t, bad.Validate(2), decompose.ErrBadStep)
}
