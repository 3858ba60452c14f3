package seqplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seqform/closedform"
	"github.com/katalvlaran/seqform/decompose"
	"github.com/katalvlaran/seqform/seqplot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngSignature is the fixed 8-byte header every PNG stream starts with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// demoForm assembles the worked [4,2,0,4] form for rendering tests.
func demoForm(t *testing.T) closedform.Form {
	t.Helper()

	f, err := closedform.PFunc(nil, closedform.Form{}, []int{4, 2, 0, 4}, 4)
	require.NoError(t, err)

	return f
}

// TestRender_WritesPNG renders to a .png path and checks the stream is a
// real PNG.
func TestRender_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.png")

	err := seqplot.Render(demoForm(t), []int{4, 2, 0, 4}, 4, path, seqplot.DefaultOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngSignature))
	assert.Equal(t, pngSignature, data[:len(pngSignature)])
}

// TestRender_WritesSVG renders to a .svg path and checks for SVG markup.
func TestRender_WritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.svg")

	err := seqplot.Render(demoForm(t), []int{4, 2, 0, 4}, 4, path, seqplot.DefaultOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

// TestRender_PadsShortTarget accepts a target shorter than the window,
// mirroring the decomposer's padding rule.
func TestRender_PadsShortTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padded.png")
	f, err := closedform.PFunc(nil, closedform.Form{}, []int{4, 2}, 4)
	require.NoError(t, err)

	err = seqplot.Render(f, []int{4, 2}, 4, path, seqplot.DefaultOptions())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestRender_WindowErrors surfaces the decomposer's window sentinels
// before anything touches the filesystem.
func TestRender_WindowErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.png")

	err := seqplot.Render(demoForm(t), []int{4, 2, 0, 4}, 0, path, seqplot.DefaultOptions())
	assert.ErrorIs(t, err, decompose.ErrNonPositiveLength)

	err = seqplot.Render(demoForm(t), []int{4, 2, 0, 4}, 2, path, seqplot.DefaultOptions())
	assert.ErrorIs(t, err, decompose.ErrSequenceTooLong)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file may appear on validation failure")
}

// TestRender_UnsupportedExtension wraps the backend's format rejection.
func TestRender_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.bogus")

	err := seqplot.Render(demoForm(t), []int{4, 2, 0, 4}, 4, path, seqplot.DefaultOptions())
	require.Error(t, err)
	assert.ErrorContains(t, err, "seqplot: save")
}

// TestDefaultOptions pins the defaults the driver relies on.
func TestDefaultOptions(t *testing.T) {
	opts := seqplot.DefaultOptions()
	assert.Positive(t, opts.Width)
	assert.Positive(t, opts.Height)
	assert.Zero(t, opts.Samples, "zero means auto density")
	assert.Empty(t, opts.Title, "empty means the form's own notation")
}
