// FILE: paramstore/io_test.go
package paramstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const deckTOML = `
title = "cavity"

[solver]
max_iterations = 500
tolerance = 1e-8
schemes = ["upwind", "central"]

[mesh]
cells = [64, 128]
refine = true
`

func TestLoadFile(t *testing.T) {
	h := NewHandler[string]()
	path := writeFile(t, "deck.toml", deckTOML)
	require.NoError(t, LoadFile(h, path))

	title, err := Fetch[string](h, "title")
	require.NoError(t, err)
	assert.Equal(t, "cavity", title)

	iters, err := Fetch[int64](h, "solver.max_iterations")
	require.NoError(t, err)
	assert.Equal(t, int64(500), iters)

	tol, err := Fetch[float64](h, "solver.tolerance")
	require.NoError(t, err)
	assert.Equal(t, 1e-8, tol)

	schemes, err := Fetch[[]string](h, "solver.schemes")
	require.NoError(t, err)
	assert.Equal(t, []string{"upwind", "central"}, schemes)

	cells, err := Fetch[[]int64](h, "mesh.cells")
	require.NoError(t, err)
	assert.Equal(t, []int64{64, 128}, cells)

	refine, err := Fetch[bool](h, "mesh.refine")
	require.NoError(t, err)
	assert.True(t, refine)
}

func TestLoadFileMissing(t *testing.T) {
	h := NewHandler[string]()
	err := LoadFile(h, filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Equal(t, 0, h.Len())
}

func TestLoadFileMalformed(t *testing.T) {
	h := NewHandler[string]()
	path := writeFile(t, "bad.toml", "title = [unclosed")
	err := LoadFile(h, path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestApplyArgs(t *testing.T) {
	h := NewHandler[string]()
	Put(h, "solver.max_iterations", int64(500))

	ApplyArgs(h, ParseArgs([]string{
		"--solver.max_iterations", "900",
		"--solver.tolerance", "1e-6",
		"--title", "lid-driven",
		"--mesh.refine", "false",
		"--verbose",
	}))

	iters, err := Fetch[int64](h, "solver.max_iterations")
	require.NoError(t, err)
	assert.Equal(t, int64(900), iters, "CLI overrides the file value")

	tol, err := Fetch[float64](h, "solver.tolerance")
	require.NoError(t, err)
	assert.Equal(t, 1e-6, tol)

	title, err := Fetch[string](h, "title")
	require.NoError(t, err)
	assert.Equal(t, "lid-driven", title)

	refine, err := Fetch[bool](h, "mesh.refine")
	require.NoError(t, err)
	assert.False(t, refine)

	verbose, err := Fetch[bool](h, "verbose")
	require.NoError(t, err)
	assert.True(t, verbose, "a bare flag becomes boolean true")
}

func TestSaveFileRoundTrip(t *testing.T) {
	h := NewHandler[string]()
	Put(h, "title", "cavity")
	Put(h, "solver.max_iterations", int64(500))
	Put(h, "solver.tolerance", 1e-8)
	Put(h, "mesh.refine", true)

	path := filepath.Join(t.TempDir(), "out", "deck.toml")
	require.NoError(t, SaveFile(h, path))

	reloaded := NewHandler[string]()
	require.NoError(t, LoadFile(reloaded, path))

	title, err := Fetch[string](reloaded, "title")
	require.NoError(t, err)
	assert.Equal(t, "cavity", title)

	iters, err := Fetch[int64](reloaded, "solver.max_iterations")
	require.NoError(t, err)
	assert.Equal(t, int64(500), iters)

	tol, err := Fetch[float64](reloaded, "solver.tolerance")
	require.NoError(t, err)
	assert.Equal(t, 1e-8, tol)

	refine, err := Fetch[bool](reloaded, "mesh.refine")
	require.NoError(t, err)
	assert.True(t, refine)
}

func TestScan(t *testing.T) {
	type solverConfig struct {
		MaxIterations int           `toml:"max_iterations"`
		Tolerance     float64       `toml:"tolerance"`
		Schemes       []string      `toml:"schemes"`
		Timeout       time.Duration `toml:"timeout"`
	}
	type deck struct {
		Title  string       `toml:"title"`
		Solver solverConfig `toml:"solver"`
	}

	h := NewHandler[string]()
	path := writeFile(t, "deck.toml", deckTOML)
	require.NoError(t, LoadFile(h, path))
	Put(h, "solver.timeout", "30s")

	var d deck
	require.NoError(t, Scan(h, &d))

	assert.Equal(t, "cavity", d.Title)
	assert.Equal(t, 500, d.Solver.MaxIterations)
	assert.Equal(t, 1e-8, d.Solver.Tolerance)
	assert.Equal(t, []string{"upwind", "central"}, d.Solver.Schemes)
	assert.Equal(t, 30*time.Second, d.Solver.Timeout)
}

func TestLoadConvenience(t *testing.T) {
	t.Run("FileAndArgs", func(t *testing.T) {
		path := writeFile(t, "deck.toml", deckTOML)
		h, err := Load(path, []string{"--solver.max_iterations", "900"})
		require.NoError(t, err)

		iters, err := Fetch[int64](h, "solver.max_iterations")
		require.NoError(t, err)
		assert.Equal(t, int64(900), iters)

		title, err := Fetch[string](h, "title")
		require.NoError(t, err)
		assert.Equal(t, "cavity", title)
	})

	t.Run("MissingFileNotFatal", func(t *testing.T) {
		h, err := Load(filepath.Join(t.TempDir(), "nope.toml"), []string{"--n", "4"})
		assert.ErrorIs(t, err, ErrConfigNotFound)
		require.NotNil(t, h)

		n, err := Fetch[int64](h, "n")
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("ValidationFlow", func(t *testing.T) {
		path := writeFile(t, "deck.toml", deckTOML)
		h, err := Load(path, nil)
		require.NoError(t, err)

		ctrl := NewController[string]()
		Insert[int64](ctrl, "solver.max_iterations").Required().Range(1, 100000)
		Insert[float64](ctrl, "solver.tolerance").TypeChecked()
		Insert[int64](ctrl, "solver.restart_every").Default(0)

		require.NoError(t, ctrl.Check(h))

		restart, err := Fetch[int64](h, "solver.restart_every")
		require.NoError(t, err)
		assert.Equal(t, int64(0), restart)
	})
}
