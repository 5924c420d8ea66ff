// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for variants/kernels.
//   • Keep fixtures integer-valued where exact equality matters.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/genmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Reader to hide its concrete type from type assertions.
// Kernels take their *Dense fast-path only for concrete Dense/Square operands;
// hide{X} forces the generic At-based fallback so both paths can be compared.
type hide[T matrix.Number] struct{ matrix.Reader[T] }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense[T matrix.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// MustDenseFrom BUILDS a *Dense from a grid literal or fails the test.
func MustDenseFrom[T matrix.Number](t testing.TB, src [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m matrix.Reader[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES (i,j) or fails the test.
func MustSet[T matrix.Number](t testing.TB, m matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RequireGrid ASSERTS that m holds exactly want, cell by cell, via At.
func RequireGrid[T matrix.Number](t testing.TB, want [][]T, m matrix.Reader[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// RandomIntDense FILLS a new r×c *Dense with deterministic ints in [-9, 9].
func RandomIntDense(t testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]int, r*c)
	for k := range flat {
		flat[k] = rng.Intn(19) - 9
	}
	m, err := matrix.NewDenseFromFlat(r, c, flat)
	require.NoError(t, err)

	return m
}

// RandomFloatDense FILLS a new r×c *Dense with deterministic U(-1,1) values.
func RandomFloatDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]float64, r*c)
	for k := range flat {
		flat[k] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFromFlat(r, c, flat)
	require.NoError(t, err)

	return m
}
