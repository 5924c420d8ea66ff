// SPDX-License-Identifier: MIT
// Package matrix_test covers the Square, Diagonal and Symmetric variants.
package matrix_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/genmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Square ----------

func TestSquareConstruction(t *testing.T) {
	s, err := matrix.NewSquare[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, s.Size())
	require.Equal(t, s.Rows(), s.Cols())

	_, err = matrix.NewSquare[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquareFrom([][]int{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.NewSquareFrom[int](nil)
	require.ErrorIs(t, err, matrix.ErrMissingSource)

	s, err = matrix.NewSquareFrom([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	RequireGrid(t, [][]int{{1, 2}, {3, 4}}, s)
}

func TestSquareCloneKeepsType(t *testing.T) {
	s, err := matrix.NewSquareFrom([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c := s.Clone()
	require.IsType(t, &matrix.Square[int]{}, c)
	require.NoError(t, c.Set(0, 0, 9))
	require.Equal(t, 1, MustAt[int](t, s, 0, 0))
}

// ---------- Diagonal ----------

func TestDiagonalReadsAndWrites(t *testing.T) {
	d, err := matrix.NewDiagonal([]int{5, 7, 9})
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())

	require.Equal(t, 5, MustAt[int](t, d, 0, 0))
	require.Equal(t, 7, MustAt[int](t, d, 1, 1))
	require.Equal(t, 9, MustAt[int](t, d, 2, 2))
	require.Equal(t, 0, MustAt[int](t, d, 0, 1))

	err = d.Set(0, 1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidWritePosition)
	require.Equal(t, 0, MustAt[int](t, d, 0, 1))

	// Even writing zero off the diagonal is rejected.
	require.ErrorIs(t, d.Set(2, 0, 0), matrix.ErrInvalidWritePosition)

	// Bounds are checked before write legality.
	require.ErrorIs(t, d.Set(3, 0, 1), matrix.ErrOutOfRange)
	_, err = d.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, d.Set(1, 1, 70))
	require.Equal(t, 70, MustAt[int](t, d, 1, 1))
	require.Equal(t, []int{5, 70, 9}, d.Diagonal())
}

func TestDiagonalConstructionErrors(t *testing.T) {
	_, err := matrix.NewDiagonal[int](nil)
	require.ErrorIs(t, err, matrix.ErrMissingSource)

	_, err = matrix.NewDiagonal([]int{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDiagonalCopiesSource(t *testing.T) {
	src := []int{1, 2}
	d, err := matrix.NewDiagonal(src)
	require.NoError(t, err)
	src[0] = 100
	require.Equal(t, 1, MustAt[int](t, d, 0, 0))

	out := d.Diagonal()
	out[1] = 200
	require.Equal(t, 2, MustAt[int](t, d, 1, 1))
}

func TestDiagonalExpandedViews(t *testing.T) {
	d, err := matrix.NewDiagonal([]int{1, 2, 3})
	require.NoError(t, err)

	want := [][]int{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	require.Equal(t, want, d.ToArray())
	require.Equal(t, []int{1, 0, 0, 0, 2, 0, 0, 0, 3}, slices.Collect(d.Values()))
	require.Equal(t, slices.Collect(d.Values()), slices.Collect(d.Values()))
	require.Equal(t, "[1, 0, 0]\n[0, 2, 0]\n[0, 0, 3]\n", d.String())

	c := d.Clone()
	require.IsType(t, &matrix.Diagonal[int]{}, c)
	require.NoError(t, c.Set(0, 0, 8))
	require.Equal(t, 1, MustAt[int](t, d, 0, 0))
}

// ---------- Symmetric ----------

func TestSymmetricConstruction(t *testing.T) {
	s, err := matrix.NewSymmetric([][]int{{1, 2}, {2, 1}})
	require.NoError(t, err)
	RequireGrid(t, [][]int{{1, 2}, {2, 1}}, s)

	_, err = matrix.NewSymmetric([][]int{{1, 2}, {3, 1}})
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.Contains(t, err.Error(), "(1,0)")

	_, err = matrix.NewSymmetric([][]int{{1, 2, 3}, {2, 1, 3}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewSymmetric[int](nil)
	require.ErrorIs(t, err, matrix.ErrMissingSource)

	_, err = matrix.NewSymmetricN[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSymmetricMirrorsWrites(t *testing.T) {
	s, err := matrix.NewSymmetric([][]int{
		{1, 2, 3},
		{2, 4, 5},
		{3, 5, 6},
	})
	require.NoError(t, err)

	require.NoError(t, s.Set(0, 2, 30)) // upper triangle → stored at (2,0)
	require.Equal(t, 30, MustAt[int](t, s, 2, 0))
	require.NoError(t, s.Set(2, 1, 50)) // lower triangle
	require.Equal(t, 50, MustAt[int](t, s, 1, 2))

	n := s.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, MustAt[int](t, s, i, j), MustAt[int](t, s, j, i), "(%d,%d)", i, j)
		}
	}
	ok, err := matrix.IsSymmetric[int](s)
	require.NoError(t, err)
	require.True(t, ok)

	require.ErrorIs(t, s.Set(0, 3, 1), matrix.ErrOutOfRange)
	_, err = s.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSymmetricSourceIsolation(t *testing.T) {
	src := [][]int{{1, 2}, {2, 1}}
	s, err := matrix.NewSymmetric(src)
	require.NoError(t, err)
	src[1][0], src[0][1] = 9, 9
	require.Equal(t, 2, MustAt[int](t, s, 0, 1))

	arr := s.ToArray()
	arr[0][1] = 7
	require.Equal(t, 2, MustAt[int](t, s, 0, 1))
}

func TestSymmetricViewsAndClone(t *testing.T) {
	s, err := matrix.NewSymmetricN[int](2)
	require.NoError(t, err)
	require.NoError(t, s.Set(0, 1, 4))
	require.Equal(t, []int{0, 4, 4, 0}, slices.Collect(s.Values()))
	require.Equal(t, "[0, 4]\n[4, 0]\n", s.String())

	c := s.Clone()
	require.IsType(t, &matrix.Symmetric[int]{}, c)
	require.NoError(t, c.Set(1, 0, 8))
	require.Equal(t, 4, MustAt[int](t, s, 0, 1))
	require.Equal(t, 8, MustAt[int](t, c, 0, 1))
}

func TestSymmetricNaNNeverSymmetric(t *testing.T) {
	nan := func() float64 { var z float64; return z / z }()
	_, err := matrix.NewSymmetric([][]float64{{nan}})
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestVariantsShareContract runs the same round-trip over every variant.
func TestVariantsShareContract(t *testing.T) {
	dense := MustDense[int](t, 2, 2)
	square, err := matrix.NewSquare[int](2)
	require.NoError(t, err)
	diag, err := matrix.NewDiagonal([]int{0, 0})
	require.NoError(t, err)
	sym, err := matrix.NewSymmetricN[int](2)
	require.NoError(t, err)

	for name, m := range map[string]matrix.Matrix[int]{
		"dense": dense, "square": square, "diagonal": diag, "symmetric": sym,
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 2, m.Rows())
			require.Equal(t, 2, m.Cols())
			require.NoError(t, m.Set(1, 1, 6))
			require.Equal(t, 6, MustAt[int](t, m, 1, 1))
			_, err := m.At(2, 0)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.Len(t, slices.Collect(m.Values()), 4)
		})
	}
}

// TestVariantsNaNInfPolicy checks the finite-value guard on construction and Set.
func TestVariantsNaNInfPolicy(t *testing.T) {
	var zero float64
	inf, nan := 1/zero, zero/zero
	strict := matrix.WithValidateNaNInf[float64]()

	tests := []struct {
		name  string
		build func(v float64) (matrix.Matrix[float64], error)
	}{
		{"dense", func(v float64) (matrix.Matrix[float64], error) {
			return matrix.NewDenseFrom([][]float64{{v, 0}, {0, 1}}, strict)
		}},
		{"square", func(v float64) (matrix.Matrix[float64], error) {
			return matrix.NewSquareFrom([][]float64{{v, 0}, {0, 1}}, strict)
		}},
		{"diagonal", func(v float64) (matrix.Matrix[float64], error) {
			return matrix.NewDiagonal([]float64{v, 1}, strict)
		}},
		{"symmetric", func(v float64) (matrix.Matrix[float64], error) {
			// Inf equals itself, so the grid passes the symmetry scan first.
			return matrix.NewSymmetric([][]float64{{v, 0}, {0, 1}}, strict)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build(inf)
			require.ErrorIs(t, err, matrix.ErrNaNInf)

			m, err := tc.build(2)
			require.NoError(t, err)
			calls := 0
			m.OnChange(func(matrix.ChangeEvent[float64]) { calls++ })

			require.ErrorIs(t, m.Set(0, 0, nan), matrix.ErrNaNInf)
			require.ErrorIs(t, m.Set(1, 1, -inf), matrix.ErrNaNInf)
			require.Equal(t, 2.0, MustAt[float64](t, m, 0, 0))
			require.Zero(t, calls)

			require.NoError(t, m.Set(0, 0, 3))
			require.Equal(t, 1, calls)

			// The policy survives Clone.
			require.ErrorIs(t, m.Clone().Set(0, 0, inf), matrix.ErrNaNInf)
		})
	}
}
