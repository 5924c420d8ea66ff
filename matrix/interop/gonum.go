// SPDX-License-Identifier: MIT

// Package interop bridges float64 matrices to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand matrices to gonum for factorizations and BLAS-backed products.
//   - Bring gonum results back as *matrix.Dense[float64] so they can flow through
//     the matrix kernels, variants and observers.
//
// Notes:
//   - Every conversion copies; neither side aliases the other's storage.
//   - MulGonum delegates to gonum's blocked BLAS product. Its summation order
//     differs from matrix.Mul (i→j→k), so float results may differ in the last
//     bits; use matrix.Mul when reproducibility across runs and operand types matters.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/genmatrix/matrix"
)

// interopErrorf wraps err with the function tag, preserving it via %w.
func interopErrorf(tag string, err error) error {
	return fmt.Errorf("interop.%s: %w", tag, err)
}

// ToGonum copies any float64 Reader into a new *mat.Dense.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (empty m), or the first At error.
// Complexity: O(r*c).
func ToGonum(m matrix.Reader[float64]) (*mat.Dense, error) {
	grid, err := matrix.Collect(m)
	if err != nil {
		return nil, interopErrorf("ToGonum", err)
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, interopErrorf("ToGonum", matrix.ErrInvalidDimensions)
	}
	rows, cols := len(grid), len(grid[0])
	flat := make([]float64, 0, rows*cols)
	for _, row := range grid {
		flat = append(flat, row...)
	}

	return mat.NewDense(rows, cols, flat), nil
}

// FromGonum copies a gonum matrix into a new *matrix.Dense[float64].
// Errors: matrix.ErrMissingSource (nil g), matrix.ErrInvalidDimensions (empty g),
// plus the numeric-policy errors of the given options.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...matrix.Option[float64]) (*matrix.Dense[float64], error) {
	if g == nil {
		return nil, interopErrorf("FromGonum", matrix.ErrMissingSource)
	}
	if d, ok := g.(*mat.Dense); ok && d == nil {
		return nil, interopErrorf("FromGonum", matrix.ErrMissingSource)
	}
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return nil, interopErrorf("FromGonum", matrix.ErrInvalidDimensions)
	}
	flat := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			flat[i*cols+j] = g.At(i, j)
		}
	}
	out, err := matrix.NewDenseFromFlat(rows, cols, flat, opts...)
	if err != nil {
		return nil, interopErrorf("FromGonum", err)
	}

	return out, nil
}

// SymmetricToGonum copies a Symmetric into a *mat.SymDense of the same size.
// Errors: matrix.ErrNilMatrix.
// Complexity: O(n²).
func SymmetricToGonum(s *matrix.Symmetric[float64]) (*mat.SymDense, error) {
	if s == nil {
		return nil, interopErrorf("SymmetricToGonum", matrix.ErrNilMatrix)
	}
	n := s.Size()
	flat := make([]float64, 0, n*n)
	for _, row := range s.ToArray() {
		flat = append(flat, row...)
	}

	return mat.NewSymDense(n, flat), nil
}

// MulGonum computes a × b with gonum and returns the product as a matrix.Dense.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (checked before conversion).
// Complexity: O(r*n*c) through BLAS, plus O(r*n + n*c + r*c) copies.
func MulGonum(a, b matrix.Reader[float64]) (*matrix.Dense[float64], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, interopErrorf("MulGonum", err)
	}
	ga, err := ToGonum(a)
	if err != nil {
		return nil, interopErrorf("MulGonum", err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, interopErrorf("MulGonum", err)
	}
	var prod mat.Dense
	prod.Mul(ga, gb)

	return FromGonum(&prod)
}
