// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points (Product, Difference, Addition, ...)
//     that delegate to the canonical kernels without duplicating logic.
//   - Offer neutral-element constructors (NewIdentity, NewZeros, ZerosLike).
//   - Offer shape-restoring converters (AsSquare, AsDiagonal, AsSymmetric): kernels
//     always return *Dense, and callers who want a specialized result build it here.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n as a Diagonal (ones on the diagonal).
// Complexity: O(n).
func NewIdentity[T Number](n int, opts ...Option[T]) (*Diagonal[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, ErrInvalidDimensions)
	}
	ones := make([]T, n)
	for i := range ones {
		ones[i] = 1
	}

	return NewDiagonal(ones, opts...)
}

// ZerosLike returns a new zero Dense with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike[T Number](m Reader[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// Collect materializes the logical grid of any Reader.
// Errors: ErrNilMatrix, or the first At error.
// Complexity: O(r*c).
func Collect[T Number](m Reader[T]) ([][]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Collect", err)
	}
	if mm, ok := m.(Matrix[T]); ok {
		return mm.ToArray(), nil
	}
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("Collect", err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// AsSquare copies m into a new Square.
// Errors: ErrNilMatrix, ErrNonSquare.
func AsSquare[T Number](m Reader[T], opts ...Option[T]) (*Square[T], error) {
	grid, err := Collect(m)
	if err != nil {
		return nil, matrixErrorf("AsSquare", err)
	}

	return NewSquareFrom(grid, opts...)
}

// AsSymmetric copies m into a new Symmetric.
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
func AsSymmetric[T Number](m Reader[T], opts ...Option[T]) (*Symmetric[T], error) {
	grid, err := Collect(m)
	if err != nil {
		return nil, matrixErrorf("AsSymmetric", err)
	}

	return NewSymmetric(grid, opts...)
}

// AsDiagonal copies the diagonal of m into a new Diagonal.
// Every off-diagonal cell must be zero so no information is lost.
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidShape (non-zero off-diagonal).
func AsDiagonal[T Number](m Reader[T], opts ...Option[T]) (*Diagonal[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("AsDiagonal", err)
	}
	ok, err := IsZeroOffDiagonal(m)
	if err != nil {
		return nil, matrixErrorf("AsDiagonal", err)
	}
	if !ok {
		return nil, matrixErrorf("AsDiagonal", fmt.Errorf("non-zero off-diagonal: %w", ErrInvalidShape))
	}
	values := make([]T, m.Rows())
	for i := range values {
		if values[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf("AsDiagonal", err)
		}
	}

	return NewDiagonal(values, opts...)
}

// ---------- Arithmetic facades (map 1:1 to kernels) ----------

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Number](a, b Reader[T]) (*Dense[T], error) { return Mul(a, b) }

// ProductScalar is an alias for Scale: a × s.
func ProductScalar[T Number](a Reader[T], s T) (*Dense[T], error) { return Scale(a, s) }

// Addition is an alias for Add: element-wise a + b.
func Addition[T Number](a, b Reader[T]) (*Dense[T], error) { return Add(a, b) }

// AdditionScalar is an alias for AddScalar: a + s cell-wise.
func AdditionScalar[T Number](a Reader[T], s T) (*Dense[T], error) { return AddScalar(a, s) }

// Difference is an alias for Sub: element-wise a − b.
func Difference[T Number](a, b Reader[T]) (*Dense[T], error) { return Sub(a, b) }

// DifferenceScalar is an alias for SubScalar: a − s cell-wise.
func DifferenceScalar[T Number](a Reader[T], s T) (*Dense[T], error) { return SubScalar(a, s) }
