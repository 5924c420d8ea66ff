// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and kernels minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond error values.
//  - Symmetry check visits the lower triangle once (j ≤ i).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilReader reports whether r is nil, including a typed nil pointer stored in the interface.
func isNilReader[T Number](r Reader[T]) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ValidateNotNil ensures the operand is present.
//
// Returns ErrNilMatrix if m is nil or a typed nil pointer.
// Complexity: O(1).
func ValidateNotNil[T Number](m Reader[T]) error {
	if isNilReader(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b Reader[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape = ValidateNotNil(a,b) + ValidateSameShape(a,b).
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b Reader[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a and b are present and a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b Reader[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is present and Rows() == Cols().
// Complexity: O(1).
func ValidateSquare[T Number](m Reader[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateGrid checks a source grid and returns its shape.
//
// Errors (in priority order):
//   - ErrMissingSource     src == nil.
//   - ErrInvalidDimensions no rows, or a zero-length first row.
//   - ErrRaggedSource      a row whose length differs from row 0.
//
// Complexity: O(rows).
func ValidateGrid[T Number](src [][]T) (rows, cols int, err error) {
	if src == nil {
		return 0, 0, validatorErrorf("ValidateGrid", ErrMissingSource)
	}
	rows = len(src)
	if rows == 0 || len(src[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateGrid", ErrInvalidDimensions)
	}
	cols = len(src[0])
	for i := 1; i < rows; i++ {
		if len(src[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateGrid: row %d", i), ErrRaggedSource)
		}
	}

	return rows, cols, nil
}

// ValidateSquareGrid = ValidateGrid + rows == cols. Returns n.
// Complexity: O(rows).
func ValidateSquareGrid[T Number](src [][]T) (int, error) {
	rows, cols, err := ValidateGrid(src)
	if err != nil {
		return 0, err
	}
	if rows != cols {
		return 0, validatorErrorf(fmt.Sprintf("ValidateSquareGrid: %dx%d", rows, cols), ErrNonSquare)
	}

	return rows, nil
}

// ValidateSymmetricGrid = ValidateSquareGrid + src[i][j] == src[j][i].
// Scans i ascending, j ∈ [0, i] ascending, and reports the first mismatch.
// Complexity: O(n²).
func ValidateSymmetricGrid[T Number](src [][]T) (int, error) {
	n, err := ValidateSquareGrid(src)
	if err != nil {
		return 0, err
	}
	var ops Ops[T]
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if !ops.Equal(src[i][j], src[j][i]) {
				return 0, validatorErrorf(fmt.Sprintf("ValidateSymmetricGrid: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return n, nil
}

// IsSymmetric reports whether m is square with At(i,j) == At(j,i) everywhere.
// Returns ErrNilMatrix for a nil m.
// Complexity: O(n²) reads.
func IsSymmetric[T Number](m Reader[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, err
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return false, err
			}
			b, err := m.At(j, i)
			if err != nil {
				return false, err
			}
			if a != b {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsZeroOffDiagonal reports whether m is square and every off-diagonal cell is zero.
// Returns ErrNilMatrix for a nil m.
// Complexity: O(n²) reads.
func IsZeroOffDiagonal[T Number](m Reader[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, err
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	var zero T
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return false, err
			}
			if v != zero {
				return false, nil
			}
		}
	}

	return true, nil
}
