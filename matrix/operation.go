// SPDX-License-Identifier: MIT
// Package matrix: extension operations.
//
// Purpose:
//   - Let callers add binary operations over a concrete matrix without touching
//     the matrix types. An Operation captures its second operand (matrix or
//     scalar) and consumes the first through the Reader contract.
//
// Contract for implementers:
//   - Validate dimensions yourself and return ErrDimensionMismatch on mismatch,
//     exactly like the built-in kernels.
//   - Return a fresh *Dense; never mutate or alias the operand.
//
// Example (user-defined operation):
//
//	maxOp := matrix.ZipOp(b, func(x, y int) int { return max(x, y) })
//	out, err := matrix.Apply(a, maxOp)

package matrix

import "fmt"

const opApply = "Apply"

// Operation is a binary operation whose second operand is bound at construction.
type Operation[T Number] interface {
	// Apply computes the operation with m as the first operand.
	Apply(m Reader[T]) (*Dense[T], error)
}

// OperationFunc adapts a plain function to Operation.
type OperationFunc[T Number] func(m Reader[T]) (*Dense[T], error)

// Apply calls f(m). A nil f yields ErrMissingSource.
func (f OperationFunc[T]) Apply(m Reader[T]) (*Dense[T], error) {
	if f == nil {
		return nil, matrixErrorf(opApply, fmt.Errorf("nil operation func: %w", ErrMissingSource))
	}

	return f(m)
}

// Apply runs op against m after nil checks.
// Errors: ErrNilMatrix (nil m), ErrMissingSource (nil op), plus whatever op returns.
// Complexity: that of op.
func Apply[T Number](m Reader[T], op Operation[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if op == nil {
		return nil, matrixErrorf(opApply, fmt.Errorf("nil operation: %w", ErrMissingSource))
	}

	return op.Apply(m)
}

// AddOp returns the operation m + b.
func AddOp[T Number](b Reader[T]) Operation[T] {
	return OperationFunc[T](func(m Reader[T]) (*Dense[T], error) { return Add(m, b) })
}

// SubOp returns the operation m − b.
func SubOp[T Number](b Reader[T]) Operation[T] {
	return OperationFunc[T](func(m Reader[T]) (*Dense[T], error) { return Sub(m, b) })
}

// MulOp returns the operation m × b (matrix product).
func MulOp[T Number](b Reader[T]) Operation[T] {
	return OperationFunc[T](func(m Reader[T]) (*Dense[T], error) { return Mul(m, b) })
}

// ScaleOp returns the operation m × s.
func ScaleOp[T Number](s T) Operation[T] {
	return OperationFunc[T](func(m Reader[T]) (*Dense[T], error) { return Scale(m, s) })
}

// ZipOp returns the element-wise operation out[i,j] = fn(m[i,j], b[i,j]).
// The shapes of m and b must match (ErrDimensionMismatch otherwise).
// A nil fn yields ErrMissingSource on Apply.
func ZipOp[T Number](b Reader[T], fn func(x, y T) T) Operation[T] {
	return OperationFunc[T](func(m Reader[T]) (*Dense[T], error) {
		if fn == nil {
			return nil, matrixErrorf("ZipOp", ErrMissingSource)
		}
		return zipWith(m, b, fn, "ZipOp")
	})
}

// MapScalarOp returns the element-wise operation out[i,j] = fn(m[i,j], s).
// A nil fn yields ErrMissingSource on Apply.
func MapScalarOp[T Number](s T, fn func(x, y T) T) Operation[T] {
	return OperationFunc[T](func(m Reader[T]) (*Dense[T], error) {
		if fn == nil {
			return nil, matrixErrorf("MapScalarOp", ErrMissingSource)
		}
		return mapWith(m, s, fn, "MapScalarOp")
	})
}
