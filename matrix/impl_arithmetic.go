// SPDX-License-Identifier: MIT
// Package matrix provides universal arithmetic on any Reader implementation:
// matrix product, scalar product, element-wise sum/difference (matrix and
// scalar forms), Hadamard product and transpose. All functions validate
// fail-fast and return clear errors on dimension mismatches.
//
// Purpose:
//   - Implement each operation once against Reader[T] so every variant
//     (Dense, Square, Diagonal, Symmetric, user types) is a valid operand.
//   - Always return a freshly allocated *Dense; operands are never mutated or aliased.
//     Restoring a specialized shape is the caller's choice (see AsSymmetric & co. in api.go).
//
// Determinism:
//   - Fixed loop orders. Mul accumulates i (outer) → j (middle) → k (inner) in
//     both the Dense fast-path and the generic fallback, so floating-point
//     results are bit-identical whatever the operand types.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf unwraps the concrete dense storage behind r, if any.
// *Square embeds *Dense, so it shares the fast-path.
func denseOf[T Number](r Reader[T]) (*Dense[T], bool) {
	switch m := r.(type) {
	case *Dense[T]:
		return m, true
	case *Square[T]:
		return m.Dense, true
	default:
		return nil, false
	}
}

// zipWith computes out[i,j] = fn(a[i,j], b[i,j]) for same-shaped a and b.
// Shared by Add/Sub/Hadamard and ZipOp.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape; allocate result.
//   - Stage 2: both dense → flat loop 0..n-1; otherwise i→j via At.
//
// Complexity: Time O(r*c), Space O(r*c).
func zipWith[T Number](a, b Reader[T], fn func(x, y T) T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols, defaultOptions[T]())

	// Fast path: flat buffers walk in lockstep.
	if da, okA := denseOf(a); okA {
		if db, okB := denseOf(b); okB {
			for idx := range res.data {
				res.data[idx] = fn(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv T
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = fn(av, bv)
		}
	}

	return res, nil
}

// mapWith computes out[i,j] = fn(a[i,j], s). Shared by the scalar kernels and MapScalarOp.
// Complexity: Time O(r*c), Space O(r*c).
func mapWith[T Number](a Reader[T], s T, fn func(x, y T) T, opTag string) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols, defaultOptions[T]())

	if da, ok := denseOf(a); ok {
		for idx, v := range da.data {
			res.data[idx] = fn(v, s)
		}

		return res, nil
	}

	var v T
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = fn(v, s)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Number](a, b Reader[T]) (*Dense[T], error) {
	var ops Ops[T]
	return zipWith(a, b, ops.Add, opAdd)
}

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Number](a, b Reader[T]) (*Dense[T], error) {
	var ops Ops[T]
	return zipWith(a, b, ops.Sub, opSub)
}

// Hadamard computes the element-wise product C = A ⊙ B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard[T Number](a, b Reader[T]) (*Dense[T], error) {
	var ops Ops[T]
	return zipWith(a, b, ops.Mul, opHadamard)
}

// Scale computes C = A × s (each cell multiplied by the scalar).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[T Number](a Reader[T], s T) (*Dense[T], error) {
	var ops Ops[T]
	return mapWith(a, s, ops.Mul, opScale)
}

// AddScalar computes C = A + s cell-wise.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func AddScalar[T Number](a Reader[T], s T) (*Dense[T], error) {
	var ops Ops[T]
	return mapWith(a, s, ops.Add, opAddScalar)
}

// SubScalar computes C = A − s cell-wise.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func SubScalar[T Number](a Reader[T], s T) (*Dense[T], error) {
	var ops Ops[T]
	return mapWith(a, s, ops.Sub, opSubScalar)
}

// Mul performs the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: validate operands and inner dimension (A.Cols == B.Rows) before any work.
//   - Stage 2: for each (i, j), sum A[i,k]*B[k,j] over k = 0..A.Cols-1.
//     Dense operands use flat offsets; others use At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - i → j → k in both paths; zeros are not skipped, so NaN/Inf propagate
//     exactly as the arithmetic dictates.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b Reader[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols, defaultOptions[T]())

	var (
		ops     Ops[T]
		i, j, k int
		acc     T
	)
	if da, okA := denseOf(a); okA {
		if db, okB := denseOf(b); okB {
			var rowA int
			for i = 0; i < aRows; i++ {
				rowA = i * inner
				for j = 0; j < bCols; j++ {
					acc = ops.Zero()
					for k = 0; k < inner; k++ {
						acc = ops.Add(acc, ops.Mul(da.data[rowA+k], db.data[k*bCols+j]))
					}
					res.data[i*bCols+j] = acc
				}
			}

			return res, nil
		}
	}

	var av, bv T
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ops.Zero()
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc = ops.Add(acc, ops.Mul(av, bv))
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns Aᵀ as a new Dense (shape c×r).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[T Number](a Reader[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDense(cols, rows, defaultOptions[T]())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and equal logical values.
// A nil operand is never equal to anything.
// Complexity: O(r*c).
func Equal[T Number](a, b Reader[T]) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}
