// SPDX-License-Identifier: MIT
// Package matrix: element types and operator resolution.
//
// Purpose:
//   - Describe the set of element types a matrix may hold (Number).
//   - Supply add/subtract/multiply for any such type without per-type code (Ops).
//
// Design:
//   - Resolution is static: the compiler instantiates Ops[T] for each element
//     type. A type lacking +, − or × never satisfies Number and is rejected at
//     compile time; nothing is resolved or cached at run time.
//   - Equality uses ==, which every Number supports (floats follow IEEE rules,
//     so NaN never equals itself).

package matrix

// Number is the constraint satisfied by every element type a matrix may hold:
// integers, floats and complex numbers, including named types built on them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Arithmetic is the ring-like operator set the kernels are written against.
type Arithmetic[T any] interface {
	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a − b.
	Sub(a, b T) T
	// Mul returns a × b.
	Mul(a, b T) T
}

// Ops resolves Arithmetic for a Number type. The zero value is ready to use
// and carries no state, so kernels declare it locally (var ops Ops[T]).
type Ops[T Number] struct{}

// Compile-time conformance for a few representative instantiations.
var (
	_ Arithmetic[int]        = Ops[int]{}
	_ Arithmetic[float64]    = Ops[float64]{}
	_ Arithmetic[complex128] = Ops[complex128]{}
)

// Add returns a + b.
func (Ops[T]) Add(a, b T) T { return a + b }

// Sub returns a − b.
func (Ops[T]) Sub(a, b T) T { return a - b }

// Mul returns a × b.
func (Ops[T]) Mul(a, b T) T { return a * b }

// Zero returns the additive identity of T.
func (Ops[T]) Zero() T {
	var z T
	return z
}

// Equal reports a == b.
func (Ops[T]) Equal(a, b T) bool { return a == b }

// isNaNInf reports whether v is NaN or ±Inf (or, for complex types, has such a part).
// v−v is 0 for every finite value and NaN for NaN/±Inf; NaN is the only value
// that differs from itself. For integer types the check is always false.
// Complexity: O(1).
func isNaNInf[T Number](v T) bool {
	d := v - v

	return d != d
}
