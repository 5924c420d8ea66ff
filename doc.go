// Package genmatrix is a generic matrix library for Go: one set of shapes and
// kernels for every numeric element type, from int8 to complex128.
//
// What is inside?
//
//	matrix/           : Dense, Square, Diagonal and Symmetric over a Number type,
//	                    kernels (Mul, Add, Sub, Scale, Hadamard, Transpose ...),
//	                    change observers, row-major iterators, extension operations
//	matrix/changelog/ : zap-backed observer and in-memory recorder for change events
//	matrix/interop/   : float64 bridge to gonum.org/v1/gonum/mat
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFrom([][]int{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul[int](a, b) // [[19 22] [43 50]]
//
//	d, _ := matrix.NewDiagonal([]float64{5, 7, 9})
//	err := d.Set(0, 1, 3) // errors.Is(err, matrix.ErrInvalidWritePosition)
//
// Guarantees:
//
//   - Operators are resolved at compile time; an unsupported element type does not build.
//   - Every kernel returns a fresh *matrix.Dense and never mutates its operands.
//   - Failures are sentinel errors matched with errors.Is.
//   - Core types are single-goroutine; wrap with matrix.NewLocked to share them.
package genmatrix
