// Package matrix offers generic dense matrices over any numeric element type.
//
// The matrix package provides:
//
//   - Dense[T]: row-major r×c storage with bounds-checked At/Set.
//   - Square[T]: Dense with an n×n construction guarantee.
//   - Diagonal[T]: n×n logical shape, n stored values; off-diagonal cells read
//     as zero and reject writes.
//   - Symmetric[T]: n×n logical shape over lower-triangular storage; (i,j) and
//     (j,i) always share one value.
//   - Kernels written once against Reader[T]: Mul, Scale, Add, Sub, AddScalar,
//     SubScalar, Hadamard, Transpose. Results are always fresh *Dense values.
//   - Operation[T] + Apply for user-defined binary operations.
//   - Change notification: every committed Set emits one ChangeEvent to the
//     observers registered with OnChange or WithObserver.
//   - Locked[T] for callers that share a matrix between goroutines.
//
// Element types satisfy Number (integers, floats, complex). Operators are
// resolved by the compiler through Ops[T]; unsupported types do not compile.
//
// All errors are sentinels from errors.go, wrapped with call-site context and
// matched with errors.Is.
//
// See the examples in this package and the changelog / interop subpackages.
package matrix
