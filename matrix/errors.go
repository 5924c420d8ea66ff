// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, accessors and kernels return these sentinels (possibly
// wrapped with call-site context) and tests check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Call sites add context with fmt.Errorf("ctx: %w", ErrX); callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil/missing input -> shape/dimensions -> index range -> write legality -> numeric policy.

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive
	// (rows<=0, cols<=0, n<=0, or an empty source).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0,Rows)×[0,Cols).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidShape is the parent of every "source has the wrong shape" error.
	// ErrNonSquare, ErrAsymmetry and ErrRaggedSource all match it via errors.Is.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrInvalidWritePosition signals a write to a cell the variant cannot store
	// (off-diagonal write on a Diagonal matrix).
	ErrInvalidWritePosition = errors.New("matrix: invalid write position")

	// ErrMissingSource indicates a nil source grid/slice where one is required.
	ErrMissingSource = errors.New("matrix: missing source")

	// ErrNilMatrix indicates that a nil operand was passed to a kernel or operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Shape refinements. Each one wraps ErrInvalidShape.
var (
	// ErrNonSquare signals that a square source was required but Rows != Cols.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidShape)

	// ErrAsymmetry signals that a source expected to be symmetric has src[i][j] != src[j][i].
	ErrAsymmetry = fmt.Errorf("%w: matrix is not symmetric", ErrInvalidShape)

	// ErrRaggedSource signals that the rows of a source grid differ in length.
	ErrRaggedSource = fmt.Errorf("%w: source rows differ in length", ErrInvalidShape)
)
