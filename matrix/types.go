// SPDX-License-Identifier: MIT

// Package matrix: domain-facing contracts shared by every matrix variant.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "iter"

// Index is a logical (row, col) position.
type Index struct {
	Row int // zero-based row
	Col int // zero-based column
}

// Reader is the read-only contract the arithmetic kernels and operations are
// written against. Every variant satisfies it, so kernels work uniformly
// across dense and compact storage.
//
// Complexity notes: all methods are expected O(1).
type Reader[T Number] interface {
	// Rows returns the logical number of rows.
	Rows() int

	// Cols returns the logical number of columns.
	Cols() int

	// At retrieves the logical element at (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

// Matrix is a mutable two-dimensional grid of T with fixed logical shape.
// Implementations differ in physical storage and write legality only; bounds
// checking, change notification and iteration behave identically.
type Matrix[T Number] interface {
	Reader[T]

	// Set assigns v at (i, j) and notifies observers once on success.
	// Returns ErrOutOfRange on invalid indices; variants may add
	// ErrInvalidWritePosition. A failed Set emits no event.
	Set(i, j int, v T) error

	// ToArray materializes the full logical Rows()×Cols() grid as a fresh copy.
	// Complexity: O(rows*cols).
	ToArray() [][]T

	// Values yields every logical element in row-major order.
	// The sequence is lazy and restartable.
	Values() iter.Seq[T]

	// All yields (position, value) pairs in row-major order.
	All() iter.Seq2[Index, T]

	// OnChange registers fn to run after every successful Set.
	// The returned func removes the registration; calling it twice is harmless.
	OnChange(fn Observer[T]) (cancel func())

	// Clone returns a deep copy with the same variant and numeric policy.
	// Observers are not copied.
	// Complexity: O(physical size).
	Clone() Matrix[T]
}
