// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Notify observers exactly once per committed write.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) copy; At/Set: O(1) + O(k) observers; Clone: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "From"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//   - obs holds the registered change observers.
type Dense[T Number] struct {
	r, c           int  // row and column counts
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
	obs            observers[T]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
)

// newDense allocates an r×c Dense under the resolved options and registers observers.
// Callers validate the shape.
func newDense[T Number](rows, cols int, o options[T]) *Dense[T] {
	m := &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}
	for _, fn := range o.observers {
		m.obs.add(fn)
	}

	return m
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDense(rows, cols, gatherOptions(opts...)), nil
}

// NewDenseFrom creates a Dense holding a deep copy of src (src[i][j] → (i,j)).
// Later mutations of src do not affect the matrix, and vice versa.
//
// Errors:
//   - ErrMissingSource (nil src), ErrInvalidDimensions (empty src),
//     ErrRaggedSource (rows of unequal length), ErrNaNInf (policy on, non-finite value).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[T Number](src [][]T, opts ...Option[T]) (*Dense[T], error) {
	rows, cols, err := ValidateGrid(src)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFrom: %w", err)
	}
	o := gatherOptions(opts...)
	m := newDense(rows, cols, o)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = o.checkValue(src[i][j]); err != nil {
				return nil, denseErrorf(ctxFrom, i, j, err)
			}
		}
		copy(m.data[i*cols:(i+1)*cols], src[i])
	}

	return m, nil
}

// NewDenseFromFlat creates an r×c Dense from a row-major flat slice (values[i*cols+j] → (i,j)).
// The slice is copied.
//
// Errors:
//   - ErrMissingSource (nil values), ErrInvalidDimensions (rows<=0 or cols<=0),
//     ErrDimensionMismatch (len(values) != rows*cols), ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromFlat[T Number](rows, cols int, values []T, opts ...Option[T]) (*Dense[T], error) {
	if values == nil {
		return nil, fmt.Errorf("NewDenseFromFlat: %w", ErrMissingSource)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDenseFromFlat(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewDenseFromFlat: want %d values, got %d: %w", rows*cols, len(values), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	for k, v := range values {
		if err := o.checkValue(v); err != nil {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, err)
		}
	}
	m := newDense(rows, cols, o)
	copy(m.data, values)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare sentinel; At/Set add method context.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) and then notifies observers with the old and new value.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when the numeric policy rejects v.
//     No event is emitted on error.
//
// Complexity:
//   - Time O(1) + O(k) for k observers.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNaNInf(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	old := m.data[off]
	m.data[off] = v
	m.obs.emit(ChangeEvent[T]{Row: row, Col: col, Old: old, New: v})

	return nil
}

// ToArray returns a fresh [][]T copy of the matrix.
// Complexity: O(r*c).
func (m *Dense[T]) ToArray() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Values yields every element in row-major order.
func (m *Dense[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields (Index, value) pairs in row-major order.
func (m *Dense[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for off, v := range m.data {
			if !yield(Index{Row: off / m.c, Col: off % m.c}, v) {
				return
			}
		}
	}
}

// OnChange registers fn to run after every successful Set. See Matrix.OnChange.
func (m *Dense[T]) OnChange(fn Observer[T]) (cancel func()) { return m.obs.add(fn) }

// Clone returns a deep copy (new buffer, same numeric policy, no observers).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] { return m.cloneDense() }

// cloneDense is Clone with the concrete return type.
func (m *Dense[T]) cloneDense() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String provides a readable row-wise dump for diagnostics ("[1, 2]\n[3, 4]\n").
// Not for hot paths.
func (m *Dense[T]) String() string {
	return formatGrid[T](m.r, m.c, func(i, j int) T { return m.data[i*m.c+j] })
}

// formatGrid renders a logical grid with the package's row/column delimiters.
// Shared by every variant so String output is identical for equal contents.
func formatGrid[T Number](rows, cols int, at func(i, j int) T) string {
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", at(i, j))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
