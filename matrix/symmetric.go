// SPDX-License-Identifier: MIT

// Package matrix - Symmetric storage.
//
// Purpose:
//   - Represent an n×n symmetric matrix storing only the lower triangle
//     (row i holds i+1 values: columns 0..i).
//   - Map every access at (i,j) with j > i to (j,i), so At(i,j) == At(j,i) always.
//
// Complexity quicksheet:
//   - NewSymmetric: O(n²) validation + copy; At/Set: O(1); Clone: O(n²/2).

package matrix

import (
	"fmt"
	"iter"
)

// Symmetric is an n×n matrix with triangular physical storage.
type Symmetric[T Number] struct {
	n              int
	tri            [][]T // tri[i] has len i+1; tri[i][j] holds cells (i,j) and (j,i)
	validateNaNInf bool
	obs            observers[T]
}

var _ Matrix[int] = (*Symmetric[int])(nil)

// newSymmetric allocates a zero-filled triangle of size n.
func newSymmetric[T Number](n int, o options[T]) *Symmetric[T] {
	s := &Symmetric[T]{n: n, tri: make([][]T, n), validateNaNInf: o.validateNaNInf}
	for i := 0; i < n; i++ {
		s.tri[i] = make([]T, i+1)
	}
	for _, fn := range o.observers {
		s.obs.add(fn)
	}

	return s
}

// NewSymmetricN creates an n×n zero Symmetric.
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: O(n²).
func NewSymmetricN[T Number](n int, opts ...Option[T]) (*Symmetric[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewSymmetricN(%d): %w", n, ErrInvalidDimensions)
	}

	return newSymmetric(n, gatherOptions(opts...)), nil
}

// NewSymmetric creates a Symmetric from an n×n source grid, copying its lower triangle.
//
// Errors (in order):
//   - ErrMissingSource, ErrInvalidDimensions, ErrRaggedSource (grid checks),
//   - ErrNonSquare (rows != cols),
//   - ErrAsymmetry at the first (i,j), j ≤ i, with src[i][j] != src[j][i],
//   - ErrNaNInf (policy on, non-finite value).
//
// Complexity: O(n²).
func NewSymmetric[T Number](src [][]T, opts ...Option[T]) (*Symmetric[T], error) {
	n, err := ValidateSymmetricGrid(src)
	if err != nil {
		return nil, fmt.Errorf("NewSymmetric: %w", err)
	}
	o := gatherOptions(opts...)
	s := newSymmetric(n, o)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if err = o.checkValue(src[i][j]); err != nil {
				return nil, fmt.Errorf("NewSymmetric: (%d,%d): %w", i, j, err)
			}
		}
		copy(s.tri[i], src[i][:i+1])
	}

	return s, nil
}

// Rows returns n.
func (s *Symmetric[T]) Rows() int { return s.n }

// Cols returns n.
func (s *Symmetric[T]) Cols() int { return s.n }

// Size returns n.
func (s *Symmetric[T]) Size() int { return s.n }

// cell maps a bounds-checked logical (i,j) to its physical triangle slot.
func (s *Symmetric[T]) cell(i, j int) (int, int, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, 0, ErrOutOfRange
	}
	if j > i {
		return j, i, nil
	}

	return i, j, nil
}

// At returns the value at (i,j); (i,j) and (j,i) share one slot.
// Errors: ErrOutOfRange.
func (s *Symmetric[T]) At(i, j int) (T, error) {
	pi, pj, err := s.cell(i, j)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Symmetric.At(%d,%d): %w", i, j, err)
	}

	return s.tri[pi][pj], nil
}

// Set writes v into the slot shared by (i,j) and (j,i), then notifies
// observers once with the caller's (i,j).
// Errors: ErrOutOfRange; ErrNaNInf when the numeric policy rejects v.
func (s *Symmetric[T]) Set(i, j int, v T) error {
	pi, pj, err := s.cell(i, j)
	if err != nil {
		return fmt.Errorf("Symmetric.Set(%d,%d): %w", i, j, err)
	}
	if s.validateNaNInf && isNaNInf(v) {
		return fmt.Errorf("Symmetric.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	old := s.tri[pi][pj]
	s.tri[pi][pj] = v
	s.obs.emit(ChangeEvent[T]{Row: i, Col: j, Old: old, New: v})

	return nil
}

// at reads a logical cell without bounds checks. Callers guarantee range.
func (s *Symmetric[T]) at(i, j int) T {
	if j > i {
		return s.tri[j][i]
	}

	return s.tri[i][j]
}

// ToArray expands the triangle into a dense n×n grid.
// Complexity: O(n²).
func (s *Symmetric[T]) ToArray() [][]T {
	out := make([][]T, s.n)
	for i := range out {
		out[i] = make([]T, s.n)
		for j := 0; j < s.n; j++ {
			out[i][j] = s.at(i, j)
		}
	}

	return out
}

// Values yields the expanded logical values in row-major order.
func (s *Symmetric[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields (Index, value) pairs of the expanded grid in row-major order.
func (s *Symmetric[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i := 0; i < s.n; i++ {
			for j := 0; j < s.n; j++ {
				if !yield(Index{Row: i, Col: j}, s.at(i, j)) {
					return
				}
			}
		}
	}
}

// OnChange registers fn to run after every successful Set.
func (s *Symmetric[T]) OnChange(fn Observer[T]) (cancel func()) { return s.obs.add(fn) }

// Clone returns a deep copy that is still a *Symmetric.
func (s *Symmetric[T]) Clone() Matrix[T] {
	cp := &Symmetric[T]{n: s.n, tri: make([][]T, s.n), validateNaNInf: s.validateNaNInf}
	for i := range s.tri {
		cp.tri[i] = append([]T(nil), s.tri[i]...)
	}

	return cp
}

// String renders the expanded grid (same format as Dense).
func (s *Symmetric[T]) String() string {
	return formatGrid[T](s.n, s.n, s.at)
}
