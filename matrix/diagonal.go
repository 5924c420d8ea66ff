// SPDX-License-Identifier: MIT

// Package matrix - Diagonal storage.
//
// Purpose:
//   - Represent an n×n logical matrix with only its n diagonal values stored.
//   - Off-diagonal cells read as zero and reject writes (ErrInvalidWritePosition).
//
// Complexity quicksheet:
//   - NewDiagonal: O(n); At/Set: O(1); ToArray: O(n²); Clone: O(n).

package matrix

import (
	"fmt"
	"iter"
)

// Diagonal is an n×n matrix whose physical storage is the diagonal only.
type Diagonal[T Number] struct {
	n              int // logical size (rows == cols == n)
	diag           []T // physical storage, len == n; diag[i] is cell (i,i)
	validateNaNInf bool
	obs            observers[T]
}

var _ Matrix[int] = (*Diagonal[int])(nil)

// NewDiagonal creates an n×n Diagonal from the n diagonal values (copied).
//
// Errors:
//   - ErrMissingSource (nil values), ErrInvalidDimensions (empty values),
//     ErrNaNInf (policy on, non-finite value).
//
// Complexity: O(n).
func NewDiagonal[T Number](values []T, opts ...Option[T]) (*Diagonal[T], error) {
	if values == nil {
		return nil, fmt.Errorf("NewDiagonal: %w", ErrMissingSource)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("NewDiagonal: %w", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	for i, v := range values {
		if err := o.checkValue(v); err != nil {
			return nil, fmt.Errorf("NewDiagonal: value %d: %w", i, err)
		}
	}
	d := &Diagonal[T]{
		n:              len(values),
		diag:           append([]T(nil), values...),
		validateNaNInf: o.validateNaNInf,
	}
	for _, fn := range o.observers {
		d.obs.add(fn)
	}

	return d, nil
}

// Rows returns n.
func (d *Diagonal[T]) Rows() int { return d.n }

// Cols returns n.
func (d *Diagonal[T]) Cols() int { return d.n }

// Size returns n.
func (d *Diagonal[T]) Size() int { return d.n }

// inRange reports whether (i, j) is a valid logical position.
func (d *Diagonal[T]) inRange(i, j int) bool {
	return i >= 0 && i < d.n && j >= 0 && j < d.n
}

// At returns diag[i] when i == j and zero otherwise.
// Errors: ErrOutOfRange.
func (d *Diagonal[T]) At(i, j int) (T, error) {
	var zero T
	if !d.inRange(i, j) {
		return zero, fmt.Errorf("Diagonal.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i != j {
		return zero, nil
	}

	return d.diag[i], nil
}

// Set writes v on the diagonal and notifies observers with logical coordinates.
//
// Errors:
//   - ErrOutOfRange (bounds checked first),
//   - ErrInvalidWritePosition for i != j, whatever v is,
//   - ErrNaNInf when the numeric policy rejects v.
func (d *Diagonal[T]) Set(i, j int, v T) error {
	if !d.inRange(i, j) {
		return fmt.Errorf("Diagonal.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i != j {
		return fmt.Errorf("Diagonal.Set(%d,%d): %w", i, j, ErrInvalidWritePosition)
	}
	if d.validateNaNInf && isNaNInf(v) {
		return fmt.Errorf("Diagonal.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	old := d.diag[i]
	d.diag[i] = v
	d.obs.emit(ChangeEvent[T]{Row: i, Col: j, Old: old, New: v})

	return nil
}

// Diagonal returns a copy of the stored diagonal values.
func (d *Diagonal[T]) Diagonal() []T { return append([]T(nil), d.diag...) }

// ToArray expands the diagonal into a dense n×n grid.
// Complexity: O(n²).
func (d *Diagonal[T]) ToArray() [][]T {
	out := make([][]T, d.n)
	for i := range out {
		out[i] = make([]T, d.n)
		out[i][i] = d.diag[i]
	}

	return out
}

// Values yields the expanded logical values in row-major order.
func (d *Diagonal[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields (Index, value) pairs of the expanded grid in row-major order.
func (d *Diagonal[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		var zero T
		for i := 0; i < d.n; i++ {
			for j := 0; j < d.n; j++ {
				v := zero
				if i == j {
					v = d.diag[i]
				}
				if !yield(Index{Row: i, Col: j}, v) {
					return
				}
			}
		}
	}
}

// OnChange registers fn to run after every successful Set.
func (d *Diagonal[T]) OnChange(fn Observer[T]) (cancel func()) { return d.obs.add(fn) }

// Clone returns a deep copy that is still a *Diagonal.
func (d *Diagonal[T]) Clone() Matrix[T] {
	return &Diagonal[T]{n: d.n, diag: append([]T(nil), d.diag...), validateNaNInf: d.validateNaNInf}
}

// String renders the expanded grid (same format as Dense).
func (d *Diagonal[T]) String() string {
	return formatGrid[T](d.n, d.n, func(i, j int) T {
		if i == j {
			return d.diag[i]
		}
		var zero T
		return zero
	})
}
