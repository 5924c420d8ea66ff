// SPDX-License-Identifier: MIT

// Package matrix: opt-in synchronization.
//
// The core types are single-goroutine. Locked wraps any Matrix with one
// sync.RWMutex so it can be shared:
//   - Rows/Cols/At/ToArray/Clone take the read lock.
//   - Set/OnChange take the write lock; observers run while it is held and
//     must not call back into the same Locked value.
//   - Values/All iterate a snapshot taken under the read lock, so loop bodies
//     may freely call Set.
//   - View/Update run a multi-step closure under one lock acquisition.
package matrix

import (
	"iter"
	"sync"
)

// Locked is a goroutine-safe wrapper around a Matrix.
type Locked[T Number] struct {
	mu    sync.RWMutex // guards inner
	inner Matrix[T]
}

var _ Matrix[int] = (*Locked[int])(nil)

// NewLocked wraps m. All further access must go through the wrapper.
// Errors: ErrNilMatrix.
func NewLocked[T Number](m Matrix[T]) (*Locked[T], error) {
	if isNilReader[T](m) {
		return nil, matrixErrorf("NewLocked", ErrNilMatrix)
	}

	return &Locked[T]{inner: m}, nil
}

// Rows returns the wrapped matrix's row count.
func (l *Locked[T]) Rows() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.inner.Rows()
}

// Cols returns the wrapped matrix's column count.
func (l *Locked[T]) Cols() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.inner.Cols()
}

// At reads (i, j) under the read lock.
func (l *Locked[T]) At(i, j int) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.inner.At(i, j)
}

// Set writes (i, j) under the write lock.
func (l *Locked[T]) Set(i, j int, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Set(i, j, v)
}

// ToArray copies the logical grid under the read lock.
func (l *Locked[T]) ToArray() [][]T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.inner.ToArray()
}

// Values yields a row-major snapshot of the logical values.
func (l *Locked[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range l.ToArray() {
			for _, v := range row {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// All yields (Index, value) pairs of a row-major snapshot.
func (l *Locked[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i, row := range l.ToArray() {
			for j, v := range row {
				if !yield(Index{Row: i, Col: j}, v) {
					return
				}
			}
		}
	}
}

// OnChange registers fn under the write lock. The returned cancel func also locks.
func (l *Locked[T]) OnChange(fn Observer[T]) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	inner := l.inner.OnChange(fn)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		inner()
	}
}

// Clone returns a new Locked around a deep copy of the wrapped matrix.
func (l *Locked[T]) Clone() Matrix[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &Locked[T]{inner: l.inner.Clone()}
}

// View runs fn with the wrapped matrix under the read lock.
// fn must not mutate m or retain it.
func (l *Locked[T]) View(fn func(m Matrix[T]) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return fn(l.inner)
}

// Update runs fn with the wrapped matrix under the write lock, making a
// sequence of writes atomic with respect to other callers.
func (l *Locked[T]) Update(fn func(m Matrix[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(l.inner)
}
