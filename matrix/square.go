// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Square is an n×n dense matrix. It adds construction-time validation only;
// storage, access and notification are the embedded Dense's.
type Square[T Number] struct {
	*Dense[T]
}

var _ Matrix[int] = (*Square[int])(nil)

// NewSquare creates an n×n zero matrix.
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: O(n²).
func NewSquare[T Number](n int, opts ...Option[T]) (*Square[T], error) {
	d, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSquare: %w", err)
	}

	return &Square[T]{Dense: d}, nil
}

// NewSquareFrom creates a Square holding a deep copy of src.
// Errors: those of NewDenseFrom, plus ErrNonSquare when len(src) != len(src[0]).
// Complexity: O(n²).
func NewSquareFrom[T Number](src [][]T, opts ...Option[T]) (*Square[T], error) {
	if _, err := ValidateSquareGrid(src); err != nil {
		return nil, fmt.Errorf("NewSquareFrom: %w", err)
	}
	d, err := NewDenseFrom(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSquareFrom: %w", err)
	}

	return &Square[T]{Dense: d}, nil
}

// Size returns n.
func (s *Square[T]) Size() int { return s.r }

// Clone returns a deep copy that is still a *Square.
func (s *Square[T]) Clone() Matrix[T] { return &Square[T]{Dense: s.cloneDense()} }
