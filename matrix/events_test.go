// SPDX-License-Identifier: MIT
// Package matrix_test: change notification tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/genmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestOnChangeOneEventPerSet(t *testing.T) {
	m := MustDenseFrom(t, [][]int{{1, 2}, {3, 4}})
	var got []matrix.ChangeEvent[int]
	m.OnChange(func(ev matrix.ChangeEvent[int]) { got = append(got, ev) })

	require.NoError(t, m.Set(1, 0, 30))
	require.NoError(t, m.Set(1, 0, 30)) // same value still notifies
	require.Error(t, m.Set(5, 0, 1))    // failed writes never notify

	require.Equal(t, []matrix.ChangeEvent[int]{
		{Row: 1, Col: 0, Old: 3, New: 30},
		{Row: 1, Col: 0, Old: 30, New: 30},
	}, got)
}

func TestOnChangeCancel(t *testing.T) {
	m := MustDense[int](t, 1, 1)
	var a, b int
	cancelA := m.OnChange(func(matrix.ChangeEvent[int]) { a++ })
	m.OnChange(func(matrix.ChangeEvent[int]) { b++ })

	require.NoError(t, m.Set(0, 0, 1))
	cancelA()
	cancelA() // idempotent
	require.NoError(t, m.Set(0, 0, 2))

	require.Equal(t, 1, a)
	require.Equal(t, 2, b)

	// A nil observer registers nothing and its cancel is safe.
	m.OnChange(nil)()
	require.NoError(t, m.Set(0, 0, 3))
	require.Equal(t, 3, b)
}

func TestOnChangeOrderAndCancelDuringDelivery(t *testing.T) {
	m := MustDense[int](t, 1, 1)
	var order []string
	var cancelSecond func()
	m.OnChange(func(matrix.ChangeEvent[int]) {
		order = append(order, "first")
		cancelSecond()
	})
	cancelSecond = m.OnChange(func(matrix.ChangeEvent[int]) { order = append(order, "second") })
	m.OnChange(func(matrix.ChangeEvent[int]) { order = append(order, "third") })

	require.NoError(t, m.Set(0, 0, 1))
	require.Equal(t, []string{"first", "third"}, order)
}

func TestObserverPanicAfterCommit(t *testing.T) {
	m := MustDense[int](t, 1, 1)
	m.OnChange(func(matrix.ChangeEvent[int]) { panic("observer failure") })

	require.Panics(t, func() { _ = m.Set(0, 0, 7) })
	require.Equal(t, 7, MustAt[int](t, m, 0, 0))
}

func TestWithObserverOption(t *testing.T) {
	var got []matrix.ChangeEvent[float64]
	obs := matrix.WithObserver(func(ev matrix.ChangeEvent[float64]) { got = append(got, ev) })

	// Construction does not notify.
	m, err := matrix.NewDenseFrom([][]float64{{1}}, obs)
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, m.Set(0, 0, 2))
	require.Len(t, got, 1)
	require.Equal(t, 1.0, got[0].Old)
}

func TestVariantEventCoordinates(t *testing.T) {
	t.Run("diagonal", func(t *testing.T) {
		d, err := matrix.NewDiagonal([]int{5, 7, 9})
		require.NoError(t, err)
		var got []matrix.ChangeEvent[int]
		d.OnChange(func(ev matrix.ChangeEvent[int]) { got = append(got, ev) })

		require.NoError(t, d.Set(2, 2, 90))
		require.Error(t, d.Set(0, 1, 1))
		require.Equal(t, []matrix.ChangeEvent[int]{{Row: 2, Col: 2, Old: 9, New: 90}}, got)
	})

	t.Run("symmetric reports caller coordinates", func(t *testing.T) {
		s, err := matrix.NewSymmetric([][]int{{1, 2}, {2, 1}})
		require.NoError(t, err)
		var got []matrix.ChangeEvent[int]
		s.OnChange(func(ev matrix.ChangeEvent[int]) { got = append(got, ev) })

		require.NoError(t, s.Set(0, 1, 20))
		require.NoError(t, s.Set(1, 0, 21))
		require.Equal(t, []matrix.ChangeEvent[int]{
			{Row: 0, Col: 1, Old: 2, New: 20},
			{Row: 1, Col: 0, Old: 20, New: 21},
		}, got)
	})

	t.Run("square", func(t *testing.T) {
		s, err := matrix.NewSquare[int](2)
		require.NoError(t, err)
		count := 0
		s.OnChange(func(matrix.ChangeEvent[int]) { count++ })
		require.NoError(t, s.Set(1, 1, 1))
		require.Equal(t, 1, count)
	})
}

func TestNaNRejectionDoesNotNotify(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf[float64]())
	require.NoError(t, err)
	calls := 0
	m.OnChange(func(matrix.ChangeEvent[float64]) { calls++ })

	var zero float64
	require.ErrorIs(t, m.Set(0, 0, 1/zero), matrix.ErrNaNInf)
	require.Zero(t, calls)
}
