// SPDX-License-Identifier: MIT
// Package matrix: change notification.
//
// Purpose:
//   - Carry an immutable record of every committed write (ChangeEvent).
//   - Keep a per-instance list of observers and invoke them synchronously.
//
// Behavior:
//   - Observers run after the cell is written, in registration order.
//   - The matrix never inspects observer behavior; a panicking observer
//     unwinds to the caller of Set but the written value stays committed.
//   - Cancelled observers are removed immediately; an observer cancelled by an
//     earlier observer during the same delivery is skipped.

package matrix

// ChangeEvent describes one committed write at logical position (Row, Col).
type ChangeEvent[T Number] struct {
	Row int // logical row passed to Set
	Col int // logical column passed to Set
	Old T   // value visible at (Row, Col) before the write
	New T   // value written
}

// Observer receives change events. It returns nothing; failures are its own concern.
type Observer[T Number] func(ChangeEvent[T])

// observerEntry pairs a callback with its registration id so cancel can find it.
type observerEntry[T Number] struct {
	id uint64
	fn Observer[T]
}

// observers is the registration list embedded by every variant.
// The zero value is an empty list.
type observers[T Number] struct {
	next    uint64
	entries []observerEntry[T]
}

// add registers fn and returns its cancel func. A nil fn registers nothing.
// Complexity: O(1) amortized; cancel is O(k) for k observers.
func (o *observers[T]) add(fn Observer[T]) func() {
	if fn == nil {
		return func() {}
	}
	o.next++
	id := o.next
	o.entries = append(o.entries, observerEntry[T]{id: id, fn: fn})

	return func() { o.remove(id) }
}

// remove drops the entry with the given id, if present.
func (o *observers[T]) remove(id uint64) {
	for k := range o.entries {
		if o.entries[k].id == id {
			// Copy-on-remove so a delivery loop holding the old slice is unaffected.
			kept := make([]observerEntry[T], 0, len(o.entries)-1)
			kept = append(kept, o.entries[:k]...)
			kept = append(kept, o.entries[k+1:]...)
			o.entries = kept

			return
		}
	}
}

// active reports whether id is still registered.
func (o *observers[T]) active(id uint64) bool {
	for k := range o.entries {
		if o.entries[k].id == id {
			return true
		}
	}

	return false
}

// emit delivers ev to every registered observer in registration order.
// Observers registered during delivery first see the next event.
// Complexity: O(k²) for k observers; k is expected to be tiny.
func (o *observers[T]) emit(ev ChangeEvent[T]) {
	if len(o.entries) == 0 {
		return
	}
	snapshot := o.entries
	for _, e := range snapshot {
		if !o.active(e.id) {
			continue // cancelled by an earlier observer during this delivery
		}
		e.fn(ev)
	}
}
