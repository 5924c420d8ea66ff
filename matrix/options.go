// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each option changes observable behavior and is covered by tests.
//   - Options are type-parameterized because observers are typed by the element type.
//
// Notes:
//   - Numeric policy (validateNaNInf) is carried by Clone and by the *As* converters
//     in api.go; observers never are.
//   - For integer element types the NaN/Inf policy is a no-op.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on construction and Set.
// Off by default: the element type is generic and integer matrices never need it.
const DefaultValidateNaNInf = false

// ---------- Public option type (functional) ----------

// Option configures a matrix at construction time. Safe to apply repeatedly.
type Option[T Number] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T Number] struct {
	validateNaNInf bool          // DefaultValidateNaNInf
	observers      []Observer[T] // registered in order after construction
}

// WithObserver registers fn on the new matrix, as if OnChange(fn) were called
// right after construction. Construction itself never emits events.
// A nil fn is ignored.
func WithObserver[T Number](fn Observer[T]) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithValidateNaNInf rejects NaN/±Inf in source data and in Set with ErrNaNInf.
func WithValidateNaNInf[T Number]() Option[T] {
	return func(o *options[T]) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts any value (the default).
func WithNoValidateNaNInf[T Number]() Option[T] {
	return func(o *options[T]) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions[T Number]() options[T] {
	return options[T]{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user options over defaults. Nil options are skipped.
// Complexity: O(len(user)).
func gatherOptions[T Number](user ...Option[T]) options[T] {
	o := defaultOptions[T]()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// checkValue enforces the numeric policy for a single value.
func (o options[T]) checkValue(v T) error {
	if o.validateNaNInf && isNaNInf(v) {
		return ErrNaNInf
	}

	return nil
}
