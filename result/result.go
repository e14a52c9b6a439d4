// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package result provides a generic container holding either a value
// or an error, never both. It is a return-value convenience for APIs
// that would otherwise force callers to juggle (T, error) pairs
// through further composition.
package result

// Result holds either a value or an error.
type Result[T any] struct {
	val T
	err error
}

// Ok returns a Result carrying the given value.
func Ok[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Err returns a Result carrying the given error. It panics if err is
// nil, since a Result must hold exactly one of value or error.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result carries a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get returns the value and error carried by the Result.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

// Or returns the carried value, or def if the Result carries an error.
func (r Result[T]) Or(def T) T {
	if r.err != nil {
		return def
	}
	return r.val
}

// Must returns the carried value and panics with the carried error
// otherwise.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.val
}
