// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "fmt"

// Value represents a configuration value that may or may not be set.
// This distinguishes between "not set" and "set to a zero value". A
// Value never carries nil: nil marks absence throughout the tree.
type Value struct {
	v  any
	ok bool
}

// Of wraps v in a Value. A nil v yields an unset Value.
func Of(v any) Value {
	return Value{v: v, ok: v != nil}
}

// Maybe wraps a comma-ok pair, e.g. the result of a lookup, in a Value.
func Maybe(v any, ok bool) Value {
	if !ok {
		return Value{}
	}
	return Of(v)
}

// None returns the unset Value.
func None() Value {
	return Value{}
}

// Get returns the underlying value and whether it is set.
func (v Value) Get() (any, bool) {
	return v.v, v.ok
}

// IsSet reports whether a value is present.
func (v Value) IsSet() bool {
	return v.ok
}

// Or returns the underlying value, or def if the Value is unset.
func (v Value) Or(def any) any {
	if !v.ok {
		return def
	}
	return v.v
}

// NotSetError occurs when a typed read is attempted on an unset Value.
type NotSetError struct{}

// Error implements the error interface.
func (NotSetError) Error() string {
	return "config: value is not set"
}

// TypeMismatchError occurs when the caller-requested type does not
// match the stored value's dynamic type. Stored values are dynamically
// typed and type safety is delegated to the call site, so this error
// signals a caller contract violation rather than a recoverable
// condition.
type TypeMismatchError struct {
	Want string
	Got  string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("config: value is a %s, not a %s", e.Got, e.Want)
}

// As returns the underlying value of v asserted to type T. It returns
// NotSetError if v is unset and TypeMismatchError if the stored value
// is not a T.
func As[T any](v Value) (T, error) {
	var zero T
	if !v.ok {
		return zero, NotSetError{}
	}

	t, ok := v.v.(T)
	if !ok {
		return zero, TypeMismatchError{
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", v.v),
		}
	}
	return t, nil
}
