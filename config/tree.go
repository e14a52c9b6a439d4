// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding/json"
	"sort"

	"jsouthworth.net/go/immutable/hashmap"
	"jsouthworth.net/go/immutable/vector"
)

// Object is an immutable mapping from string keys to tree values
// (scalars, *Object or *Array). It has no mutating methods; accessors
// that expose composite state return detached copies, so nothing
// reachable from a frozen tree can be changed through it.
type Object struct {
	store *hashmap.Map
}

func newObject() *Object {
	return &Object{store: hashmap.Empty()}
}

// Len returns the number of entries in the object.
func (o *Object) Len() int {
	return o.store.Length()
}

// Find returns the value stored under key and whether the key exists.
func (o *Object) Find(key string) (any, bool) {
	return o.store.Find(key)
}

// At returns the value stored under key or nil if it doesn't exist.
func (o *Object) At(key string) any {
	v, ok := o.store.Find(key)
	if !ok {
		return nil
	}
	return v
}

// Contains reports whether the key exists in the object.
func (o *Object) Contains(key string) bool {
	return o.store.Contains(key)
}

// Keys returns the object's keys in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.store.Length())
	o.Range(func(k string, _ any) bool {
		keys = append(keys, k)
		return true
	})
	sort.Strings(keys)
	return keys
}

// Range iterates over the object's entries, calling fn for each one
// until fn returns false. Iteration order is unspecified.
func (o *Object) Range(fn func(key string, value any) bool) {
	o.store.Range(func(e hashmap.Entry) bool {
		return fn(e.Key().(string), e.Value())
	})
}

// Map returns the object as a deep mutable copy. Changes to the
// returned map do not affect the object.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, o.store.Length())
	o.Range(func(k string, v any) bool {
		out[k] = mutableValue(v)
		return true
	})
	return out
}

// MarshalJSON implements the json.Marshaler interface. Keys are
// emitted in sorted order.
func (o *Object) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, o.store.Length())
	o.Range(func(k string, v any) bool {
		m[k] = v
		return true
	})
	return json.Marshal(m)
}

// Array is an immutable sequence of tree values. Like Object it has
// no mutating methods.
type Array struct {
	store *vector.Vector
}

func newArray() *Array {
	return &Array{store: vector.Empty()}
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return a.store.Length()
}

// At returns the element at index i, or nil if i is out of bounds.
func (a *Array) At(i int) any {
	if i < 0 || i >= a.store.Length() {
		return nil
	}
	return a.store.At(i)
}

// Range iterates over the array's elements, calling fn for each one
// until fn returns false.
func (a *Array) Range(fn func(i int, value any) bool) {
	a.store.Range(func(i int, v any) bool {
		return fn(i, v)
	})
}

// Slice returns the array as a deep mutable copy. Changes to the
// returned slice do not affect the array.
func (a *Array) Slice() []any {
	out := make([]any, 0, a.store.Length())
	a.Range(func(_ int, v any) bool {
		out = append(out, mutableValue(v))
		return true
	})
	return out
}

// MarshalJSON implements the json.Marshaler interface.
func (a *Array) MarshalJSON() ([]byte, error) {
	s := make([]any, 0, a.store.Length())
	a.Range(func(_ int, v any) bool {
		s = append(s, v)
		return true
	})
	return json.Marshal(s)
}
