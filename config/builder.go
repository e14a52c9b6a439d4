// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"

	"github.com/coopercfg/cooper/config/key"
)

// EmptyPathError occurs when a write operation is given a path that is
// empty after whitespace cleaning.
type EmptyPathError struct {
	Path string
}

// Error implements the error interface.
func (e EmptyPathError) Error() string {
	return fmt.Sprintf("config: path %q is empty after cleaning", e.Path)
}

// PathConflictError occurs when a write path tries to descend through
// an existing value that is not a mapping.
type PathConflictError struct {
	Path string
	Key  string
}

// Error implements the error interface.
func (e PathConflictError) Error() string {
	return fmt.Sprintf("config: %q in path %q refers to a non-mapping value", e.Key, e.Path)
}

// Builder holds a mutable deep copy of a source tree and supports
// path-based mutation before freezing it into a Config. Builders are
// not safe for concurrent use; confine one to a single goroutine,
// typically a short-lived assembly phase during startup.
type Builder struct {
	root map[string]any
}

// NewBuilder creates a Builder holding a mutable deep copy of root.
// A nil root yields a Builder with an empty tree.
func NewBuilder(root map[string]any) *Builder {
	return &Builder{root: mutableMap(root)}
}

// BuildUpon creates a Builder seeded with a mutable deep copy of the
// given Config's tree.
func BuildUpon(c *Config) *Builder {
	return &Builder{root: c.root.Map()}
}

// Get returns the value at the given path in the current mutable tree.
// The empty path returns the whole root map.
func (b *Builder) Get(path string) Value {
	chain := key.Parse(path)
	if len(chain) == 0 {
		return Of(b.root)
	}

	m := b.root
	for i, k := range chain {
		v, ok := m[k.Key()]
		if !ok || v == nil {
			return None()
		}
		if i == len(chain)-1 {
			return Of(v)
		}
		switch x := v.(type) {
		case map[string]any:
			m = x
		case *Object:
			// frozen composites stored via Put are descendable too
			m = x.Map()
		default:
			return None()
		}
	}
	return None()
}

// Put force-sets the value at path, creating missing intermediate
// mappings. A nil value deletes the property if it is present and is
// a no-op otherwise, so deleting never creates intermediate mappings.
// Descending through an existing non-mapping value fails with
// PathConflictError.
func (b *Builder) Put(path string, value any) error {
	chain := key.Parse(path)
	if len(chain) == 0 {
		return EmptyPathError{Path: path}
	}

	if value == nil {
		if !b.Get(path).IsSet() {
			return nil
		}
		b.deleteAt(chain)
		return nil
	}
	return setAt(b.root, chain, value)
}

// PutIfEmpty sets the value at path only if no value is present there
// yet. A nil value or an already-present property makes this a no-op.
// It never deletes.
func (b *Builder) PutIfEmpty(path string, value any) error {
	if value == nil || b.Get(path).IsSet() {
		return nil
	}
	return b.Put(path, value)
}

// PutOf applies Put only if opt carries a value, distinguishing
// "caller has nothing to contribute" (no-op) from "caller wants to
// delete" (Put with nil). Ideal for dynamic inputs like environment
// lookups or command line args.
func (b *Builder) PutOf(path string, opt Value) error {
	v, ok := opt.Get()
	if !ok {
		return nil
	}
	return b.Put(path, v)
}

// Set implements the Store interface so config sources can apply
// themselves to a Builder. Unlike Put, keys are used verbatim (no
// whitespace cleaning), nil values are stored as given (and later
// pruned by Build) and composite values are deep-copied in.
func (b *Builder) Set(k key.Keyer, v any) error {
	switch x := k.(type) {
	case key.Name:
		b.root[string(x)] = mutableValue(v)
		return nil
	case key.Chain:
		if len(x) == 0 {
			return EmptyPathError{}
		}
		return setAt(b.root, x, mutableValue(v))
	default:
		return UnknownKeyerError{key: k}
	}
}

// Build freezes the current state of the tree into an immutable
// Config. The Builder stays usable afterward; later mutations do not
// affect previously built Configs.
func (b *Builder) Build() *Config {
	root, index := freeze(b.root)
	return &Config{root: root, index: index}
}

// setAt descends along all but the last chain component, creating
// mutable mappings for missing (or nil) keys, and sets the final key.
func setAt(m map[string]any, chain key.Chain, value any) error {
	for _, k := range chain[:len(chain)-1] {
		v, ok := m[k.Key()]
		if !ok || v == nil {
			child := make(map[string]any)
			m[k.Key()] = child
			m = child
			continue
		}

		child, ok := v.(map[string]any)
		if !ok {
			return PathConflictError{Path: chain.Key(), Key: k.Key()}
		}
		m = child
	}

	m[chain[len(chain)-1].Key()] = value
	return nil
}

// deleteAt removes the leaf key of chain from its parent mapping. The
// caller has already verified the path resolves to a present value.
func (b *Builder) deleteAt(chain key.Chain) {
	m := b.root
	for _, k := range chain[:len(chain)-1] {
		child, ok := m[k.Key()].(map[string]any)
		if !ok {
			return
		}
		m = child
	}
	delete(m, chain[len(chain)-1].Key())
}

// mutableMap returns a deep mutable copy of m. Nil map entries are
// kept; they stay invisible to Get and are pruned at Build.
func mutableMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = mutableValue(v)
	}
	return out
}

// mutableSlice returns a deep mutable copy of s with nil elements
// dropped.
func mutableSlice(s []any) []any {
	out := make([]any, 0, len(s))
	for _, v := range s {
		if v == nil {
			continue
		}
		out = append(out, mutableValue(v))
	}
	return out
}

// mutableValue returns a deep mutable copy of v. Frozen Objects and
// Arrays thaw back into plain maps and slices.
func mutableValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return mutableMap(x)
	case []any:
		return mutableSlice(x)
	case []map[string]any:
		s := make([]any, len(x))
		for i, m := range x {
			s[i] = m
		}
		return mutableSlice(s)
	case *Object:
		return x.Map()
	case *Array:
		return x.Slice()
	default:
		return v
	}
}
