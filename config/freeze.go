// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"jsouthworth.net/go/immutable/hashmap"
	"jsouthworth.net/go/immutable/vector"
)

// freeze converts a mutable tree into its immutable form while
// building the flat path index. Nil values and containers that are
// empty after recursive filtering are pruned, so they appear neither
// in the returned tree nor in the index.
func freeze(root map[string]any) (*Object, map[string]any) {
	index := make(map[string]any)
	obj := freezeMap(root, "", index)
	if obj == nil {
		obj = newObject()
	}
	return obj, index
}

// freezeMap freezes every entry of m under its extended path. Entries
// whose values freeze to nothing are dropped; kept entries are
// recorded in the index. Returns nil if no entry survives.
func freezeMap(m map[string]any, path string, index map[string]any) *Object {
	store := hashmap.Empty().Transform(func(t *hashmap.TMap) *hashmap.TMap {
		for k, v := range m {
			p := extendPath(path, k)
			fv := freezeValue(v, p, index)
			if fv == nil {
				continue
			}
			t = t.Assoc(k, fv)
			index[p] = fv
		}
		return t
	})

	if store.Length() == 0 {
		return nil
	}
	return &Object{store: store}
}

// freezeSlice freezes the elements of s under the sequence's own path;
// elements are not indexed by position. Returns nil if no element
// survives.
func freezeSlice(s []any, path string, index map[string]any) *Array {
	store := vector.Empty().Transform(func(t *vector.TVector) *vector.TVector {
		for _, v := range s {
			fv := freezeValue(v, path, index)
			if fv == nil {
				continue
			}
			t = t.Append(fv)
		}
		return t
	})

	if store.Length() == 0 {
		return nil
	}
	return &Array{store: store}
}

// freezeValue returns the immutable form of v, or nil if v freezes to
// nothing. Scalars are returned unchanged and are never pruned, even
// falsy ones like false, 0 and "".
func freezeValue(v any, path string, index map[string]any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case map[string]any:
		obj := freezeMap(x, path, index)
		if obj == nil {
			return nil
		}
		return obj
	case []any:
		arr := freezeSlice(x, path, index)
		if arr == nil {
			return nil
		}
		return arr
	case []map[string]any:
		// TOML array tables decode to this shape.
		s := make([]any, len(x))
		for i, m := range x {
			s[i] = m
		}
		arr := freezeSlice(s, path, index)
		if arr == nil {
			return nil
		}
		return arr
	case *Object:
		// already-frozen composites re-freeze under the new path so
		// their inner paths end up in the index too
		obj := freezeMap(x.Map(), path, index)
		if obj == nil {
			return nil
		}
		return obj
	case *Array:
		arr := freezeSlice(x.Slice(), path, index)
		if arr == nil {
			return nil
		}
		return arr
	default:
		return v
	}
}

func extendPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
