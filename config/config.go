// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/coopercfg/cooper/config/key"

	"github.com/go-viper/mapstructure/v2"
)

// NilRootError occurs when a Config is constructed from a nil root
// map. Use a Builder if "no source at all" should mean an empty tree.
type NilRootError struct{}

// Error implements the error interface.
func (NilRootError) Error() string {
	return "config: root map cannot be nil"
}

// Config is an immutable snapshot of a configuration tree together
// with a flat index from dot-joined paths to the immutable sub-value
// at each path. It is safe for unsynchronized concurrent reads.
type Config struct {
	root  *Object
	index map[string]any
}

// New freezes a deep copy of root into a Config. The root map must
// not be nil; a map that freezes to nothing yields a Config with an
// empty tree.
func New(root map[string]any) (*Config, error) {
	if root == nil {
		return nil, NilRootError{}
	}

	obj, index := freeze(root)
	return &Config{root: obj, index: index}, nil
}

// Get returns the value at the given path. Paths are cleaned of all
// whitespace first, so "proxy.port" and " proxy . port " resolve
// identically. The empty path returns the whole root Object. Lookups
// are O(1) against the index built during freezing; paths pruned as
// nil or empty are absent.
func (c *Config) Get(path string) Value {
	p := key.Clean(path)
	if p == "" {
		return Of(c.root)
	}

	v, ok := c.index[p]
	return Maybe(v, ok)
}

// Paths returns every indexed path in sorted order, for introspection.
func (c *Config) Paths() []string {
	paths := make([]string, 0, len(c.index))
	for p := range c.index {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Root returns the immutable root Object.
func (c *Config) Root() *Object {
	return c.root
}

// MarshalJSON implements the json.Marshaler interface. Keys are
// emitted in sorted order so output is deterministic.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.root)
}

// Unmarshal decodes the frozen tree into v using the "config" struct
// tag. String values decode into types implementing
// encoding.TextUnmarshaler, and string or integer values decode into
// time.Duration. Failures surface as TypeCoercionError.
func (c *Config) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(c.root.Map())
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a config
// value to a struct field whose type does not match the config
// value type, even after coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type().Name(), e.to.Type().Name(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch x := data.(type) {
		case string:
			return time.ParseDuration(x)
		case int:
			return time.Duration(int64(x)), nil
		case int64:
			return time.Duration(x), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
