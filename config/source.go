// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"log/slog"

	"github.com/coopercfg/cooper/config/key"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// UnknownKeyerError occurs when a source sets a value with a key.Keyer
// implementation the store does not understand.
type UnknownKeyerError struct {
	key key.Keyer
}

// Error implements the error interface.
func (e UnknownKeyerError) Error() string {
	return fmt.Sprintf("config: source tried setting config value with unknown key.Keyer: %s", e.key.Key())
}

// Read constructs a Builder by applying the given sources in order.
// Subsequent sources override previous sources. Call Build on the
// returned Builder, optionally after further mutations, to obtain the
// frozen Config.
func Read(srcs ...Source) (*Builder, error) {
	b := NewBuilder(nil)
	for _, src := range srcs {
		err := src.Apply(b)
		if err != nil {
			return nil, err
		}
		slog.Debug("applied config source", slog.String("source", fmt.Sprintf("%T", src)))
	}
	return b, nil
}

// Map is an ordinary map[string]any but implements the Source interface.
type Map map[string]any

// Apply implements the Source interface. It recursively walks the underlying
// map to find key value pairs to set on the given store.
func (m Map) Apply(store Store) error {
	return walkMap(m, store, nil)
}

func walkMap(m map[string]any, store Store, chain key.Chain) error {
	for k, v := range m {
		switch x := v.(type) {
		case map[string]any:
			err := walkMap(x, store, append(chain, key.Name(k)))
			if err != nil {
				return err
			}
		default:
			err := store.Set(append(chain, key.Name(k)), x)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
