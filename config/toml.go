// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"github.com/coopercfg/cooper/internal/try"

	"github.com/BurntSushi/toml"
)

// Toml represents a Source where its underlying format is TOML.
type Toml struct {
	r io.Reader
}

// FromToml returns a source which will apply its config
// from TOML values parsed from the given io.Reader.
func FromToml(r io.Reader) Toml {
	return Toml{r: r}
}

// InvalidTomlError occurs if the underlying io.Reader contains invalid TOML.
type InvalidTomlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidTomlError) Error() string {
	return fmt.Sprintf("invalid toml: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidTomlError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src Toml) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	m := make(map[string]any)
	_, err = toml.NewDecoder(src.r).Decode(&m)
	if err != nil {
		return InvalidTomlError{cause: err}
	}
	return Map(m).Apply(store)
}
