// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for strongly typed keys in key value pairs.
package key

import (
	"strings"
	"unicode"
)

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Name represents a single key.
type Name string

// Key implements the [Keyer] interface.
func (n Name) Key() string {
	return string(n)
}

// Chain represents nested keys.
type Chain []Keyer

// Key implements the [Keyer] interface.
func (c Chain) Key() string {
	ss := make([]string, len(c))
	for i := range c {
		ss[i] = c[i].Key()
	}
	return strings.Join(ss, ".")
}

// Clean strips every whitespace rune from path, including internal
// ones, so " proxy . port " and "proxy.port" address the same property.
func Clean(path string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, path)
}

// Parse cleans path and splits it on "." into a Chain. A path that is
// empty after cleaning yields a nil Chain.
func Parse(path string) Chain {
	p := Clean(path)
	if p == "" {
		return nil
	}

	parts := strings.Split(p, ".")
	chain := make(Chain, len(parts))
	for i, part := range parts {
		chain[i] = Name(part)
	}
	return chain
}
