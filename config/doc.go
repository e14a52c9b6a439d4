// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config provides a hierarchical, dot-path-addressed
// configuration container.
//
// A [Config] is a read-only snapshot of a nested tree of mappings,
// sequences and scalars. It is built by freezing a tree: a recursive
// conversion into genuinely immutable containers that prunes nil
// values and empty collections while recording every reachable path in
// a flat index, so reads are O(1) lookups instead of tree walks.
//
// A [Builder] holds a mutable deep copy of a source tree and exposes
// path-based mutation with distinct intents before freezing:
//
//	cfg := config.NewBuilder(m).
//	        ... // Put forces, PutIfEmpty defaults, PutOf takes optionals
//	        Build()
//
// Paths like "proxy.port" are cleaned of all whitespace before use, so
// " proxy . port " addresses the same property. The empty path is
// reserved for the tree root.
//
// Trees can be assembled from layered [Source] values (JSON, YAML,
// TOML, environment) via [Read]; subsequent sources override previous
// ones. Frozen trees decode into structs with [Config.Unmarshal] or
// are read piecemeal with the coercing getters and the strict [As]
// accessor.
//
// Config does not parse files on its own; pair a [FileReader] with the
// format sources for that.
package config
