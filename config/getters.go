// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"time"

	"github.com/spf13/cast"
)

// Coercing getters. Unlike As, these convert between scalar types on a
// best-effort basis and return the zero value for absent paths or
// failed conversions. Use As for the strict, caller-asserted contract.

// String returns the value at path coerced to a string.
func (c *Config) String(path string) string {
	v, ok := c.Get(path).Get()
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

// Int returns the value at path coerced to an int.
func (c *Config) Int(path string) int {
	v, ok := c.Get(path).Get()
	if !ok {
		return 0
	}
	return cast.ToInt(v)
}

// Bool returns the value at path coerced to a bool.
func (c *Config) Bool(path string) bool {
	v, ok := c.Get(path).Get()
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// Float64 returns the value at path coerced to a float64.
func (c *Config) Float64(path string) float64 {
	v, ok := c.Get(path).Get()
	if !ok {
		return 0
	}
	return cast.ToFloat64(v)
}

// Duration returns the value at path coerced to a time.Duration.
// Strings parse via time.ParseDuration.
func (c *Config) Duration(path string) time.Duration {
	v, ok := c.Get(path).Get()
	if !ok {
		return 0
	}
	return cast.ToDuration(v)
}

// StringSlice returns the value at path coerced to a []string.
func (c *Config) StringSlice(path string) []string {
	v, ok := c.Get(path).Get()
	if !ok {
		return nil
	}
	if arr, isArray := v.(*Array); isArray {
		v = arr.Slice()
	}
	return cast.ToStringSlice(v)
}
