// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Run("will be unset", func(t *testing.T) {
		t.Run("if constructed with None", func(t *testing.T) {
			assert.False(t, None().IsSet())
		})

		t.Run("if constructed from nil", func(t *testing.T) {
			assert.False(t, Of(nil).IsSet())
		})

		t.Run("if constructed from a false comma-ok pair", func(t *testing.T) {
			assert.False(t, Maybe("hello", false).IsSet())
		})

		t.Run("if constructed from a true comma-ok pair carrying nil", func(t *testing.T) {
			assert.False(t, Maybe(nil, true).IsSet())
		})
	})

	t.Run("will be set", func(t *testing.T) {
		t.Run("for any non-nil value", func(t *testing.T) {
			v, ok := Of("world").Get()
			assert.True(t, ok)
			assert.Equal(t, "world", v)
		})

		t.Run("for falsy scalars", func(t *testing.T) {
			assert.True(t, Of(false).IsSet())
			assert.True(t, Of(0).IsSet())
			assert.True(t, Of("").IsSet())
		})
	})

	t.Run("Or", func(t *testing.T) {
		t.Run("will return the value if set", func(t *testing.T) {
			assert.Equal(t, 9999, Of(9999).Or(8080))
		})

		t.Run("will return the default if unset", func(t *testing.T) {
			assert.Equal(t, 8080, None().Or(8080))
		})
	})
}

func TestAs(t *testing.T) {
	t.Run("will return the typed value", func(t *testing.T) {
		s, err := As[string](Of("Cooper"))
		if !assert.Nil(t, err) {
			return
		}
		assert.Equal(t, "Cooper", s)
	})

	t.Run("will return a NotSetError", func(t *testing.T) {
		t.Run("if the value is unset", func(t *testing.T) {
			_, err := As[string](None())

			var ierr NotSetError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			assert.NotEmpty(t, ierr.Error())
		})
	})

	t.Run("will return a TypeMismatchError", func(t *testing.T) {
		t.Run("if the stored value has a different dynamic type", func(t *testing.T) {
			_, err := As[int](Of("Cooper"))

			var ierr TypeMismatchError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			assert.Equal(t, "string", ierr.Got)
			assert.Equal(t, "int", ierr.Want)
			assert.NotEmpty(t, ierr.Error())
		})
	})
}
