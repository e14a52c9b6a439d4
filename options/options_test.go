// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("will resolve from the environment first", func(t *testing.T) {
		t.Setenv("COOPER_OPT_NAME", "Dale")

		v, ok := Resolve("COOPER_OPT_NAME", 'n', "--COOPER_OPT_NAME", "Bob")
		assert.True(t, ok)
		assert.Equal(t, "Dale", v)
	})

	t.Run("will treat a set but empty environment variable as absent", func(t *testing.T) {
		t.Setenv("COOPER_OPT_EMPTY", "")

		_, ok := Resolve("COOPER_OPT_EMPTY", 'e', "--COOPER_OPT_EMPTY", "shadowed")
		assert.False(t, ok, "empty env var must shadow the args")
	})

	t.Run("will resolve long options from args", func(t *testing.T) {
		v, ok := Resolve("name", 'n', "-xvf", "file", "--name", "Cooper")
		assert.True(t, ok)
		assert.Equal(t, "Cooper", v)
	})

	t.Run("will resolve short option clusters", func(t *testing.T) {
		t.Run("when the letter is the last of the cluster", func(t *testing.T) {
			v, ok := Resolve("name", 'n', "-xvn", "Cooper")
			assert.True(t, ok)
			assert.Equal(t, "Cooper", v)
		})

		t.Run("but not when the letter is in the middle", func(t *testing.T) {
			_, ok := Resolve("name", 'n', "-xnv", "Cooper")
			assert.False(t, ok, "a value-taking letter must be last")
		})

		t.Run("and not for long options", func(t *testing.T) {
			_, ok := Resolve("name", 'n', "--xvn", "Cooper")
			assert.False(t, ok)
		})
	})

	t.Run("will be absent", func(t *testing.T) {
		t.Run("if neither name nor letter are given", func(t *testing.T) {
			_, ok := Resolve("", 0, "--name", "Cooper")
			assert.False(t, ok)
		})

		t.Run("if a matching option is the last arg", func(t *testing.T) {
			_, ok := Resolve("name", 'n', "--name")
			assert.False(t, ok, "a value option requires a following arg")
		})

		t.Run("if nothing matches", func(t *testing.T) {
			_, ok := Resolve("name", 'n', "-xvf", "file")
			assert.False(t, ok)
		})
	})
}

func TestResolveFlag(t *testing.T) {
	t.Run("will resolve from the environment first", func(t *testing.T) {
		t.Run("as true for any value but false", func(t *testing.T) {
			t.Setenv("COOPER_FLAG", "1")

			v, ok := ResolveFlag("COOPER_FLAG", 'f')
			assert.True(t, ok)
			assert.True(t, v)
		})

		t.Run("as true for the empty string", func(t *testing.T) {
			t.Setenv("COOPER_FLAG", "")

			v, ok := ResolveFlag("COOPER_FLAG", 'f')
			assert.True(t, ok)
			assert.True(t, v)
		})

		t.Run("as false for false, case-insensitively", func(t *testing.T) {
			t.Setenv("COOPER_FLAG", "FaLsE")

			v, ok := ResolveFlag("COOPER_FLAG", 'f')
			assert.True(t, ok)
			assert.False(t, v)
		})
	})

	t.Run("will resolve presence on the command line", func(t *testing.T) {
		t.Run("for long flags", func(t *testing.T) {
			v, ok := ResolveFlag("force", 'f', "--force")
			assert.True(t, ok)
			assert.True(t, v)
		})

		t.Run("for a letter anywhere in a short cluster", func(t *testing.T) {
			v, ok := ResolveFlag("force", 'f', "-xfv")
			assert.True(t, ok)
			assert.True(t, v)
		})

		t.Run("even for the last arg", func(t *testing.T) {
			v, ok := ResolveFlag("verbose", 'v', "-v")
			assert.True(t, ok)
			assert.True(t, v)
		})
	})

	t.Run("will be absent if nothing matches", func(t *testing.T) {
		_, ok := ResolveFlag("force", 'f', "--no-proxy", "-xv")
		assert.False(t, ok)
	})
}
