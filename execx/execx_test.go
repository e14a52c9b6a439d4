// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package execx

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func skipWithoutShellTools(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires unix shell tools")
	}
}

func TestCall(t *testing.T) {
	t.Run("will capture stdout", func(t *testing.T) {
		skipWithoutShellTools(t)

		out, err := Call(context.Background(), "echo", "-n", "Hi, there!").Get()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "Hi, there!", out)
	})

	t.Run("will fail", func(t *testing.T) {
		t.Run("if the command is empty", func(t *testing.T) {
			_, err := Call(context.Background()).Get()
			assert.Error(t, err)
		})

		t.Run("if the command does not exist", func(t *testing.T) {
			_, err := Call(context.Background(), "cooper-no-such-binary").Get()
			if !assert.Error(t, err) {
				return
			}
			assert.False(t, IsNonZeroExit(err), "a missing binary never ran")
		})

		t.Run("with a NonZeroExitError on non-zero exit", func(t *testing.T) {
			skipWithoutShellTools(t)

			_, err := Call(context.Background(), "cat", "/no/such/file").Get()
			if !assert.Error(t, err) {
				return
			}

			var nzErr NonZeroExitError
			if !assert.ErrorAs(t, err, &nzErr) {
				return
			}
			assert.True(t, IsNonZeroExit(err))
			assert.Equal(t, 1, nzErr.Code)
			assert.Contains(t, nzErr.Command, "cat")
			assert.NotEmpty(t, nzErr.Stderr)
		})
	})
}

func TestCallWith(t *testing.T) {
	t.Run("will feed stdin to the command", func(t *testing.T) {
		skipWithoutShellTools(t)

		out, err := CallWith(context.Background(), strings.NewReader("Hi, there!"), "cat").Get()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "Hi, there!", out)
	})
}

func TestFromBase64URL(t *testing.T) {
	t.Run("will round trip ToBase64URL", func(t *testing.T) {
		encoded := ToBase64URL([]byte("Hi, there!"))
		assert.NotContains(t, encoded, "=")

		b, err := FromBase64URL(encoded)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "Hi, there!", string(b))
	})

	t.Run("will accept padded input", func(t *testing.T) {
		b, err := FromBase64URL("SGksIHRoZXJlIQ==")
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "Hi, there!", string(b))
	})

	t.Run("will reject malformed input", func(t *testing.T) {
		_, err := FromBase64URL("not/base64url!")
		assert.Error(t, err)
	})
}
