// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closeFunc func() error

func (f closeFunc) Close() error {
	return f()
}

func TestClose(t *testing.T) {
	t.Run("will do nothing", func(t *testing.T) {
		t.Run("if the value is not an io.Closer", func(t *testing.T) {
			var err error
			Close(&err, "not a closer")
			assert.NoError(t, err)
		})

		t.Run("if closing succeeds", func(t *testing.T) {
			var err error
			Close(&err, closeFunc(func() error {
				return nil
			}))
			assert.NoError(t, err)
		})
	})

	t.Run("will set the error if closing fails", func(t *testing.T) {
		closeErr := errors.New("close failed")

		var err error
		Close(&err, closeFunc(func() error {
			return closeErr
		}))

		assert.ErrorIs(t, err, CloseError{})
		assert.ErrorIs(t, err, closeErr)
	})

	t.Run("will join a close failure onto an existing error", func(t *testing.T) {
		readErr := errors.New("read failed")
		closeErr := errors.New("close failed")

		err := readErr
		Close(&err, closeFunc(func() error {
			return closeErr
		}))

		assert.ErrorIs(t, err, readErr)
		assert.ErrorIs(t, err, closeErr)
		assert.ErrorIs(t, err, CloseError{})
	})
}
