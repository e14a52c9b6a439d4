// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides small helpers for deferred error handling.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError occurs when closing an underlying io.Closer fails.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Is implements the implicit interface used by errors.Is.
func (e CloseError) Is(target error) bool {
	_, ok := target.(CloseError)
	return ok
}

// Close closes v if it implements io.Closer and joins any close
// failure into *err. Meant to be deferred with the caller's named
// return error.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	werr := CloseError{Cause: cerr}
	if *err == nil {
		*err = werr
		return
	}
	*err = errors.Join(*err, werr)
}
