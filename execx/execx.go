// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package execx runs external commands, capturing their output and
// folding non-zero exits into typed errors. It backs the crypt
// package and is independent of the config tree.
package execx

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/coopercfg/cooper/result"
)

// NonZeroExitError occurs when a command exits with a non-zero code.
// It carries no stack of its own; for tools like grep or gzip a
// non-zero exit is often semantically meaningful to the caller.
type NonZeroExitError struct {
	Command string
	Code    int
	Stderr  string
}

// Error implements the error interface.
func (e NonZeroExitError) Error() string {
	return fmt.Sprintf("%s: %d - %s", e.Command, e.Code, strings.TrimSpace(e.Stderr))
}

// IsNonZeroExit reports whether err is a NonZeroExitError.
func IsNonZeroExit(err error) bool {
	var nzErr NonZeroExitError
	return errors.As(err, &nzErr)
}

// Call runs the command and returns its stdout as a string.
//
//	echo := execx.Call(ctx, "echo", "-n", "Hi, there!").Must()
func Call(ctx context.Context, command ...string) result.Result[string] {
	return CallWith(ctx, nil, command...)
}

// CallWith runs the command with stdin fed from the given reader (nil
// means no input) and returns its stdout as a string.
func CallWith(ctx context.Context, stdin io.Reader, command ...string) result.Result[string] {
	b, err := CallBytes(ctx, stdin, command...).Get()
	if err != nil {
		return result.Err[string](err)
	}
	return result.Ok(string(b))
}

// CallBytes runs the command with stdin fed from the given reader (nil
// means no input) and returns its raw stdout. A non-zero exit yields a
// NonZeroExitError carrying the exit code and captured stderr.
func CallBytes(ctx context.Context, stdin io.Reader, command ...string) result.Result[[]byte] {
	if len(command) == 0 {
		return result.Err[[]byte](errors.New("execx: empty command"))
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return result.Err[[]byte](NonZeroExitError{
			Command: strings.Join(command, " "),
			Code:    exitErr.ExitCode(),
			Stderr:  stderr.String(),
		})
	}
	if err != nil {
		return result.Err[[]byte](err)
	}
	return result.Ok(stdout.Bytes())
}

// ToBase64URL encodes b as URL-safe base64 without trailing padding.
func ToBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// FromBase64URL reverses ToBase64URL. Padded input is accepted.
func FromBase64URL(encoded string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
}
