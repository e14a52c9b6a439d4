// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package crypt provides convenience encryption and digest helpers on
// top of locally installed tools (openssl, gzip and the coreutils
// sha*sum family). The pipeline is run directly through execx, without
// a shell, so passwords are passed as plain argv elements.
package crypt

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/coopercfg/cooper/execx"
)

// ErrEmptyPassword occurs when an empty password is supplied.
var ErrEmptyPassword = errors.New("crypt: password cannot be empty")

// Encrypt gzip-compresses data, encrypts it with salted AES-256-CBC
// (PBKDF2 key derivation) and returns the result as unpadded URL-safe
// base64. Equivalent to:
//
//	$ echo -n $data | gzip -9 | openssl aes-256-cbc -pbkdf2 -salt -k $password
func Encrypt(ctx context.Context, data string, password []byte) (string, error) {
	if len(password) == 0 {
		return "", ErrEmptyPassword
	}

	zipped, err := execx.CallBytes(ctx, strings.NewReader(data), "gzip", "-9").Get()
	if err != nil {
		return "", err
	}

	enc, err := execx.CallBytes(ctx, bytes.NewReader(zipped),
		"openssl", "aes-256-cbc", "-pbkdf2", "-salt", "-k", string(password)).Get()
	if err != nil {
		return "", err
	}
	return execx.ToBase64URL(enc), nil
}

// Decrypt reverses Encrypt. The input must be an output of Encrypt
// (or of the equivalent shell pipeline) and the same password.
func Decrypt(ctx context.Context, encoded string, password []byte) (string, error) {
	if len(password) == 0 {
		return "", ErrEmptyPassword
	}

	raw, err := execx.FromBase64URL(encoded)
	if err != nil {
		return "", err
	}

	dec, err := execx.CallBytes(ctx, bytes.NewReader(raw),
		"openssl", "aes-256-cbc", "-pbkdf2", "-d", "-k", string(password)).Get()
	if err != nil {
		return "", err
	}

	data, err := execx.CallBytes(ctx, bytes.NewReader(dec), "gzip", "-d").Get()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Sha1Sum returns the hex sha1 digest of value.
func Sha1Sum(ctx context.Context, value string) (string, error) {
	return shaSum(ctx, "sha1sum", value)
}

// Sha256Sum returns the hex sha256 digest of value.
func Sha256Sum(ctx context.Context, value string) (string, error) {
	return shaSum(ctx, "sha256sum", value)
}

// Sha512Sum returns the hex sha512 digest of value.
func Sha512Sum(ctx context.Context, value string) (string, error) {
	return shaSum(ctx, "sha512sum", value)
}

func shaSum(ctx context.Context, tool, value string) (string, error) {
	out, err := execx.CallWith(ctx, strings.NewReader(value), tool).Get()
	if err != nil {
		return "", err
	}

	// output looks like "2ef7bde6...  -"
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", errors.New("crypt: " + tool + " returned no digest")
	}
	return fields[0], nil
}
