// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package options resolves an application's parameters from the
// environment and the command line:
//
//	$ export PORT=9999
//	$ app -xvf file --no-proxy --alias Bob
//
// An option is looked up in the environment first and then in the
// given args; the first hit wins. Results are plain comma-ok pairs,
// ready to be wrapped with config.Maybe and handed to a
// config.Builder.
package options

import (
	"os"
	"strings"
)

// Resolve resolves a named value from the environment or command line
// args.
//
//	name, ok := options.Resolve("name", 'n', os.Args[1:]...)
//
// It matches the environment variable name, an arg like "--name
// Cooper", or a short-option cluster like "-xvn Cooper" where the
// value-taking letter must be the cluster's last character; the
// following arg is the value. An environment variable that is set but
// empty resolves the lookup to absent without consulting the args.
func Resolve(name string, letter rune, args ...string) (string, bool) {
	if name == "" && letter == 0 {
		return "", false
	}

	if v, ok := lookupEnv(name); ok {
		if v == "" {
			return "", false
		}
		return v, true
	}

	// the value consumes the following arg, so the last arg cannot match
	for i := 0; i+1 < len(args); i++ {
		if !matches(name, letter, args[i], true) {
			continue
		}
		if v := args[i+1]; v != "" {
			return v, true
		}
		return "", false
	}
	return "", false
}

// ResolveFlag resolves a boolean flag from the environment or command
// line args.
//
//	force, ok := options.ResolveFlag("force", 'f', os.Args[1:]...)
//
// In the environment anything but "false" (case-insensitive),
// including the empty string, counts as true. On the command line the
// pure presence of "--name" or of the letter anywhere in a short
// cluster like "-xvf" is true.
func ResolveFlag(name string, letter rune, args ...string) (bool, bool) {
	if name == "" && letter == 0 {
		return false, false
	}

	if v, ok := lookupEnv(name); ok {
		return !strings.EqualFold(v, "false"), true
	}

	for _, arg := range args {
		if matches(name, letter, arg, false) {
			return true, true
		}
	}
	return false, false
}

func lookupEnv(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	return os.LookupEnv(name)
}

// matches reports whether arg selects the option. valueLast marks
// options that consume a value arg: their letter must be the last of a
// short cluster, while flag letters may appear anywhere in it.
func matches(name string, letter rune, arg string, valueLast bool) bool {
	if name != "" && arg == "--"+name {
		return true
	}

	if letter == 0 || strings.HasPrefix(arg, "--") || !strings.HasPrefix(arg, "-") {
		return false
	}
	if valueLast {
		return strings.HasSuffix(arg, string(letter))
	}
	return strings.ContainsRune(arg, letter)
}
