// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"fmt"
	"strings"
)

// Load failures. Both are handled the same way by callers: either the
// process stops or the load yields no configuration.
var (
	// ErrConfigRootMissing indicates that the configuration root does not
	// exist, is not a directory, or cannot be read.
	ErrConfigRootMissing = errors.New("configuration directory is missing")
	// ErrUnknownEnvironment indicates that the requested environment has no
	// matching subdirectory under the configuration root.
	ErrUnknownEnvironment = errors.New("configuration for environment is not available")
)

// DirectoryReadError occurs when a directory cannot be listed.
type DirectoryReadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("error reading directory %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *DirectoryReadError) Unwrap() error {
	return e.Cause
}

// RootError occurs when the configuration root cannot be used.
// It matches [ErrConfigRootMissing] with errors.Is.
type RootError struct {
	Root  string
	Cause error
}

// Error implements the error interface.
func (e *RootError) Error() string {
	return fmt.Sprintf("%s, expected location is %q: %s", ErrConfigRootMissing, e.Root, e.Cause)
}

// Is reports whether target is [ErrConfigRootMissing].
func (e *RootError) Is(target error) bool {
	return target == ErrConfigRootMissing
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *RootError) Unwrap() error {
	return e.Cause
}

// UnknownEnvironmentError occurs when the requested environment is not one
// of the subdirectories of the configuration root.
// It matches [ErrUnknownEnvironment] with errors.Is.
type UnknownEnvironmentError struct {
	Env       string
	Root      string
	Available []string
}

// Error implements the error interface.
func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("%s: %q, expected location is %s (available: [%s])",
		ErrUnknownEnvironment, e.Env, e.Root, strings.Join(e.Available, ", "))
}

// Is reports whether target is [ErrUnknownEnvironment].
func (e *UnknownEnvironmentError) Is(target error) bool {
	return target == ErrUnknownEnvironment
}

// DecodeError occurs when a configuration file cannot be read or does not
// decode to a key-value mapping.
type DecodeError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("error loading config file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// DuplicateConfigError occurs when several files in the target directory
// share a base name, e.g. "db.json" and "db.yaml".
type DuplicateConfigError struct {
	Name  string
	Paths []string
}

// Error implements the error interface.
func (e *DuplicateConfigError) Error() string {
	return fmt.Sprintf("duplicate config name %q: %s", e.Name, strings.Join(e.Paths, ", "))
}
