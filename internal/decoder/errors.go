// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import "errors"

var (
	// ErrUnsupportedExtension is returned by [Registry.Lookup] when no decoder
	// is registered for a file extension.
	ErrUnsupportedExtension = errors.New("unsupported config file extension")
	// ErrNotAMapping indicates a document whose top-level value is not a
	// key-value mapping (for example a list or a scalar).
	ErrNotAMapping = errors.New("config document is not a mapping")
)
