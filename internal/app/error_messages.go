// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs the configuration loader on behalf of a command-line
// caller and applies the failure policy selected by the settings.
//
// All Msg* constants are human-readable message strings written to stderr
// ahead of the underlying error.
package app

const (
	// MsgInvalidSettings is written when flags, environment variables or the
	// .env file cannot be turned into valid settings.
	MsgInvalidSettings = "invalid settings"

	// MsgUnsupportedFormat is written when -o names an unknown output format.
	MsgUnsupportedFormat = "unsupported output format"

	// MsgLoaderInitFailed is written when the loader cannot be built from
	// otherwise valid settings (e.g. no decoder for an extension).
	MsgLoaderInitFailed = "error creating loader"

	// MsgLoadFailed is written when loading the configuration fails.
	MsgLoadFailed = "error loading configuration"

	// MsgLookupFailed is written when -get names a path that is absent from
	// the loaded configuration.
	MsgLookupFailed = "error looking up configuration value"

	// MsgRenderFailed is written when the result cannot be encoded.
	MsgRenderFailed = "error rendering configuration"
)
