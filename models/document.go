// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Document is the key-value mapping decoded from a single configuration file.
// Nested mappings are represented as map[string]any.
type Document map[string]any

// FileDescriptor describes one configuration file discovered by the loader.
type FileDescriptor struct {
	// Name is the file base name without its extension (e.g. "db" for "db.json").
	// It becomes the key of the file's document in the [Aggregate].
	Name string

	// Path is the absolute path to the file.
	Path string

	// Ext is the lower-cased extension including the leading dot (e.g. ".yaml").
	Ext string
}
