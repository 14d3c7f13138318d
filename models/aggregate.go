// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrPathNotFound is returned by [Aggregate.Lookup] when a path segment does
// not resolve to a value.
var ErrPathNotFound = errors.New("config path not found")

// ErrDocumentNotFound is returned by [Aggregate.Decode] when no document is
// stored under the requested name.
var ErrDocumentNotFound = errors.New("config document not found")

// Aggregate maps configuration file base names to their decoded documents.
//
// A nil Aggregate is the "no config" result produced when loading fails and
// halting is disabled. An empty, non-nil Aggregate means the target directory
// held no configuration files.
type Aggregate map[string]Document

// Names returns the document names in ascending order.
func (a Aggregate) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup resolves a dotted path such as "log.fileLogConfig.filename".
// The first segment selects the document; the remaining segments walk nested
// mappings. A path made of a single segment returns the whole document.
func (a Aggregate) Lookup(path string) (any, error) {
	segments := strings.Split(path, ".")

	doc, ok := a[segments[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, segments[0])
	}

	var cur any = map[string]any(doc)
	for i, seg := range segments[1:] {
		m, ok := asMap(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a mapping", ErrPathNotFound, strings.Join(segments[:i+1], "."))
		}
		cur, ok = m[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, strings.Join(segments[:i+2], "."))
		}
	}
	return cur, nil
}

// Decode copies the document stored under name into out, which must be a
// pointer. Struct fields are matched by their `config` tag, falling back to a
// case-insensitive field name match. Strings are converted to time.Duration
// and to types implementing encoding.TextUnmarshaler.
func (a Aggregate) Decode(name string, out any) error {
	doc, ok := a[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("error creating decoder for %s: %w", name, err)
	}

	if err = dec.Decode(map[string]any(doc)); err != nil {
		return fmt.Errorf("error decoding %s: %w", name, err)
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	default:
		return nil, false
	}
}
