// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the -o flag.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var errUnknownFormat = fmt.Errorf("expected %s or %s", FormatJSON, FormatYAML)

type renderer func(w io.Writer, v any) error

func newRenderer(format string) (renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return renderJSON, nil
	case FormatYAML, "yml":
		return renderYAML, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
