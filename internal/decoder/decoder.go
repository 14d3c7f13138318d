// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-config-loader/models"
	"gopkg.in/yaml.v3"
)

// Decoder converts the raw contents of one configuration file into a document.
type Decoder interface {
	Decode(data []byte) (models.Document, error)
}

// DecoderFunc adapts a plain function to the [Decoder] interface.
type DecoderFunc func(data []byte) (models.Document, error)

// Decode implements [Decoder].
func (f DecoderFunc) Decode(data []byte) (models.Document, error) {
	return f(data)
}

// JSON decodes JSON documents. Numbers are decoded as float64.
func JSON() Decoder {
	return DecoderFunc(func(data []byte) (models.Document, error) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}

		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrNotAMapping, v)
		}
		return models.Document(m), nil
	})
}

// YAML decodes YAML documents. An empty file yields an empty document.
// Non-string mapping keys such as `200: ok` are converted to strings.
func YAML() Decoder {
	return DecoderFunc(func(data []byte) (models.Document, error) {
		if len(bytes.TrimSpace(data)) == 0 {
			return models.Document{}, nil
		}

		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}

		switch m := stringKeys(v).(type) {
		case map[string]any:
			return models.Document(m), nil
		case nil:
			return models.Document{}, nil
		default:
			return nil, fmt.Errorf("%w: got %T", ErrNotAMapping, v)
		}
	})
}

// stringKeys rewrites every map[any]any in v as map[string]any, formatting
// keys with fmt.Sprint. yaml.v3 produces map[any]any for any mapping with a
// non-string key.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}

// Registry selects a [Decoder] by file extension.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Default returns a registry with the JSON and YAML decoders registered.
func Default() *Registry {
	return NewRegistry().
		Register(".json", JSON()).
		Register(".yaml", YAML()).
		Register(".yml", YAML())
}

// Register binds dec to ext. The extension is matched case-insensitively and
// a missing leading dot is added.
func (r *Registry) Register(ext string, dec Decoder) *Registry {
	r.decoders[normalize(ext)] = dec
	return r
}

// Lookup returns the decoder bound to ext.
func (r *Registry) Lookup(ext string) (Decoder, error) {
	dec, ok := r.decoders[normalize(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return dec, nil
}

// Extensions returns the registered extensions in ascending order.
func (r *Registry) Extensions() []string {
	return slices.Sorted(maps.Keys(r.decoders))
}

func normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
