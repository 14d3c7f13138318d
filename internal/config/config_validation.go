// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// validate normalizes the merged [Settings] in place: ConfigDir becomes an
// absolute, clean path and every extension is lower-cased with a leading dot.
//
// Returns an error wrapping [ErrInvalidExtension] or [ErrNoExtensions] if
// the extension list cannot be used.
func (s *Settings) validate(workDir string) error {
	s.ConfigDir = absPath(workDir, s.ConfigDir)
	s.Env = strings.TrimSpace(s.Env)

	exts := make([]string, 0, len(s.Extensions))
	for _, raw := range s.Extensions {
		ext := strings.ToLower(strings.TrimSpace(raw))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ext == "." || strings.ContainsAny(ext, `/\`) || strings.Count(ext, ".") > 1 {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, raw)
		}
		if !slices.Contains(exts, ext) {
			exts = append(exts, ext)
		}
	}
	if len(exts) == 0 {
		return ErrNoExtensions
	}
	s.Extensions = exts

	return nil
}

func absPath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workDir, path)
}
