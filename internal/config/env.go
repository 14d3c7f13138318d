// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from vars using the caarlos0/env library. Field names
// come from the `env` tags on [Settings], each prefixed with prefix.
//
// Returns a wrapped error if env.ParseWithOptions fails (e.g. APP_CONFIG_HALT
// holds something other than a boolean).
func parseEnv(cfg any, prefix string, vars map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      prefix,
		Environment: vars,
	})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}

// environMap splits "KEY=value" pairs into a map. Pairs without "=" are skipped.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, pair := range environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
