// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	dotEnvVar         = "CONFIG_DOTENV"
	defaultDotEnvFile = ".env"
)

// readDotEnv parses the .env file at path without touching the process
// environment. A missing file is only an error when it was asked for
// explicitly.
func readDotEnv(path string, explicit bool) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err == nil {
		return vars, nil
	}

	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrDotEnvFile, path, err)
}
