// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
)

// DefaultPrefix is prepended to every environment variable name read by
// [GetSettings] unless [WithPrefix] overrides it.
const DefaultPrefix = "APP_"

// DefaultDirName is the configuration root used when no override is given,
// resolved against the working directory.
const DefaultDirName = "config"

// DefaultExtensions lists the configuration file suffixes accepted by default.
var DefaultExtensions = []string{".json", ".yaml", ".yml"}

// Settings controls a single run of the configuration loader. It is
// populated by layering defaults, a .env file, environment variables and
// command-line flags; later layers win for every field they set.
//
// Struct tags:
//   - env: environment variable name, read with the configured prefix.
//   - envSeparator: separator for list values.
type Settings struct {
	// ConfigDir is the configuration root. Relative paths are resolved
	// against the working directory.
	// Env: APP_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// Env names the environment subdirectory to load. Empty means the files
	// directly under ConfigDir are loaded.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Halt decides whether a failed load is fatal for the caller. Nil means
	// unset, which is treated as true.
	// Env: APP_CONFIG_HALT
	Halt *bool `env:"CONFIG_HALT"`

	// Log enables informational and error messages during a load. Nil means
	// unset, which is treated as false.
	// Env: APP_CONFIG_DEBUG
	Log *bool `env:"CONFIG_DEBUG"`

	// Extensions lists accepted configuration file suffixes
	// (e.g. ".json,.yaml").
	// Env: APP_CONFIG_EXTENSIONS
	Extensions []string `env:"CONFIG_EXTENSIONS" envSeparator:","`

	// DotEnvFile names a .env file whose variables are used when they are not
	// already present in the process environment.
	// Env: APP_CONFIG_DOTENV
	DotEnvFile string `env:"CONFIG_DOTENV"`
}

// HaltOnFailure reports whether a failed load should stop the caller.
func (s *Settings) HaltOnFailure() bool {
	return s.Halt == nil || *s.Halt
}

// LogEnabled reports whether loader messages should be emitted.
func (s *Settings) LogEnabled() bool {
	return s.Log != nil && *s.Log
}

// Option customizes how [GetSettings] resolves the settings.
type Option func(*settingsBuilder)

// WithPrefix replaces [DefaultPrefix] for environment variable lookups.
func WithPrefix(prefix string) Option {
	return func(b *settingsBuilder) {
		b.prefix = prefix
	}
}

// WithFlags registers the loader flags on fs and parses args with it.
// Callers may register additional flags on fs beforehand.
func WithFlags(fs *flag.FlagSet, args []string) Option {
	return func(b *settingsBuilder) {
		b.flagSet = fs
		b.args = args
	}
}

// WithWorkDir sets the directory that relative paths and the default
// configuration root are resolved against.
func WithWorkDir(dir string) Option {
	return func(b *settingsBuilder) {
		b.workDir = dir
	}
}

// WithEnviron replaces the process environment, given as "KEY=value" pairs.
func WithEnviron(environ []string) Option {
	return func(b *settingsBuilder) {
		b.environ = func() []string { return environ }
	}
}

// GetSettings resolves the loader settings from all available sources in
// the following priority order (last source wins for fields it sets):
//  1. Defaults
//  2. .env file (only for variables missing from the environment)
//  3. Environment variables
//  4. Command-line flags, when [WithFlags] is given
//
// Returns validated *Settings or an error if any source fails.
func GetSettings(opts ...Option) (*Settings, error) {
	b := newSettingsBuilder()
	for _, opt := range opts {
		opt(b)
	}

	return b.
		withDefaults().
		withFlags().
		withDotEnv().
		withEnv().
		build()
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		prefix:  DefaultPrefix,
		environ: os.Environ,
	}
}
