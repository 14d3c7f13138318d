// Package config resolves the settings that drive the configuration loader:
// where the configuration root lives, which environment to load, which file
// suffixes count as configuration, and whether failures halt the caller.
//
// Settings are assembled from several sources in the following priority
// order (later sources override earlier fields they set):
//  1. Defaults
//  2. .env file
//  3. Environment variables (APP_ENV, APP_CONFIG_DIR, APP_CONFIG_HALT, ...)
//  4. Command-line flags
//
// The main entry point is [GetSettings].
package config
