package config

import "errors"

// Errors returned by [GetSettings] when a settings source cannot be used.
var (
	// ErrInvalidExtension indicates a configuration file suffix that cannot be
	// matched against file names (for example "." or "a/b").
	ErrInvalidExtension = errors.New("invalid config file extension")
	// ErrNoExtensions indicates that the extension list is empty after
	// normalization.
	ErrNoExtensions = errors.New("no config file extensions configured")
	// ErrDotEnvFile indicates a .env file that could not be read or parsed.
	ErrDotEnvFile = errors.New("error reading .env file")
)
