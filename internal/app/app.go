// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-loader/internal/config"
	"github.com/MKhiriev/go-config-loader/internal/loader"
	"github.com/MKhiriev/go-config-loader/internal/logger"
	"github.com/MKhiriev/go-config-loader/models"
)

// Name is used as the flag set name and the logger role.
const Name = "cfgload"

// Process exit codes returned by [Run].
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Resolve applies the halt policy to the outcome of a load. With halt on, err
// is returned unchanged. With halt off, any error turns into the "no config"
// result: a nil aggregate and a nil error.
func Resolve(agg models.Aggregate, err error, halt bool) (models.Aggregate, error) {
	return resolve(agg, err, halt)
}

func resolve[T any](v T, err error, halt bool) (T, error) {
	var zero T
	if err == nil {
		return v, nil
	}
	if halt {
		return zero, err
	}
	return zero, nil
}

// Run parses args, loads the configuration and writes it to stdout. Errors
// are always written to stderr. The returned value is the process exit code.
//
// opts are applied before the flags parsed from args; tests use them to pin
// the working directory and the environment.
func Run(args []string, stdout, stderr io.Writer, opts ...config.Option) int {
	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("o", FormatJSON, "Output format: json or yaml")
	path := fs.String("get", "", "Print a single value by dotted path (e.g. log.consoleLogConfig.level)")

	settings, err := config.GetSettings(append(opts, config.WithFlags(fs, args))...)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", MsgInvalidSettings, err)
		return ExitUsage
	}

	render, err := newRenderer(*format)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", MsgUnsupportedFormat, err)
		return ExitUsage
	}

	log := logger.New(Name, stderr, settings.LogEnabled())
	log.Debug().Any("settings", settings).Msg("settings resolved")

	l, err := loader.New(settings, loader.WithLogger(log))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", MsgLoaderInitFailed, err)
		return ExitUsage
	}

	agg, loadErr := l.Load()
	agg, err = Resolve(agg, loadErr, settings.HaltOnFailure())
	if loadErr != nil {
		fmt.Fprintf(stderr, "%s: %v\n", MsgLoadFailed, loadErr)
	}
	if err != nil {
		return ExitFailure
	}

	value, lookupErr := selectValue(agg, *path)
	value, err = resolve(value, lookupErr, settings.HaltOnFailure())
	if lookupErr != nil {
		fmt.Fprintf(stderr, "%s: %v\n", MsgLookupFailed, lookupErr)
	}
	if err != nil {
		return ExitFailure
	}

	if err = render(stdout, value); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", MsgRenderFailed, err)
		return ExitFailure
	}
	return ExitOK
}

// selectValue returns what Run prints: the whole aggregate, a single value
// when path is set, or nil for the "no config" result.
func selectValue(agg models.Aggregate, path string) (any, error) {
	if agg == nil {
		return nil, nil
	}
	if path == "" {
		return agg, nil
	}
	return agg.Lookup(path)
}
