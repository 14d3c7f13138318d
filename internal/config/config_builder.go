package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	prefix  string
	workDir string
	environ func() []string
	flagSet *flag.FlagSet
	args    []string

	// variables read from the process environment and the .env file
	vars map[string]string

	defaults *Settings
	env      *Settings
	flags    *Settings
	err      error
}

// build folds defaults, env and flags in that order and validates the result.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range []*Settings{b.defaults, b.env, b.flags} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(settings, layer, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(b.workDir); err != nil {
		return nil, err
	}
	return settings, nil
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	if b.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error getting working directory: %w", err))
			return b
		}
		b.workDir = wd
	}

	halt, log := true, false
	b.defaults = &Settings{
		ConfigDir:  DefaultDirName,
		Halt:       &halt,
		Log:        &log,
		Extensions: append([]string(nil), DefaultExtensions...),
	}
	return b
}

func (b *settingsBuilder) withFlags() *settingsBuilder {
	if b.flagSet == nil {
		return b
	}

	flags, err := parseFlags(b.flagSet, b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

// withDotEnv reads the .env file named by the flags layer, by the
// environment, or ".env" in the working directory, in that order.
func (b *settingsBuilder) withDotEnv() *settingsBuilder {
	b.vars = environMap(b.environ())

	path, explicit := "", true
	switch {
	case b.flags != nil && b.flags.DotEnvFile != "":
		path = b.flags.DotEnvFile
	case b.vars[b.prefix+dotEnvVar] != "":
		path = b.vars[b.prefix+dotEnvVar]
	default:
		path, explicit = defaultDotEnvFile, false
	}

	dotEnv, err := readDotEnv(absPath(b.workDir, path), explicit)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	for k, v := range dotEnv {
		if _, ok := b.vars[k]; !ok {
			b.vars[k] = v
		}
	}
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings, b.prefix, b.vars); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envSettings
	return b
}
