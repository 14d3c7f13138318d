// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-config-loader/internal/config"
	"github.com/MKhiriev/go-config-loader/internal/decoder"
	"github.com/MKhiriev/go-config-loader/internal/logger"
	"github.com/MKhiriev/go-config-loader/models"
)

var errNotADirectory = errors.New("not a directory")

// Loader reads the configuration files selected by a [config.Settings].
// It holds no state between loads.
type Loader struct {
	root     string
	env      string
	exts     []string
	fs       FileSystem
	decoders *decoder.Registry
	log      *logger.Logger
}

// Option customizes a [Loader].
type Option func(*Loader)

// WithFileSystem replaces the OS file system.
func WithFileSystem(fsys FileSystem) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithDecoders replaces the default decoder registry.
func WithDecoders(r *decoder.Registry) Option {
	return func(l *Loader) {
		l.decoders = r
	}
}

// WithLogger sets the logger used for loader messages. Without it the
// loader is silent.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		l.log = log.WithComponent("loader")
	}
}

// New builds a loader from settings. Every extension in settings must have
// a decoder in the registry.
func New(settings *config.Settings, opts ...Option) (*Loader, error) {
	l := &Loader{
		root:     settings.ConfigDir,
		env:      settings.Env,
		exts:     settings.Extensions,
		fs:       OSFS{},
		decoders: decoder.Default(),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, ext := range l.exts {
		if _, err := l.decoders.Lookup(ext); err != nil {
			return nil, fmt.Errorf("error creating loader: %w", err)
		}
	}

	return l, nil
}

// Root returns the configuration root.
func (l *Loader) Root() string {
	return l.root
}

// Env returns the environment name, empty when the root is loaded directly.
func (l *Loader) Env() string {
	return l.env
}

// ListEnvironments returns the names of the immediate subdirectories of root,
// sorted. Symbolic links are followed.
func (l *Loader) ListEnvironments(root string) ([]string, error) {
	l.log.Info().Str("dir", root).Msg("reading environments")

	entries, err := l.fs.ReadDir(root)
	if err != nil {
		return nil, &DirectoryReadError{Path: root, Cause: err}
	}

	envs := make([]string, 0, len(entries))
	for _, entry := range entries {
		mode, ok := l.entryMode(root, entry)
		if ok && mode.IsDir() {
			envs = append(envs, entry.Name())
		}
	}
	slices.Sort(envs)

	return envs, nil
}

// ListConfigFiles returns a descriptor for every regular file directly under
// dir whose extension is one of the configured ones, sorted by file name.
// Extension matching is case-insensitive.
func (l *Loader) ListConfigFiles(dir string) ([]models.FileDescriptor, error) {
	l.log.Info().Str("dir", dir).Msg("reading configuration files")

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, &DirectoryReadError{Path: dir, Cause: err}
	}

	files := make([]models.FileDescriptor, 0, len(entries))
	for _, entry := range entries {
		fileName := entry.Name()
		ext := strings.ToLower(filepath.Ext(fileName))
		if !slices.Contains(l.exts, ext) {
			continue
		}

		// dotfiles such as ".json" have no base name
		name := fileName[:len(fileName)-len(ext)]
		if name == "" {
			continue
		}

		mode, ok := l.entryMode(dir, entry)
		if !ok || !mode.IsRegular() {
			continue
		}

		files = append(files, models.FileDescriptor{
			Name: name,
			Path: filepath.Join(dir, fileName),
			Ext:  ext,
		})
	}
	slices.SortFunc(files, func(a, b models.FileDescriptor) int {
		return strings.Compare(filepath.Base(a.Path), filepath.Base(b.Path))
	})

	return files, nil
}

// Load scans the configuration root and returns the aggregate of every
// configuration file in the selected directory. Zero files yield an empty,
// non-nil aggregate.
//
// Files are decoded one at a time in listing order and the first failure
// stops the load. A listing failure of the root is returned as a [*RootError];
// a listing failure of an environment directory is a bare [*DirectoryReadError].
func (l *Loader) Load() (models.Aggregate, error) {
	if err := l.checkRoot(); err != nil {
		l.log.Error().Err(err).Str("dir", l.root).Msg("configuration directory is missing")
		return nil, err
	}

	dir, err := l.targetDir()
	if err != nil {
		l.log.Error().Err(err).Str("env", l.env).Msg("error resolving environment directory")
		return nil, err
	}

	files, err := l.ListConfigFiles(dir)
	if err != nil {
		if dir == l.root {
			return nil, &RootError{Root: l.root, Cause: err}
		}
		return nil, err
	}

	if err = checkDuplicates(files); err != nil {
		return nil, err
	}

	agg := make(models.Aggregate, len(files))
	if len(files) == 0 {
		l.log.Warn().Str("dir", dir).Msg("no configuration files found")
		return agg, nil
	}

	for _, file := range files {
		doc, err := l.loadFile(file)
		if err != nil {
			l.log.Error().Err(err).Str("path", file.Path).Msg("error loading configuration file")
			return nil, err
		}
		agg[file.Name] = doc
		l.log.Debug().Str("name", file.Name).Str("path", file.Path).Msg("configuration file loaded")
	}

	return agg, nil
}

// Reload performs a fresh [Loader.Load]. It exists to make repeated loads
// explicit at call sites; the result is independent of any earlier load.
func (l *Loader) Reload() (models.Aggregate, error) {
	return l.Load()
}

func (l *Loader) checkRoot() error {
	info, err := l.fs.Stat(l.root)
	if err != nil {
		return &RootError{Root: l.root, Cause: err}
	}
	if !info.IsDir() {
		return &RootError{Root: l.root, Cause: errNotADirectory}
	}
	return nil
}

func (l *Loader) targetDir() (string, error) {
	if l.env == "" {
		l.log.Info().Msg("loading configuration")
		return l.root, nil
	}

	l.log.Info().Str("env", l.env).Msg("loading configuration for environment")

	envs, err := l.ListEnvironments(l.root)
	if err != nil {
		return "", &RootError{Root: l.root, Cause: err}
	}
	if !slices.Contains(envs, l.env) {
		return "", &UnknownEnvironmentError{
			Env:       l.env,
			Root:      filepath.Join(l.root, l.env),
			Available: envs,
		}
	}

	return filepath.Join(l.root, l.env), nil
}

func (l *Loader) loadFile(file models.FileDescriptor) (models.Document, error) {
	dec, err := l.decoders.Lookup(file.Ext)
	if err != nil {
		return nil, &DecodeError{Path: file.Path, Cause: err}
	}

	data, err := l.fs.ReadFile(file.Path)
	if err != nil {
		return nil, &DecodeError{Path: file.Path, Cause: err}
	}

	doc, err := dec.Decode(data)
	if err != nil {
		return nil, &DecodeError{Path: file.Path, Cause: err}
	}
	return doc, nil
}

// entryMode returns the mode of entry, following symbolic links. Entries
// that cannot be stat'ed (e.g. dangling links) report false.
func (l *Loader) entryMode(dir string, entry fs.DirEntry) (fs.FileMode, bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type(), true
	}

	info, err := l.fs.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		l.log.Debug().Err(err).Str("entry", entry.Name()).Msg("skipping unreadable entry")
		return 0, false
	}
	return info.Mode(), true
}

func checkDuplicates(files []models.FileDescriptor) error {
	seen := make(map[string]string, len(files))
	for _, file := range files {
		if prev, ok := seen[file.Name]; ok {
			return &DuplicateConfigError{Name: file.Name, Paths: []string{prev, file.Path}}
		}
		seen[file.Name] = file.Path
	}
	return nil
}
