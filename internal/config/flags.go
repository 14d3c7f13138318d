package config

import (
	"flag"
	"fmt"
	"strings"
)

// ExtensionList holds a comma-separated list of file suffixes.
// It implements the flag.Value interface.
type ExtensionList []string

// String returns the suffixes joined by commas.
func (l *ExtensionList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set replaces the list with the comma-separated values in s.
func (l *ExtensionList) Set(s string) error {
	var exts []string
	for _, ext := range strings.Split(s, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			exts = append(exts, ext)
		}
	}
	*l = exts
	return nil
}

// parseFlags registers the loader flags on fs, parses args and returns a
// [Settings] layer holding only the flags that were given explicitly.
//
// Flags:
//
//	-d/-config-dir configuration root directory
//	-e/-env        environment subdirectory to load
//	-halt          treat a failed load as fatal (default true)
//	-log           emit loader messages
//	-ext           comma-separated config file suffixes
//	-dotenv        .env file path
func parseFlags(fs *flag.FlagSet, args []string) (*Settings, error) {
	var configDir string
	var envName string
	var halt bool
	var log bool
	var exts ExtensionList
	var dotEnvFile string

	fs.StringVar(&configDir, "d", "", "Configuration root directory")
	fs.StringVar(&configDir, "config-dir", "", "Configuration root directory (alias)")
	fs.StringVar(&envName, "e", "", "Environment subdirectory to load")
	fs.StringVar(&envName, "env", "", "Environment subdirectory to load (alias)")
	fs.BoolVar(&halt, "halt", true, "Treat a failed load as fatal")
	fs.BoolVar(&log, "log", false, "Emit loader messages")
	fs.Var(&exts, "ext", "Comma-separated config file suffixes (e.g. .json,.yaml)")
	fs.StringVar(&dotEnvFile, "dotenv", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	settings := &Settings{
		ConfigDir:  configDir,
		Env:        envName,
		Extensions: exts,
		DotEnvFile: dotEnvFile,
	}

	// booleans only count when given, so that -halt=false can override the
	// environment while an absent flag leaves it alone
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "halt":
			settings.Halt = &halt
		case "log":
			settings.Log = &log
		}
	})

	return settings, nil
}
