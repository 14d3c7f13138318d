package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeDotEnv(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func boolPtr(b bool) *bool {
	return &b
}

// ── GetSettings: defaults ─────────────────────────────────────────────────────

// TestGetSettings_Defaults verifies the values used when no source sets anything.
func TestGetSettings_Defaults(t *testing.T) {
	wd := t.TempDir()

	s, err := GetSettings(WithWorkDir(wd), WithEnviron(nil))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "config"), s.ConfigDir)
	assert.Empty(t, s.Env)
	assert.True(t, s.HaltOnFailure())
	assert.False(t, s.LogEnabled())
	assert.Equal(t, []string{".json", ".yaml", ".yml"}, s.Extensions)
}

// TestGetSettings_DefaultsNotShared verifies that mutating the result does
// not leak into DefaultExtensions.
func TestGetSettings_DefaultsNotShared(t *testing.T) {
	s, err := GetSettings(WithWorkDir(t.TempDir()), WithEnviron(nil))
	require.NoError(t, err)

	s.Extensions[0] = ".changed"
	assert.Equal(t, ".json", DefaultExtensions[0])
}

// ── GetSettings: env ──────────────────────────────────────────────────────────

// TestGetSettings_EnvOverridesDefaults verifies the env layer wins over defaults.
func TestGetSettings_EnvOverridesDefaults(t *testing.T) {
	wd := t.TempDir()

	s, err := GetSettings(WithWorkDir(wd), WithEnviron([]string{
		"APP_ENV=dev",
		"APP_CONFIG_DIR=settings",
		"APP_CONFIG_HALT=false",
		"APP_CONFIG_DEBUG=true",
		"APP_CONFIG_EXTENSIONS=JSON",
	}))

	require.NoError(t, err)
	assert.Equal(t, "dev", s.Env)
	assert.Equal(t, filepath.Join(wd, "settings"), s.ConfigDir)
	assert.False(t, s.HaltOnFailure())
	assert.True(t, s.LogEnabled())
	assert.Equal(t, []string{".json"}, s.Extensions)
}

// TestGetSettings_ProcessEnvironment verifies that the process environment
// is used when WithEnviron is not given.
func TestGetSettings_ProcessEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("APP_CONFIG_DIR", "/opt/config")

	s, err := GetSettings(WithWorkDir(t.TempDir()))

	require.NoError(t, err)
	assert.Equal(t, "staging", s.Env)
	assert.Equal(t, "/opt/config", s.ConfigDir)
}

// TestGetSettings_Prefix verifies that WithPrefix changes the variable names.
func TestGetSettings_Prefix(t *testing.T) {
	s, err := GetSettings(
		WithWorkDir(t.TempDir()),
		WithPrefix("NODE_"),
		WithEnviron([]string{"NODE_ENV=prod", "APP_ENV=dev"}),
	)

	require.NoError(t, err)
	assert.Equal(t, "prod", s.Env)
}

// TestGetSettings_InvalidEnvBool verifies that a malformed boolean fails.
func TestGetSettings_InvalidEnvBool(t *testing.T) {
	s, err := GetSettings(WithWorkDir(t.TempDir()), WithEnviron([]string{"APP_CONFIG_HALT=perhaps"}))

	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occurred during building settings")
}

// ── GetSettings: flags ────────────────────────────────────────────────────────

// TestGetSettings_FlagsOverrideEnv verifies the flag layer wins over env.
func TestGetSettings_FlagsOverrideEnv(t *testing.T) {
	wd := t.TempDir()

	s, err := GetSettings(
		WithWorkDir(wd),
		WithEnviron([]string{"APP_ENV=dev", "APP_CONFIG_HALT=true", "APP_CONFIG_DIR=/from/env"}),
		WithFlags(newTestFlagSet(), []string{"-e", "prod", "-halt=false"}),
	)

	require.NoError(t, err)
	assert.Equal(t, "prod", s.Env)
	assert.False(t, s.HaltOnFailure())
	assert.Equal(t, "/from/env", s.ConfigDir, "unset flags must not override env")
}

// TestGetSettings_AbsentBoolFlagKeepsEnv verifies that an absent bool flag
// leaves the env value in place.
func TestGetSettings_AbsentBoolFlagKeepsEnv(t *testing.T) {
	s, err := GetSettings(
		WithWorkDir(t.TempDir()),
		WithEnviron([]string{"APP_CONFIG_HALT=false", "APP_CONFIG_DEBUG=true"}),
		WithFlags(newTestFlagSet(), []string{"-e", "dev"}),
	)

	require.NoError(t, err)
	assert.False(t, s.HaltOnFailure())
	assert.True(t, s.LogEnabled())
}

// TestGetSettings_BadFlag verifies that flag errors are returned.
func TestGetSettings_BadFlag(t *testing.T) {
	s, err := GetSettings(
		WithWorkDir(t.TempDir()),
		WithEnviron(nil),
		WithFlags(newTestFlagSet(), []string{"-halt=sometimes"}),
	)

	assert.Nil(t, s)
	require.Error(t, err)
}

// ── GetSettings: .env ─────────────────────────────────────────────────────────

// TestGetSettings_DefaultDotEnv verifies that ".env" in the working
// directory is picked up when present.
func TestGetSettings_DefaultDotEnv(t *testing.T) {
	wd := t.TempDir()
	writeDotEnv(t, wd, ".env", "APP_ENV=dev\nAPP_CONFIG_DEBUG=true\n")

	s, err := GetSettings(WithWorkDir(wd), WithEnviron(nil))

	require.NoError(t, err)
	assert.Equal(t, "dev", s.Env)
	assert.True(t, s.LogEnabled())
}

// TestGetSettings_DotEnvDoesNotOverrideEnvironment verifies that real
// environment variables win over .env values.
func TestGetSettings_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	wd := t.TempDir()
	writeDotEnv(t, wd, ".env", "APP_ENV=dev\n")

	s, err := GetSettings(WithWorkDir(wd), WithEnviron([]string{"APP_ENV=prod"}))

	require.NoError(t, err)
	assert.Equal(t, "prod", s.Env)
}

// TestGetSettings_DotEnvFromFlag verifies that -dotenv names the file.
func TestGetSettings_DotEnvFromFlag(t *testing.T) {
	wd := t.TempDir()
	writeDotEnv(t, wd, "custom.env", "APP_ENV=qa\n")

	s, err := GetSettings(
		WithWorkDir(wd),
		WithEnviron(nil),
		WithFlags(newTestFlagSet(), []string{"-dotenv", "custom.env"}),
	)

	require.NoError(t, err)
	assert.Equal(t, "qa", s.Env)
	assert.Equal(t, "custom.env", s.DotEnvFile)
}

// TestGetSettings_DotEnvFromEnv verifies that APP_CONFIG_DOTENV names the file.
func TestGetSettings_DotEnvFromEnv(t *testing.T) {
	wd := t.TempDir()
	p := writeDotEnv(t, wd, "other.env", "APP_CONFIG_DIR=/srv/config\n")

	s, err := GetSettings(WithWorkDir(wd), WithEnviron([]string{"APP_CONFIG_DOTENV=" + p}))

	require.NoError(t, err)
	assert.Equal(t, "/srv/config", s.ConfigDir)
}

// TestGetSettings_MissingExplicitDotEnv verifies that a missing file that was
// asked for is an error.
func TestGetSettings_MissingExplicitDotEnv(t *testing.T) {
	s, err := GetSettings(
		WithWorkDir(t.TempDir()),
		WithEnviron([]string{"APP_CONFIG_DOTENV=missing.env"}),
	)

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrDotEnvFile)
}

// ── build / validate ──────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil settings.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newSettingsBuilder()
	b.err = assert.AnError

	s, err := b.build()
	assert.Nil(t, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesLayers verifies the override order of the three layers.
func TestBuild_MergesLayers(t *testing.T) {
	b := newSettingsBuilder()
	b.workDir = "/work"
	b.defaults = &Settings{ConfigDir: "config", Halt: boolPtr(true), Log: boolPtr(false), Extensions: []string{".json"}}
	b.env = &Settings{Env: "dev", Log: boolPtr(true)}
	b.flags = &Settings{Env: "prod", Halt: boolPtr(false)}

	s, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "/work/config", s.ConfigDir)
	assert.Equal(t, "prod", s.Env)
	assert.False(t, s.HaltOnFailure())
	assert.True(t, s.LogEnabled())
	assert.Equal(t, []string{".json"}, s.Extensions)
}

// TestValidate_Extensions checks normalization and rejection of suffixes.
func TestValidate_Extensions(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
		err      error
	}{
		{name: "adds dot and lowercases", input: []string{"JSON", ".Yaml"}, expected: []string{".json", ".yaml"}},
		{name: "drops duplicates", input: []string{".json", "json"}, expected: []string{".json"}},
		{name: "skips blanks", input: []string{" ", ".yml"}, expected: []string{".yml"}},
		{name: "bare dot", input: []string{"."}, err: ErrInvalidExtension},
		{name: "path separator", input: []string{"a/b"}, err: ErrInvalidExtension},
		{name: "double extension", input: []string{".tar.gz"}, err: ErrInvalidExtension},
		{name: "empty", input: nil, err: ErrNoExtensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{ConfigDir: "/cfg", Extensions: tt.input}
			err := s.validate("/work")

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.Extensions)
		})
	}
}

// TestValidate_ConfigDir verifies path resolution against the working dir.
func TestValidate_ConfigDir(t *testing.T) {
	s := &Settings{ConfigDir: "./conf/../config/", Extensions: []string{".json"}}
	require.NoError(t, s.validate("/work"))
	assert.Equal(t, "/work/config", s.ConfigDir)

	s = &Settings{ConfigDir: "/etc//app/", Extensions: []string{".json"}}
	require.NoError(t, s.validate("/work"))
	assert.Equal(t, "/etc/app", s.ConfigDir)
}

// TestSettings_Defaults_NilPointers checks the unset interpretation of
// Halt and Log.
func TestSettings_Defaults_NilPointers(t *testing.T) {
	s := &Settings{}
	assert.True(t, s.HaltOnFailure())
	assert.False(t, s.LogEnabled())
}
