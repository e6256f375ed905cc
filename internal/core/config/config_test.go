package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiqs/suite/internal/core/access"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/data")
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, DefaultConfig().TUI, cfg.TUI)
	assert.Equal(t, []string{"*"}, cfg.Access.Allow)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("", "/data")
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.TUI.StartPath)
}

func TestLoad_OverridesFromYAML(t *testing.T) {
	path := writeConfig(t, `
tui:
  theme: gruvbox
  start_path: /grader
access:
  logged_in: false
  tools:
    grader: true
  allow: []
`)

	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, "/grader", cfg.TUI.StartPath)
	assert.Empty(t, cfg.Access.Allow)
	require.NotNil(t, cfg.Access.LoggedIn)
	assert.False(t, *cfg.Access.LoggedIn)
	assert.Equal(t, map[string]bool{"grader": true}, cfg.Access.Tools)
}

func TestLoad_PartialTUIKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tui:\n  start_path: /notes\n")

	cfg, err := Load(path, "/data")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().TUI.Theme, cfg.TUI.Theme)
	assert.Equal(t, "/notes", cfg.TUI.StartPath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "tui: [unterminated")

	_, err := Load(path, "/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: neon\n")

	_, err := Load(path, "/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
		wantErr   string
	}{
		{
			name:      "empty data dir",
			mutate:    func(c *Config) { c.DataDir = "" },
			wantField: "data_dir",
			wantErr:   "cannot be empty",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.TUI.Theme = "neon" },
			wantField: "tui.theme",
			wantErr:   "unknown theme",
		},
		{
			name:      "relative start path",
			mutate:    func(c *Config) { c.TUI.StartPath = "grader" },
			wantField: "tui.start_path",
			wantErr:   "must start with /",
		},
		{
			name:      "bad allow pattern",
			mutate:    func(c *Config) { c.Access.Allow = []string{"*", "[grader"} },
			wantField: "access.allow[1]",
			wantErr:   "invalid pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = "/data"
			tt.mutate(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_Valid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"

	assert.NoError(t, cfg.ValidateDeep(writeConfig(t, "{}")))
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Warnings())

	cfg.Access.Allow = nil
	cfg.Access.Tools = map[string]bool{"grader": false}
	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "no tools are granted")

	cfg.Access.Superuser = true
	warnings = cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "superuser", warnings[0].Item)
}

func TestGrants(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.Grants()
	assert.True(t, g.LoggedIn, "logged_in defaults to true")
	assert.True(t, g.HasCapability(access.ToolSpeak))

	off := false
	cfg.Access = AccessConfig{
		LoggedIn: &off,
		Tools:    map[string]bool{"grader": true},
	}
	g = cfg.Grants()
	assert.False(t, g.LoggedIn)
	assert.True(t, g.HasCapability(access.ToolGrader))
	assert.False(t, g.HasCapability(access.ToolSpeak))

	// Grants copies; mutating the result leaves the config untouched.
	g.Tools["speak"] = true
	assert.NotContains(t, cfg.Access.Tools, "speak")
}

func TestRead_SkipsValidation(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: neon\n")

	cfg, err := Read(path, "/data")
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.TUI.Theme)
	assert.Error(t, cfg.Validate())
}
