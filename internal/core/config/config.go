// Package config handles configuration loading and validation for rubiqs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rubiqs/suite/internal/core/access"
	"github.com/rubiqs/suite/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI     TUIConfig    `yaml:"tui"`
	Access  AccessConfig `yaml:"access"`
	DataDir string       `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme     string `yaml:"theme"`      // one of styles.ThemeNames()
	StartPath string `yaml:"start_path"` // route shown on launch
}

// AccessConfig describes which tools the current user may open.
type AccessConfig struct {
	Superuser bool            `yaml:"superuser"`
	LoggedIn  *bool           `yaml:"logged_in"` // nil = true
	Tools     map[string]bool `yaml:"tools"`
	Allow     []string        `yaml:"allow"` // glob patterns over tool ids
}

// DefaultConfig returns a Config with sensible defaults. Every tool is
// allowed so a fresh install shows the whole suite.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:     styles.DefaultTheme,
			StartPath: "/",
		},
		Access: AccessConfig{
			Allow: []string{"*"},
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Read(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file and applies defaults without validating it.
func Read(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.StartPath == "" {
		c.TUI.StartPath = defaults.TUI.StartPath
	}
}

// Grants converts the access section into a capability policy.
func (c *Config) Grants() access.Grants {
	loggedIn := true
	if c.Access.LoggedIn != nil {
		loggedIn = *c.Access.LoggedIn
	}

	tools := make(map[string]bool, len(c.Access.Tools))
	for k, v := range c.Access.Tools {
		tools[k] = v
	}

	return access.Grants{
		Superuser: c.Access.Superuser,
		LoggedIn:  loggedIn,
		Tools:     tools,
		Allow:     append([]string(nil), c.Access.Allow...),
	}
}
