package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/rubiqs/suite/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, notEmpty),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("tui.start_path", c.TUI.StartPath, absolutePath),
		c.validateAllowPatterns(),
	)
}

// ValidateDeep runs Validate and then checks the config file on disk.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return validateConfigFile(configPath)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if !c.Access.Superuser && len(c.Access.Allow) == 0 && !anyGranted(c.Access.Tools) {
		warnings = append(warnings, ValidationWarning{
			Category: "Access",
			Message:  "no tools are granted; every tool page will show as unauthorized",
		})
	}

	if c.Access.Superuser && (len(c.Access.Tools) > 0 || len(c.Access.Allow) > 0) {
		warnings = append(warnings, ValidationWarning{
			Category: "Access",
			Item:     "superuser",
			Message:  "superuser grants every tool; tools and allow are ignored",
		})
	}

	return warnings
}

func (c *Config) validateAllowPatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Access.Allow {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("access.allow[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func absolutePath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("must start with /, got %q", p)
	}
	return nil
}

func anyGranted(tools map[string]bool) bool {
	for _, v := range tools {
		if v {
			return true
		}
	}
	return false
}
