package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/rubiqs/suite/internal/core/config"
	"github.com/rubiqs/suite/internal/core/styles"
	"github.com/rubiqs/suite/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// validationError is one field-level problem in the config file.
type validationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type validationResult struct {
	Valid    bool                       `json:"valid"`
	Path     string                     `json:"path"`
	Errors   []validationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "rubiqs config validate [options]",
				Description: "Validates the configuration file, checking the theme, start path, and access patterns.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	result := validateConfig(cmd.flags.ConfigPath, cmd.flags.DataDir)
	out := c.Root().Writer

	var err error
	switch cmd.format {
	case "json":
		err = iojson.WriteIndented(out, result)
	case "text":
		err = writeValidationText(out, result)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", cmd.format)
	}
	if err != nil {
		return err
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func validateConfig(configPath, dataDir string) validationResult {
	result := validationResult{Path: configPath}

	cfg, err := config.Read(configPath, dataDir)
	if err != nil {
		result.Errors = []validationError{{Message: err.Error()}}
		return result
	}

	if err := cfg.ValidateDeep(configPath); err != nil {
		result.Errors = toValidationErrors(err)
	}
	result.Warnings = cfg.Warnings()
	result.Valid = len(result.Errors) == 0
	return result
}

func toValidationErrors(err error) []validationError {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationError{{Message: err.Error()}}
	}

	out := make([]validationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out
}

func writeValidationText(w io.Writer, result validationResult) error {
	var lines []string

	for _, warn := range result.Warnings {
		line := styles.WarningStyle.Render("warn") + " " + warn.Category + ": " + warn.Message
		if warn.Item != "" {
			line += styles.MutedStyle.Render(" (" + warn.Item + ")")
		}
		lines = append(lines, line)
	}

	for _, e := range result.Errors {
		line := styles.ErrorStyle.Render("error") + " "
		if e.Field != "" {
			line += e.Field + ": "
		}
		lines = append(lines, line+e.Message)
	}

	if result.Valid {
		lines = append(lines, styles.SuccessStyle.Render("Configuration is valid")+styles.MutedStyle.Render(" "+result.Path))
	} else {
		lines = append(lines, styles.ErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(result.Errors))))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
