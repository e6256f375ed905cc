package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/rubiqs/suite/internal/commands"
	"github.com/rubiqs/suite/internal/core/config"
	"github.com/rubiqs/suite/internal/core/logging"
	"github.com/rubiqs/suite/internal/core/styles"
	"github.com/rubiqs/suite/internal/tui"
	"github.com/rubiqs/suite/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, buildInfo falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}

	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	var logCloser func()

	bi := buildInfo()
	flags := &commands.Flags{Build: bi}

	app := &cli.Command{
		Name:      "rubiqs",
		Usage:     "Rubiqs Suite in the terminal",
		UsageText: "rubiqs [global options] command [command options]",
		Description: `Rubiqs is the shell around the Rubiqs learning tools: a dashboard and
one page per tool (grader, notes, chat, math, speak, discussion).

Run 'rubiqs' with no arguments to open the interactive shell.
Run 'rubiqs routes' to see which tools your access grants allow.`,
		Version: fmt.Sprintf("%s (%s) %s", bi.Version, bi.Commit, bi.Date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("RUBIQS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file, '-' for stderr",
				Sources:     cli.EnvVars("RUBIQS_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("RUBIQS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("RUBIQS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			flags.SessionID = logging.NewSessionID()
			ctx = logging.WithSessionID(ctx, flags.SessionID)

			// A broken config is reported by the commands that need it so
			// 'config validate' can still explain what is wrong.
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				flags.ConfigErr = fmt.Errorf("load config: %w", err)
				log.Warn().Ctx(ctx).Err(err).Str("path", flags.ConfigPath).Msg("config not loaded")
				return ctx, nil
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			log.Debug().Ctx(ctx).Str("version", bi.Version).Msg("starting")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewRoutesCmd(flags).Register(app)
	app = commands.NewRenderCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'rubiqs --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
