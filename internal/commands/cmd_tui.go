package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rubiqs/suite/internal/core/config"
	"github.com/rubiqs/suite/internal/core/styles"
	"github.com/rubiqs/suite/internal/tui"
	"github.com/rubiqs/suite/internal/tui/router"
)

type TuiCmd struct {
	flags *Flags

	// flags
	path  string
	pick  bool
	watch bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "path",
			Usage:       "route to open on launch (overrides tui.start_path)",
			Sources:     cli.EnvVars("RUBIQS_PATH"),
			Destination: &cmd.path,
		},
		&cli.BoolFlag{
			Name:        "pick",
			Usage:       "choose the starting route from a list",
			Destination: &cmd.pick,
		},
		&cli.BoolFlag{
			Name:        "watch",
			Usage:       "reload access grants when the config file changes",
			Destination: &cmd.watch,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("rubiqs needs an interactive terminal; use 'rubiqs render <path>' for plain output")
	}

	cfg, err := cmd.flags.RequireConfig()
	if err != nil {
		return err
	}

	routes := router.Default()

	start := cfg.TUI.StartPath
	if cmd.path != "" {
		start = cmd.path
	}

	if cmd.pick {
		start, err = pickRoute(routes, start)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("pick route: %w", err)
		}
	}

	deps := tui.Deps{
		Routes: routes,
		Policy: cfg.Grants(),
	}

	if cmd.watch {
		watcher, err := config.NewWatcher(cmd.flags.ConfigPath, cmd.flags.DataDir)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go watcher.Run(watchCtx)

		deps.Reloads = watcher.Changes()
		log.Info().Str("path", cmd.flags.ConfigPath).Msg("watching config for changes")
	}

	m := tui.New(deps, tui.Opts{
		StartPath: start,
		SessionID: cmd.flags.SessionID,
		BuildInfo: cmd.flags.Build,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}

// pickRoute asks the user for a starting route, preselecting current.
func pickRoute(routes *router.Table, current string) (string, error) {
	options := make([]huh.Option[string], 0, len(routes.Routes()))
	for _, r := range routes.Routes() {
		options = append(options, huh.NewOption(fmt.Sprintf("%-12s %s", r.Path, r.Name), r.Path))
	}

	selected := current
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Open").
				Description("Route to show first").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(styles.FormTheme()).Run()

	return selected, err
}
