package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/urfave/cli/v3"

	"github.com/rubiqs/suite/internal/tui"
	"github.com/rubiqs/suite/internal/tui/element"
	"github.com/rubiqs/suite/internal/tui/router"
)

type RenderCmd struct {
	flags *Flags

	// flags
	width  int
	height int
	plain  bool
	tree   bool
	keys   []string
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Print one frame of a route",
		UsageText: "rubiqs render <path> [--width N] [--plain] [--tree] [--key K ...]",
		Description: `Builds the view for a path and prints it once without a terminal.

Use --tree to print the element tree (roles, labels, link targets) instead of
the styled frame. Each --key is fed to the view before printing, e.g.
'rubiqs render / --key c' shows the dashboard with the compass open.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "frame width in columns",
				Value:       element.DefaultWidth,
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "frame height in rows (0 fits the content)",
				Destination: &cmd.height,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "strip colors and styling",
				Destination: &cmd.plain,
			},
			&cli.BoolFlag{
				Name:        "tree",
				Usage:       "print the element tree instead of the frame",
				Destination: &cmd.tree,
			},
			&cli.StringSliceFlag{
				Name:        "key",
				Usage:       "key to send before rendering (tab, shift+tab, enter, esc, or a single character)",
				Destination: &cmd.keys,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return errors.New("render takes exactly one path, e.g. 'rubiqs render /grader'")
	}

	cfg, err := cmd.flags.RequireConfig()
	if err != nil {
		return err
	}

	keys, err := parseKeys(cmd.keys)
	if err != nil {
		return err
	}

	m := tui.New(
		tui.Deps{Routes: router.Default(), Policy: cfg.Grants()},
		tui.Opts{StartPath: c.Args().First(), SessionID: cmd.flags.SessionID, BuildInfo: cmd.flags.Build},
	)

	return renderFrame(c.Root().Writer, m, frameOpts{
		width:  cmd.width,
		height: cmd.height,
		plain:  cmd.plain,
		tree:   cmd.tree,
		keys:   keys,
	})
}

type frameOpts struct {
	width, height int
	plain, tree   bool
	keys          []tea.KeyMsg
}

// renderFrame drives m with the given keys and writes a single frame.
func renderFrame(w io.Writer, m tui.Model, opts frameOpts) error {
	var model tea.Model = m
	if opts.width > 0 {
		model, _ = model.Update(tea.WindowSizeMsg{Width: opts.width, Height: opts.height})
	}
	for _, k := range opts.keys {
		model, _ = model.Update(k)
	}

	final, ok := model.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", model)
	}

	if opts.tree {
		return element.Dump(w, final.Tree())
	}

	out := final.View()
	if opts.plain {
		out = ansi.Strip(out)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

var namedKeys = map[string]tea.KeyType{
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
}

func parseKeys(names []string) ([]tea.KeyMsg, error) {
	keys := make([]tea.KeyMsg, 0, len(names))
	for _, name := range names {
		if t, ok := namedKeys[name]; ok {
			keys = append(keys, tea.KeyMsg{Type: t})
			continue
		}
		if utf8.RuneCountInString(name) != 1 {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
	}
	return keys, nil
}
