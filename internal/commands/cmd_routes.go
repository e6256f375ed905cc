package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/rubiqs/suite/internal/core/access"
	"github.com/rubiqs/suite/internal/tui/router"
	"github.com/rubiqs/suite/pkg/iojson"
)

type RoutesCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// routeInfo is the JSON shape of one routing table entry.
type routeInfo struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Tool    string `json:"tool,omitempty"`
	Allowed bool   `json:"allowed"`
}

// NewRoutesCmd creates a new routes command
func NewRoutesCmd(flags *Flags) *RoutesCmd {
	return &RoutesCmd{flags: flags}
}

// Register adds the routes command to the application
func (cmd *RoutesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "routes",
		Usage:     "List the routing table",
		UsageText: "rubiqs routes [--json]",
		Description: `Displays every route with the tool it requires and whether the
configured access grants allow it.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RoutesCmd) run(_ context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.RequireConfig()
	if err != nil {
		return err
	}

	infos := describeRoutes(router.Default(), cfg.Grants())
	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, info := range infos {
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode route: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PATH\tNAME\tTOOL\tACCESS")
	for _, info := range infos {
		tool, state := info.Tool, "allowed"
		if tool == "" {
			tool = "-"
		}
		if !info.Allowed {
			state = "denied"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Path, info.Name, tool, state)
	}
	return w.Flush()
}

func describeRoutes(t *router.Table, policy access.Policy) []routeInfo {
	routes := t.Routes()
	infos := make([]routeInfo, 0, len(routes))
	for _, r := range routes {
		infos = append(infos, routeInfo{
			Path:    r.Path,
			Name:    r.Name,
			Tool:    r.Tool,
			Allowed: r.Tool == "" || policy.HasCapability(r.Tool),
		})
	}
	return infos
}
