// Package dashboard implements the suite landing view: banner, tool tiles and
// the Rubiqs Compass dialog.
package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/rubiqs/suite/internal/core/access"
	"github.com/rubiqs/suite/internal/tui/components"
	"github.com/rubiqs/suite/internal/tui/element"
	"github.com/rubiqs/suite/internal/tui/views"
)

// Tile is one entry of the tool grid.
type Tile struct {
	Tool  string // capability required to follow the tile
	Path  string
	Label string
	Image string // alt text of the tile artwork
}

// DefaultTiles is the grid shown on the dashboard.
var DefaultTiles = []Tile{
	{Tool: access.ToolGrader, Path: "/grader", Label: "Rubiqs Grader", Image: "Rubiqs Grader"},
}

// View is the dashboard. It owns the compass visibility flag; nothing else
// reads or writes it.
type View struct {
	policy    access.Policy
	tiles     []Tile
	modalOpen bool
}

// New creates a dashboard with the compass closed.
func New(deps views.Deps) *View {
	policy := deps.Policy
	if policy == nil {
		policy = access.AllowAll()
	}
	return &View{
		policy: policy,
		tiles:  DefaultTiles,
	}
}

// Title implements views.View.
func (v *View) Title() string { return "Dashboard" }

// ModalOpen reports whether the compass is showing.
func (v *View) ModalOpen() bool { return v.modalOpen }

func (v *View) setModalOpen(open bool) {
	if v.modalOpen == open {
		return
	}
	v.modalOpen = open
	log.Debug().Bool("open", open).Msg("compass visibility changed")
}

func (v *View) modal() components.Modal {
	return components.Modal{
		IsOpen:  v.modalOpen,
		OnClose: func() { v.setModalOpen(false) },
	}
}

// Render implements views.View.
func (v *View) Render() *element.Element {
	return element.Fragment(
		element.Group(element.RoleBanner, "",
			&element.Element{Role: element.RoleImg, Text: "Rubiqs Logo", Class: element.ClassLogo},
			&element.Element{
				Role:  element.RoleText,
				Text:  "Mastery Tech for Modern Learners\nby Rubiqs Design Studios",
				Class: element.ClassSubtitle,
			},
		),
		element.Group(element.RoleMain, "Rubiqs Suite Dashboard",
			&element.Element{
				ID:    "dashboard-title",
				Role:  element.RoleHeading,
				Level: 1,
				Children: []*element.Element{
					{Role: element.RoleText, Text: "RUBIQS SUITE", Class: element.ClassTitle},
					{Role: element.RoleText, Text: "DASHBOARD", Class: element.ClassTitleSub},
				},
			},
			v.tileGrid(),
		),
		v.modal().Element(),
	)
}

func (v *View) tileGrid() *element.Element {
	grid := element.Group(element.RoleGroup, "Tools")
	grid.Class = element.ClassTiles

	for _, t := range v.tiles {
		tile := element.Link("tile-"+t.Tool, "", t.Path, element.Image(t.Image))
		tile.Label = t.Label
		tile.Disabled = !v.policy.HasCapability(t.Tool)
		grid.Children = append(grid.Children, tile)
	}
	return grid
}

// Update implements views.View. The compass opens with "c" and closes
// through its own control or esc.
func (v *View) Update(msg tea.Msg) (views.View, tea.Cmd) {
	switch msg := msg.(type) {
	case views.ActivateMsg:
		v.modal().Activate(msg.ID)
	case tea.KeyMsg:
		if v.modal().HandleKey(msg) {
			return v, nil
		}
		if !v.modalOpen && msg.String() == "c" {
			v.setModalOpen(true)
		}
	}
	return v, nil
}
