package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rubiqs/suite/internal/core/styles"
	"github.com/rubiqs/suite/internal/tui/element"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tree := m.Tree()
	if f := m.Focused(); f != nil {
		m.renderer.Focused = f.ID
	} else {
		m.renderer.Focused = ""
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		m.locationBar(),
		m.renderer.Render(tree),
		styles.FooterStyle.Render(m.help.View(m.keys)),
	)

	d := element.Dialog(tree)
	if d == nil {
		return page
	}

	// The dialog replaces the page while open, centred in the window.
	dialog := m.renderer.RenderDialog(d)
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = lipgloss.Width(page), lipgloss.Height(page)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dialog)
}

func (m Model) locationBar() string {
	title := ""
	if m.current != nil {
		title = m.current.Title()
	}

	bar := styles.LocationStyle.Render(m.Path()) + "  " + styles.MutedStyle.Render(title)
	if m.build.Version != "" {
		bar += styles.MutedStyle.Render(fmt.Sprintf("  rubiqs %s", m.build.Version))
	}
	return bar
}
