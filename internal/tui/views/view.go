// Package views holds the contract shared by every routed view and the
// messages they exchange with the root model.
package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rubiqs/suite/internal/core/access"
	"github.com/rubiqs/suite/internal/tui/element"
)

// View is a routed screen. Render must be cheap and side-effect free; the
// root model calls it on every frame and to compute focus.
type View interface {
	Title() string
	Render() *element.Element
	Update(msg tea.Msg) (View, tea.Cmd)
}

// Deps are handed to view constructors.
type Deps struct {
	Policy access.Policy
	Path   string // path the view was resolved for
}

// ActivateMsg is sent to the active view when a focused button is activated.
type ActivateMsg struct {
	ID string
}

// NavigateMsg asks the root model to show the view for Path.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command emitting NavigateMsg.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}
