package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rubiqs/suite/internal/tui/element"
)

// Element IDs inside the compass dialog.
const (
	ModalTitleID = "compass-title"
	ModalCloseID = "compass-close"
)

// Modal is the Rubiqs Compass dialog. It is a controlled component: the owner
// supplies IsOpen and OnClose on every render and keeps the state itself.
type Modal struct {
	IsOpen  bool
	OnClose func()
}

// Element returns the dialog subtree, or nil while closed so nothing of the
// dialog reaches the render tree.
func (m Modal) Element() *element.Element {
	if !m.IsOpen {
		return nil
	}

	return &element.Element{
		ID:         "compass",
		Role:       element.RoleDialog,
		LabelledBy: ModalTitleID,
		Children: []*element.Element{
			element.Heading(ModalTitleID, 2, "Rubiqs Compass"),
			element.Text("Modal content goes here."),
			element.Button(ModalCloseID, "Close"),
		},
	}
}

// Activate handles activation of one of the dialog's controls and reports
// whether it was consumed. The close control calls OnClose once.
func (m Modal) Activate(id string) bool {
	if !m.IsOpen || id != ModalCloseID {
		return false
	}
	m.close()
	return true
}

// HandleKey treats esc as the close control while open.
func (m Modal) HandleKey(msg tea.KeyMsg) bool {
	if !m.IsOpen || msg.Type != tea.KeyEsc {
		return false
	}
	m.close()
	return true
}

func (m Modal) close() {
	if m.OnClose != nil {
		m.OnClose()
	}
}
