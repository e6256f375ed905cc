// Package pages holds the static tool pages and the fallback pages shown for
// unknown or unauthorized paths.
package pages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rubiqs/suite/internal/tui/element"
	"github.com/rubiqs/suite/internal/tui/views"
)

// BackLinkID is the element ID of every page's link to the dashboard.
const BackLinkID = "back"

// Page is a static view: heading, markdown description and a link home.
type Page struct {
	title string
	body  string
	back  string
}

// New creates a page.
func New(title, body string) *Page {
	return &Page{title: title, body: body, back: "/"}
}

// Title implements views.View.
func (p *Page) Title() string { return p.title }

// Render implements views.View.
func (p *Page) Render() *element.Element {
	return element.Fragment(
		element.Heading("page-title", 1, p.title),
		element.Markdown(p.body),
		element.Link(BackLinkID, "Back to Dashboard", p.back),
	)
}

// Update implements views.View. Pages have no state.
func (p *Page) Update(tea.Msg) (views.View, tea.Cmd) { return p, nil }

// NewGrader creates the Rubiqs Grader page.
func NewGrader(views.Deps) views.View {
	return New("Rubiqs Grader", "This is the grader page.")
}

// NewNotes creates the Rubiqs Notes page.
func NewNotes(views.Deps) views.View {
	return New("Rubiqs Notes", "This is the notes page.")
}

// NewChat creates the Rubiqs Chat page.
func NewChat(views.Deps) views.View {
	return New("Rubiqs Chat", "This is the chat page.")
}

// NewMath creates the Rubiqs Math page.
func NewMath(views.Deps) views.View {
	return New("Rubiqs Math", "This is the math page.")
}

// NewSpeak creates the Rubiqs Speak page.
func NewSpeak(views.Deps) views.View {
	return New("Rubiqs Speak", "This is the speak page.")
}

// NewDiscussion creates the Rubiqs Discussion page.
func NewDiscussion(views.Deps) views.View {
	return New("Rubiqs Discussion", "This is the discussion page.")
}

// NewNotFound creates the page shown for a path with no route.
func NewNotFound(deps views.Deps) views.View {
	return New("Page Not Found", fmt.Sprintf("No page is registered for `%s`.", deps.Path))
}

// NewUnauthorized creates the page shown when the policy denies a route's tool.
func NewUnauthorized(deps views.Deps) views.View {
	return New("Unauthorized", fmt.Sprintf("You do not have access to `%s`.", deps.Path))
}
