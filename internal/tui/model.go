// Package tui implements the rubiqs terminal application: a root Bubble Tea
// model that routes between views, tracks keyboard focus and draws dialogs
// over the active page.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/rubiqs/suite/internal/core/access"
	"github.com/rubiqs/suite/internal/core/config"
	"github.com/rubiqs/suite/internal/core/logging"
	"github.com/rubiqs/suite/internal/tui/element"
	"github.com/rubiqs/suite/internal/tui/router"
	"github.com/rubiqs/suite/internal/tui/views"
)

// Deps are the collaborators of the root model.
type Deps struct {
	Routes  *router.Table        // defaults to router.Default()
	Policy  access.Policy        // defaults to access.AllowAll()
	Reloads <-chan config.Reload // optional live config updates
}

// Opts configures the TUI behavior.
type Opts struct {
	StartPath string // defaults to "/"
	SessionID string // attached to every log line
	BuildInfo BuildInfo
}

// policyReloadedMsg carries a config reload into the update loop.
type policyReloadedMsg struct {
	reload config.Reload
	closed bool
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	routes  *router.Table
	policy  access.Policy
	reloads <-chan config.Reload

	history *router.History
	current views.View
	outcome router.Outcome

	focus      int
	dialogOpen bool

	keys     KeyMap
	help     help.Model
	renderer *element.Renderer
	build    BuildInfo

	ctx      context.Context
	width    int
	height   int
	quitting bool
}

// New creates the root model showing opts.StartPath.
func New(deps Deps, opts Opts) Model {
	if deps.Routes == nil {
		deps.Routes = router.Default()
	}
	if deps.Policy == nil {
		deps.Policy = access.AllowAll()
	}
	if opts.StartPath == "" {
		opts.StartPath = router.RootPath
	}

	ctx := context.Background()
	if opts.SessionID != "" {
		ctx = logging.WithSessionID(ctx, opts.SessionID)
	}

	m := Model{
		routes:   deps.Routes,
		policy:   deps.Policy,
		reloads:  deps.Reloads,
		history:  router.NewHistory(opts.StartPath),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: element.NewRenderer(element.DefaultWidth),
		build:    opts.BuildInfo,
		ctx:      ctx,
	}
	m.open(opts.StartPath)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForReload()
}

// Path returns the active route path.
func (m Model) Path() string { return m.history.Current() }

// Current returns the active view.
func (m Model) Current() views.View { return m.current }

// Outcome reports how the active path was resolved.
func (m Model) Outcome() router.Outcome { return m.outcome }

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// Tree returns the render tree of the active view.
func (m Model) Tree() *element.Element {
	if m.current == nil {
		return nil
	}
	return m.current.Render()
}

// Focused returns the focused element, or nil when nothing is focusable.
func (m Model) Focused() *element.Element {
	order := element.FocusOrder(m.Tree())
	if len(order) == 0 {
		return nil
	}
	return order[clamp(m.focus, len(order))]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.renderer = element.NewRenderer(msg.Width)
		return m, nil
	case views.NavigateMsg:
		m.navigate(msg.Path)
		return m, nil
	case policyReloadedMsg:
		return m.handleReload(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	}

	// While a dialog is open every other key belongs to the view.
	if m.dialogOpen {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.back()
		return m, nil
	}

	return m.forward(msg)
}

// activate follows the focused link or hands the focused button to the view.
func (m Model) activate() (tea.Model, tea.Cmd) {
	el := m.Focused()
	if el == nil {
		return m, nil
	}

	if el.Role == element.RoleLink {
		m.navigate(el.Href)
		return m, nil
	}
	return m.forward(views.ActivateMsg{ID: el.ID})
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}
	next, cmd := m.current.Update(msg)
	if next != nil {
		m.current = next
	}
	m.syncDialog()
	return m, cmd
}

// syncDialog resets focus when a dialog opens or closes so focus lands on
// the first control of the new scope.
func (m *Model) syncDialog() {
	open := element.Dialog(m.Tree()) != nil
	if open != m.dialogOpen {
		m.dialogOpen = open
		m.focus = 0
	}
}

func (m *Model) moveFocus(delta int) {
	n := len(element.FocusOrder(m.Tree()))
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = ((clamp(m.focus, n)+delta)%n + n) % n
}

func (m *Model) navigate(path string) {
	m.history.Push(path)
	m.open(path)
}

func (m *Model) back() {
	path, ok := m.history.Back()
	if !ok {
		return
	}
	m.open(path)
}

// open builds the view for path and resets per-view state.
func (m *Model) open(path string) {
	m.current, m.outcome = m.routes.Open(path, m.policy)
	m.focus = 0
	m.dialogOpen = false
	m.syncDialog()

	ev := log.Info()
	if m.outcome != router.Matched {
		ev = log.Warn()
	}
	ev.Ctx(logging.WithRoute(m.ctx, path)).
		Str("outcome", m.outcome.String()).
		Msg("navigate")
}

func (m Model) handleReload(msg policyReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.closed {
		m.reloads = nil
		return m, nil
	}

	if msg.reload.Err == nil && msg.reload.Config != nil {
		m.policy = msg.reload.Config.Grants()
		m.open(m.Path())
	}
	return m, m.waitForReload()
}

func (m Model) waitForReload() tea.Cmd {
	ch := m.reloads
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return policyReloadedMsg{closed: true}
		}
		return policyReloadedMsg{reload: r}
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
