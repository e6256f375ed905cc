// Package router maps literal paths to view constructors.
package router

import (
	"github.com/rubiqs/suite/internal/core/access"
	"github.com/rubiqs/suite/internal/tui/views"
	"github.com/rubiqs/suite/internal/tui/views/dashboard"
	"github.com/rubiqs/suite/internal/tui/views/pages"
)

// RootPath is the dashboard route.
const RootPath = "/"

// Constructor builds a view for a resolved route.
type Constructor func(views.Deps) views.View

// Route associates a path with a view.
type Route struct {
	Path string
	Name string
	Tool string // capability required to open the route; empty for none
	New  Constructor
}

// Table is an ordered, immutable routing table.
type Table struct {
	routes   []Route
	byPath   map[string]int
	notFound Constructor
	denied   Constructor
}

// New builds a table from routes. Later duplicates of a path are ignored.
func New(routes []Route, notFound, denied Constructor) *Table {
	t := &Table{
		byPath:   make(map[string]int, len(routes)),
		notFound: notFound,
		denied:   denied,
	}
	for _, r := range routes {
		if _, dup := t.byPath[r.Path]; dup {
			continue
		}
		t.byPath[r.Path] = len(t.routes)
		t.routes = append(t.routes, r)
	}
	return t
}

// Default returns the suite's routing table.
func Default() *Table {
	return New([]Route{
		{Path: RootPath, Name: "Dashboard", New: func(d views.Deps) views.View { return dashboard.New(d) }},
		{Path: "/notes", Name: "Notes", Tool: access.ToolNotes, New: pages.NewNotes},
		{Path: "/chat", Name: "Chat", Tool: access.ToolChat, New: pages.NewChat},
		{Path: "/math", Name: "Math", Tool: access.ToolMath, New: pages.NewMath},
		{Path: "/speak", Name: "Speak", Tool: access.ToolSpeak, New: pages.NewSpeak},
		{Path: "/grader", Name: "Grader", Tool: access.ToolGrader, New: pages.NewGrader},
		{Path: "/discussion", Name: "Discussion", Tool: access.ToolDiscussion, New: pages.NewDiscussion},
	}, pages.NewNotFound, pages.NewUnauthorized)
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Resolve returns the route registered for path. Matching is exact.
func (t *Table) Resolve(path string) (Route, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Outcome describes how a path was resolved by Open.
type Outcome int

const (
	Matched Outcome = iota
	NotFound
	Denied
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case NotFound:
		return "not_found"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// Open constructs the view for path. Unknown paths get the not-found view and
// routes whose tool the policy denies get the denied view. A nil policy
// allows everything.
func (t *Table) Open(path string, policy access.Policy) (views.View, Outcome) {
	if policy == nil {
		policy = access.AllowAll()
	}
	deps := views.Deps{Policy: policy, Path: path}

	r, ok := t.Resolve(path)
	switch {
	case !ok:
		return t.fallback(t.notFound, deps), NotFound
	case r.Tool != "" && !policy.HasCapability(r.Tool):
		return t.fallback(t.denied, deps), Denied
	default:
		return r.New(deps), Matched
	}
}

func (t *Table) fallback(c Constructor, deps views.Deps) views.View {
	if c == nil {
		return nil
	}
	return c(deps)
}
