package router

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiqs/suite/internal/core/access"
	"github.com/rubiqs/suite/internal/tui/element"
	"github.com/rubiqs/suite/internal/tui/views"
	"github.com/rubiqs/suite/internal/tui/views/dashboard"
)

func TestDefault_SevenRoutesInOrder(t *testing.T) {
	var paths []string
	for _, r := range Default().Routes() {
		paths = append(paths, r.Path)
	}

	assert.Equal(t, []string{"/", "/notes", "/chat", "/math", "/speak", "/grader", "/discussion"}, paths)
}

func TestDefault_EachPathRendersItsOwnView(t *testing.T) {
	table := Default()
	titles := map[string]string{}

	for _, r := range table.Routes() {
		v, outcome := table.Open(r.Path, access.AllowAll())
		require.NotNil(t, v, r.Path)
		assert.Equal(t, Matched, outcome, r.Path)

		// Same constructor output as the route's own constructor.
		want := r.New(views.Deps{Path: r.Path})
		assert.Equal(t, reflect.TypeOf(want), reflect.TypeOf(v), r.Path)
		assert.Equal(t, want.Title(), v.Title(), r.Path)

		titles[v.Title()] = r.Path
	}

	assert.Len(t, titles, len(table.Routes()), "every path maps to a distinct view")
}

func TestOpen_RootIsDashboard(t *testing.T) {
	v, outcome := Default().Open("/", nil)
	assert.Equal(t, Matched, outcome)
	assert.IsType(t, &dashboard.View{}, v)
}

func TestOpen_Grader(t *testing.T) {
	v, _ := Default().Open("/grader", access.AllowAll())
	root := v.Render()

	assert.Contains(t, element.TextContent(root), "Rubiqs Grader")
	links := element.ByRole(root, element.RoleLink)
	require.Len(t, links, 1)
	assert.Equal(t, "/", links[0].Href)
}

func TestOpen_ExactMatchOnly(t *testing.T) {
	table := Default()

	for _, p := range []string{"/grader/", "/Grader", "/grader?x=1", "", "/unknown"} {
		_, ok := table.Resolve(p)
		assert.False(t, ok, p)

		v, outcome := table.Open(p, access.AllowAll())
		assert.Equal(t, NotFound, outcome, p)
		require.NotNil(t, v)
		assert.Equal(t, "Page Not Found", v.Title())
	}
}

func TestOpen_DeniedTool(t *testing.T) {
	policy := access.Grants{Tools: map[string]bool{access.ToolGrader: true}}
	table := Default()

	v, outcome := table.Open("/math", policy)
	assert.Equal(t, Denied, outcome)
	assert.Equal(t, "Unauthorized", v.Title())
	assert.Contains(t, element.TextContent(v.Render()), "/math")

	v, outcome = table.Open("/grader", policy)
	assert.Equal(t, Matched, outcome)
	assert.Equal(t, "Rubiqs Grader", v.Title())

	// The dashboard needs no tool.
	_, outcome = table.Open("/", access.DenyAll())
	assert.Equal(t, Matched, outcome)
}

func TestNew_DuplicatesAndNilFallbacks(t *testing.T) {
	first := func(views.Deps) views.View { return nil }
	table := New([]Route{
		{Path: "/a", Name: "first", New: first},
		{Path: "/a", Name: "second", New: first},
	}, nil, nil)

	require.Len(t, table.Routes(), 1)
	r, ok := table.Resolve("/a")
	require.True(t, ok)
	assert.Equal(t, "first", r.Name)

	v, outcome := table.Open("/b", nil)
	assert.Nil(t, v)
	assert.Equal(t, NotFound, outcome)
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	table := Default()
	routes := table.Routes()
	routes[0].Path = "/mutated"

	_, ok := table.Resolve("/")
	assert.True(t, ok)
	assert.Equal(t, "/", table.Routes()[0].Path)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "matched", Matched.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "denied", Denied.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
