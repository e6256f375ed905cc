package element

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubiqs/suite/internal/core/styles"
	"github.com/rubiqs/suite/pkg/tuitest"
)

func TestRender_Nil(t *testing.T) {
	r := NewRenderer(0)
	assert.Equal(t, DefaultWidth, r.Width)
	assert.Empty(t, r.Render(nil))
	assert.Empty(t, r.RenderDialog(nil))
}

func TestRender_SkipsDialog(t *testing.T) {
	root := Fragment(
		Heading("h", 1, "Page Heading"),
		&Element{Role: RoleDialog, Children: []*Element{Text("secret dialog body")}},
	)

	out := tuitest.StripANSI(NewRenderer(60).Render(root))
	assert.Contains(t, out, "Page Heading")
	assert.NotContains(t, out, "secret dialog body")
}

func TestRenderDialog(t *testing.T) {
	d := &Element{Role: RoleDialog, LabelledBy: "t", Children: []*Element{
		Heading("t", 2, "Rubiqs Compass"),
		Text("Modal content goes here."),
		Button("close", "Close"),
	}}

	out := tuitest.StripANSI(NewRenderer(60).RenderDialog(d))
	assert.Contains(t, out, "Rubiqs Compass")
	assert.Contains(t, out, "Modal content goes here.")
	assert.Contains(t, out, "Close")
	assert.Contains(t, out, "esc close")
}

func TestRender_FocusedLinkHasCursor(t *testing.T) {
	root := Fragment(
		Link("a", "First", "/"),
		Link("b", "Second", "/notes"),
	)

	r := NewRenderer(60)
	r.Focused = "b"
	lines := strings.Split(tuitest.StripANSI(r.Render(root)), "\n")

	assert.Equal(t, "  First", lines[0])
	assert.Equal(t, "▸ Second", lines[1])
}

func TestRender_DisabledTileShowsLock(t *testing.T) {
	tile := Link("tile", "", "/grader", Image("Rubiqs Grader"))
	tile.Label = "Rubiqs Grader"
	tile.Disabled = true

	out := tuitest.StripANSI(NewRenderer(60).Render(tile))
	assert.Contains(t, out, "Rubiqs Grader")
	assert.Contains(t, out, styles.IconLock)
}

func TestRender_Markdown(t *testing.T) {
	out := tuitest.StripANSI(NewRenderer(60).Render(Markdown("This is the **grader** page.")))
	assert.Contains(t, out, "This is the grader page.")
	assert.NotContains(t, out, "**")
}

func TestRender_HeadingSpans(t *testing.T) {
	h := &Element{Role: RoleHeading, Level: 1, Children: []*Element{
		{Role: RoleText, Text: "RUBIQS SUITE", Class: ClassTitle},
		{Role: RoleText, Text: "DASHBOARD", Class: ClassTitleSub},
	}}

	out := tuitest.StripANSI(NewRenderer(60).Render(h))
	lines := strings.Split(out, "\n")
	assert.Equal(t, "RUBIQS SUITE", lines[0])
	assert.Equal(t, "DASHBOARD", lines[1])
}
