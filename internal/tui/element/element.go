// Package element defines the render tree every view produces.
//
// Views never build strings directly. They return an *Element tree with roles
// and labels, the root model decides focus and draws it with Render. Keeping
// the tree separate from the drawing lets tests query structure (roles,
// destinations, labels) instead of scraping styled text.
package element

// Role classifies an element.
type Role string

const (
	RoleFragment Role = ""
	RoleBanner   Role = "banner"
	RoleMain     Role = "main"
	RoleGroup    Role = "group"
	RoleHeading  Role = "heading"
	RoleText     Role = "text"
	RoleImg      Role = "img"
	RoleLink     Role = "link"
	RoleButton   Role = "button"
	RoleDialog   Role = "dialog"
)

// Element is one node of a view's render tree.
type Element struct {
	ID         string
	Role       Role
	Text       string // visible text; for images the alt text
	Label      string // accessible name when it differs from Text
	Href       string // link destination
	LabelledBy string // ID of the heading naming a region
	Level      int    // heading level
	Markdown   bool   // Text is markdown
	Disabled   bool
	Class      string // presentation hint for the renderer
	Children   []*Element
}

// Fragment groups children without adding a node of its own. Nil children
// are dropped, so optional parts can be passed inline.
func Fragment(children ...*Element) *Element {
	return &Element{Role: RoleFragment, Children: compact(children)}
}

// Heading returns a heading element.
func Heading(id string, level int, text string) *Element {
	return &Element{ID: id, Role: RoleHeading, Level: level, Text: text}
}

// Text returns a plain paragraph.
func Text(text string) *Element {
	return &Element{Role: RoleText, Text: text}
}

// Markdown returns a paragraph rendered as markdown.
func Markdown(text string) *Element {
	return &Element{Role: RoleText, Text: text, Markdown: true}
}

// Image returns an image placeholder identified by its alt text.
func Image(alt string) *Element {
	return &Element{Role: RoleImg, Text: alt}
}

// Link returns a navigable link.
func Link(id, text, href string, children ...*Element) *Element {
	return &Element{ID: id, Role: RoleLink, Text: text, Href: href, Children: compact(children)}
}

// Button returns an activatable button.
func Button(id, text string) *Element {
	return &Element{ID: id, Role: RoleButton, Text: text}
}

// Group returns a container with the given role.
func Group(role Role, label string, children ...*Element) *Element {
	return &Element{Role: role, Label: label, Children: compact(children)}
}

// Name returns the accessible name: Label if set, otherwise Text.
func (e *Element) Name() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Text
}

// Focusable reports whether the element takes keyboard focus.
func (e *Element) Focusable() bool {
	return (e.Role == RoleLink || e.Role == RoleButton) && !e.Disabled
}

func compact(in []*Element) []*Element {
	out := in[:0:0]
	for _, e := range in {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
