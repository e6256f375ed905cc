package element

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/rubiqs/suite/internal/core/styles"
)

// DefaultWidth is used when the terminal size is not known yet.
const DefaultWidth = 80

// Presentation classes understood by the renderer.
const (
	ClassLogo     = "logo"
	ClassSubtitle = "subtitle"
	ClassTitle    = "title-main"
	ClassTitleSub = "title-sub"
	ClassTiles    = "tiles"
)

// Renderer draws element trees with the active lipgloss styles.
type Renderer struct {
	Width   int
	Focused string // ID of the focused element

	mu       sync.Mutex
	markdown map[int]*glamour.TermRenderer
}

// NewRenderer creates a renderer for the given width.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{Width: width, markdown: make(map[int]*glamour.TermRenderer)}
}

// Render draws the tree without any dialog. Dialogs are drawn separately by
// RenderDialog so the caller can place them over the page.
func (r *Renderer) Render(root *Element) string {
	if root == nil {
		return ""
	}
	return r.render(root)
}

// RenderDialog draws a dialog box, or "" for nil.
func (r *Renderer) RenderDialog(d *Element) string {
	if d == nil {
		return ""
	}

	parts := make([]string, 0, len(d.Children)+1)
	var buttons []string
	for _, c := range d.Children {
		if c.Role == RoleButton {
			buttons = append(buttons, r.render(c))
			continue
		}
		parts = append(parts, r.render(c))
	}
	if len(buttons) > 0 {
		parts = append(parts, lipgloss.NewStyle().MarginTop(1).Render(
			lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
		))
	}
	parts = append(parts, styles.ModalHelpStyle.Render("enter activate  esc close"))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (r *Renderer) render(e *Element) string {
	switch e.Role {
	case RoleDialog:
		return ""
	case RoleBanner:
		return styles.BannerStyle.Render(r.children(e, lipgloss.Left))
	case RoleMain:
		return styles.MainStyle.Render(r.children(e, lipgloss.Left))
	case RoleGroup:
		if e.Class == ClassTiles {
			return r.tiles(e)
		}
		return r.children(e, lipgloss.Left)
	case RoleHeading:
		return r.heading(e)
	case RoleText:
		return r.text(e)
	case RoleImg:
		if e.Class == ClassLogo {
			return styles.LogoStyle.Render(e.Text)
		}
		return styles.ImageStyle.Render(styles.IconImage + " " + e.Text)
	case RoleLink:
		return r.link(e)
	case RoleButton:
		if e.ID == r.Focused {
			return styles.ButtonFocusedStyle.Render(e.Text)
		}
		return styles.ButtonStyle.Render(e.Text)
	default:
		return r.children(e, lipgloss.Left)
	}
}

func (r *Renderer) children(e *Element, pos lipgloss.Position) string {
	parts := make([]string, 0, len(e.Children))
	for _, c := range e.Children {
		if s := r.render(c); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(pos, parts...)
}

func (r *Renderer) tiles(e *Element) string {
	parts := make([]string, 0, len(e.Children)*2)
	for i, c := range e.Children {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, r.render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) heading(e *Element) string {
	if len(e.Children) > 0 {
		spans := make([]string, 0, len(e.Children))
		for _, c := range e.Children {
			switch c.Class {
			case ClassTitleSub:
				spans = append(spans, styles.TitleSubStyle.Render(c.Text))
			default:
				spans = append(spans, styles.TitleMainStyle.Render(c.Text))
			}
		}
		return lipgloss.NewStyle().MarginBottom(1).Render(lipgloss.JoinVertical(lipgloss.Left, spans...))
	}
	if e.Level > 1 {
		return styles.ModalTitleStyle.Render(e.Text)
	}
	return styles.HeadingStyle.Render(e.Text)
}

func (r *Renderer) text(e *Element) string {
	if e.Class == ClassSubtitle {
		return styles.SubtitleStyle.Render(e.Text)
	}
	if e.Markdown {
		return r.renderMarkdown(e.Text)
	}
	return styles.TextStyle.Render(e.Text)
}

func (r *Renderer) link(e *Element) string {
	focused := e.ID != "" && e.ID == r.Focused

	if len(e.Children) > 0 {
		inner := r.children(e, lipgloss.Center)
		switch {
		case e.Disabled:
			return styles.TileLockedStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
				inner, styles.IconLock+" "+e.Name()))
		case focused:
			return styles.TileFocusStyle.Render(inner)
		default:
			return styles.TileStyle.Render(inner)
		}
	}

	switch {
	case e.Disabled:
		return styles.DisabledStyle.Render(e.Text)
	case focused:
		return styles.IconCursor + " " + styles.LinkFocusedStyle.Render(e.Text)
	default:
		return "  " + styles.LinkStyle.Render(e.Text)
	}
}

func (r *Renderer) renderMarkdown(src string) string {
	tr, err := r.markdownRenderer()
	if err == nil {
		var out string
		out, err = tr.Render(src)
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}

	log.Warn().Err(err).Msg("markdown render failed, using raw text")
	return styles.TextStyle.Render(src)
}

func (r *Renderer) markdownRenderer() (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.markdown == nil {
		r.markdown = make(map[int]*glamour.TermRenderer)
	}
	if tr, ok := r.markdown[r.Width]; ok {
		return tr, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(max(r.Width-4, 20)),
	)
	if err != nil {
		return nil, err
	}
	r.markdown[r.Width] = tr
	return tr, nil
}
