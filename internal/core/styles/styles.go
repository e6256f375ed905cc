// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	SuccessStyle       lipgloss.Style
	WarningStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	MutedStyle         lipgloss.Style

	// Page chrome.
	BannerStyle     lipgloss.Style
	LogoStyle       lipgloss.Style
	SubtitleStyle   lipgloss.Style
	MainStyle       lipgloss.Style
	TitleMainStyle  lipgloss.Style
	TitleSubStyle   lipgloss.Style
	HeadingStyle    lipgloss.Style
	TextStyle       lipgloss.Style
	ImageStyle      lipgloss.Style
	TileStyle       lipgloss.Style
	TileFocusStyle  lipgloss.Style
	TileLockedStyle lipgloss.Style

	// Interactive elements.
	LinkStyle          lipgloss.Style
	LinkFocusedStyle   lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style
	DisabledStyle      lipgloss.Style

	// Modal dialog.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	// Footer.
	FooterStyle   lipgloss.Style
	LocationStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)

	BannerStyle = lipgloss.NewStyle().MarginBottom(1)
	LogoStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)
	MainStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	TitleMainStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	TitleSubStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	HeadingStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	TextStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	ImageStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 2)
	TileFocusStyle = TileStyle.
		BorderForeground(p.Primary)
	TileLockedStyle = TileStyle.
		BorderForeground(p.Surface).
		Foreground(p.Muted)

	LinkStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Underline(true)
	LinkFocusedStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Secondary).
		Bold(true)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Muted)
	ButtonFocusedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Primary).
		Foreground(p.Background).
		Bold(true)
	DisabledStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	LocationStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
}

// FormTheme returns a huh theme tinted with the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(CurrentPalette.Primary).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(CurrentPalette.Secondary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(CurrentPalette.Secondary)
	t.Focused.Description = t.Focused.Description.Foreground(CurrentPalette.Muted)
	return t
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
