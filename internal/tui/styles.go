package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the colors used across the console.
type Theme struct {
	Primary    lipgloss.Color
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	Border     lipgloss.Color
	ActiveBG   lipgloss.Color
	LatestBG   lipgloss.Color
	Danger     lipgloss.Color
	DisabledFG lipgloss.Color
}

// Styles holds the pre-built lipgloss styles for rendering.
type Styles struct {
	Theme Theme

	Title      lipgloss.Style
	Muted      lipgloss.Style
	Header     lipgloss.Style
	ActiveRow  lipgloss.Style
	LatestItem lipgloss.Style
	PanelBox   lipgloss.Style
	AlertBox   lipgloss.Style
	Key        lipgloss.Style
	Desc       lipgloss.Style
	Disabled   lipgloss.Style
}

// DefaultStyles builds the standard console theme.
func DefaultStyles() Styles {
	t := Theme{
		Primary:    lipgloss.Color("#3498db"),
		Text:       lipgloss.Color("#d0d0d0"),
		TextMuted:  lipgloss.Color("#808080"),
		Border:     lipgloss.Color("#444444"),
		ActiveBG:   lipgloss.Color("#2c3e50"),
		LatestBG:   lipgloss.Color("#1e4620"), // most recent history entry
		Danger:     lipgloss.Color("#e74c3c"),
		DisabledFG: lipgloss.Color("#555555"),
	}

	return Styles{
		Theme:      t,
		Title:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(t.TextMuted),
		Header:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true),
		ActiveRow:  lipgloss.NewStyle().Background(t.ActiveBG).Bold(true),
		LatestItem: lipgloss.NewStyle().Background(t.LatestBG),
		PanelBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		AlertBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Danger).
			Padding(0, 2),
		Key:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Desc:     lipgloss.NewStyle().Foreground(t.TextMuted),
		Disabled: lipgloss.NewStyle().Foreground(t.DisabledFG),
	}
}
