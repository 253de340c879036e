package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple

	TextPrimary = lipgloss.Color("#F9FAFB")
	TextMuted   = lipgloss.Color("#6B7280")

	BorderNormal = lipgloss.Color("#374151")

	// Third-party theme names (updated by ApplyTheme)
	CurrentSyntaxTheme   = "monokai"
	CurrentMarkdownTheme = "dark"
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Ramp name column
	RampName = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Width(nameWidth)

	// Frame around a rendered ramp
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)
)

const nameWidth = 12

// Theme names selectable with ApplyTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type palette struct {
	primary, text, muted, border string
	syntax, markdown             string
}

var themes = map[string]palette{
	ThemeDark: {
		primary: "#7C3AED", text: "#F9FAFB", muted: "#6B7280", border: "#374151",
		syntax: "monokai", markdown: "dark",
	},
	ThemeLight: {
		primary: "#6D28D9", text: "#111827", muted: "#4B5563", border: "#D1D5DB",
		syntax: "github", markdown: "light",
	},
}

// ApplyTheme switches the package styles to the named theme.
// Unknown names fall back to the dark theme.
func ApplyTheme(name string) {
	p, ok := themes[name]
	if !ok {
		p = themes[ThemeDark]
	}

	Primary = lipgloss.Color(p.primary)
	TextPrimary = lipgloss.Color(p.text)
	TextMuted = lipgloss.Color(p.muted)
	BorderNormal = lipgloss.Color(p.border)
	CurrentSyntaxTheme = p.syntax
	CurrentMarkdownTheme = p.markdown

	rebuildStyles()
}

// DetectTheme picks the theme matching the terminal background.
func DetectTheme() string {
	if lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

func rebuildStyles() {
	Title = Title.Foreground(TextPrimary)
	Muted = Muted.Foreground(TextMuted)
	RampName = RampName.Foreground(Primary)
	Panel = Panel.BorderForeground(BorderNormal)
}
