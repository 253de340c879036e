package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/contrastcolors/internal/contrast"
)

// TextOn returns black or white, whichever reads better on bg.
func TextOn(bg string) string {
	c, err := contrast.Parse(bg)
	if err != nil {
		return contrast.Format(contrast.White)
	}
	if contrast.Ratio(contrast.Black, c) >= contrast.Ratio(contrast.White, c) {
		return contrast.Format(contrast.Black)
	}
	return contrast.Format(contrast.White)
}

// Swatch renders label on a block filled with hex.
func Swatch(hex, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(TextOn(hex))).
		Padding(0, 1).
		Render(label)
}

// Ramp renders one generated ramp as a row of swatches on its base color.
// measured may be nil; otherwise it labels each swatch with its ratio.
func Ramp(name, base string, colors []string, measured []float64) string {
	swatches := make([]string, 0, len(colors))
	for i, c := range colors {
		label := c
		if i < len(measured) {
			label = fmt.Sprintf("%s %s", c, FormatRatio(measured[i]))
		}
		swatches = append(swatches, Swatch(c, label))
	}

	row := lipgloss.NewStyle().
		Background(lipgloss.Color(base)).
		Padding(1, 2).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(swatches)...))

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		RampName.Render(name),
		Muted.Render("base "+base),
	)
	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, header, row))
}

// Scale renders swatches edge to edge without labels.
func Scale(colors []string) string {
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("   "))
	}
	return sb.String()
}

// FormatRatio prints a signed ratio the way reports show it.
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

func joinSpaced(items []string) []string {
	if len(items) < 2 {
		return items
	}
	out := make([]string, 0, 2*len(items)-1)
	for i, s := range items {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, s)
	}
	return out
}
