package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/marcus/contrastcolors/internal/styles"
	"github.com/marcus/contrastcolors/internal/theme"
)

func writeMarkdown(w io.Writer, results []theme.Result, opts Options) error {
	md := Markdown(results)
	if !opts.Color {
		_, err := io.WriteString(w, md)
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.CurrentMarkdownTheme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}

// Markdown formats results as a markdown report, one table per ramp.
func Markdown(results []theme.Result) string {
	var sb strings.Builder
	sb.WriteString("# Contrast colors\n")
	for _, r := range results {
		fmt.Fprintf(&sb, "\n## %s\n\n", r.Name)
		fmt.Fprintf(&sb, "Base `%s`, colorspace %s.\n\n", r.Base, r.Colorspace)
		sb.WriteString("| Target | Color | Measured |\n")
		sb.WriteString("|---:|---|---:|\n")
		for i, c := range r.Colors {
			measured := ""
			if i < len(r.Measured) {
				measured = styles.FormatRatio(r.Measured[i])
			}
			fmt.Fprintf(&sb, "| %s | `%s` | %s |\n", styles.FormatRatio(r.Ratios[i]), c, measured)
		}
		if len(r.Scale) > 0 {
			sb.WriteString("\nScale: ")
			for i, c := range r.Scale {
				if i > 0 {
					sb.WriteString(" ")
				}
				fmt.Fprintf(&sb, "`%s`", c)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
