package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcus/contrastcolors/internal/styles"
	"github.com/marcus/contrastcolors/internal/theme"
)

func writeText(w io.Writer, results []theme.Result, opts Options) error {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		if opts.Preview && opts.Color {
			sb.WriteString(styles.Ramp(r.Name, r.Base, r.Colors, r.Measured))
			sb.WriteString("\n")
			if len(r.Scale) > 0 {
				sb.WriteString(styles.Scale(r.Scale))
				sb.WriteString("\n")
			}
			continue
		}
		writePlain(&sb, r)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writePlain(sb *strings.Builder, r theme.Result) {
	fmt.Fprintf(sb, "%s (%s on %s)\n", r.Name, r.Colorspace, r.Base)
	for i, c := range r.Colors {
		fmt.Fprintf(sb, "  %9s  %s", styles.FormatRatio(r.Ratios[i]), c)
		if i < len(r.Measured) && r.Measured[i] != r.Ratios[i] {
			fmt.Fprintf(sb, "  (measured %s)", styles.FormatRatio(r.Measured[i]))
		}
		sb.WriteString("\n")
	}
	if len(r.Scale) > 0 {
		fmt.Fprintf(sb, "  scale: %s\n", strings.Join(r.Scale, " "))
	}
}
