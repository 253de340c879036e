package output

import (
	"encoding/json"
	"io"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/marcus/contrastcolors/internal/styles"
	"github.com/marcus/contrastcolors/internal/theme"
)

func writeJSON(w io.Writer, results []theme.Result, opts Options) error {
	if results == nil {
		results = []theme.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if opts.Color {
		return quick.Highlight(w, string(data), "json", "terminal256", styles.CurrentSyntaxTheme)
	}
	_, err = w.Write(data)
	return err
}
