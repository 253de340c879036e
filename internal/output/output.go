// Package output renders generated ramps as text, JSON or markdown.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/marcus/contrastcolors/internal/config"
	"github.com/marcus/contrastcolors/internal/theme"
)

// Options controls rendering.
type Options struct {
	Format  string // config.FormatText, FormatJSON or FormatMarkdown
	Preview bool   // lipgloss swatches in text output
	Color   bool   // terminal styling (highlighting, glamour, swatches)
	Width   int    // wrap width for markdown; 0 uses defaultWidth
}

const defaultWidth = 100

// UnknownFormatError is returned for a format Write cannot render.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format: %s", e.Format)
}

// Write renders results to w in the requested format.
func Write(w io.Writer, results []theme.Result, opts Options) error {
	switch opts.Format {
	case config.FormatText, "":
		return writeText(w, results, opts)
	case config.FormatJSON:
		return writeJSON(w, results, opts)
	case config.FormatMarkdown:
		return writeMarkdown(w, results, opts)
	default:
		return &UnknownFormatError{Format: opts.Format}
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
