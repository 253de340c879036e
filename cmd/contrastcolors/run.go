package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/marcus/contrastcolors/internal/config"
	"github.com/marcus/contrastcolors/internal/output"
	"github.com/marcus/contrastcolors/internal/theme"
)

// runOptions are the command-line choices layered over the config.
// Pointer fields are nil when the flag was not given.
type runOptions struct {
	ramp      string
	overrides theme.Overrides
	format    string
	preview   *bool
	swatches  *int
	color     bool
	copy      bool
}

func optionsFromFlags() (runOptions, error) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	ratios, err := parseRatios(*ratiosFlag)
	if err != nil {
		return runOptions{}, err
	}

	opts := runOptions{
		ramp: *rampFlag,
		overrides: theme.Overrides{
			ColorKeys:  parseList(*keysFlag),
			Base:       strings.TrimSpace(*baseFlag),
			Ratios:     ratios,
			Colorspace: strings.TrimSpace(*colorspaceFlag),
			KeepOrder:  *keepOrderFlag,
		},
		format: strings.ToLower(strings.TrimSpace(*formatFlag)),
		copy:   *copyFlag,
	}
	if set["preview"] {
		opts.preview = previewFlag
	}
	if set["swatches"] {
		opts.swatches = swatchesFlag
	}
	return opts, nil
}

// run generates every selected ramp and writes it to w.
func run(w io.Writer, cfg *config.Config, opts runOptions) ([]theme.Result, error) {
	ramps, err := theme.ResolveRamps(cfg, opts.ramp, opts.overrides)
	if err != nil {
		return nil, err
	}
	if len(ramps) == 0 {
		return nil, errors.New("no ramps configured; pass -keys or add ramps to the config")
	}

	swatches := cfg.Output.Swatches
	if opts.swatches != nil {
		swatches = *opts.swatches
	}
	results, err := theme.Generate(ramps, swatches)
	if err != nil {
		return nil, err
	}

	outOpts := output.Options{
		Format:  cfg.Output.Format,
		Preview: cfg.Output.Preview,
		Color:   opts.color,
	}
	if opts.format != "" {
		outOpts.Format = opts.format
	}
	if opts.preview != nil {
		outOpts.Preview = *opts.preview
	}
	if err := output.Write(w, results, outOpts); err != nil {
		return nil, err
	}

	if opts.copy {
		colors := theme.Colors(results)
		if err := clipboard.WriteAll(strings.Join(colors, "\n")); err != nil {
			slog.Warn("copy to clipboard failed", "err", err)
		} else {
			slog.Info("copied to clipboard", "colors", len(colors))
		}
	}
	return results, nil
}

// saveRamp stores the single generated ramp in the config file under name.
func saveRamp(path, name string, results []theme.Result) error {
	if len(results) != 1 {
		return fmt.Errorf("-save needs exactly one ramp, got %d (use -ramp or -keys)", len(results))
	}
	r := results[0]
	return config.SaveRamp(path, config.RampConfig{
		Name:       name,
		ColorKeys:  r.ColorKeys,
		Base:       r.Base,
		Ratios:     r.Ratios,
		Colorspace: r.Colorspace,
		KeepOrder:  r.KeepOrder,
	})
}

// parseList splits a comma-separated flag value, dropping empty items.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseRatios(s string) ([]float64, error) {
	items := parseList(s)
	ratios := make([]float64, 0, len(items))
	for _, item := range items {
		r, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ratio %q: %w", item, err)
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("invalid ratio %q: not a finite number", item)
		}
		ratios = append(ratios, r)
	}
	if len(ratios) == 0 {
		return nil, nil
	}
	return ratios, nil
}
