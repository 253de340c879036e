package theme

import (
	"fmt"

	"github.com/marcus/contrastcolors/internal/colorspace"
	"github.com/marcus/contrastcolors/internal/config"
	"github.com/marcus/contrastcolors/internal/generate"
)

// CustomRamp names the ramp built purely from overrides.
const CustomRamp = "custom"

// Overrides are command-line values layered on top of configured ramps.
type Overrides struct {
	ColorKeys  []string
	Base       string
	Ratios     []float64
	Colorspace string
	KeepOrder  bool
}

// ResolvedRamp is a fully-determined ramp ready for generation.
type ResolvedRamp struct {
	Name    string
	Options generate.Options
}

// ResolveRamps determines the ramps to generate.
// Priority per field: override > ramp > global config > built-in default.
// With override keys and no ramp name, a single ad-hoc ramp is returned.
func ResolveRamps(cfg *config.Config, name string, o Overrides) ([]ResolvedRamp, error) {
	var ramps []config.RampConfig
	switch {
	case name != "":
		r := cfg.Ramp(name)
		if r == nil {
			return nil, fmt.Errorf("ramp not found: %s", name)
		}
		ramps = []config.RampConfig{*r}
	case len(o.ColorKeys) > 0:
		ramps = []config.RampConfig{{Name: CustomRamp}}
	default:
		ramps = cfg.Ramps
	}

	resolved := make([]ResolvedRamp, 0, len(ramps))
	for _, r := range ramps {
		opts := generate.Options{
			ColorKeys:  r.ColorKeys,
			Base:       r.Base,
			Ratios:     r.Ratios,
			Colorspace: r.Colorspace,
			KeepOrder:  r.KeepOrder || o.KeepOrder,
		}
		if opts.Colorspace == "" {
			opts.Colorspace = cfg.Colorspace
		}
		if len(o.ColorKeys) > 0 {
			opts.ColorKeys = o.ColorKeys
		}
		if o.Base != "" {
			opts.Base = o.Base
		}
		if len(o.Ratios) > 0 {
			opts.Ratios = o.Ratios
		}
		if o.Colorspace != "" {
			opts.Colorspace = o.Colorspace
		}
		resolved = append(resolved, ResolvedRamp{Name: r.Name, Options: opts})
	}
	return resolved, nil
}

// Result is a generated ramp.
type Result struct {
	Name       string    `json:"name"`
	ColorKeys  []string  `json:"colorKeys"`
	Base       string    `json:"base"`
	Colorspace string    `json:"colorspace"`
	KeepOrder  bool      `json:"keepOrder,omitempty"`
	Ratios     []float64 `json:"ratios"`
	Colors     []string  `json:"colors"`
	Measured   []float64 `json:"measured"`
	Scale      []string  `json:"scale,omitempty"`
}

// Generate resolves every ramp, optionally adding a scale of swatches colors.
// The first failing ramp aborts generation.
func Generate(ramps []ResolvedRamp, swatches int) ([]Result, error) {
	results := make([]Result, 0, len(ramps))
	for _, r := range ramps {
		colors, err := generate.Colors(r.Options)
		if err != nil {
			return nil, fmt.Errorf("ramp %s: %w", r.Name, err)
		}
		measured, err := generate.Ratios(colors, r.Options.Base)
		if err != nil {
			return nil, fmt.Errorf("ramp %s: %w", r.Name, err)
		}

		space, err := colorspace.Parse(r.Options.Colorspace)
		if err != nil {
			return nil, fmt.Errorf("ramp %s: %w", r.Name, err)
		}
		res := Result{
			Name:       r.Name,
			ColorKeys:  r.Options.ColorKeys,
			Base:       r.Options.Base,
			Colorspace: space.String(),
			KeepOrder:  r.Options.KeepOrder,
			Ratios:     r.Options.Ratios,
			Colors:     colors,
			Measured:   measured,
		}
		if swatches > 1 {
			if res.Scale, err = generate.Scale(r.Options.ColorKeys, space.String(), swatches); err != nil {
				return nil, fmt.Errorf("ramp %s: %w", r.Name, err)
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// Colors flattens every generated color across results, in order.
func Colors(results []Result) []string {
	var out []string
	for _, r := range results {
		out = append(out, r.Colors...)
	}
	return out
}
