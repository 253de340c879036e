// Package generate resolves target contrast ratios against a base color into
// colors interpolated between a set of key colors.
package generate

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/marcus/contrastcolors/internal/colorspace"
	"github.com/marcus/contrastcolors/internal/contrast"
)

// Options describes one contrast ramp.
type Options struct {
	// ColorKeys are the key colors the ramp interpolates between. Required.
	ColorKeys []string
	// Base is the color every ratio is measured against. Required.
	Base string
	// Ratios are signed contrast targets. Positive ratios move away from the base
	// toward black on a light base and toward white on a dark one. Required.
	Ratios []float64
	// Colorspace names the interpolation space; empty means colorspace.Default.
	Colorspace string
	// KeepOrder walks ColorKeys exactly as given. By default keys are ordered by
	// luminance and the path runs from white through the keys to black.
	KeepOrder bool
}

type request struct {
	space colorspace.Space
	keys  []colorful.Color
	base  colorful.Color
}

// validate checks opts before any numeric work and parses its colors.
func validate(opts Options) (*request, error) {
	if len(opts.ColorKeys) == 0 {
		return nil, &MissingInputError{Field: "colorKeys"}
	}
	if len(opts.Ratios) == 0 {
		return nil, &MissingInputError{Field: "ratios"}
	}
	if opts.Base == "" {
		return nil, &MissingInputError{Field: "base"}
	}
	for _, r := range opts.Ratios {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, &InvalidRatioError{Value: r}
		}
	}

	space, err := colorspace.Parse(opts.Colorspace)
	if err != nil {
		return nil, err
	}

	req := &request{space: space, keys: make([]colorful.Color, len(opts.ColorKeys))}
	for i, key := range opts.ColorKeys {
		if req.keys[i], err = contrast.Parse(key); err != nil {
			return nil, err
		}
	}
	if req.base, err = contrast.Parse(opts.Base); err != nil {
		return nil, err
	}
	return req, nil
}

// Colors returns one #rrggbb color per requested ratio, in the order given.
// Ratios beyond what the path can reach resolve to black or white.
func Colors(opts Options) ([]string, error) {
	req, err := validate(opts)
	if err != nil {
		return nil, err
	}

	colors := req.keys
	if !opts.KeepOrder {
		colors = lightnessOrder(req.keys)
	}
	p := newPath(req.space, colors)

	out := make([]string, len(opts.Ratios))
	for i, r := range opts.Ratios {
		out[i] = contrast.Format(p.resolve(r, req.base))
	}
	return out, nil
}
