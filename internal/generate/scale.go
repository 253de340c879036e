package generate

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/marcus/contrastcolors/internal/colorspace"
	"github.com/marcus/contrastcolors/internal/contrast"
)

// Scale returns swatches colors sampled evenly along the path from white through
// the keys, lightest first, to black.
func Scale(keys []string, space string, swatches int) ([]string, error) {
	if len(keys) == 0 {
		return nil, &MissingInputError{Field: "colorKeys"}
	}
	if swatches < 2 {
		return nil, fmt.Errorf("swatches must be at least 2, got %d", swatches)
	}
	s, err := colorspace.Parse(space)
	if err != nil {
		return nil, err
	}
	parsed := make([]colorful.Color, len(keys))
	for i, key := range keys {
		if parsed[i], err = contrast.Parse(key); err != nil {
			return nil, err
		}
	}

	p := newPath(s, lightnessOrder(parsed))
	out := make([]string, swatches)
	for i := range out {
		out[i] = contrast.Format(p.sample(float64(i) / float64(swatches-1)))
	}
	return out, nil
}

// Ratios returns the signed contrast ratio of each color against base, rounded
// to two decimals.
func Ratios(colors []string, base string) ([]float64, error) {
	if base == "" {
		return nil, &MissingInputError{Field: "base"}
	}
	b, err := contrast.Parse(base)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(colors))
	for i, hex := range colors {
		c, err := contrast.Parse(hex)
		if err != nil {
			return nil, err
		}
		out[i] = math.Round(contrast.Signed(c, b)*100) / 100
	}
	return out, nil
}
