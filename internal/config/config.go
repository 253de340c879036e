package config

import (
	"fmt"

	"github.com/marcus/contrastcolors/internal/colorspace"
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Config is the root configuration structure.
type Config struct {
	Colorspace string       `json:"colorspace"`
	Ramps      []RampConfig `json:"ramps"`
	Output     OutputConfig `json:"output"`
}

// RampConfig describes one contrast ramp to generate.
type RampConfig struct {
	Name       string    `json:"name"`
	ColorKeys  []string  `json:"colorKeys"`
	Base       string    `json:"base"`
	Ratios     []float64 `json:"ratios"`
	Colorspace string    `json:"colorspace,omitempty"` // empty = Config.Colorspace
	KeepOrder  bool      `json:"keepOrder,omitempty"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	Format   string `json:"format"`   // text, json or markdown
	Preview  bool   `json:"preview"`  // render swatches in text output
	Swatches int    `json:"swatches"` // extra scale swatches per ramp, 0 = none
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Colorspace: colorspace.Default.String(),
		Ramps: []RampConfig{
			{
				Name:      "blue",
				ColorKeys: []string{"#2451ff", "#c9fefe", "#012676"},
				Base:      "#f5f5f5",
				Ratios:    []float64{1.5, 3, 4.5, 7},
			},
		},
		Output: OutputConfig{
			Format:  FormatText,
			Preview: true,
		},
	}
}

// Validate checks the configuration for errors, repairing values that have an
// obvious fallback.
func (c *Config) Validate() error {
	if _, err := colorspace.Parse(c.Colorspace); err != nil {
		return err
	}
	if c.Colorspace == "" {
		c.Colorspace = colorspace.Default.String()
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		c.Output.Format = FormatText
	}
	if c.Output.Swatches < 0 {
		c.Output.Swatches = 0
	}

	seen := make(map[string]bool, len(c.Ramps))
	for i := range c.Ramps {
		r := &c.Ramps[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("ramp-%d", i+1)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate ramp name: %s", r.Name)
		}
		seen[r.Name] = true
		if _, err := colorspace.Parse(r.Colorspace); err != nil {
			return fmt.Errorf("ramp %s: %w", r.Name, err)
		}
	}
	return nil
}

// Ramp returns the named ramp, or nil.
func (c *Config) Ramp(name string) *RampConfig {
	for i := range c.Ramps {
		if c.Ramps[i].Name == name {
			return &c.Ramps[i]
		}
	}
	return nil
}
