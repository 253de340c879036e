package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary.
type saveConfig struct {
	Colorspace string           `json:"colorspace,omitempty"`
	Ramps      []RampConfig     `json:"ramps,omitempty"`
	Output     saveOutputConfig `json:"output"`
}

type saveOutputConfig struct {
	Format   string `json:"format,omitempty"`
	Preview  *bool  `json:"preview,omitempty"`
	Swatches int    `json:"swatches,omitempty"`
}

func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Colorspace: cfg.Colorspace,
		Ramps:      cfg.Ramps,
		Output: saveOutputConfig{
			Format:   cfg.Output.Format,
			Preview:  &cfg.Output.Preview,
			Swatches: cfg.Output.Swatches,
		},
	}
}

// Save writes the config to ~/.config/contrastcolors/config.json
func Save(cfg *Config) error {
	path := ConfigPath()
	if path == "" {
		return errors.New("cannot determine home directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to path, creating parent directories.
func SaveTo(cfg *Config, path string) error {
	path = ExpandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	managed, err := json.Marshal(toSaveConfig(cfg))
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(managed, &fields); err != nil {
		return err
	}

	// Keys this package does not manage survive the rewrite
	merged := make(map[string]json.RawMessage)
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &merged)
	}
	for _, key := range managedKeys {
		delete(merged, key)
	}
	for k, v := range fields {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

var managedKeys = []string{"colorspace", "ramps", "output"}

// SaveRamp adds or replaces a ramp in the config at path and saves it.
func SaveRamp(path string, ramp RampConfig) error {
	cfg, err := LoadFrom(path)
	if err != nil {
		return err
	}
	if existing := cfg.Ramp(ramp.Name); existing != nil {
		*existing = ramp
	} else {
		cfg.Ramps = append(cfg.Ramps, ramp)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if path == "" {
		return Save(cfg)
	}
	return SaveTo(cfg, path)
}
