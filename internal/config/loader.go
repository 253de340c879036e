package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/contrastcolors"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Colorspace string          `json:"colorspace"`
	Ramps      []RampConfig    `json:"ramps"`
	Output     rawOutputConfig `json:"output"`
}

type rawOutputConfig struct {
	Format   string `json:"format"`
	Preview  *bool  `json:"preview"`
	Swatches *int   `json:"swatches"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/contrastcolors/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Colorspace != "" {
		cfg.Colorspace = raw.Colorspace
	}

	// Ramps replace the defaults wholesale; ramps without keys are dropped
	if raw.Ramps != nil {
		cfg.Ramps = make([]RampConfig, 0, len(raw.Ramps))
		for _, r := range raw.Ramps {
			if len(r.ColorKeys) == 0 {
				slog.Warn("ramp has no color keys, skipping", "name", r.Name)
				continue
			}
			cfg.Ramps = append(cfg.Ramps, r)
		}
	}

	// Output
	if raw.Output.Format != "" {
		cfg.Output.Format = strings.ToLower(raw.Output.Format)
	}
	if raw.Output.Preview != nil {
		cfg.Output.Preview = *raw.Output.Preview
	}
	if raw.Output.Swatches != nil {
		cfg.Output.Swatches = *raw.Output.Swatches
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
