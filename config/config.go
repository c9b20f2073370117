// Package config loads emulator settings from a YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kevinmel2000/Vita3K/errors"
)

// Filename is the default config file name inside the pref path.
const Filename = "config.yml"

// Config holds user-facing emulator settings.
type Config struct {
	// PrefPath is the root of the emulated filesystem (ux0 and friends
	// live under it). Empty means a platform default chosen by the
	// frontend.
	PrefPath string `yaml:"pref_path"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogImports enables per-call import dispatch tracing. Very noisy;
	// the only window into silently ignored NIDs.
	LogImports bool `yaml:"log_imports"`

	// BorderWidth and BorderHeight pad the window around the emulated
	// screen when the GUI overlay is shown.
	BorderWidth  int `yaml:"border_width"`
	BorderHeight int `yaml:"border_height"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:     "info",
		BorderWidth:  16,
		BorderHeight: 34,
	}
}

// Load reads path, falling back to defaults when the file does not exist.
// A present but malformed file is an error; silently ignoring a user's
// config would be worse than failing.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse config")
	}
	return cfg, nil
}

// Save writes the config back to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "encode config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "write config")
	}
	return nil
}
