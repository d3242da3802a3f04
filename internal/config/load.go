package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config errors.
var (
	ErrInvalidTicksPerSecond = errors.New("default ticks per second must be positive")
	ErrInvalidSpeed          = errors.New("playback speed must be finite and non-zero")
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
)

// Load loads configuration with priority: defaults < file < flags.
// f may be nil when no flags were registered.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	// Explicit path takes priority
	configPath := f.ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Playback.DefaultTicksPerSecond > 0) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidTicksPerSecond, c.Playback.DefaultTicksPerSecond))
	}
	if sp := c.Playback.Speed; sp == 0 || math.IsNaN(sp) || math.IsInf(sp, 0) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Playback.Speed))
	}
	if !(c.Sampling.Rate > 0) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidSampleRate, c.Sampling.Rate))
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./animtool.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "AssetCore")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "AssetCore")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "assetcore")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "assetcore")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
