// Package config loads and saves whalecalc user preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/moonwhale/whalecalc/internal/projection"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "moon-whale"

// Config holds all whalecalc configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds calculator defaults.
type GeneralConfig struct {
	DefaultPrincipal float64 `toml:"default_principal"`
	DefaultDays      int     `toml:"default_days"`
	ShowAllDays      bool    `toml:"show_all_days"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultPrincipal: projection.MinPrincipal,
			DefaultDays:      30,
		},
		Appearance: AppearanceConfig{
			Theme: DefaultTheme,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "whalecalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "whalecalc")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Calculator defaults are clamped to the input minimums.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.General.DefaultPrincipal = projection.ClampPrincipal(c.General.DefaultPrincipal)
	c.General.DefaultDays = projection.ClampDays(c.General.DefaultDays)
	if c.Appearance.Theme == "" {
		c.Appearance.Theme = DefaultTheme
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	cfg.normalize()

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// EnvOverrides are settings read from the environment. They win over the
// config file but are never saved.
type EnvOverrides struct {
	Theme string `env:"WHALECALC_THEME"`
}

// LoadEnv parses EnvOverrides from the environment.
func LoadEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// Theme returns the theme name from the WHALECALC_THEME env var or config, in that order.
func Theme(cfg Config) string {
	if o, err := LoadEnv(); err == nil && o.Theme != "" {
		return o.Theme
	}
	return cfg.Appearance.Theme
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
