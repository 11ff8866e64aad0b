package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ytget/homescreen/internal/platform"
)

// Environment overrides
const (
	EnvSpacing = "HOMESCREEN_SPACING"
	EnvSession = "HOMESCREEN_SESSION"
)

// Default file values
const (
	DefaultSpacing         = 10.0
	DefaultSessionDebounce = 250 * time.Millisecond
)

// Config is the device configuration read from config.toml
type Config struct {
	Dashboard DashboardConfig `toml:"dashboard"`
	Session   SessionConfig   `toml:"session"`
	UI        UIConfig        `toml:"ui"`
}

// DashboardConfig holds the layout model's fixed inputs
type DashboardConfig struct {
	// Spacing is the gutter subtracted from every card dimension
	Spacing float64 `toml:"spacing"`
	// Width and Height seed the viewport before the first resize event; 0 waits for the window
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// SessionConfig points at the card deck fed to the dashboard
type SessionConfig struct {
	Path     string   `toml:"path"`
	Watch    bool     `toml:"watch"`
	Debounce Duration `toml:"debounce"`
}

// UIConfig overrides the stored UI preferences when set
type UIConfig struct {
	Language   string `toml:"language"`
	Fullscreen bool   `toml:"fullscreen"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Spacing: DefaultSpacing,
		},
		Session: SessionConfig{
			Path:     platform.DefaultSessionPath(),
			Watch:    true,
			Debounce: Duration{DefaultSessionDebounce},
		},
	}
}

// LoadFromFile reads configuration from path. A missing file yields defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from r on top of the defaults
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Dashboard.Spacing < 0 {
		return fmt.Errorf("dashboard.spacing must not be negative, got %v", c.Dashboard.Spacing)
	}
	if c.Dashboard.Width < 0 || c.Dashboard.Height < 0 {
		return fmt.Errorf("dashboard viewport must not be negative, got %vx%v", c.Dashboard.Width, c.Dashboard.Height)
	}
	if c.Session.Debounce.Duration < 0 {
		return fmt.Errorf("session.debounce must not be negative, got %v", c.Session.Debounce.Duration)
	}
	if c.Session.Watch && c.Session.Path == "" {
		return errors.New("session.watch requires session.path")
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvSpacing); v != "" {
		spacing, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSpacing, v, err)
		}
		cfg.Dashboard.Spacing = spacing
	}
	if v := os.Getenv(EnvSession); v != "" {
		cfg.Session.Path = v
	}
	return nil
}
