// Package config loads the marscard TOML configuration. Missing files
// and missing keys fall back to built-in defaults so the tool always
// starts.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Icons  IconsConfig  `toml:"icons"`
	Theme  ThemeConfig  `toml:"theme"`
}

// LayoutConfig holds the card layout budgets and frame width
type LayoutConfig struct {
	IconColumns int `toml:"icon_columns"` // Icon slots per behavior row
	MaxRows     int `toml:"max_rows"`     // Rows in the behavior area
	CardWidth   int `toml:"card_width"`   // Card frame width in cells
}

// IconsConfig selects the icon set
type IconsConfig struct {
	Mode string `toml:"mode"` // auto, nerd, unicode, ascii
}

// ThemeConfig selects the color palette
type ThemeConfig struct {
	Name string `toml:"name"` // auto, mocha, latte, plain
}

// DefaultPath returns the config file path, honoring XDG_CONFIG_HOME
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "marscard", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "marscard", "config.toml")
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			IconColumns: 7,
			MaxRows:     4,
			CardWidth:   34,
		},
		Icons: IconsConfig{Mode: "auto"},
		Theme: ThemeConfig{Name: "auto"},
	}
}

// Load reads the config file at path (DefaultPath when empty), fills
// missing values with defaults, and applies environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadOrDefault loads the config, falling back to defaults when the
// file is missing. A malformed file is still an error; silently masking
// a syntax mistake would be worse than failing.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = Default()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Layout.IconColumns <= 0 {
		cfg.Layout.IconColumns = def.Layout.IconColumns
	}
	if cfg.Layout.MaxRows <= 0 {
		cfg.Layout.MaxRows = def.Layout.MaxRows
	}
	if cfg.Layout.CardWidth <= 0 {
		cfg.Layout.CardWidth = def.Layout.CardWidth
	}
	if cfg.Icons.Mode == "" {
		cfg.Icons.Mode = def.Icons.Mode
	}
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = def.Theme.Name
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MARSCARD_ICON_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Layout.IconColumns = n
		}
	}
	if v := os.Getenv("MARSCARD_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Layout.MaxRows = n
		}
	}
	if v := os.Getenv("MARSCARD_ICONS"); v != "" {
		cfg.Icons.Mode = v
	}
	if v := os.Getenv("MARSCARD_THEME"); v != "" {
		cfg.Theme.Name = v
	}
}

// CreateDefault writes a commented default config file and returns its path
func CreateDefault() (string, error) {
	path := DefaultPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Print(Default(), f); err != nil {
		return "", err
	}

	return path, nil
}

// Print writes config to a writer in TOML format
func Print(cfg *Config, w io.Writer) error {
	fmt.Fprintln(w, "# marscard configuration")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[layout]")
	fmt.Fprintln(w, "# Icon slots available across one behavior row")
	fmt.Fprintf(w, "icon_columns = %d\n", cfg.Layout.IconColumns)
	fmt.Fprintln(w, "# Rows available in the card's behavior area")
	fmt.Fprintf(w, "max_rows = %d\n", cfg.Layout.MaxRows)
	fmt.Fprintln(w, "# Card frame width in terminal cells")
	fmt.Fprintf(w, "card_width = %d\n", cfg.Layout.CardWidth)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[icons]")
	fmt.Fprintln(w, "# Icon set: auto, nerd, unicode, ascii")
	fmt.Fprintf(w, "mode = %q\n", cfg.Icons.Mode)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[theme]")
	fmt.Fprintln(w, "# Color palette: auto, mocha, latte, plain")
	fmt.Fprintf(w, "name = %q\n", cfg.Theme.Name)

	return nil
}
