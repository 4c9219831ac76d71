package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config errors.
var (
	// ErrInvalidConfig indicates a config file that parsed but holds
	// unusable values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError wraps a TOML parse failure with its file path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Config is the full application configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Shortcuts ShortcutsConfig `toml:"shortcuts"`
	Layout    LayoutConfig    `toml:"layout"`
}

// GeneralConfig holds application-wide settings.
type GeneralConfig struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// ShortcutsConfig locates shortcut persistence.
type ShortcutsConfig struct {
	// File is where binding customizations are stored.
	File string `toml:"file"`

	// PresetDir holds user preset files (*.json).
	PresetDir string `toml:"preset_dir"`
}

// LayoutConfig overrides the built-in window layout.
type LayoutConfig struct {
	// File is a YAML layout document; empty uses the built-in layout.
	File string `toml:"file"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	base := userConfigDir()
	return Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Shortcuts: ShortcutsConfig{
			File:      filepath.Join(base, "shortcuts.json"),
			PresetDir: filepath.Join(base, "presets"),
		},
	}
}

// Load reads a config file over the defaults. An empty path uses the
// standard location; a missing file at either returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(userConfigDir(), "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Unmarshal over the defaults so absent keys keep their values.
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	cfg.expandPaths()
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.General.LogLevel)
	}
	return nil
}

// expandPaths resolves leading ~ in the path settings.
func (c *Config) expandPaths() {
	c.Shortcuts.File = expandHome(c.Shortcuts.File)
	c.Shortcuts.PresetDir = expandHome(c.Shortcuts.PresetDir)
	c.Layout.File = expandHome(c.Layout.File)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// userConfigDir returns the per-user configuration directory.
func userConfigDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "cutline")
	}
	return ".cutline"
}
