package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDistType is the identifier prefix used when config.toml does not set one.
const DefaultDistType = "dist"

// Config represents the ~/.distman/config.toml file.
type Config struct {
	DistType    string `toml:"dist_type,omitempty" json:"dist_type"`
	InstallRoot string `toml:"install_root,omitempty" json:"install_root"`
}

// EffectiveDistType returns the configured prefix, or DefaultDistType.
func (c *Config) EffectiveDistType() string {
	if c.DistType != "" {
		return c.DistType
	}
	return DefaultDistType
}

// homeOverride is set by the --config-dir flag or DISTMAN_HOME env var.
var homeOverride string

// SetConfigDir allows the CLI to pass in the --config-dir / DISTMAN_HOME value.
func SetConfigDir(dir string) {
	homeOverride = dir
}

// Home returns the distman home directory.
// Precedence: --config-dir flag / SetConfigDir > DISTMAN_HOME env > $HOME/.distman
func Home() string {
	if homeOverride != "" {
		return homeOverride
	}
	if v := strings.TrimSpace(os.Getenv("DISTMAN_HOME")); v != "" {
		return v
	}
	home := UserHome()
	if home == "" {
		return filepath.Join(".", ".distman")
	}
	return filepath.Join(home, ".distman")
}

// UserHome returns the user's home directory. HOME wins over the
// platform lookup so that sudo and test environments behave predictably.
func UserHome() string {
	if v := strings.TrimSpace(os.Getenv("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(Home(), "config.toml")
}

// EnsureDir creates the distman home directory if it does not exist.
func EnsureDir() error {
	return os.MkdirAll(Home(), 0o755)
}

// Load reads config.toml and returns a Config struct.
// If the file does not exist, it returns a zero-value Config (defaults).
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}
	return cfg, nil
}

// Save writes the Config struct back to config.toml.
func Save(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(ConfigPath(), data, 0o644)
}

// validKeys lists the keys that can be used with Get/Set.
var validKeys = map[string]bool{
	"dist_type":    true,
	"install_root": true,
}

// Get retrieves a single config value by key.
func Get(key string) (string, error) {
	if !validKeys[key] {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	return getField(cfg, key)
}

// Set sets a single config value by key.
func Set(key, value string) error {
	if !validKeys[key] {
		return fmt.Errorf("unknown config key: %s", key)
	}
	cfg, err := Load()
	if err != nil {
		return err
	}
	if err := setField(cfg, key, value); err != nil {
		return err
	}
	return Save(cfg)
}

func getField(cfg *Config, key string) (string, error) {
	switch key {
	case "dist_type":
		return cfg.DistType, nil
	case "install_root":
		return cfg.InstallRoot, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func setField(cfg *Config, key, value string) error {
	switch key {
	case "dist_type":
		if strings.ContainsAny(value, `/\`) {
			return fmt.Errorf("dist_type must not contain path separators: %q", value)
		}
		cfg.DistType = value
	case "install_root":
		cfg.InstallRoot = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
