package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config represents the notemark configuration
type Config struct {
	StoreBackend string `mapstructure:"store_backend" json:"store_backend"`
	StorePath    string `mapstructure:"store_path" json:"store_path,omitempty"`
	AppKey       string `mapstructure:"app_key" json:"app_key"`
	LogFile      string `mapstructure:"log_file" json:"log_file,omitempty"`
	Width        int    `mapstructure:"width" json:"width,omitempty"`
}

const (
	defaultBackend = "file"
	defaultAppKey  = "Notes-MVC"
	defaultWidth   = 80
)

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		StoreBackend: defaultBackend,
		StorePath:    DefaultStorePath(defaultBackend),
		AppKey:       defaultAppKey,
		LogFile:      filepath.Join(DataDir(), "notemark.log"),
		Width:        defaultWidth,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "notemark", "config.json")
	}
	return filepath.Join(home, ".config", "notemark", "config.json")
}

// DataDir returns the platform-specific XDG data directory
// Can be overridden for testing
var DataDir = func() string {
	return filepath.Join(xdg.DataHome, "notemark")
}

// DefaultStorePath returns where a backend keeps its data by default
func DefaultStorePath(backend string) string {
	switch backend {
	case "sqlite":
		return filepath.Join(DataDir(), "notes.db")
	case "memory":
		return ""
	default:
		return filepath.Join(DataDir(), "notes.json")
	}
}

// Load reads configuration from ConfigPath, applying NOTEMARK_* environment
// overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(ConfigPath())
	v.SetConfigType("json")
	v.SetEnvPrefix("NOTEMARK")
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("store_backend", def.StoreBackend)
	v.SetDefault("store_path", "")
	v.SetDefault("app_key", def.AppKey)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("width", def.Width)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// The default path depends on the backend actually chosen
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath(cfg.StoreBackend)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to ConfigPath
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validBackends := map[string]bool{
		"file":   true,
		"sqlite": true,
		"memory": true,
	}
	if !validBackends[c.StoreBackend] {
		return fmt.Errorf("invalid store_backend '%s': must be one of: file, sqlite, memory", c.StoreBackend)
	}
	if c.StoreBackend != "memory" && c.StorePath == "" {
		return fmt.Errorf("store_path cannot be empty")
	}
	if c.AppKey == "" {
		return fmt.Errorf("app_key cannot be empty")
	}
	if c.Width < 0 {
		return fmt.Errorf("width cannot be negative")
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	if c.StorePath != ":memory:" {
		c.StorePath, err = expandPath(c.StorePath)
		if err != nil {
			return fmt.Errorf("failed to expand store_path: %w", err)
		}
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
