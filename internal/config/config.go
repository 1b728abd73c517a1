// Package config loads xclaunch settings from YAML and XCLAUNCH_* environment variables.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"xclaunch/internal/logging"
)

const (
	appName           = "xclaunch"
	envPrefix         = "XCLAUNCH_"
	maxConfigFileSize = 1024 * 1024 // 1MB

	DefaultIDE            = "Xcode"
	DefaultCategoryParent = "~/Developer"
)

// Config is the complete xclaunch configuration
type Config struct {
	Database   DatabaseConfig   `koanf:"database"`
	IDE        IDEConfig        `koanf:"ide"`
	Categories CategoriesConfig `koanf:"categories"`
	Log        logging.Config   `koanf:"log"`
}

// DatabaseConfig locates the registry database
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// IDEConfig names the application project files open in
type IDEConfig struct {
	App string `koanf:"app"`
}

// CategoriesConfig holds defaults for new categories
type CategoriesConfig struct {
	// Parent is where `create category` puts new folders
	Parent string `koanf:"parent"`
}

// Load reads configuration from the YAML file at configPath, then applies
// environment overrides. An empty configPath means DefaultConfigPath, which
// may be absent; an explicit path must exist.
//
// Precedence (highest to lowest):
//  1. Environment variables (XCLAUNCH_DATABASE_PATH, XCLAUNCH_IDE_APP, ...)
//  2. YAML config file
//  3. Defaults
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath()
	}
	configPath = ExpandHome(configPath)

	content, err := readConfigFile(configPath)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, err
	}

	// XCLAUNCH_DATABASE_PATH -> database.path
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.Log.Format)
	}
	if !filepath.IsAbs(c.Database.Path) {
		return fmt.Errorf("database path must be absolute, got: %s", c.Database.Path)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath()
	}
	cfg.Database.Path = ExpandHome(cfg.Database.Path)

	if strings.TrimSpace(cfg.IDE.App) == "" {
		cfg.IDE.App = DefaultIDE
	}

	if cfg.Categories.Parent == "" {
		cfg.Categories.Parent = DefaultCategoryParent
	}
	cfg.Categories.Parent = ExpandHome(cfg.Categories.Parent)

	defaults := logging.DefaultConfig()
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Format
	}
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/xclaunch/config.yaml
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join("~", ".config")
	}
	return ExpandHome(filepath.Join(configHome, appName, "config.yaml"))
}

// DefaultDatabasePath returns $XDG_DATA_HOME/xclaunch/xclaunch.db
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join("~", ".local", "share")
	}
	return ExpandHome(filepath.Join(dataHome, appName, appName+".db"))
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
