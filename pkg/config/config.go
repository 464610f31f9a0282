package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Defaults applied by Validate.
const (
	DefaultAddr      = ":8080"
	DefaultOutputDir = "./public"
)

// Config represents the application configuration.
type Config struct {
	ContentLocation string        `json:"content_location,omitempty" env:"PORTFOLIO_CONTENT"`
	Site            SiteConfig    `json:"site"`
	Server          ServerConfig  `json:"server"`
	Defaults        DefaultConfig `json:"defaults"`
}

// SiteConfig holds document-level settings of the rendered page.
type SiteConfig struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	ThemeToggle bool     `json:"theme_toggle" env:"PORTFOLIO_THEME_TOGGLE"`
	Stylesheets []string `json:"stylesheets,omitempty"`
	Scripts     []string `json:"scripts,omitempty"`
	Assets      []string `json:"assets,omitempty"`
}

// ServerConfig holds serve settings.
type ServerConfig struct {
	Addr string `json:"addr,omitempty" env:"PORTFOLIO_ADDR"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir" env:"PORTFOLIO_OUTPUT_DIR"`
}

// Dir returns the per-user configuration directory.
func Dir() (dir string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return dir, err
	}
	dir = filepath.Join(homeDir, ".portfolio")
	return dir, err
}

// DefaultPath returns the location of the config file when none is given.
func DefaultPath() (path string, err error) {
	var dir string
	dir, err = Dir()
	if err != nil {
		return path, err
	}
	path = filepath.Join(dir, "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// With no path given, a missing default config file is not an error: the
// built-in defaults apply.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'portfolio init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	err = env.Parse(&cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to parse environment overrides")
		return cfg, err
	}

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that referenced files exist and fills defaults. An empty
// content location selects the built-in sample content.
func (c *Config) Validate() (err error) {
	if c.ContentLocation != "" {
		_, err = os.Stat(c.ContentLocation)
		if os.IsNotExist(err) {
			err = errors.Errorf("content file not found: %s", c.ContentLocation)
			return err
		}
	}

	for _, asset := range c.Site.Assets {
		_, err = os.Stat(asset)
		if os.IsNotExist(err) {
			err = errors.Errorf("asset not found: %s", asset)
			return err
		}
	}
	err = nil

	// Set defaults if not specified
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = DefaultOutputDir
	}

	return err
}

// InitConfig creates a default configuration file pointing at contentPath.
func InitConfig(configPath, contentPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Config{
		ContentLocation: contentPath,
		Site: SiteConfig{
			ThemeToggle: false,
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
		Defaults: DefaultConfig{
			OutputDir: DefaultOutputDir,
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
