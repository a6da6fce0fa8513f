// Package config loads the process configuration: gameplay tuning,
// logging, high score storage and the SSH and web front ends.
//
// Values come from built-in defaults, then an optional TOML or YAML file,
// then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	game "github.com/tomz197/roids/internal/loop/config"
)

type Config struct {
	Game    game.Tuning   `toml:"game" yaml:"game"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Store   StoreConfig   `toml:"store" yaml:"store"`
	SSH     SSHConfig     `toml:"ssh" yaml:"ssh"`
	Web     WebConfig     `toml:"web" yaml:"web"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty = stderr
}

// Store drivers.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

type StoreConfig struct {
	Driver string `toml:"driver" yaml:"driver"`
	Path   string `toml:"path" yaml:"path"`
}

type SSHConfig struct {
	Host        string `toml:"host" yaml:"host"`
	Port        string `toml:"port" yaml:"port"`
	HostKeyPath string `toml:"host_key_path" yaml:"host_key_path"`
}

type WebConfig struct {
	Host        string `toml:"host" yaml:"host"`
	Port        string `toml:"port" yaml:"port"`
	DisplayHost string `toml:"display_host" yaml:"display_host"` // SSH host shown on the landing page
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		Game: game.Default(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Store: StoreConfig{
			Driver: StoreFile,
			Path:   "roids-scores.yaml",
		},
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
		},
		Web: WebConfig{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, or .yaml/.yml. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings the binaries cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Game.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("game: %w", err))
	}
	switch c.Store.Driver {
	case StoreSQLite, StoreFile:
		if c.Store.Path == "" {
			errs = append(errs, fmt.Errorf("store: %s driver needs a path", c.Store.Driver))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("store: unknown driver %q", c.Store.Driver))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("logging: unknown format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
