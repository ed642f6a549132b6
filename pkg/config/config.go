package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRefreshIntervalMinutes is the display auto-refresh cadence used
	// when the config file omits or invalidates it.
	DefaultRefreshIntervalMinutes = 10

	defaultDatabasePath = "data/logistics.db"
	defaultServerPort   = 8080
)

// Config global configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Display  DisplayConfig  `yaml:"display"`
	Logger   LoggerConfig   `yaml:"logger"`
}

// ServerConfig server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

// DatabaseConfig location of the read-only logistics store
type DatabaseConfig struct {
	Path string `yaml:"path"` // SQLite file, opened mode=ro
}

// DisplayConfig presentation-layer settings
type DisplayConfig struct {
	RefreshIntervalMinutes int `yaml:"refresh_interval_minutes"`
}

// LoggerConfig logger configuration
type LoggerConfig struct {
	Level  string           `yaml:"level"`  // debug, info, warn, error
	Output string           `yaml:"output"` // console, file, both
	File   LoggerFileConfig `yaml:"file"`
}

// LoggerFileConfig logger file configuration
type LoggerFileConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from CONFIG_PATH (default config/config.yaml) and
// returns it as an explicit value. Nothing downstream reads ambient state;
// the loaded config is passed into the store, server and jobs at startup.
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	validateAndApplyDefaults(&cfg)
	return &cfg, nil
}

// validateAndApplyDefaults fills in defaults for missing or invalid values so
// a sparse config file still yields an operational service.
func validateAndApplyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultDatabasePath
	}
	if cfg.Display.RefreshIntervalMinutes <= 0 {
		cfg.Display.RefreshIntervalMinutes = DefaultRefreshIntervalMinutes
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Output == "" {
		cfg.Logger.Output = "console"
	}
}
