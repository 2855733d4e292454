package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
)

const configFile = "config.yaml"

// Config holds all configuration for plan-engine.
// Configuration can come from a YAML file (config.yaml) or environment
// variables; environment variables always override YAML values. The database
// URL is a secret and must only come from the environment.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// MigrationsPath is the directory holding SQL migration files.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	URL            string `yaml:"-" env:"DATABASE_URL"` // Secret - not in YAML
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
}

// Load reads configuration from config.yaml (when present) with environment
// variable overrides, or from the environment alone. The process must fail
// fast on a missing or malformed listen port or database URL, so both are
// validated here rather than at first use.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	var err error
	if _, statErr := os.Stat(configFile); statErr == nil {
		err = cleanenv.ReadConfig(configFile, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if c.Port == "" {
		return fmt.Errorf("HTTP_PORT is not set")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("HTTP_PORT %q is not a number: %w", c.Port, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", port)
	}
	return nil
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return c.BindAddr + ":" + c.Port
}
