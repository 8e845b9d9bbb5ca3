// Package config provides unified configuration loading for the college bot.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the college bot.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Dataset       DatasetConfig       `yaml:"dataset"`
	Cache         CacheConfig         `yaml:"cache"`
	Matcher       MatcherConfig       `yaml:"matcher"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// DatasetConfig holds dataset source settings.
type DatasetConfig struct {
	Format string `yaml:"format"` // csv or sqlite
	Path   string `yaml:"path"`
	Table  string `yaml:"table"` // sqlite only
}

// CacheConfig holds answer cache settings.
type CacheConfig struct {
	Driver     string        `yaml:"driver"` // memory or redis
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// MatcherConfig holds fuzzy matching settings.
type MatcherConfig struct {
	// Threshold is the minimum similarity ratio for a college-name match.
	Threshold float64 `yaml:"threshold"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8090,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     30 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Dataset: DatasetConfig{
			Format: "csv",
			Path:   "data/colleges.csv",
			Table:  "colleges",
		},
		Cache: CacheConfig{
			Driver:     "memory",
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				DB:       0,
				PoolSize: 10,
			},
		},
		Matcher: MatcherConfig{
			Threshold: 0.7,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Dataset.Format != "csv" && c.Dataset.Format != "sqlite" {
		return fmt.Errorf("invalid dataset format: %s", c.Dataset.Format)
	}

	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset path is required")
	}

	if c.Dataset.Format == "sqlite" && c.Dataset.Table == "" {
		return fmt.Errorf("dataset table is required for sqlite format")
	}

	if c.Cache.Driver != "memory" && c.Cache.Driver != "redis" {
		return fmt.Errorf("invalid cache driver: %s", c.Cache.Driver)
	}

	if c.Matcher.Threshold <= 0 || c.Matcher.Threshold > 1 {
		return fmt.Errorf("matcher threshold must be in (0, 1]: %f", c.Matcher.Threshold)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
		if strings.HasSuffix(v, ".db") || strings.HasSuffix(v, ".sqlite") {
			cfg.Dataset.Format = "sqlite"
		} else {
			cfg.Dataset.Format = "csv"
		}
	}

	if v := os.Getenv("DATASET_TABLE"); v != "" {
		cfg.Dataset.Table = v
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Cache.Driver = "redis"
		cfg.Cache.Redis.Addr = strings.TrimPrefix(v, "redis://")
	}

	if v := os.Getenv("MATCH_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.Threshold = t
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
