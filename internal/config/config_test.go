package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "csv", cfg.Dataset.Format)
	assert.Equal(t, 0.7, cfg.Matcher.Threshold)
	assert.Equal(t, "memory", cfg.Cache.Driver)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
server:
  port: 9100
dataset:
  format: sqlite
  path: /tmp/colleges.db
  table: colleges
cache:
  driver: memory
  ttl: 1m
matcher:
  threshold: 0.8
observability:
  log_level: warn
  log_format: console
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Dataset.Format)
	assert.Equal(t, "/tmp/colleges.db", cfg.Dataset.Path)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 0.8, cfg.Matcher.Threshold)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9200")
	t.Setenv("DATASET_PATH", "/tmp/other.csv")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.csv", cfg.Dataset.Path)
	assert.Equal(t, "csv", cfg.Dataset.Format)
	assert.Equal(t, "error", cfg.Observability.LogLevel)
}

func TestLoad_SQLitePathSwitchesFormat(t *testing.T) {
	t.Setenv("DATASET_PATH", "/tmp/colleges.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Dataset.Format)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad dataset format", func(c *Config) { c.Dataset.Format = "xlsx" }},
		{"missing dataset path", func(c *Config) { c.Dataset.Path = "" }},
		{"sqlite without table", func(c *Config) {
			c.Dataset.Format = "sqlite"
			c.Dataset.Table = ""
		}},
		{"bad cache driver", func(c *Config) { c.Cache.Driver = "memcached" }},
		{"bad threshold", func(c *Config) { c.Matcher.Threshold = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
