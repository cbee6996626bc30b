// Package config loads chartkit settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
)

// Config holds all chartkit configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Hydrate  HydrateConfig  `yaml:"hydrate"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address           string `yaml:"address"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

// DatabaseConfig configures the query source. An empty driver means no
// database; query endpoints then answer 503.
type DatabaseConfig struct {
	Driver       string `yaml:"driver"` // sqlite, postgres
	DSN          string `yaml:"dsn"`
	QueryTimeout string `yaml:"query_timeout"`
	MaxRows      int    `yaml:"max_rows"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// HydrateConfig mirrors chartkit.Options.
type HydrateConfig struct {
	FalsyAsEmpty bool     `yaml:"falsy_as_empty"`
	Palette      []string `yaml:"palette"`
	Parallelism  int      `yaml:"parallelism"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:           "127.0.0.1:8080",
			ReadHeaderTimeout: "5s",
			ShutdownTimeout:   "5s",
		},
		Database: DatabaseConfig{
			QueryTimeout: "30s",
			MaxRows:      10000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Hydrate: HydrateConfig{
			Parallelism: chartkit.DefaultOptions().Parallelism,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CHARTKIT_HTTP_ADDR"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("CHARTKIT_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("CHARTKIT_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("CHARTKIT_DB_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Database.MaxRows = n
		}
	}
	if v := os.Getenv("CHARTKIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CHARTKIT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// GetReadHeaderTimeout returns the server read header timeout as a duration.
func (c *Config) GetReadHeaderTimeout() time.Duration {
	return parseDuration(c.Server.ReadHeaderTimeout, 5*time.Second)
}

// GetShutdownTimeout returns the server shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 5*time.Second)
}

// GetQueryTimeout returns the per-query timeout as a duration.
func (c *Config) GetQueryTimeout() time.Duration {
	return parseDuration(c.Database.QueryTimeout, 30*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// HasDatabase reports whether a query source is configured.
func (c *Config) HasDatabase() bool {
	return strings.TrimSpace(c.Database.Driver) != ""
}

// HydrateOptions converts the hydrate section to library options.
func (c *Config) HydrateOptions() chartkit.Options {
	return chartkit.Options{
		FalsyAsEmpty: c.Hydrate.FalsyAsEmpty,
		Palette:      c.Hydrate.Palette,
		Parallelism:  c.Hydrate.Parallelism,
	}
}

// SQLOptions converts the database section to source options.
func (c *Config) SQLOptions(logger *zap.Logger) source.SQLOptions {
	return source.SQLOptions{
		QueryTimeout: c.GetQueryTimeout(),
		MaxRows:      c.Database.MaxRows,
		Logger:       logger,
	}
}

// BuildLogger builds a zap logger from the logging section. verbose forces
// the debug level.
func (c *Config) BuildLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if strings.EqualFold(c.Logging.Format, "console") {
		zc = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if c.Logging.Level != "" {
		if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
