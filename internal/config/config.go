package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "pokeql.toml"

// Config holds the pokeql configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Dataset DatasetConfig `toml:"dataset"`
	Search  SearchConfig  `toml:"search"`
	Log     LogConfig     `toml:"log"`
	IDs     IDConfig      `toml:"ids"`
}

// ServerConfig defines the HTTP server settings.
type ServerConfig struct {
	Port           int  `toml:"port"`
	Playground     bool `toml:"playground"`
	Introspection  bool `toml:"introspection"`
	QueryCacheSize int  `toml:"query_cache_size"`
	APQCacheSize   int  `toml:"apq_cache_size"`
	// ComplexityLimit rejects operations above the given cost. 0 disables the check.
	ComplexityLimit int `toml:"complexity_limit,omitempty"`
}

// DatasetConfig defines where the initial records come from.
type DatasetConfig struct {
	// Source is a file path, an s3://bucket/key URL, or empty for the embedded dataset.
	Source string   `toml:"source,omitempty"`
	S3     S3Config `toml:"s3,omitempty"`
}

// S3Config holds object storage settings for s3:// dataset sources.
type S3Config struct {
	Region    string `toml:"region,omitempty"`
	Endpoint  string `toml:"endpoint,omitempty"`
	PathStyle bool   `toml:"path_style,omitempty"`
}

// SearchConfig controls the full-text index.
type SearchConfig struct {
	Enabled bool `toml:"enabled"`
	Limit   int  `toml:"limit"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// IDConfig controls generated record identifiers.
type IDConfig struct {
	Length int `toml:"length"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           4000,
			Playground:     true,
			Introspection:  true,
			QueryCacheSize: 1000,
			APQCacheSize:   100,
		},
		Search: SearchConfig{
			Enabled: true,
			Limit:   20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		IDs: IDConfig{
			Length: 8,
		},
	}
}

// Load reads configuration from the given path. A directory is joined with
// ConfigFile. Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Apply defaults for missing values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.QueryCacheSize <= 0 {
		cfg.Server.QueryCacheSize = 1000
	}
	if cfg.Server.APQCacheSize <= 0 {
		cfg.Server.APQCacheSize = 100
	}
	if cfg.Search.Limit <= 0 {
		cfg.Search.Limit = 20
	}
	if cfg.IDs.Length <= 0 {
		cfg.IDs.Length = 8
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	if !c.IsValidLogLevel(c.Log.Level) {
		return fmt.Errorf("invalid log level %q (must be one of: %s)", c.Log.Level, strings.Join(validLogLevels, ", "))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q (must be console or json)", c.Log.Format)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}

// IsValidLogLevel returns true if level is a supported log level.
func (c *Config) IsValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
