package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all configuration for the render service.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StoreURI is the MongoDB connection string. Empty selects the
	// in-memory store.
	StoreURI string `koanf:"store-uri"`

	// StoreDatabase is the MongoDB database name.
	StoreDatabase string `koanf:"store-database"`

	// RedisAddr selects the shared Redis cache, e.g. "localhost:6379".
	// Empty selects the file cache.
	RedisAddr string `koanf:"redis-addr"`

	// CacheDir overrides the file cache directory.
	CacheDir string `koanf:"cache-dir"`

	// NoCache disables caching entirely.
	NoCache bool `koanf:"no-cache"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `koanf:"timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log-level"`
}

// LoadConfig loads configuration from defaults, config file, environment
// variables, and flags. Priority: Flags > Env > Config File > Defaults.
//
// An explicit path must exist; when path is empty, mermaid.toml in the
// working directory is loaded if present. Environment variables use the
// MERMAID_ prefix, e.g. MERMAID_STORE_URI=mongodb://localhost:27017.
func LoadConfig(path string, f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"addr":           ":8080",
		"store-uri":      "",
		"store-database": "mermaid",
		"redis-addr":     "",
		"cache-dir":      "",
		"no-cache":       false,
		"timeout":        30 * time.Second,
		"log-level":      "info",
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else {
		// The implicit file might not exist
		_ = k.Load(file.Provider("mermaid.toml"), toml.Parser())
	}

	// 3. Environment variables
	if err := k.Load(env.Provider("MERMAID_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "MERMAID_")), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
