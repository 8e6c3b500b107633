// Package config loads process configuration with layered sources:
// built-in defaults, then an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces every configuration environment variable.
const EnvPrefix = "TASTEMAKER_"

// DefaultConfigPaths lists where the config file is searched, first hit wins.
var DefaultConfigPaths = []string{
	"tastemaker.yaml",
	"tastemaker.yml",
	"/etc/tastemaker/tastemaker.yaml",
}

// Config is the full process configuration.
type Config struct {
	Environment string          `koanf:"environment"`
	HTTP        HTTPConfig      `koanf:"http"`
	Catalog     CatalogConfig   `koanf:"catalog"`
	Spotify     SpotifyConfig   `koanf:"spotify"`
	Cache       CacheConfig     `koanf:"cache"`
	Recommend   RecommendConfig `koanf:"recommend"`
	Logging     LoggingConfig   `koanf:"logging"`
}

type HTTPConfig struct {
	Addr string `koanf:"addr" validate:"required"`
}

type CatalogConfig struct {
	// Path points at the catalog CSV. Loading it is fatal when it fails.
	Path string `koanf:"path" validate:"required"`
}

type SpotifyConfig struct {
	ClientID     string        `koanf:"client_id" validate:"required"`
	ClientSecret string        `koanf:"client_secret" validate:"required"`
	BaseURL      string        `koanf:"base_url"`
	TokenURL     string        `koanf:"token_url"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxRetries   int           `koanf:"max_retries" validate:"gte=1"`
	RetryBackoff time.Duration `koanf:"retry_backoff" validate:"gt=0"`
}

type CacheConfig struct {
	// Path of the sqlite track cache; empty disables caching.
	Path string `koanf:"path"`
}

type RecommendConfig struct {
	DefaultLimit int `koanf:"default_limit" validate:"gte=1"`
	MaxLimit     int `koanf:"max_limit" validate:"gte=1,gtefield=DefaultLimit"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Environment: "development",
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Catalog: CatalogConfig{
			Path: "data/catalog.csv",
		},
		Spotify: SpotifyConfig{
			Timeout:      10 * time.Second,
			MaxRetries:   3,
			RetryBackoff: 500 * time.Millisecond,
		},
		Recommend: RecommendConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration. configPath overrides the default file search;
// an explicitly named file must exist, the defaults are optional.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	explicit := configPath != ""
	if !explicit {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: load %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps environment variables to config keys. Unmapped
// variables are skipped so unrelated environment does not pollute the config.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	envMappings := map[string]string{
		"environment": "environment",

		"http_addr": "http.addr",

		"catalog_path": "catalog.path",

		"spotify_client_id":     "spotify.client_id",
		"spotify_client_secret": "spotify.client_secret",
		"spotify_base_url":      "spotify.base_url",
		"spotify_token_url":     "spotify.token_url",
		"spotify_timeout":       "spotify.timeout",
		"spotify_max_retries":   "spotify.max_retries",
		"spotify_retry_backoff": "spotify.retry_backoff",

		"cache_path": "cache.path",

		"default_limit": "recommend.default_limit",
		"max_limit":     "recommend.max_limit",

		"log_level":  "logging.level",
		"log_format": "logging.format",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
