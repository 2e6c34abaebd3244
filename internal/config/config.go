package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration
type Config struct {
	ServerAddr string     `yaml:"server_addr" koanf:"server_addr"`
	LogLevel   string     `yaml:"log_level" koanf:"log_level"`
	Dev        bool       `yaml:"dev" koanf:"dev"`
	API        APIConfig  `yaml:"api" koanf:"api"`
	Site       SiteConfig `yaml:"site" koanf:"site"`
	CORS       CORSConfig `yaml:"cors" koanf:"cors"`
}

// APIConfig points the front end at its backend
type APIConfig struct {
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// StorageURL is prefixed to image references. Empty means {base_url}/storage.
	StorageURL string        `yaml:"storage_url" koanf:"storage_url"`
	Timeout    time.Duration `yaml:"timeout" koanf:"timeout"`
	UserAgent  string        `yaml:"user_agent" koanf:"user_agent"`
}

// SiteConfig holds the text shown in the page shell
type SiteConfig struct {
	Owner string `yaml:"owner" koanf:"owner"`
	Title string `yaml:"title" koanf:"title"`
}

// CORSConfig lists origins allowed to call the JSON endpoints
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// envKeys maps PORTFOLIO_* variables to config keys
var envKeys = map[string]string{
	"SERVER_ADDR":          "server_addr",
	"LOG_LEVEL":            "log_level",
	"DEV":                  "dev",
	"API_BASE_URL":         "api.base_url",
	"API_STORAGE_URL":      "api.storage_url",
	"API_TIMEOUT":          "api.timeout",
	"API_USER_AGENT":       "api.user_agent",
	"SITE_OWNER":           "site.owner",
	"SITE_TITLE":           "site.title",
	"CORS_ALLOWED_ORIGINS": "cors.allowed_origins",
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists), the dotenv file (if it exists) and PORTFOLIO_* variables, in that
// order of precedence.
func Load(path, dotenv string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// godotenv never overrides variables that are already set.
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", dotenv, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("server_addr is required")
	}
	if err := validateURL("api.base_url", c.API.BaseURL); err != nil {
		return err
	}
	if c.API.StorageURL != "" {
		if err := validateURL("api.storage_url", c.API.StorageURL); err != nil {
			return err
		}
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: scheme must be http or https", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s %q: missing host", key, raw)
	}
	return nil
}
