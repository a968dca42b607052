// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/citecheck/config.yml.
// Zero values fall back to the defaults below, so a partial file is fine.
type Config struct {
	Mailto          string  `yaml:"mailto,omitempty"`
	APIBaseURL      string  `yaml:"api_base_url,omitempty"`
	RequestTimeout  string  `yaml:"request_timeout,omitempty"`
	DispatchDelay   string  `yaml:"dispatch_delay,omitempty"`
	MaxConcurrent   int     `yaml:"max_concurrent,omitempty"`
	TitleThreshold  float64 `yaml:"title_threshold,omitempty"`
	AuthorThreshold float64 `yaml:"author_threshold,omitempty"`
	CachePath       string  `yaml:"cache_path,omitempty"`
	CacheTTLDays    int     `yaml:"cache_ttl_days,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "citecheck"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// CacheFile is the default lookup cache file name, stored next to
	// the config.
	CacheFile = "lookups.db"

	defaultRequestTimeout = 10 * time.Second
	defaultDispatchDelay  = 100 * time.Millisecond
	defaultMaxConcurrent  = 4
	defaultCacheTTLDays   = 30
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/citecheck/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load loads the configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.CachePath != "" {
		cfg.CachePath = ExpandTilde(cfg.CachePath)
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config.
// Useful for testing.
func ResetCache() {
	configCache = nil
}

// GetRequestTimeout returns the per-request timeout, defaulting when
// unset or unparseable.
func (c *Config) GetRequestTimeout() time.Duration {
	return parseDuration(c.RequestTimeout, defaultRequestTimeout)
}

// GetDispatchDelay returns the minimum spacing between API dispatches.
func (c *Config) GetDispatchDelay() time.Duration {
	return parseDuration(c.DispatchDelay, defaultDispatchDelay)
}

// GetMaxConcurrent returns the batch worker pool size.
func (c *Config) GetMaxConcurrent() int {
	if c.MaxConcurrent > 0 {
		return c.MaxConcurrent
	}
	return defaultMaxConcurrent
}

// GetCacheTTL returns how long cached lookups stay valid.
func (c *Config) GetCacheTTL() time.Duration {
	days := c.CacheTTLDays
	if days <= 0 {
		days = defaultCacheTTLDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// GetCachePath returns the lookup cache location, defaulting to a file
// next to the config. Empty means no usable location exists.
func (c *Config) GetCachePath() string {
	if c.CachePath != "" {
		return c.CachePath
	}
	configPath := Path()
	if configPath == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(configPath), CacheFile)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
