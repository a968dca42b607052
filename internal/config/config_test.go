package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	ResetCache()
	t.Cleanup(ResetCache)

	cfgDir := filepath.Join(dir, ConfigDir)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetCache()
	t.Cleanup(ResetCache)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mailto != "" {
		t.Errorf("Mailto = %q, want empty", cfg.Mailto)
	}
	if cfg.GetRequestTimeout() != 10*time.Second {
		t.Errorf("GetRequestTimeout = %v, want 10s default", cfg.GetRequestTimeout())
	}
	if cfg.GetDispatchDelay() != 100*time.Millisecond {
		t.Errorf("GetDispatchDelay = %v, want 100ms default", cfg.GetDispatchDelay())
	}
	if cfg.GetMaxConcurrent() != 4 {
		t.Errorf("GetMaxConcurrent = %d, want 4 default", cfg.GetMaxConcurrent())
	}
	if cfg.GetCacheTTL() != 30*24*time.Hour {
		t.Errorf("GetCacheTTL = %v, want 30 days default", cfg.GetCacheTTL())
	}
}

func TestLoadParsesFields(t *testing.T) {
	writeConfig(t, `
mailto: someone@example.org
api_base_url: https://api.staging.example.org
request_timeout: 30s
dispatch_delay: 250ms
max_concurrent: 8
title_threshold: 0.9
cache_ttl_days: 7
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mailto != "someone@example.org" {
		t.Errorf("Mailto = %q", cfg.Mailto)
	}
	if cfg.APIBaseURL != "https://api.staging.example.org" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.GetRequestTimeout() != 30*time.Second {
		t.Errorf("GetRequestTimeout = %v", cfg.GetRequestTimeout())
	}
	if cfg.GetDispatchDelay() != 250*time.Millisecond {
		t.Errorf("GetDispatchDelay = %v", cfg.GetDispatchDelay())
	}
	if cfg.GetMaxConcurrent() != 8 {
		t.Errorf("GetMaxConcurrent = %d", cfg.GetMaxConcurrent())
	}
	if cfg.TitleThreshold != 0.9 {
		t.Errorf("TitleThreshold = %v", cfg.TitleThreshold)
	}
	if cfg.GetCacheTTL() != 7*24*time.Hour {
		t.Errorf("GetCacheTTL = %v", cfg.GetCacheTTL())
	}
}

func TestBadDurationFallsBack(t *testing.T) {
	writeConfig(t, "request_timeout: not-a-duration\ndispatch_delay: -5s\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetRequestTimeout() != 10*time.Second {
		t.Errorf("GetRequestTimeout = %v, want default", cfg.GetRequestTimeout())
	}
	if cfg.GetDispatchDelay() != 100*time.Millisecond {
		t.Errorf("GetDispatchDelay = %v, want default", cfg.GetDispatchDelay())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	writeConfig(t, "mailto: [unclosed\n")

	if _, err := Load(); err == nil {
		t.Error("Load accepted invalid YAML")
	}
}

func TestGetCachePathDefaultsNextToConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	ResetCache()
	t.Cleanup(ResetCache)

	cfg := &Config{}
	want := filepath.Join(dir, ConfigDir, CacheFile)
	if got := cfg.GetCachePath(); got != want {
		t.Errorf("GetCachePath = %q, want %q", got, want)
	}

	cfg.CachePath = "/tmp/other.db"
	if got := cfg.GetCachePath(); got != "/tmp/other.db" {
		t.Errorf("GetCachePath = %q, want explicit path", got)
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/cache/lookups.db", filepath.Join(home, "cache/lookups.db")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandTilde(tt.in); got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
