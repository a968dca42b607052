package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/citecheck/internal/cache"
	"github.com/matsen/citecheck/internal/config"
	"github.com/matsen/citecheck/internal/crossref"
	"github.com/matsen/citecheck/internal/verify"
	"github.com/spf13/pflag"
)

// Flags shared by the verification commands.
var (
	flagMailto  string
	flagNoCache bool
)

func addVerifyFlags(flags *pflag.FlagSet) {
	flags.StringVar(&flagMailto, "mailto", "", "Contact email for the CrossRef polite pool")
	flags.BoolVar(&flagNoCache, "no-cache", false, "Skip the local lookup cache")
}

// mustLoadConfig loads the global config, exits on error.
func mustLoadConfig() *config.Config {
	// Load .env file if present (for CITECHECK_MAILTO)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// resolveMailto picks the contact address: flag, then environment, then
// config file.
func resolveMailto(cfg *config.Config) string {
	if flagMailto != "" {
		return flagMailto
	}
	if env := os.Getenv("CITECHECK_MAILTO"); env != "" {
		return env
	}
	return cfg.Mailto
}

// buildVerifier assembles a Verifier from config and flags. The returned
// cleanup closes the cache and must be called; it is a no-op when the
// cache is disabled or unavailable.
func buildVerifier(cfg *config.Config) (*verify.Verifier, func()) {
	clientOpts := []crossref.ClientOption{
		crossref.WithTimeout(cfg.GetRequestTimeout()),
		crossref.WithDispatchInterval(cfg.GetDispatchDelay()),
	}
	if mailto := resolveMailto(cfg); mailto != "" {
		clientOpts = append(clientOpts, crossref.WithMailto(mailto))
	}
	if cfg.APIBaseURL != "" {
		clientOpts = append(clientOpts, crossref.WithBaseURL(cfg.APIBaseURL))
	}
	client := crossref.NewClient(clientOpts...)

	opts := []verify.Option{
		verify.WithMaxConcurrent(cfg.GetMaxConcurrent()),
	}
	if cfg.TitleThreshold > 0 {
		opts = append(opts, verify.WithTitleThreshold(cfg.TitleThreshold))
	}
	if cfg.AuthorThreshold > 0 {
		opts = append(opts, verify.WithAuthorThreshold(cfg.AuthorThreshold))
	}

	cleanup := func() {}
	if !flagNoCache {
		if path := cfg.GetCachePath(); path != "" {
			if c, err := cache.Open(path, cfg.GetCacheTTL()); err == nil {
				opts = append(opts, verify.WithCache(c))
				cleanup = func() { c.Close() }
			} else {
				// A broken cache degrades to live lookups only.
				fmt.Fprintf(os.Stderr, "warning: lookup cache unavailable: %v\n", err)
			}
		}
	}

	return verify.New(client, opts...), cleanup
}

// mustOpenCache opens the lookup cache for the cache management commands.
func mustOpenCache(cfg *config.Config) *cache.Cache {
	path := cfg.GetCachePath()
	if path == "" {
		exitWithError(ExitConfigError, "no cache location available")
	}
	c, err := cache.Open(path, cfg.GetCacheTTL())
	if err != nil {
		exitWithError(ExitError, "opening cache: %v", err)
	}
	return c
}
