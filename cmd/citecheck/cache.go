package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local DOI lookup cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show lookup cache contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		c := mustOpenCache(cfg)
		defer c.Close()

		stats, err := c.Stats()
		if err != nil {
			exitWithError(ExitError, "reading cache stats: %v", err)
		}

		if humanOutput {
			outputHuman("Cache: %s\n%d lookups (%d found, %d not found)\n",
				stats.Path, stats.Total, stats.Found, stats.NotFound)
			return nil
		}
		return outputJSON(stats)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached lookups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		c := mustOpenCache(cfg)
		defer c.Close()

		if err := c.Clear(); err != nil {
			exitWithError(ExitError, "clearing cache: %v", err)
		}

		if humanOutput {
			outputHuman("Cache cleared.\n")
			return nil
		}
		return outputJSON(StatusResponse{Status: "cleared", Path: cfg.GetCachePath()})
	},
}
