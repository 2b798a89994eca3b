package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielprats/atmalerts"
	"github.com/danielprats/atmalerts/config"
	"github.com/danielprats/atmalerts/fetch"
)

var rootCmd = &cobra.Command{
	Use:          "atmalerts",
	Short:        "ATM service alert viewer",
	Long:         "Inspects ATM service disruption alerts published as CSV extracts",
	SilenceUsage: true,
}

var (
	baseURL    string
	dataDir    string
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseURL, "base-url", "", "", "base URL serving the CSV extracts")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "", "", "local directory holding the CSV extracts")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Builds a Manager from flags (or config file) and performs the load.
func loadManager() (*atmalerts.Manager, error) {
	url, dir := baseURL, dataDir
	timeout := atmalerts.DefaultFetchTimeout

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if url == "" {
			url = cfg.Source.BaseURL
		}
		if dir == "" {
			dir = cfg.Source.Dir
		}
		if cfg.Source.TimeoutSeconds > 0 {
			timeout = time.Duration(cfg.Source.TimeoutSeconds) * time.Second
		}
	}

	var fetcher fetch.Fetcher
	switch {
	case dir != "":
		fetcher = fetch.NewDir(dir)
	case url != "":
		fetcher = fetch.NewHTTP(url, timeout)
	default:
		return nil, fmt.Errorf("either --data-dir or --base-url is required")
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	manager := atmalerts.NewManager(fetcher)
	manager.Logger = logger

	if err := manager.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	return manager, nil
}
