package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"knewkarma/internal/client"
	"knewkarma/internal/config"
	"knewkarma/internal/karma"
	"knewkarma/internal/logging"
	"knewkarma/internal/parser"
)

// Version is stamped at build time via -ldflags.
var Version = "2.0.0-dev"

var (
	flagLimit     int
	flagSort      string
	flagTimeframe string
	flagExport    string
	flagOutput    string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "knewkarma",
	Short: "A Reddit data analysis toolkit",
	Long: `Knew Karma is a read-only Reddit data toolkit built on Reddit's
public JSON endpoints. It fetches user activity, subreddit posts, post
details, site-wide listings and search results, and prints or exports them
as plain data.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logging.Init(level)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 100, "Maximum number of items to fetch")
	rootCmd.PersistentFlags().StringVar(&flagSort, "sort", "all", "Sort order (all, best, controversial, hot, new, rising, top)")
	rootCmd.PersistentFlags().StringVar(&flagTimeframe, "timeframe", "all", "Timeframe (hour, day, week, month, year, all)")
	rootCmd.PersistentFlags().StringVar(&flagExport, "export", "", "Export format: json or csv")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "Export file path (defaults to <command>.<format>)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func listingOptions() karma.Options {
	return karma.Options{
		Limit:     flagLimit,
		Sort:      flagSort,
		Timeframe: flagTimeframe,
	}
}

// newService wires the fetch core the same way the server does, minus echo.
func newService() (karma.Service, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	redditClient, err := client.NewRedditClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Reddit client: %w", err)
	}

	svc := karma.NewService(redditClient, parser.NewRedditParser(),
		karma.WithPageDelay(cfg.PageDelayMin, cfg.PageDelayMax))
	return svc, cfg, nil
}
