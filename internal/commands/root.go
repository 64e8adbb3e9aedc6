package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"masteryplot/internal/configutil"
	"masteryplot/internal/mastery"
	"masteryplot/internal/report"
	"masteryplot/internal/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	Players          []string `json:"players"`
	Region           string   `json:"region"`
	Champions        int      `json:"champions"`
	BaseURL          string   `json:"base_url"`
	TimeoutSeconds   int      `json:"timeout_seconds"`
	CloudflareBypass *bool    `json:"cloudflare_bypass"`
}

var (
	configPath *string
	region     *string
	champions  *int
	skipFailed *bool
	debug      *bool

	config Config
)

var rootCmd = &cobra.Command{
	Use:           "masteryplot",
	Short:         "masteryplot compares the champion mastery of players from championmastery.gg.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(os.Stderr, *debug)

		cfg, err := configutil.ReadConfig[Config](*configPath)
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config file, using defaults", "path", *configPath)
			return nil
		}
		if err != nil {
			return err
		}
		config = cfg
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	configPath = flags.String("config", "masteryplot.json5", "The config file listing players and defaults.")
	region = flags.String("region", "", "The region of the players, defaults to the config or EUW.")
	champions = flags.Int("champions", 0, "The number of champions in the game, defaults to the config or the built in registry.")
	skipFailed = flags.Bool("skip-failed", false, "Skip players whose mastery cannot be fetched instead of failing.")
	debug = flags.Bool("debug", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("masteryplot failed", "err", err)
		os.Exit(1)
	}
}

func newSource() mastery.Source {
	opts := mastery.ClientOptions{
		BaseURL:          config.BaseURL,
		Timeout:          time.Duration(config.TimeoutSeconds) * time.Second,
		CloudflareBypass: true,
	}
	if config.CloudflareBypass != nil {
		opts.CloudflareBypass = *config.CloudflareBypass
	}
	return mastery.NewCachedSource(mastery.NewClient(opts), 256, time.Hour)
}

// options merges command line arguments over the config file.
func options(args []string) report.Options {
	opts := report.Options{
		Players:    config.Players,
		Region:     config.Region,
		Champions:  config.Champions,
		SkipFailed: *skipFailed,
	}
	if len(args) > 0 {
		opts.Players = args
	}
	if *region != "" {
		opts.Region = *region
	}
	if *champions > 0 {
		opts.Champions = *champions
	}
	opts.Region = mastery.ResolveRegion(opts.Region)
	return opts
}
