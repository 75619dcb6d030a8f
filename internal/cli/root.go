package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/schnapsen-go/internal/factory"
	redisstorage "github.com/mcoot/schnapsen-go/internal/storage/redis"
)

var verbose bool

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arena",
		Short: "Schnapsen strategy arena",
		Long: `arena plays and evaluates Schnapsen strategy variants.

It can play single games, run seeded tournaments between variants,
store the results, and serve decisions and results over a JSON API.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newStrategiesCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTournamentCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger; commands log JSON to stderr so
// stdout stays clean for results
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// newApp builds the application from the environment: STORAGE_TYPE selects
// the backend and REDIS_URL configures it when set to redis
func newApp(logger *slog.Logger) (*factory.App, error) {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if url := os.Getenv("REDIS_URL"); url != "" {
			redisCfg.URL = url
		}
		cfg.RedisConfig = &redisCfg
	}

	return factory.New(cfg)
}
