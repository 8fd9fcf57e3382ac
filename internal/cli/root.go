package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wave-scanner/internal/config"
	"wave-scanner/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Store.Enabled {
		dataStore, err := store.NewSQLiteStore(cfg.Store.DBPath)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize store, results will not be persisted")
		} else {
			app.Store = dataStore
			logger.Debug().Str("path", cfg.Store.DBPath).Msg("SQLite store initialized")
		}
	}

	rootCmd := &cobra.Command{
		Use:     "wave-scanner",
		Short:   "Elliott Wave pattern scanner for OHLC price series",
		Version: Version,
		Long: `wave-scanner searches an OHLC price series for candidate Elliott Wave
patterns: five-wave impulses, leading/expanding/contracting diagonals and
three-wave A-B-C corrections. Candidates are enumerated by skipping
intermediate extrema and validated against per-archetype rule tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "output as JSON")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newScanCmd(app))
	rootCmd.AddCommand(newZigzagCmd(app))
	rootCmd.AddCommand(newRunsCmd(app))

	return rootCmd
}
