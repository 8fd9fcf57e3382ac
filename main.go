package main

import (
	"fmt"
	"os"

	"wave-scanner/internal/cli"
	"wave-scanner/internal/config"
	"wave-scanner/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("WAVE_SCANNER_CONFIG_DIR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wave-scanner: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLoggerWithConfig(logging.LogConfig{
		Level:      cfg.Logging.Level,
		Console:    cfg.Logging.Console,
		File:       cfg.Logging.File,
		FilePath:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	})

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
