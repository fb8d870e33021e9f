package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"smarthome-backend/config"
)

const defaultConfigPath = "./config/config.yaml"

var (
	cfgFile string
	cfg     *config.Config

	rootCmd = &cobra.Command{
		Use:           "smarthomed",
		Short:         "Smart-home management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			path := configPath(cfgFile)
			loaded, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load configuration from %s: %w", path, err)
			}
			cfg = loaded
			setupLogging(cfg.Log, os.Stdout)
			log.Info().Str("path", path).Msg("configuration loaded")
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $CONFIG_PATH or "+defaultConfigPath+")")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// configPath resolves the flag, then CONFIG_PATH, then the default.
func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return defaultConfigPath
}

func setupLogging(lc config.LogConfig, out io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(lc.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if lc.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("service", "smarthomed").Logger()
}
