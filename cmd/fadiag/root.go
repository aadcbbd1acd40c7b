// SPDX-License-Identifier: MIT
// File: root.go
// Role: cobra root command, persistent flags, zerolog and rundb wiring.
// Grounded on jinterlante1206-AleutianLocal/cmd/aleutian/commands.go's
// package-level var block of flags + cobra.Command literals and its
// PersistentPreRun-driven config load.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fadiag/rundb"
)

var (
	configPath   string
	networkPath  string
	cacheDirFlag string
	logLevelFlag string

	cfg Config
	db  *rundb.DB

	rootCmd = &cobra.Command{
		Use:   "fadiag",
		Short: "Model-based diagnosis of communicating finite-automata networks",
		Long: `fadiag builds, prunes, and diagnoses the behavioral space of a
network of communicating finite automata (spec.md's task matrix T1-T5).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(configPath)
			if err != nil {
				log.Error().Err(err).Str("config", configPath).Msg("failed to load config")

				return err
			}
			cfg = loaded
			if cacheDirFlag != "" {
				cfg.CacheDir = cacheDirFlag
			}
			if logLevelFlag != "" {
				cfg.LogLevel = logLevelFlag
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

			store, err := rundb.Open(cfg.CacheDir)
			if err != nil {
				log.Error().Err(err).Str("cache_dir", cfg.CacheDir).Msg("failed to open run cache")

				return err
			}
			db = store

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if db == nil {
				return nil
			}

			return db.Close()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a fadiag config YAML file")
	rootCmd.PersistentFlags().StringVar(&networkPath, "network", "", "path to a network XML file")
	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "override the run cache directory")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(buildCmd, filterCmd, extractCmd, diagnoserCmd, diagnoseCmd)
}

// requireNetworkPath validates that --network was supplied before a
// subcommand tries to load it.
func requireNetworkPath() error {
	if networkPath == "" {
		return fmt.Errorf("fadiag: --network is required")
	}

	return nil
}

// Execute runs the root command; main's sole responsibility is calling this
// and translating a non-nil error into a process exit code.
func Execute() error {
	return rootCmd.Execute()
}
