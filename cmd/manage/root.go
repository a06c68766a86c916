package main

import (
	"fmt"
	"os"

	"legal-buddy/pkg/config"
	"legal-buddy/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	debug bool
	cfg   *config.Config
	log   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "manage",
	Short: "AI Legal Buddy maintenance tool",
	Long:  `Applies chat history migrations and checks the scheme dataset.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logger.Level
		if debug {
			level = "debug"
		}
		log, err = logger.New(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}
