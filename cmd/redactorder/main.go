// Package main is the entry point for the redactorder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/redaction/internal/config"
	"github.com/tsawler/redaction/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by every subcommand
type app struct {
	envFile string
	cfg     config.Config
	logger  *zap.Logger
}

func rootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "redactorder",
		Short: "Order and review redactions found in documents",
		Long: `redactorder loads redactions and clues from YAML or JSON files, puts them
in reading order (page, then top to bottom, then along the line) and keeps
track of which ones have been reviewed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := log.New(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "path to a .env file (default .env)")

	cmd.AddCommand(sortCmd(a))
	cmd.AddCommand(countsCmd(a))
	cmd.AddCommand(codesCmd(a))
	cmd.AddCommand(saveCmd(a))
	cmd.AddCommand(showCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}
