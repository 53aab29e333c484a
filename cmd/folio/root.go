package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/folio/internal/config"
	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.FromEnv()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio composes, saves and exports business documents",
	Long: `Folio fills document templates organized by line of business,
keeps the most recent saved documents and exports them to PDF or the printer.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout())
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags default to the FOLIO_* environment.
	cfg.BindFlags(rootCmd.PersistentFlags())
}
