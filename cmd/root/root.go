// Package root contains the root command for the application
package root

import (
	"fjacquet/ledger-recon/internal/config"
	"fjacquet/ledger-recon/internal/loader"
	"fjacquet/ledger-recon/internal/normalizer"
	"fjacquet/ledger-recon/internal/recon"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// ConfigPath is the configuration file used by all commands
	ConfigPath string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ledger-recon",
		Short: "A CLI tool to reconcile two transaction ledger exports.",
		Long: `ledger-recon compares two transaction ledger exports (e.g. a bank
statement and an accounting-system export) that record the same events under
different schemas, and reports the amounts whose occurrence counts differ.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ledger-recon!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all pipeline packages
			loader.SetLogger(Log)
			normalizer.SetLogger(Log)
			recon.SetLogger(Log)
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "config.yaml",
		"Path to the YAML configuration file")
}
