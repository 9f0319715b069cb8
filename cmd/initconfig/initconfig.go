// Package initconfig handles the init-config command
package initconfig

import (
	"fjacquet/ledger-recon/cmd/root"
	"fjacquet/ledger-recon/internal/config"

	"github.com/spf13/cobra"
)

// Cmd represents the init-config command
var Cmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write a starter configuration file",
	Long: `Write a starter configuration file with two example ledger sections:
one single-amount-column ledger and one charge/payment-column ledger. Edit the
column names to match your exports.`,
	Args: cobra.MaximumNArgs(1),
	Run:  initConfigFunc,
}

func initConfigFunc(cmd *cobra.Command, args []string) {
	path := "config.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.WriteSampleConfig(path); err != nil {
		root.Log.Fatalf("Error writing sample configuration: %v", err)
	}
	root.Log.Infof("Wrote sample configuration to %s", path)
}
