// Package reconcile handles the reconciliation command
package reconcile

import (
	"os"

	"fjacquet/ledger-recon/cmd/root"
	"fjacquet/ledger-recon/internal/config"
	"fjacquet/ledger-recon/internal/loader"
	"fjacquet/ledger-recon/internal/models"
	"fjacquet/ledger-recon/internal/normalizer"
	"fjacquet/ledger-recon/internal/recon"
	"fjacquet/ledger-recon/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the reconcile command
var Cmd = &cobra.Command{
	Use:   "reconcile <ledger-a.csv> <ledger-b.csv>",
	Short: "Reconcile two ledger files",
	Long: `Reconcile two ledger files against the column mappings in the
configuration file. The first file uses the first ledger section, the second
file the second. Prints a mismatch report on stdout and exits non-zero on any
load or parse failure.`,
	Args: cobra.ExactArgs(2),
	Run:  reconcileFunc,
}

func reconcileFunc(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadReconcileConfig(root.ConfigPath)
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	transactionsA := loadLedger(args[0], cfg.LedgerA())
	transactionsB := loadLedger(args[1], cfg.LedgerB())

	reconciler := recon.Reconciler{
		LedgerA: models.LedgerID(cfg.LedgerA().Name),
		LedgerB: models.LedgerID(cfg.LedgerB().Name),
		Matcher: recon.Matcher{
			ToleranceDays: cfg.ToleranceDays,
			StrictPairing: cfg.StrictPairing,
		},
	}
	result := reconciler.Reconcile(transactionsA, transactionsB)

	if err := report.Write(os.Stdout, result); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}

func loadLedger(path string, lc *config.LedgerConfig) []models.Transaction {
	ledger, err := loader.Load(path, lc)
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}

	transactions, err := normalizer.NormalizeLedger(ledger, lc)
	if err != nil {
		// The error already names the ledger, column and offending
		// value; add the file path so the operator knows which input
		// to fix.
		root.Log.WithField("file", path).Fatalf("Error normalizing ledger %s: %v", lc.Name, err)
	}

	return transactions
}
