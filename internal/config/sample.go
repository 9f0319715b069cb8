package config

import (
	"fmt"

	"fjacquet/ledger-recon/internal/dateutils"
	"fjacquet/ledger-recon/internal/fileutils"

	"gopkg.in/yaml.v3"
)

// SampleConfig returns a starter configuration with one single-amount-column
// ledger and one charge/payment ledger, mirroring a typical bank statement
// vs. accounting export pairing.
func SampleConfig() *ReconcileConfig {
	negative := true
	return &ReconcileConfig{
		Ledgers: []LedgerConfig{
			{
				Name:               "bank",
				Date:               "Date",
				Description:        "Description",
				AmountColumn:       "Amount",
				ChargesAreNegative: &negative,
				SkipRows:           0,
				DateFormats:        dateutils.DefaultFormats,
			},
			{
				Name:          "qb",
				Date:          "Date",
				Description:   "Memo",
				ChargeAmount:  "Debit",
				PaymentAmount: "Credit",
				SkipRows:      0,
				DateFormats:   []string{dateutils.DateLayoutISO},
			},
		},
		ToleranceDays: 3,
		StrictPairing: false,
	}
}

// WriteSampleConfig marshals the starter configuration to path. It refuses to
// overwrite an existing file.
func WriteSampleConfig(path string) error {
	if fileutils.FileExists(path) {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	data, err := yaml.Marshal(SampleConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal sample configuration: %w", err)
	}

	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write sample configuration: %w", err)
	}

	return nil
}
