package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/ledger-recon/internal/dateutils"
	"fjacquet/ledger-recon/internal/reconerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const validConfig = `
ledgers:
  - name: bank
    date: Date
    description: Description
    amount_column: Amount
  - name: qb
    date: Date
    description: Memo
    charge_amount: Debit
    payment_amount: Credit
    skip_rows: 2
    date_formats: ["2006-01-02"]
`

func TestLoadReconcileConfig(t *testing.T) {
	cfg, err := LoadReconcileConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Ledgers, 2)
	assert.Equal(t, 3, cfg.ToleranceDays, "tolerance_days defaults to 3")
	assert.False(t, cfg.StrictPairing, "strict_pairing defaults to false")

	bank := cfg.LedgerA()
	assert.Equal(t, "bank", bank.Name)
	assert.False(t, bank.SplitColumns())
	assert.True(t, bank.NegativeCharges(), "charges_are_negative defaults to true")
	assert.Equal(t, dateutils.DefaultFormats, bank.Formats())

	qb := cfg.LedgerB()
	assert.Equal(t, "qb", qb.Name)
	assert.True(t, qb.SplitColumns())
	assert.Equal(t, 2, qb.SkipRows)
	assert.Equal(t, []string{"2006-01-02"}, qb.Formats())
}

func TestLoadReconcileConfigOverrides(t *testing.T) {
	cfg, err := LoadReconcileConfig(writeConfig(t, validConfig+`
tolerance_days: 5
strict_pairing: true
`))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ToleranceDays)
	assert.True(t, cfg.StrictPairing)
}

func TestLoadReconcileConfigChargesAreNegativeFalse(t *testing.T) {
	cfg, err := LoadReconcileConfig(writeConfig(t, `
ledgers:
  - name: bank
    date: Date
    amount_column: Amount
    charges_are_negative: false
  - name: qb
    date: Date
    charge_amount: Debit
`))
	require.NoError(t, err)
	assert.False(t, cfg.LedgerA().NegativeCharges())
}

func TestLoadReconcileConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{
			"one ledger only",
			`
ledgers:
  - name: bank
    date: Date
    amount_column: Amount
`,
			"exactly two ledger sections",
		},
		{
			"missing date column",
			`
ledgers:
  - name: bank
    amount_column: Amount
  - name: qb
    date: Date
    amount_column: Amount
`,
			"date column is required",
		},
		{
			"both amount modes",
			`
ledgers:
  - name: bank
    date: Date
    amount_column: Amount
    charge_amount: Debit
  - name: qb
    date: Date
    amount_column: Amount
`,
			"mutually exclusive",
		},
		{
			"no amount mode",
			`
ledgers:
  - name: bank
    date: Date
  - name: qb
    date: Date
    amount_column: Amount
`,
			"either amount_column or charge_amount/payment_amount",
		},
		{
			"duplicate names",
			`
ledgers:
  - name: bank
    date: Date
    amount_column: Amount
  - name: bank
    date: Date
    amount_column: Amount
`,
			"must be unique",
		},
		{
			"negative skip_rows",
			`
ledgers:
  - name: bank
    date: Date
    amount_column: Amount
    skip_rows: -1
  - name: qb
    date: Date
    amount_column: Amount
`,
			"skip_rows must not be negative",
		},
		{
			"flag in split mode",
			`
ledgers:
  - name: bank
    date: Date
    charge_amount: Debit
    charges_are_negative: true
  - name: qb
    date: Date
    amount_column: Amount
`,
			"only applies to amount_column mode",
		},
		{
			"negative tolerance",
			validConfig + "\ntolerance_days: -1\n",
			"tolerance_days must not be negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadReconcileConfig(writeConfig(t, tc.content))
			require.Error(t, err)
			var cfgErr *reconerror.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestLoadReconcileConfigMissingFile(t *testing.T) {
	_, err := LoadReconcileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	var cfgErr *reconerror.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestWriteSampleConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteSampleConfig(path))

	cfg, err := LoadReconcileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bank", cfg.LedgerA().Name)
	assert.Equal(t, "qb", cfg.LedgerB().Name)
	assert.Equal(t, 3, cfg.ToleranceDays)

	// Refuses to overwrite
	assert.Error(t, WriteSampleConfig(path))
}
