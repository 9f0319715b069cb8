package config

import (
	"fmt"

	"fjacquet/ledger-recon/internal/dateutils"
	"fjacquet/ledger-recon/internal/reconerror"

	"github.com/spf13/viper"
)

// LedgerConfig maps one input file's columns onto the canonical transaction
// fields. Exactly one of the two amount modes must be configured: a single
// signed amount column, or separate charge/payment columns.
type LedgerConfig struct {
	// Name identifies the ledger section (e.g. "bank", "qb") in reports
	// and error messages.
	Name string `mapstructure:"name" yaml:"name"`

	// Date is the column holding the transaction date. Required.
	Date string `mapstructure:"date" yaml:"date"`

	// Description is the column holding the description/memo. A missing
	// value or an unset key resolves to the empty string downstream.
	Description string `mapstructure:"description" yaml:"description"`

	// AmountColumn selects single-column mode.
	AmountColumn string `mapstructure:"amount_column" yaml:"amount_column,omitempty"`

	// ChargesAreNegative controls sign canonicalization in single-column
	// mode. When true (the default), a negative raw value is a charge and
	// the canonical amount is the raw value negated: charges come out
	// positive, credits negative. When false the raw sign is kept.
	ChargesAreNegative *bool `mapstructure:"charges_are_negative" yaml:"charges_are_negative,omitempty"`

	// ChargeAmount and PaymentAmount select split-column mode.
	ChargeAmount  string `mapstructure:"charge_amount" yaml:"charge_amount,omitempty"`
	PaymentAmount string `mapstructure:"payment_amount" yaml:"payment_amount,omitempty"`

	// SkipRows is the number of leading non-data rows before the header.
	SkipRows int `mapstructure:"skip_rows" yaml:"skip_rows"`

	// DateFormats is the ordered list of Go layouts tried when parsing
	// dates. The order is part of the contract: ambiguous dates parse
	// differently depending on which layout wins.
	DateFormats []string `mapstructure:"date_formats" yaml:"date_formats,omitempty"`
}

// SplitColumns reports whether the section uses separate charge/payment
// columns instead of a single signed amount column.
func (lc *LedgerConfig) SplitColumns() bool {
	return lc.AmountColumn == ""
}

// NegativeCharges resolves the charges_are_negative flag with its default of
// true.
func (lc *LedgerConfig) NegativeCharges() bool {
	if lc.ChargesAreNegative == nil {
		return true
	}
	return *lc.ChargesAreNegative
}

// Formats returns the configured candidate date formats, falling back to the
// default US-then-ISO order.
func (lc *LedgerConfig) Formats() []string {
	if len(lc.DateFormats) == 0 {
		return dateutils.DefaultFormats
	}
	return lc.DateFormats
}

// ReconcileConfig is the complete configuration for one reconciliation run:
// exactly two ledger sections plus the tolerance matcher settings. The first
// section applies to the first file argument, the second to the second.
type ReconcileConfig struct {
	Ledgers []LedgerConfig `mapstructure:"ledgers" yaml:"ledgers"`

	// ToleranceDays is the maximum calendar-day distance at which a
	// same-amount occurrence in the other ledger explains a mismatch.
	ToleranceDays int `mapstructure:"tolerance_days" yaml:"tolerance_days"`

	// StrictPairing switches the tolerance matcher to one-to-one
	// consumable pairing, where each counterpart explains at most one
	// occurrence. The default keeps the looser existence-check semantics.
	StrictPairing bool `mapstructure:"strict_pairing" yaml:"strict_pairing"`
}

// LedgerA returns the section applied to the first file argument.
func (c *ReconcileConfig) LedgerA() *LedgerConfig { return &c.Ledgers[0] }

// LedgerB returns the section applied to the second file argument.
func (c *ReconcileConfig) LedgerB() *LedgerConfig { return &c.Ledgers[1] }

// LoadReconcileConfig reads and validates the configuration file at path.
// All violations surface as ConfigError before any ledger is read.
func LoadReconcileConfig(path string) (*ReconcileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("tolerance_days", 3)
	v.SetDefault("strict_pairing", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, &reconerror.ConfigError{Path: path, Reason: "cannot read configuration file", Err: err}
	}

	var cfg ReconcileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &reconerror.ConfigError{Path: path, Reason: "cannot unmarshal configuration", Err: err}
	}

	if err := validateReconcileConfig(&cfg); err != nil {
		return nil, &reconerror.ConfigError{Path: path, Reason: err.Error()}
	}

	return &cfg, nil
}

func validateReconcileConfig(cfg *ReconcileConfig) error {
	if len(cfg.Ledgers) != 2 {
		return fmt.Errorf("exactly two ledger sections are required, got %d", len(cfg.Ledgers))
	}

	if cfg.ToleranceDays < 0 {
		return fmt.Errorf("tolerance_days must not be negative, got %d", cfg.ToleranceDays)
	}

	names := make(map[string]bool, 2)
	for i := range cfg.Ledgers {
		lc := &cfg.Ledgers[i]
		if lc.Name == "" {
			return fmt.Errorf("ledger section %d: name is required", i)
		}
		if names[lc.Name] {
			return fmt.Errorf("ledger section names must be unique, '%s' appears twice", lc.Name)
		}
		names[lc.Name] = true

		if lc.Date == "" {
			return fmt.Errorf("ledger %s: date column is required", lc.Name)
		}
		if lc.SkipRows < 0 {
			return fmt.Errorf("ledger %s: skip_rows must not be negative, got %d", lc.Name, lc.SkipRows)
		}

		hasSingle := lc.AmountColumn != ""
		hasSplit := lc.ChargeAmount != "" || lc.PaymentAmount != ""
		switch {
		case hasSingle && hasSplit:
			return fmt.Errorf("ledger %s: amount_column is mutually exclusive with charge_amount/payment_amount", lc.Name)
		case !hasSingle && !hasSplit:
			return fmt.Errorf("ledger %s: either amount_column or charge_amount/payment_amount must be set", lc.Name)
		case hasSplit && lc.ChargesAreNegative != nil:
			return fmt.Errorf("ledger %s: charges_are_negative only applies to amount_column mode", lc.Name)
		}
	}

	return nil
}
