// Package normalizer maps raw ledger rows onto canonical transactions using
// a per-ledger column mapping.
package normalizer

import (
	"sort"

	"fjacquet/ledger-recon/internal/config"
	"fjacquet/ledger-recon/internal/currencyutils"
	"fjacquet/ledger-recon/internal/dateutils"
	"fjacquet/ledger-recon/internal/loader"
	"fjacquet/ledger-recon/internal/logging"
	"fjacquet/ledger-recon/internal/models"
	"fjacquet/ledger-recon/internal/reconerror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	logging.Register(log)
}

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Normalize converts one raw row into a canonical transaction. The returned
// amount is rounded to 2 decimal places; unrounded values never escape this
// package. Rows that cannot be normalized fail the whole load, there is no
// row-skipping recovery.
func Normalize(row loader.Row, cfg *config.LedgerConfig, ledger models.LedgerID) (models.Transaction, error) {
	dateStr, err := lookup(row, cfg, cfg.Date, "date")
	if err != nil {
		return models.Transaction{}, err
	}

	date, err := dateutils.ParseDateWith(dateStr, cfg.Formats())
	if err != nil {
		return models.Transaction{}, &reconerror.DateParseError{
			Ledger:  cfg.Name,
			Column:  cfg.Date,
			Value:   dateStr,
			Formats: cfg.Formats(),
		}
	}

	// A missing description column or cell resolves to the empty string,
	// never a null marker; downstream comparison and printing must not
	// special-case absence.
	description := ""
	if cfg.Description != "" {
		description, err = lookup(row, cfg, cfg.Description, "description")
		if err != nil {
			return models.Transaction{}, err
		}
	}

	amount, err := resolveAmount(row, cfg)
	if err != nil {
		return models.Transaction{}, err
	}

	raw := make(map[string]string, len(row))
	for k, v := range row {
		raw[k] = v
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount.Round(2),
		Ledger:      ledger,
		Raw:         raw,
	}, nil
}

// NormalizeLedger converts every row of a loaded ledger, preserving row order.
// Configured columns are checked against the header set up front, so a
// misconfigured mapping fails even when the file carries no data rows.
func NormalizeLedger(l *loader.Ledger, cfg *config.LedgerConfig) ([]models.Transaction, error) {
	if err := checkColumns(l.Columns, cfg); err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(l.Rows))
	for _, row := range l.Rows {
		tx, err := Normalize(row, cfg, l.Name)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	log.WithFields(logrus.Fields{
		logging.FieldLedger: l.Name,
		logging.FieldCount:  len(transactions),
	}).Info("Normalized ledger rows")

	return transactions, nil
}

// resolveAmount applies the configured amount mode. Single-column mode with
// charges_are_negative=true negates the raw value so charges canonicalize to
// positive and credits to negative. Split-column mode takes +charge when the
// charge cell is populated, else -payment, else zero; when both cells are
// populated the charge wins.
func resolveAmount(row loader.Row, cfg *config.LedgerConfig) (decimal.Decimal, error) {
	if !cfg.SplitColumns() {
		raw, err := lookup(row, cfg, cfg.AmountColumn, "amount")
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := parseAmountCell(raw, cfg, cfg.AmountColumn)
		if err != nil {
			return decimal.Zero, err
		}
		if cfg.NegativeCharges() {
			return amount.Neg(), nil
		}
		return amount, nil
	}

	if cfg.ChargeAmount != "" {
		raw, err := lookup(row, cfg, cfg.ChargeAmount, "charge")
		if err != nil {
			return decimal.Zero, err
		}
		if raw != "" {
			return parseAmountCell(raw, cfg, cfg.ChargeAmount)
		}
	}

	if cfg.PaymentAmount != "" {
		raw, err := lookup(row, cfg, cfg.PaymentAmount, "payment")
		if err != nil {
			return decimal.Zero, err
		}
		if raw != "" {
			amount, err := parseAmountCell(raw, cfg, cfg.PaymentAmount)
			if err != nil {
				return decimal.Zero, err
			}
			return amount.Neg(), nil
		}
	}

	return decimal.Zero, nil
}

func parseAmountCell(raw string, cfg *config.LedgerConfig, column string) (decimal.Decimal, error) {
	amount, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &reconerror.AmountParseError{
			Ledger: cfg.Name,
			Column: column,
			Value:  raw,
			Err:    err,
		}
	}
	return amount, nil
}

// checkColumns validates every configured column name against the header set.
func checkColumns(columns []string, cfg *config.LedgerConfig) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	configured := []struct{ column, role string }{
		{cfg.Date, "date"},
		{cfg.Description, "description"},
		{cfg.AmountColumn, "amount"},
		{cfg.ChargeAmount, "charge"},
		{cfg.PaymentAmount, "payment"},
	}
	for _, c := range configured {
		if c.column == "" || present[c.column] {
			continue
		}
		sorted := make([]string, len(columns))
		copy(sorted, columns)
		sort.Strings(sorted)
		return &reconerror.SchemaError{
			Ledger:   cfg.Name,
			Column:   c.column,
			Role:     c.role,
			SkipRows: cfg.SkipRows,
			Present:  sorted,
		}
	}

	return nil
}

// lookup fetches a named field from the row and produces a SchemaError
// listing the columns actually present when the name does not exist.
func lookup(row loader.Row, cfg *config.LedgerConfig, column, role string) (string, error) {
	value, ok := row[column]
	if !ok {
		present := make([]string, 0, len(row))
		for k := range row {
			present = append(present, k)
		}
		sort.Strings(present)
		return "", &reconerror.SchemaError{
			Ledger:   cfg.Name,
			Column:   column,
			Role:     role,
			SkipRows: cfg.SkipRows,
			Present:  present,
		}
	}
	return value, nil
}
