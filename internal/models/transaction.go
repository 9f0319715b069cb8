// Package models defines the canonical transaction representation shared by
// the loader, normalizer and reconciliation engine.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerID identifies which input ledger a transaction came from.
// It carries the section name from the configuration file (e.g. "bank", "qb").
type LedgerID string

// Transaction is a normalized ledger row, independent of the source schema.
// It is immutable once created: Amount is already rounded to 2 decimal places
// and Date carries no time-of-day component.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Ledger      LedgerID
	// Raw keeps the original column values for diagnostics only.
	// It never participates in matching.
	Raw map[string]string
}

// Occurrence is the (date, description) pair a transaction contributes to an
// amount bucket.
type Occurrence struct {
	Date        time.Time
	Description string
}

// Occurrence returns the transaction's contribution to its amount bucket.
func (t Transaction) Occurrence() Occurrence {
	return Occurrence{Date: t.Date, Description: t.Description}
}

// Bucket holds every occurrence one ledger contributed for a single rounded
// amount, in source row order.
type Bucket struct {
	Amount      decimal.Decimal
	Occurrences []Occurrence
}

// Count returns the number of occurrences in the bucket.
func (b *Bucket) Count() int {
	return len(b.Occurrences)
}

// MismatchRecord is produced for every amount whose occurrence counts differ
// between the two ledgers. It is created once per run and only read afterwards.
type MismatchRecord struct {
	Amount       decimal.Decimal
	CountA       int
	CountB       int
	OccurrencesA []Occurrence
	OccurrencesB []Occurrence
}

// Excess returns the occurrence list of the ledger with more occurrences and
// the list it should be checked against.
func (r MismatchRecord) Excess() (excess, counterpart []Occurrence) {
	if r.CountA > r.CountB {
		return r.OccurrencesA, r.OccurrencesB
	}
	return r.OccurrencesB, r.OccurrencesA
}

// ExcessInA reports whether ledger A is the side with more occurrences.
func (r MismatchRecord) ExcessInA() bool {
	return r.CountA > r.CountB
}

// TruncateDate strips the time-of-day component, normalizing to UTC midnight.
// All date comparisons in the engine operate on truncated dates.
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayDistance returns the absolute calendar-day difference between two dates.
// The comparison is symmetric and ignores any time-of-day component.
func DayDistance(a, b time.Time) int {
	a = TruncateDate(a)
	b = TruncateDate(b)
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}

// AmountKey returns the canonical bucket key for an amount: its fixed
// 2-decimal string form. Keying on the rounded string keeps floating-point
// noise from ever creating separate buckets.
func AmountKey(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}
