// Package reconerror defines the typed errors surfaced by the reconciliation
// pipeline. Every error carries enough context (ledger, column, offending
// value) for the operator to fix the configuration; nothing is retried or
// downgraded to a warning.
package reconerror

import (
	"fmt"
	"strings"
)

// ConfigError reports a missing, malformed or inconsistent configuration file.
// It aborts the run before any ledger is read.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SchemaError reports a configured column name that does not exist in the
// loaded row set. Present lists the column names that were actually found so
// the operator can correct the mapping; including it in the message is a
// user-facing requirement, not incidental logging.
type SchemaError struct {
	Ledger   string
	Column   string
	Role     string // which config key named the column: date, description, ...
	SkipRows int
	Present  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ledger %s: %s column '%s' not found (after skipping %d rows); columns present: %s",
		e.Ledger, e.Role, e.Column, e.SkipRows, strings.Join(e.Present, ", "))
}

// DateParseError reports a date cell that matched none of the configured
// candidate formats.
type DateParseError struct {
	Ledger  string
	Column  string
	Value   string
	Formats []string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("ledger %s: unable to parse date '%s' in column '%s' with formats [%s]",
		e.Ledger, e.Value, e.Column, strings.Join(e.Formats, ", "))
}

// AmountParseError reports an amount cell with non-numeric content left after
// separator stripping.
type AmountParseError struct {
	Ledger string
	Column string
	Value  string
	Err    error
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("ledger %s: unable to parse amount '%s' in column '%s': %v",
		e.Ledger, e.Value, e.Column, e.Err)
}

func (e *AmountParseError) Unwrap() error {
	return e.Err
}

// LoadError wraps any failure while reading a ledger file, attaching the file
// path and skip count so the report points at the right input.
type LoadError struct {
	Path     string
	Ledger   string
	SkipRows int
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load ledger %s from %s (skip_rows=%d): %v",
		e.Ledger, e.Path, e.SkipRows, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
