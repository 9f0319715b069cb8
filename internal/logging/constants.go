package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldLedger    = "ledger"
	FieldCount     = "count"
	FieldSkipRows  = "skip_rows"
	FieldTolerance = "tolerance_days"
)
