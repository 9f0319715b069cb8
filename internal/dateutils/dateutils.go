// Package dateutils provides the date parsing and comparison helpers used by
// the normalizer and the tolerance matcher.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	DateLayoutISO = "2006-01-02"
	DateLayoutUS  = "01/02/2006"
)

// DefaultFormats is the candidate list applied when a ledger section does not
// configure its own. US format is tried before ISO; the order is part of the
// configuration contract because ambiguous dates like 01/02/2024 parse
// differently depending on which format wins.
var DefaultFormats = []string{DateLayoutUS, DateLayoutISO}

// ParseDateWith attempts each candidate format in order and returns the first
// successful parse, truncated to a date-only value at UTC midnight.
func ParseDateWith(dateStr string, formats []string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	for _, format := range formats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	// Replace multiple spaces with a single space
	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
