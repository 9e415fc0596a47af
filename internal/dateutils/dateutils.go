// Package dateutils provides the date parsing and formatting used by the transaction parser.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutYMD      = "2006-1-2"
	DateLayoutDMY      = "2-1-2006"
	DateLayoutMDY      = "1-2-2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutBasicISO = "20060102"
)

// TransactionFormats are tried in order before the ISO-8601 fallbacks.
// Day-first wins over month-first for ambiguous input such as 05-01-2025.
var TransactionFormats = []string{
	DateLayoutYMD,
	DateLayoutDMY,
	DateLayoutMDY,
}

// ISOFormats are the ISO-8601 variants accepted once TransactionFormats fail.
var ISOFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	DateLayoutFull,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05Z07:00",
	DateLayoutBasicISO,
	"20060102T150405",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate parses a transaction date, trying TransactionFormats then ISOFormats.
// The result carries only the calendar date, at midnight UTC.
// Returns the parsed date and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, "", fmt.Errorf("empty date")
	}

	for _, layout := range TransactionFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return TruncateToDate(t), layout, nil
		}
	}

	for _, layout := range ISOFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return TruncateToDate(t), layout, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// TruncateToDate drops the clock and zone, keeping the calendar date as written.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims a date string and collapses inner whitespace
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}
