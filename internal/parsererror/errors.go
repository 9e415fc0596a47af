package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DateFormatError is returned when a date cell matches none of the accepted formats.
// Value holds the raw cell text.
type DateFormatError struct {
	Value string
	Row   int
}

func (e *DateFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("unrecognized date format: %s (row %d)", e.Value, e.Row)
	}
	return fmt.Sprintf("unrecognized date format: %s", e.Value)
}

// AmountFormatError is returned when an amount cell is not a number,
// even after removing thousands separators.
type AmountFormatError struct {
	Value string
	Row   int
	Err   error
}

func (e *AmountFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("could not convert amount to number: '%s' (row %d): %v", e.Value, e.Row, e.Err)
	}
	return fmt.Sprintf("could not convert amount to number: '%s': %v", e.Value, e.Err)
}

func (e *AmountFormatError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input does not conform
// to the expected transaction CSV layout.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	source := e.FilePath
	if source == "" {
		source = "<stream>"
	}
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			source, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		source, e.Msg, e.ExpectedFormat)
}
