package root

import (
	"errors"
	"fmt"
	"io"
)

// UsageError reports that the command was run without an input file.
type UsageError struct{}

func (e *UsageError) Error() string {
	return "missing transactions file"
}

// PrintUsage writes the short usage text
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: budget-advisor transactions.csv")
	fmt.Fprintln(w, "Example CSV headers: "+ExampleHeader)
}

// HandleError prints usage for a UsageError and "Error: <message>" for anything else.
// Failures are reported on w and never change the exit status.
func HandleError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		PrintUsage(w)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
