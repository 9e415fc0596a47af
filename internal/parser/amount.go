package parser

import (
	"strings"

	"fjacquet/budget-advisor/internal/parsererror"

	"github.com/shopspring/decimal"
)

// ParseAmount converts an amount cell to a decimal. An empty cell is zero.
// When the text is not a plain number it is retried with thousands separators (",") removed.
func ParseAmount(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, nil
	}

	if amount, err := decimal.NewFromString(value); err == nil {
		return amount, nil
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
	if err != nil {
		return decimal.Zero, &parsererror.AmountFormatError{Value: raw, Err: err}
	}
	return amount, nil
}
