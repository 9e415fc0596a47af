// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"fjacquet/budget-advisor/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Transaction represents a single dated monetary movement read from a CSV source.
// A negative Amount is an outflow, a positive Amount an inflow.
// A zero Date means the transaction has no date.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// NewTransaction creates a new Transaction instance
func NewTransaction(date time.Time, description string, amount decimal.Decimal) Transaction {
	return Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}
}

// HasDate returns true if the transaction carries a date
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// MonthKey returns the grouping key of the transaction: YYYY-MM, or "unknown" when undated.
func (t Transaction) MonthKey() MonthKey {
	if !t.HasDate() {
		return UnknownMonth
	}
	return MonthKey(fmt.Sprintf("%04d-%02d", t.Date.Year(), int(t.Date.Month())))
}

// FormattedDate returns the date in ISO format, or an empty string when undated.
func (t Transaction) FormattedDate() string {
	if !t.HasDate() {
		return ""
	}
	return dateutils.ToISODate(t.Date)
}

// IsDebit returns true if money left the account
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if money entered the account
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// FormatAmount renders an amount with exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
