package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthKey identifies a calendar month as YYYY-MM, or UnknownMonth for undated transactions.
type MonthKey string

// UnknownMonth groups transactions without a date
const UnknownMonth MonthKey = "unknown"

// String returns the key text
func (k MonthKey) String() string {
	return string(k)
}

// IsUnknown returns true for the undated bucket
func (k MonthKey) IsUnknown() bool {
	return k == UnknownMonth
}

// MonthlySummary holds the totals of all transactions sharing a MonthKey.
type MonthlySummary struct {
	Total      decimal.Decimal            `json:"total" yaml:"total"`
	Count      int                        `json:"count" yaml:"count"`
	ByCategory map[string]decimal.Decimal `json:"by_category" yaml:"by_category"`
}

// NewMonthlySummary creates an empty summary
func NewMonthlySummary() *MonthlySummary {
	return &MonthlySummary{
		Total:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}
}

// Add accumulates one transaction amount into the summary.
func (s *MonthlySummary) Add(category string, amount decimal.Decimal) {
	if category == "" {
		category = CategoryUncategorized
	}
	s.Total = s.Total.Add(amount)
	s.Count++
	s.ByCategory[category] = s.ByCategory[category].Add(amount)
}

// Categories returns the category labels in ascending order
func (s *MonthlySummary) Categories() []string {
	categories := make([]string, 0, len(s.ByCategory))
	for category := range s.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Summaries maps each observed MonthKey to its summary.
type Summaries map[MonthKey]*MonthlySummary

// Upsert returns the summary for key, creating it on first access.
func (s Summaries) Upsert(key MonthKey) *MonthlySummary {
	summary, exists := s[key]
	if !exists {
		summary = NewMonthlySummary()
		s[key] = summary
	}
	return summary
}

// Keys returns the month keys sorted ascending by text
func (s Summaries) Keys() []MonthKey {
	keys := make([]MonthKey, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Latest returns the lexicographically greatest key other than UnknownMonth.
// When only UnknownMonth is present it is returned. ok is false for empty summaries.
func (s Summaries) Latest() (key MonthKey, ok bool) {
	if len(s) == 0 {
		return "", false
	}
	found := false
	for k := range s {
		if k.IsUnknown() {
			continue
		}
		if !found || k > key {
			key = k
			found = true
		}
	}
	if !found {
		return UnknownMonth, true
	}
	return key, true
}
