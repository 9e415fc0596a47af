// Package report renders pipeline results for the command line.
package report

import (
	"fmt"
	"strings"

	"fjacquet/budget-advisor/internal/models"
)

// Format selects the output rendering
type Format string

// Supported output formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name. An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", name)
	}
}

// CategoryEntry is one category subtotal of a month
type CategoryEntry struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

// MonthEntry is the rendered form of a models.MonthlySummary.
// Totals are fixed to two decimal places.
type MonthEntry struct {
	Month      string          `json:"month" yaml:"month"`
	Total      string          `json:"total" yaml:"total"`
	Count      int             `json:"count" yaml:"count"`
	Categories []CategoryEntry `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Report is the document produced by a pipeline run
type Report struct {
	Period          string       `json:"period,omitempty" yaml:"period,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Months          []MonthEntry `json:"months" yaml:"months"`
}

// NewReport builds a Report with months in ascending key order.
// withCategories adds the per-category breakdown to each month.
func NewReport(recommendations []string, summaries models.Summaries, withCategories bool) *Report {
	r := &Report{
		Recommendations: recommendations,
		Months:          make([]MonthEntry, 0, len(summaries)),
	}
	for _, key := range summaries.Keys() {
		summary := summaries[key]
		entry := MonthEntry{
			Month: key.String(),
			Total: models.FormatAmount(summary.Total),
			Count: summary.Count,
		}
		if withCategories {
			for _, category := range summary.Categories() {
				entry.Categories = append(entry.Categories, CategoryEntry{
					Category: category,
					Total:    models.FormatAmount(summary.ByCategory[category]),
				})
			}
		}
		r.Months = append(r.Months, entry)
	}
	return r
}
