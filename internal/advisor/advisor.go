// Package advisor turns monthly summaries into budget recommendations.
package advisor

import (
	"fmt"
	"sort"

	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"

	"github.com/shopspring/decimal"
)

// Recommendation messages
const (
	MsgNoData             = "No data to produce recommendation."
	MsgReduceSpending     = "Consider reducing spending on %s by about $%s per month."
	MsgSpendingReasonable = "Spending looks reasonable this month."
	MsgIncreaseSavings    = "To reach a target savings of $%s, increase monthly savings by $%s."
	MsgTargetMet          = "You are meeting or exceeding your savings target."
)

// Options tunes the overspending rule
type Options struct {
	// OverspendThreshold: a month total strictly below it triggers reduction suggestions.
	OverspendThreshold decimal.Decimal
	// ReductionRate is the share of a category's absolute subtotal suggested as a cut.
	ReductionRate decimal.Decimal
	// TopCategories caps the number of reduction suggestions.
	TopCategories int
}

// DefaultOptions returns a threshold of -500, a 20% reduction rate and the top 3 categories.
func DefaultOptions() Options {
	return Options{
		OverspendThreshold: decimal.NewFromInt(-500),
		ReductionRate:      decimal.RequireFromString("0.2"),
		TopCategories:      3,
	}
}

// Advisor produces recommendations for the most recent month of a Summaries set.
type Advisor struct {
	opts   Options
	logger logging.Logger
}

// NewAdvisor creates an Advisor. A non-positive TopCategories falls back to the default.
func NewAdvisor(opts Options, logger logging.Logger) *Advisor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.TopCategories <= 0 {
		opts.TopCategories = DefaultOptions().TopCategories
	}
	return &Advisor{
		opts:   opts,
		logger: logger,
	}
}

// Options returns the options in effect
func (a *Advisor) Options() Options {
	return a.opts
}

// Recommend returns the ordered recommendation list for the latest dated month,
// or for models.UnknownMonth when no month is dated.
// A targetSavings of zero or less skips the savings suggestion.
func (a *Advisor) Recommend(summaries models.Summaries, targetSavings decimal.Decimal) []string {
	month, ok := summaries.Latest()
	if !ok {
		a.logger.Info("No monthly data available for recommendations")
		return []string{MsgNoData}
	}

	summary := summaries[month]
	a.logger.Debug("Selected target month",
		logging.Field{Key: logging.FieldMonth, Value: month.String()},
		logging.Field{Key: logging.FieldTotal, Value: models.FormatAmount(summary.Total)})

	var suggestions []string
	if summary.Total.LessThan(a.opts.OverspendThreshold) {
		for _, spend := range a.topSpending(summary) {
			cut := spend.amount.Mul(a.opts.ReductionRate)
			suggestions = append(suggestions, fmt.Sprintf(MsgReduceSpending, spend.category, models.FormatAmount(cut)))
		}
	} else {
		suggestions = append(suggestions, MsgSpendingReasonable)
	}

	if targetSavings.IsPositive() {
		suggestions = append(suggestions, savingsSuggestion(summary.Total, targetSavings))
	}

	a.logger.Info("Generated recommendations",
		logging.Field{Key: logging.FieldMonth, Value: month.String()},
		logging.Field{Key: logging.FieldCount, Value: len(suggestions)})
	return suggestions
}

func savingsSuggestion(total, target decimal.Decimal) string {
	current := decimal.Max(total, decimal.Zero)
	need := decimal.Max(target.Sub(current), decimal.Zero)
	if need.IsPositive() {
		return fmt.Sprintf(MsgIncreaseSavings, models.FormatAmount(target), models.FormatAmount(need))
	}
	return MsgTargetMet
}

type categorySpend struct {
	category string
	amount   decimal.Decimal
}

// topSpending ranks categories by absolute subtotal, largest first.
// Equal amounts are ordered by category name, descending.
func (a *Advisor) topSpending(summary *models.MonthlySummary) []categorySpend {
	ranked := make([]categorySpend, 0, len(summary.ByCategory))
	for category, subtotal := range summary.ByCategory {
		ranked = append(ranked, categorySpend{category: category, amount: subtotal.Abs()})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if cmp := ranked[i].amount.Cmp(ranked[j].amount); cmp != 0 {
			return cmp > 0
		}
		return ranked[i].category > ranked[j].category
	})
	if len(ranked) > a.opts.TopCategories {
		ranked = ranked[:a.opts.TopCategories]
	}
	return ranked
}
