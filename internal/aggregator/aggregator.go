// Package aggregator groups categorized transactions into monthly summaries.
package aggregator

import (
	"time"

	"fjacquet/budget-advisor/internal/dateutils"
	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return dateutils.ToISODate(dr.Start) + "_" + dateutils.ToISODate(dr.End)
}

// Extend widens the range to include t. Zero times are ignored.
func (dr DateRange) Extend(t time.Time) DateRange {
	if t.IsZero() {
		return dr
	}
	if dr.Start.IsZero() || t.Before(dr.Start) {
		dr.Start = t
	}
	if dr.End.IsZero() || t.After(dr.End) {
		dr.End = t
	}
	return dr
}

// MonthlyAggregator builds per-month totals from categorized transactions
type MonthlyAggregator struct {
	logger logging.Logger
}

// NewMonthlyAggregator creates a new MonthlyAggregator instance
func NewMonthlyAggregator(logger logging.Logger) *MonthlyAggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &MonthlyAggregator{
		logger: logger,
	}
}

// Aggregate groups transactions by month in a single pass.
// Undated transactions go to models.UnknownMonth. The result has one entry per distinct key.
func (a *MonthlyAggregator) Aggregate(transactions []models.CategorizedTransaction) models.Summaries {
	summaries := make(models.Summaries)
	for _, tx := range transactions {
		summaries.Upsert(tx.MonthKey()).Add(tx.CategoryOrDefault(), tx.Amount)
	}

	for _, key := range summaries.Keys() {
		a.logger.Debug("Aggregated month",
			logging.Field{Key: logging.FieldMonth, Value: key.String()},
			logging.Field{Key: logging.FieldTotal, Value: models.FormatAmount(summaries[key].Total)},
			logging.Field{Key: logging.FieldCount, Value: summaries[key].Count})
	}
	a.logger.Info("Aggregated transactions by month",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: "months", Value: len(summaries)})
	return summaries
}

// Period returns the range spanned by the dated transactions.
// The range is zero when no transaction carries a date.
func (a *MonthlyAggregator) Period(transactions []models.CategorizedTransaction) DateRange {
	var period DateRange
	for _, tx := range transactions {
		period = period.Extend(tx.Date)
	}
	return period
}
