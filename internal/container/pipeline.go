package container

import (
	"fmt"

	"fjacquet/budget-advisor/internal/aggregator"
	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"
	"fjacquet/budget-advisor/internal/report"
	"fjacquet/budget-advisor/internal/validation"

	"github.com/shopspring/decimal"
)

// Result is the output of the parse, categorize and aggregate stages.
type Result struct {
	Transactions []models.CategorizedTransaction
	Summaries    models.Summaries
	Period       aggregator.DateRange
}

// Process parses filePath, categorizes every transaction and aggregates them by month.
func (c *Container) Process(filePath string) (*Result, error) {
	c.logger.Info("Processing transactions", logging.Field{Key: logging.FieldFile, Value: filePath})

	if err := validation.ValidateInputFile(filePath); err != nil {
		return nil, err
	}

	transactions, err := c.parser.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	categorized := c.categorizer.Categorize(transactions)
	return &Result{
		Transactions: categorized,
		Summaries:    c.aggregator.Aggregate(categorized),
		Period:       c.aggregator.Period(categorized),
	}, nil
}

// Advise runs the whole pipeline and returns the recommendation report.
func (c *Container) Advise(filePath string, targetSavings decimal.Decimal) (*report.Report, error) {
	result, err := c.Process(filePath)
	if err != nil {
		return nil, err
	}
	recommendations := c.advisor.Recommend(result.Summaries, targetSavings)
	return c.BuildReport(result, recommendations, false), nil
}

// BuildReport assembles a report from a pipeline result.
func (c *Container) BuildReport(result *Result, recommendations []string, withCategories bool) *report.Report {
	r := report.NewReport(recommendations, result.Summaries, withCategories)
	r.Period = result.Period.String()
	return r
}
