// Package categorizer assigns a category to each transaction by ordered keyword matching.
package categorizer

import (
	"fmt"
	"strings"

	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"
)

// Categorizer matches lowercase transaction descriptions against an ordered rule set.
// It holds no mutable state once built.
type Categorizer struct {
	rules  models.RuleSet
	logger logging.Logger
}

// NewCategorizer creates a Categorizer over a private copy of rules.
// A nil or empty rule set selects DefaultRules.
func NewCategorizer(rules models.RuleSet, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	normalized := make(models.RuleSet, 0, len(rules))
	for _, rule := range rules {
		normalized = append(normalized, models.NewRule(rule.Keyword, rule.Category))
	}
	if len(normalized) == 0 {
		normalized = DefaultRules()
	}

	return &Categorizer{
		rules:  normalized,
		logger: logger,
	}
}

// NewCategorizerFromStore loads rules from store and builds a Categorizer.
// When the store yields no rules the defaults are used.
func NewCategorizerFromStore(store RuleStoreInterface, logger logging.Logger) (*Categorizer, error) {
	if store == nil {
		return NewCategorizer(nil, logger), nil
	}
	rules, err := store.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load categorization rules: %w", err)
	}
	return NewCategorizer(rules, logger), nil
}

// Rules returns a copy of the active rule set in precedence order.
func (c *Categorizer) Rules() models.RuleSet {
	return c.rules.Clone()
}

// Match returns the first rule whose keyword occurs in the lowercased description.
func (c *Categorizer) Match(description string) (models.Rule, bool) {
	text := strings.ToLower(description)
	for _, rule := range c.rules {
		if rule.Keyword == "" {
			continue
		}
		if strings.Contains(text, rule.Keyword) {
			return rule, true
		}
	}
	return models.Rule{}, false
}

// CategoryFor returns the category for a description, or CategoryUncategorized.
func (c *Categorizer) CategoryFor(description string) string {
	if rule, found := c.Match(description); found {
		return rule.Category
	}
	return models.CategoryUncategorized
}

// Categorize returns a categorized copy of every transaction, preserving order.
// The input slice is not modified.
func (c *Categorizer) Categorize(transactions []models.Transaction) []models.CategorizedTransaction {
	result := make([]models.CategorizedTransaction, 0, len(transactions))
	uncategorized := 0

	for _, tx := range transactions {
		category := models.CategoryUncategorized
		if rule, found := c.Match(tx.Description); found {
			category = rule.Category
			c.logger.Debug("Transaction categorized using keyword matching",
				logging.Field{Key: logging.FieldKeyword, Value: rule.Keyword},
				logging.Field{Key: logging.FieldCategory, Value: rule.Category})
		} else {
			uncategorized++
		}
		result = append(result, models.NewCategorizedTransaction(tx, category))
	}

	c.logger.Info("Categorized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(result)},
		logging.Field{Key: "uncategorized", Value: uncategorized})
	return result
}
