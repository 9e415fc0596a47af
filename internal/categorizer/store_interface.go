package categorizer

import "fjacquet/budget-advisor/internal/models"

// RuleStoreInterface defines where a Categorizer gets its rules from.
// This allows for dependency injection and easier testing.
type RuleStoreInterface interface {
	LoadRules() (models.RuleSet, error)
}
