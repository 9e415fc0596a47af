package store

import (
	"fjacquet/budget-advisor/internal/models"
)

// MockRuleStore is a mock implementation of RuleStore for testing.
type MockRuleStore struct {
	Rules          models.RuleSet
	LoadRulesError error
}

// LoadRules returns a copy of the mock rules.
func (m *MockRuleStore) LoadRules() (models.RuleSet, error) {
	if m.LoadRulesError != nil {
		return nil, m.LoadRulesError
	}
	if m.Rules == nil {
		return models.RuleSet{}, nil
	}
	return m.Rules.Clone(), nil
}
