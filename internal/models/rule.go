package models

import "strings"

// Rule maps a lowercase keyword to a category label
type Rule struct {
	Keyword  string `yaml:"keyword" json:"keyword"`
	Category string `yaml:"category" json:"category"`
}

// RuleSet is an ordered list of rules. Earlier rules take precedence.
type RuleSet []Rule

// NewRule creates a rule, lowercasing and trimming the keyword
func NewRule(keyword, category string) Rule {
	return Rule{
		Keyword:  strings.ToLower(strings.TrimSpace(keyword)),
		Category: strings.TrimSpace(category),
	}
}

// Clone returns an independent copy of the rule set
func (rs RuleSet) Clone() RuleSet {
	if rs == nil {
		return nil
	}
	out := make(RuleSet, len(rs))
	copy(out, rs)
	return out
}

// Categories returns the distinct category labels in first-appearance order
func (rs RuleSet) Categories() []string {
	seen := make(map[string]bool, len(rs))
	var categories []string
	for _, rule := range rs {
		if seen[rule.Category] {
			continue
		}
		seen[rule.Category] = true
		categories = append(categories, rule.Category)
	}
	return categories
}

// CategoryConfig represents a category configuration in the YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the category-grouped layout of a rules YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// ToRuleSet flattens the grouped layout: category order first, then keyword order.
func (c CategoriesConfig) ToRuleSet() RuleSet {
	var rules RuleSet
	for _, category := range c.Categories {
		for _, keyword := range category.Keywords {
			rule := NewRule(keyword, category.Name)
			if rule.Keyword == "" {
				continue
			}
			rules = append(rules, rule)
		}
	}
	return rules
}
