// Package store loads categorization rule sets from YAML files.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"
	"fjacquet/budget-advisor/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// DefaultRulesFile is looked up in the standard locations when no rules file is configured.
const DefaultRulesFile = "rules.yaml"

// RuleStore reads categorization rules from a YAML file. Rules are never written back.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for rulesFile. An empty name means DefaultRulesFile,
// which is optional: when it cannot be found LoadRules returns an empty rule set.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "budget-advisor", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules reads the configured rules file and returns its rules in file order.
func (s *RuleStore) LoadRules() (models.RuleSet, error) {
	filename := s.RulesFile
	optional := filename == ""
	if optional {
		filename = DefaultRulesFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("No rules file found, using built-in rules",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return models.RuleSet{}, nil
		}
		return nil, fmt.Errorf("error resolving rules file %s: %w", filename, err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		var validationErr *parsererror.ValidationError
		if errors.As(err, &validationErr) {
			validationErr.FilePath = filePath
			return nil, validationErr
		}
		return nil, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}

	s.logger.Info("Loaded categorization rules",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldRules, Value: len(rules)})
	return rules, nil
}

// ParseRules decodes a rules document. Accepted layouts, in order of detection:
//
//	rules:                      # ordered keyword: category mapping
//	  starbucks: Coffee
//
//	rules:                      # list of keyword/category pairs
//	  - {keyword: starbucks, category: Coffee}
//
//	categories:                 # grouped keywords
//	  - name: Coffee
//	    keywords: [starbucks, coffee]
//
//	starbucks: Coffee           # bare ordered mapping
//
// Keywords are lowercased. Document order is precedence order.
func ParseRules(data []byte) (models.RuleSet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &parsererror.ValidationError{Reason: "no rules defined"}
	}

	root := doc.Content[0]
	var (
		rules models.RuleSet
		err   error
	)
	switch root.Kind {
	case yaml.MappingNode:
		if value := mappingValue(root, "rules"); value != nil {
			rules, err = decodeRulesNode(value)
		} else if mappingValue(root, "categories") != nil {
			var grouped models.CategoriesConfig
			if err = root.Decode(&grouped); err == nil {
				rules = grouped.ToRuleSet()
			}
		} else {
			rules, err = decodeRulesNode(root)
		}
	case yaml.SequenceNode:
		rules, err = decodeRulesNode(root)
	default:
		err = fmt.Errorf("unexpected YAML node at line %d", root.Line)
	}
	if err != nil {
		return nil, err
	}

	return validateRules(rules)
}

// decodeRulesNode reads either an ordered keyword->category mapping or a list of rules.
func decodeRulesNode(node *yaml.Node) (models.RuleSet, error) {
	switch node.Kind {
	case yaml.MappingNode:
		rules := make(models.RuleSet, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("rule at line %d must map a keyword to a category name", key.Line)
			}
			rules = append(rules, models.NewRule(key.Value, value.Value))
		}
		return rules, nil
	case yaml.SequenceNode:
		var raw []models.Rule
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		rules := make(models.RuleSet, 0, len(raw))
		for _, r := range raw {
			rules = append(rules, models.NewRule(r.Keyword, r.Category))
		}
		return rules, nil
	default:
		return nil, fmt.Errorf("rules at line %d must be a mapping or a list", node.Line)
	}
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func validateRules(rules models.RuleSet) (models.RuleSet, error) {
	valid := make(models.RuleSet, 0, len(rules))
	for _, rule := range rules {
		if rule.Keyword == "" {
			continue
		}
		if rule.Category == "" {
			return nil, &parsererror.ValidationError{Reason: fmt.Sprintf("keyword %q has no category", rule.Keyword)}
		}
		valid = append(valid, rule)
	}
	if len(valid) == 0 {
		return nil, &parsererror.ValidationError{Reason: "no rules defined"}
	}
	return valid, nil
}
