package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/budget-advisor/internal/models"

	"gopkg.in/yaml.v3"
)

// rulesDocument mirrors the ordered-list layout accepted by the rule store.
type rulesDocument struct {
	Rules models.RuleSet `json:"rules" yaml:"rules"`
}

// GenerateRules renders a rule set in precedence order.
// The YAML output can be loaded back as a rules file.
func (g *ReportGenerator) GenerateRules(rules models.RuleSet, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		var b strings.Builder
		for i, rule := range rules {
			fmt.Fprintf(&b, "%2d. %-16s %s\n", i+1, rule.Keyword, rule.Category)
		}
		return []byte(b.String()), nil
	case FormatJSON:
		data, err := json.MarshalIndent(rulesDocument{Rules: rules}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON rules: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(rulesDocument{Rules: rules})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML rules: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteRules renders the rule set and writes it to w.
func (g *ReportGenerator) WriteRules(w io.Writer, rules models.RuleSet, format Format) error {
	data, err := g.GenerateRules(rules, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write rules: %w", err)
	}
	return nil
}
