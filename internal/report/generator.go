package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/budget-advisor/internal/logging"

	"gopkg.in/yaml.v3"
)

// SummaryHeading introduces the monthly lines of the text report
const SummaryHeading = "Monthly summary (month: total, count):"

// ReportGenerator renders reports in text, JSON or YAML.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// GenerateReport renders the report in the requested format.
func (g *ReportGenerator) GenerateReport(report *Report, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		return g.generateTextReport(report), nil
	case FormatJSON:
		return g.generateJSONReport(report)
	case FormatYAML:
		return g.generateYAMLReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteReport renders the report and writes it to w.
func (g *ReportGenerator) WriteReport(w io.Writer, report *Report, format Format) error {
	data, err := g.GenerateReport(report, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	g.logger.Debug("Report written",
		logging.Field{Key: logging.FieldFormat, Value: string(format)},
		logging.Field{Key: logging.FieldCount, Value: len(report.Months)})
	return nil
}

// generateTextReport prints recommendations, a blank line, then one line per month.
// Without recommendations the leading block and blank line are omitted.
func (g *ReportGenerator) generateTextReport(report *Report) []byte {
	var b strings.Builder
	if len(report.Recommendations) > 0 {
		for _, rec := range report.Recommendations {
			b.WriteString(rec)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	b.WriteString(SummaryHeading)
	b.WriteByte('\n')
	for _, month := range report.Months {
		fmt.Fprintf(&b, "%s: %s, %d transactions\n", month.Month, month.Total, month.Count)
		for _, category := range month.Categories {
			fmt.Fprintf(&b, "  %s: %s\n", category.Category, category.Total)
		}
	}
	return []byte(b.String())
}

func (g *ReportGenerator) generateJSONReport(report *Report) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(jsonReport, '\n'), nil
}

func (g *ReportGenerator) generateYAMLReport(report *Report) ([]byte, error) {
	yamlReport, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return yamlReport, nil
}
