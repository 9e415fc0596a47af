package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleSummaries() models.Summaries {
	summaries := make(models.Summaries)
	summaries.Upsert("2025-02").Add("Income", decimal.RequireFromString("100"))
	jan := summaries.Upsert("2025-01")
	jan.Add("Coffee", decimal.RequireFromString("-3.5"))
	jan.Add("Income", decimal.RequireFromString("2000"))
	summaries.Upsert(models.UnknownMonth).Add("", decimal.RequireFromString("-1"))
	return summaries
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport([]string{"a"}, sampleSummaries(), true)

	require.Len(t, r.Months, 3)
	assert.Equal(t, "2025-01", r.Months[0].Month)
	assert.Equal(t, "1996.50", r.Months[0].Total)
	assert.Equal(t, 2, r.Months[0].Count)
	assert.Equal(t, []CategoryEntry{
		{Category: "Coffee", Total: "-3.50"},
		{Category: "Income", Total: "2000.00"},
	}, r.Months[0].Categories)
	assert.Equal(t, "2025-02", r.Months[1].Month)
	assert.Equal(t, "unknown", r.Months[2].Month)
	assert.Equal(t, "Uncategorized", r.Months[2].Categories[0].Category)

	plain := NewReport(nil, sampleSummaries(), false)
	assert.Nil(t, plain.Months[0].Categories)
}

func TestReportGenerator_GenerateReport_Text(t *testing.T) {
	g := NewReportGenerator(logging.NewMockLogger())
	recs := []string{
		"Spending looks reasonable this month.",
		"To reach a target savings of $2000.00, increase monthly savings by $3.50.",
	}
	summaries := make(models.Summaries)
	jan := summaries.Upsert("2025-01")
	jan.Add("Coffee", decimal.RequireFromString("-3.50"))
	jan.Add("Income", decimal.RequireFromString("2000"))

	out, err := g.GenerateReport(NewReport(recs, summaries, false), FormatText)
	require.NoError(t, err)

	expected := "Spending looks reasonable this month.\n" +
		"To reach a target savings of $2000.00, increase monthly savings by $3.50.\n" +
		"\n" +
		"Monthly summary (month: total, count):\n" +
		"2025-01: 1996.50, 2 transactions\n"
	assert.Equal(t, expected, string(out))
}

func TestReportGenerator_GenerateReport_TextWithCategories(t *testing.T) {
	g := NewReportGenerator(logging.NewMockLogger())
	out, err := g.GenerateReport(NewReport(nil, sampleSummaries(), true), FormatText)
	require.NoError(t, err)

	expected := "Monthly summary (month: total, count):\n" +
		"2025-01: 1996.50, 2 transactions\n" +
		"  Coffee: -3.50\n" +
		"  Income: 2000.00\n" +
		"2025-02: 100.00, 1 transactions\n" +
		"  Income: 100.00\n" +
		"unknown: -1.00, 1 transactions\n" +
		"  Uncategorized: -1.00\n"
	assert.Equal(t, expected, string(out))
}

func TestReportGenerator_GenerateReport_JSON(t *testing.T) {
	g := NewReportGenerator(logging.NewMockLogger())
	r := NewReport([]string{"Spending looks reasonable this month."}, sampleSummaries(), false)
	r.Period = "2025-01-01_2025-02-01"

	out, err := g.GenerateReport(r, FormatJSON)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, *r, decoded)
	assert.Contains(t, string(out), `"total": "1996.50"`)
}

func TestReportGenerator_GenerateReport_YAML(t *testing.T) {
	g := NewReportGenerator(logging.NewMockLogger())
	r := NewReport([]string{"x"}, sampleSummaries(), true)

	out, err := g.GenerateReport(r, FormatYAML)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, *r, decoded)
}

func TestReportGenerator_GenerateReport_Unsupported(t *testing.T) {
	_, err := NewReportGenerator(nil).GenerateReport(&Report{}, Format("xml"))
	assert.EqualError(t, err, "unsupported report format: xml")
}

func TestReportGenerator_WriteReport(t *testing.T) {
	var b strings.Builder
	err := NewReportGenerator(logging.NewMockLogger()).WriteReport(&b, NewReport([]string{"No data to produce recommendation."}, nil, false), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "No data to produce recommendation.\n\nMonthly summary (month: total, count):\n", b.String())
}

func categorizedFixture() []models.CategorizedTransaction {
	return []models.CategorizedTransaction{
		models.NewCategorizedTransaction(
			models.NewTransaction(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "Coffee Shop", decimal.RequireFromString("-3.5")),
			"Coffee"),
		models.NewCategorizedTransaction(
			models.NewTransaction(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), "Rent, March", decimal.RequireFromString("-1200")),
			"Housing"),
		models.NewCategorizedTransaction(
			models.NewTransaction(time.Time{}, "Mystery", decimal.RequireFromString("12.345")),
			""),
	}
}

func TestReportGenerator_WriteCategorizedCSV(t *testing.T) {
	g := NewReportGenerator(logging.NewMockLogger())
	var b strings.Builder
	require.NoError(t, g.WriteCategorizedCSV(&b, categorizedFixture(), ','))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "date,description,amount,category", lines[0])
	assert.Equal(t, "2025-01-05,Coffee Shop,-3.50,Coffee", lines[1])
	assert.Equal(t, `2025-01-06,"Rent, March",-1200.00,Housing`, lines[2])
	assert.Equal(t, ",Mystery,12.35,Uncategorized", lines[3])

	var rows []models.CategorizedCSVRow
	require.NoError(t, gocsv.UnmarshalString(b.String(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Rent, March", rows[1].Description)
}

func TestReportGenerator_WriteCategorizedCSV_Semicolon(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewReportGenerator(logging.NewMockLogger()).WriteCategorizedCSV(&b, categorizedFixture()[:1], ';'))
	assert.Equal(t, "date;description;amount;category\n2025-01-05;Coffee Shop;-3.50;Coffee\n", b.String())
}

func TestReportGenerator_WriteCategorizedCSV_Nil(t *testing.T) {
	var b strings.Builder
	assert.Error(t, NewReportGenerator(logging.NewMockLogger()).WriteCategorizedCSV(&b, nil, ','))
}

func TestReportGenerator_WriteCategorizedCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "categorized.csv")
	require.NoError(t, NewReportGenerator(logging.NewMockLogger()).WriteCategorizedCSVFile(path, categorizedFixture(), ','))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "date,description,amount,category\n"))
}
