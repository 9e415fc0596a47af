package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteCategorizedCSV writes a date,description,amount,category header followed by one row
// per transaction, in input order.
func (g *ReportGenerator) WriteCategorizedCSV(w io.Writer, transactions []models.CategorizedTransaction, delimiter rune) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	if delimiter == 0 {
		delimiter = ','
	}

	rows := make([]models.CategorizedCSVRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, tx.ToCSVRow())
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	g.logger.Info("Wrote categorized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})
	return nil
}

// WriteCategorizedCSVFile creates csvFile (and its directory) and writes the transactions to it.
func (g *ReportGenerator) WriteCategorizedCSVFile(csvFile string, transactions []models.CategorizedTransaction, delimiter rune) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile) // #nosec G304 -- output path chosen by the user
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close file", logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	return g.WriteCategorizedCSV(file, transactions, delimiter)
}
