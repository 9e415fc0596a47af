package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fjacquet/budget-advisor/internal/dateutils"
	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/models"
	"fjacquet/budget-advisor/internal/parsererror"
)

// Column names recognised in the header row, compared case-insensitively.
const (
	ColumnDate        = "date"
	ColumnDescription = "description"
	ColumnAmount      = "amount"
)

// ExpectedHeader documents the required input layout in error messages.
const ExpectedHeader = "date,description,amount"

const parserName = "CSV"

// CSVParser parses comma-separated transaction files with a date,description,amount header.
type CSVParser struct {
	logger    logging.Logger
	delimiter rune
}

// Option configures a CSVParser
type Option func(*CSVParser)

// WithDelimiter sets the field delimiter (default ',')
func WithDelimiter(delim rune) Option {
	return func(p *CSVParser) {
		if delim != 0 {
			p.delimiter = delim
		}
	}
}

// NewCSVParser creates a CSVParser. A nil logger falls back to an info-level logrus adapter.
func NewCSVParser(logger logging.Logger, opts ...Option) *CSVParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	p := &CSVParser{
		logger:    logger,
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile opens filePath, parses it and closes it on every path.
func (p *CSVParser) ParseFile(filePath string) ([]models.Transaction, error) {
	p.logger.Info("Parsing transactions file", logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- path is supplied by the user on the command line
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file", logging.Field{Key: logging.FieldFile, Value: filePath})
		}
	}()

	return p.parse(file, filePath)
}

// Parse reads transactions from r. The reader is left open.
// Parsing stops at the first invalid row and no transactions are returned.
func (p *CSVParser) Parse(r io.Reader) ([]models.Transaction, error) {
	return p.parse(r, "")
}

func (p *CSVParser) parse(r io.Reader, source string) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		p.logger.Warn("Input contains no header row", logging.Field{Key: logging.FieldFile, Value: source})
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: ExpectedHeader,
			Msg:            fmt.Sprintf("cannot read header: %v", err),
		}
	}

	columns := newColumnIndex(header)
	if columns.date < 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:             source,
			ExpectedFormat:       ExpectedHeader,
			ActualContentSnippet: strings.Join(header, string(p.delimiter)),
			Msg:                  "missing required column 'date'",
		}
	}

	transactions := []models.Transaction{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			row := ""
			if errors.As(err, &csvErr) {
				row = strconv.Itoa(csvErr.StartLine)
			}
			return nil, &parsererror.ParseError{Parser: parserName, Field: "row", Value: row, Err: err}
		}

		line, _ := reader.FieldPos(0)
		if isBlankRecord(record) {
			p.logger.Debug("Skipping empty row", logging.Field{Key: logging.FieldRow, Value: line})
			continue
		}

		tx, err := p.convertRecord(record, columns, line)
		if err != nil {
			p.logger.WithError(err).Error("Failed to parse transaction row",
				logging.Field{Key: logging.FieldFile, Value: source},
				logging.Field{Key: logging.FieldRow, Value: line})
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	p.logger.Info("Successfully parsed transactions",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

func (p *CSVParser) convertRecord(record []string, columns columnIndex, line int) (models.Transaction, error) {
	rawDate := columns.cell(record, columns.date)
	date, _, err := dateutils.ParseDate(rawDate)
	if err != nil {
		return models.Transaction{}, &parsererror.DateFormatError{Value: rawDate, Row: line}
	}

	rawAmount := columns.cell(record, columns.amount)
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		var amountErr *parsererror.AmountFormatError
		if errors.As(err, &amountErr) {
			amountErr.Row = line
		}
		return models.Transaction{}, err
	}

	description := strings.TrimSpace(columns.cell(record, columns.description))
	return models.NewTransaction(date, description, amount), nil
}

// columnIndex holds the position of each known column, -1 when absent.
type columnIndex struct {
	date        int
	description int
	amount      int
}

func newColumnIndex(header []string) columnIndex {
	idx := columnIndex{date: -1, description: -1, amount: -1}
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch {
		case normalized == ColumnDate && idx.date < 0:
			idx.date = i
		case normalized == ColumnDescription && idx.description < 0:
			idx.description = i
		case normalized == ColumnAmount && idx.amount < 0:
			idx.amount = i
		}
	}
	return idx
}

func (c columnIndex) cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
