// Package parser reads transaction CSV data into models.Transaction values.
package parser

import (
	"io"

	"fjacquet/budget-advisor/internal/models"
)

// Parser reads transactions from an already-open stream.
// Implementations never close the reader they are given.
type Parser interface {
	Parse(r io.Reader) ([]models.Transaction, error)
}

// FileParser reads transactions from a file it opens and closes itself.
type FileParser interface {
	ParseFile(filePath string) ([]models.Transaction, error)
}

// FullParser combines both entry points.
type FullParser interface {
	Parser
	FileParser
}
