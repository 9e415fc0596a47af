package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldConstants(t *testing.T) {
	assert.Equal(t, "file_path", FieldFile)
	assert.Equal(t, "row", FieldRow)
	assert.Equal(t, "count", FieldCount)
	assert.Equal(t, "category", FieldCategory)
	assert.Equal(t, "keyword", FieldKeyword)
	assert.Equal(t, "month", FieldMonth)
	assert.Equal(t, "delimiter", FieldDelimiter)
	assert.Equal(t, "error", FieldError)
}
