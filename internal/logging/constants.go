package logging

// Standardized field names for structured logging.
const (
	FieldFile      = "file_path"
	FieldRow       = "row"
	FieldCount     = "count"
	FieldCategory  = "category"
	FieldKeyword   = "keyword"
	FieldMonth     = "month"
	FieldTotal     = "total"
	FieldRules     = "rules"
	FieldOperation = "operation"
	FieldFormat    = "format"
	FieldDelimiter = "delimiter"
	FieldError     = "error"
)
