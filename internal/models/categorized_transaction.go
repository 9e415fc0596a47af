package models

// CategorizedTransaction adds a category label to a Transaction
type CategorizedTransaction struct {
	Transaction
	Category string
}

// NewCategorizedTransaction copies tx and attaches category to the copy.
// An empty category is replaced by CategoryUncategorized.
func NewCategorizedTransaction(tx Transaction, category string) CategorizedTransaction {
	if category == "" {
		category = CategoryUncategorized
	}
	return CategorizedTransaction{
		Transaction: tx,
		Category:    category,
	}
}

// IsCategorized returns true if the transaction has been categorized (not "Uncategorized")
func (ct CategorizedTransaction) IsCategorized() bool {
	return ct.Category != "" && ct.Category != CategoryUncategorized
}

// CategoryOrDefault returns the category, falling back to CategoryUncategorized when empty
func (ct CategorizedTransaction) CategoryOrDefault() string {
	if ct.Category == "" {
		return CategoryUncategorized
	}
	return ct.Category
}

// WithCategory sets the category and returns a new CategorizedTransaction
func (ct CategorizedTransaction) WithCategory(category string) CategorizedTransaction {
	ct.Category = category
	return ct
}

// CategorizedCSVRow is the flat record written when exporting categorized transactions.
type CategorizedCSVRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
}

// ToCSVRow flattens the transaction for CSV export
func (ct CategorizedTransaction) ToCSVRow() CategorizedCSVRow {
	return CategorizedCSVRow{
		Date:        ct.FormattedDate(),
		Description: ct.Description,
		Amount:      FormatAmount(ct.Amount),
		Category:    ct.CategoryOrDefault(),
	}
}
