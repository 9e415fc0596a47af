package categorizer

import "fjacquet/budget-advisor/internal/models"

// DefaultRules returns the built-in rule set in precedence order.
// Each call returns a new slice.
func DefaultRules() models.RuleSet {
	return models.RuleSet{
		{Keyword: "starbucks", Category: models.CategoryCoffee},
		{Keyword: "coffee", Category: models.CategoryCoffee},
		{Keyword: "uber", Category: models.CategoryTransport},
		{Keyword: "lyft", Category: models.CategoryTransport},
		{Keyword: "walmart", Category: models.CategoryGroceries},
		{Keyword: "supermarket", Category: models.CategoryGroceries},
		{Keyword: "salary", Category: models.CategoryIncome},
		{Keyword: "payroll", Category: models.CategoryIncome},
		{Keyword: "rent", Category: models.CategoryHousing},
		{Keyword: "mortgage", Category: models.CategoryHousing},
		{Keyword: "subscriptions", Category: models.CategorySubscriptions},
		{Keyword: "netflix", Category: models.CategorySubscriptions},
		{Keyword: "amazon", Category: models.CategoryShopping},
		{Keyword: "grocery", Category: models.CategoryGroceries},
	}
}
