package models

// Categories
const (
	CategoryUncategorized = "Uncategorized"
	CategoryCoffee        = "Coffee"
	CategoryTransport     = "Transport"
	CategoryGroceries     = "Groceries"
	CategoryIncome        = "Income"
	CategoryHousing       = "Housing"
	CategorySubscriptions = "Subscriptions"
	CategoryShopping      = "Shopping"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
