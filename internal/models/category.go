package models

// Category values offered to users when entering an expense. The store does
// not constrain the column to this set; any text is accepted.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
)

// SuggestedCategories lists the categories in display order.
var SuggestedCategories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryBills,
	CategoryEntertainment,
}
