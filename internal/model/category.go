package model

import "sort"

// CategoryUncategorised is the default category. It is always present in the
// category set and never stored in category memory.
const CategoryUncategorised = "Uncategorised"

// CategoryIncome is assigned by the classifier's credit-dominance fallback.
const CategoryIncome = "Income"

// DefaultCategories returns the seed vocabulary for a fresh session.
func DefaultCategories() []string {
	return []string{
		CategoryUncategorised,
		"Housing",
		"Utilities",
		"Groceries",
		"Transport",
		"Entertainment",
		"Subscriptions",
		"Health",
		"Savings",
		CategoryIncome,
	}
}

// SortCategories sorts category names alphabetically with Uncategorised
// forced to the front.
func SortCategories(categories []string) []string {
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)
	for i, name := range sorted {
		if name == CategoryUncategorised && i > 0 {
			copy(sorted[1:i+1], sorted[:i])
			sorted[0] = CategoryUncategorised
			break
		}
	}
	return sorted
}
