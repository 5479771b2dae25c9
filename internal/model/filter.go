package model

// FilterState holds the active filter predicate set. Empty fields are
// unbounded; non-empty fields combine with logical AND.
type FilterState struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	SearchTerm string   `json:"searchTerm"`
	Types      []string `json:"types"`
	Categories []string `json:"categories"`
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f.StartDate == "" && f.EndDate == "" && f.SearchTerm == "" &&
		len(f.Types) == 0 && len(f.Categories) == 0
}

// HasType reports whether the type filter admits the given label. An empty
// type set admits everything.
func (f FilterState) HasType(label string) bool {
	return len(f.Types) == 0 || contains(f.Types, label)
}

// HasCategory reports whether the category filter admits the given category.
// An empty category set admits everything.
func (f FilterState) HasCategory(category string) bool {
	return len(f.Categories) == 0 || contains(f.Categories, category)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
