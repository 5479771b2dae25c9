package aggregate

import (
	"sort"
	"strings"

	"github.com/finsift/finsift/internal/model"
)

// DefaultSuggestionLimit caps the suggestion list when no limit is given.
const DefaultSuggestionLimit = 12

// Suggestion is one distinct transaction description with its occurrence
// count in the collection.
type Suggestion struct {
	Description string
	Count       int
}

// DescriptionSuggestions ranks distinct descriptions for a search query:
// prefix matches first, then substring matches, then by descending count,
// then lexicographically. An empty query returns the most frequent
// descriptions. Non-matching descriptions are excluded.
func DescriptionSuggestions(transactions []model.Transaction, query string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, tx := range transactions {
		description := strings.TrimSpace(tx.Description)
		if description == "" {
			continue
		}
		if _, ok := counts[description]; !ok {
			order = append(order, description)
		}
		counts[description]++
	}

	normalized := strings.ToLower(strings.TrimSpace(query))

	type ranked struct {
		description string
		count       int
		rank        int
	}
	matches := make([]ranked, 0, len(order))
	for _, description := range order {
		lower := strings.ToLower(description)
		rank := 2
		switch {
		case normalized == "":
			rank = 0
		case strings.HasPrefix(lower, normalized):
			rank = 0
		case strings.Contains(lower, normalized):
			rank = 1
		}
		if normalized != "" && rank == 2 {
			continue
		}
		matches = append(matches, ranked{description: description, count: counts[description], rank: rank})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		if matches[i].count != matches[j].count {
			return matches[i].count > matches[j].count
		}
		return matches[i].description < matches[j].description
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	suggestions := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, Suggestion{Description: m.description, Count: m.count})
	}
	return suggestions
}
