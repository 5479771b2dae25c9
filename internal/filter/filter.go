// Package filter evaluates the active filter predicate set against the
// transaction collection. All active predicates AND together; empty filter
// fields are unbounded.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/finsift/finsift/internal/model"
)

// DateLayout is the wire format of filter date bounds.
const DateLayout = "2006-01-02"

// Apply returns the transactions admitted by the filter state. Input order
// is preserved; callers wanting the canonical presentation order sort the
// result with SortByDateDesc.
func Apply(transactions []model.Transaction, filters model.FilterState) []model.Transaction {
	start, hasStart := parseBound(filters.StartDate)
	end, hasEnd := parseBound(filters.EndDate)
	if hasEnd {
		// The end bound is inclusive through the whole day.
		end = endOfDay(end)
	}
	search := strings.ToLower(filters.SearchTerm)

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if hasStart && tx.Date.Before(start) {
			continue
		}
		if hasEnd && tx.Date.After(end) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(tx.Description), search) {
			continue
		}
		if !filters.HasType(tx.Type) {
			continue
		}
		if !filters.HasCategory(tx.Category) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// SortByDateDesc sorts transactions newest first, keeping the existing order
// for equal dates.
func SortByDateDesc(transactions []model.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}

// PaydayRange derives the inclusive date bounds of one pay period: from the
// payday in the given month through the day before the next payday.
func PaydayRange(year int, month time.Month, payday int) (start, end time.Time) {
	start = time.Date(year, month, payday, 0, 0, 0, 0, time.Local)
	end = time.Date(year, month+1, payday, 0, 0, 0, 0, time.Local).AddDate(0, 0, -1)
	return start, end
}

// An unparseable bound behaves as unset rather than excluding everything.
func parseBound(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
