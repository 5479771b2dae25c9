package filter

import (
	"testing"
	"time"

	"github.com/finsift/finsift/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id string, date time.Time, mods ...func(*model.Transaction)) model.Transaction {
	t := model.Transaction{ID: id, Date: date, Category: model.CategoryUncategorised}
	for _, mod := range mods {
		mod(&t)
	}
	return t
}

func withType(label string) func(*model.Transaction) {
	return func(t *model.Transaction) { t.Type = label }
}

func withCategory(category string) func(*model.Transaction) {
	return func(t *model.Transaction) { t.Category = category }
}

func withDescription(description string) func(*model.Transaction) {
	return func(t *model.Transaction) { t.Description = description }
}

func ids(transactions []model.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ID)
	}
	return out
}

func TestApplyNoFiltersAdmitsAll(t *testing.T) {
	txns := []model.Transaction{
		tx("a", time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)),
		tx("b", time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local)),
	}

	got := Apply(txns, model.FilterState{})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestApplyStartDateBound(t *testing.T) {
	txns := []model.Transaction{
		tx("old", time.Date(2024, 2, 28, 0, 0, 0, 0, time.Local)),
		tx("edge", time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)),
		tx("new", time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)),
	}

	got := Apply(txns, model.FilterState{StartDate: "2024-03-01"})
	assert.Equal(t, []string{"edge", "new"}, ids(got), "start bound is inclusive")
}

func TestApplyEndDateInclusiveThroughEndOfDay(t *testing.T) {
	// A transaction dated exactly on the end date, at any time of day, passes.
	txns := []model.Transaction{
		tx("midnight", time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)),
		tx("evening", time.Date(2024, 3, 5, 22, 15, 0, 0, time.Local)),
		tx("next-day", time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local)),
	}

	got := Apply(txns, model.FilterState{EndDate: "2024-03-05"})
	assert.Equal(t, []string{"midnight", "evening"}, ids(got))
}

func TestApplySearchCaseInsensitiveSubstring(t *testing.T) {
	txns := []model.Transaction{
		tx("a", time.Now(), withDescription("TESCO STORE 2214")),
		tx("b", time.Now(), withDescription("Netflix.com")),
	}

	got := Apply(txns, model.FilterState{SearchTerm: "tesco"})
	assert.Equal(t, []string{"a"}, ids(got))

	got = Apply(txns, model.FilterState{SearchTerm: "FLIX"})
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestApplyEmptyTypeSetAdmitsAll(t *testing.T) {
	txns := []model.Transaction{
		tx("a", time.Now(), withType("DD")),
		tx("b", time.Now(), withType("DEB")),
		tx("c", time.Now()),
	}

	got := Apply(txns, model.FilterState{Types: nil})
	assert.Len(t, got, 3, "empty set means no restriction, not match nothing")

	got = Apply(txns, model.FilterState{Types: []string{"DD"}})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestApplyCategorySet(t *testing.T) {
	txns := []model.Transaction{
		tx("a", time.Now(), withCategory("Groceries")),
		tx("b", time.Now(), withCategory("Housing")),
	}

	got := Apply(txns, model.FilterState{Categories: []string{"Housing", "Transport"}})
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestApplyPredicatesCombineWithAnd(t *testing.T) {
	txns := []model.Transaction{
		tx("match", time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			withType("DD"), withCategory("Utilities"), withDescription("BRITISH GAS")),
		tx("wrong-type", time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			withType("DEB"), withCategory("Utilities"), withDescription("BRITISH GAS")),
		tx("wrong-date", time.Date(2024, 5, 5, 0, 0, 0, 0, time.Local),
			withType("DD"), withCategory("Utilities"), withDescription("BRITISH GAS")),
	}

	got := Apply(txns, model.FilterState{
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-31",
		Types:      []string{"DD"},
		Categories: []string{"Utilities"},
		SearchTerm: "gas",
	})
	assert.Equal(t, []string{"match"}, ids(got))
}

func TestApplyUnparseableBoundIsUnset(t *testing.T) {
	txns := []model.Transaction{tx("a", time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local))}

	got := Apply(txns, model.FilterState{StartDate: "not-a-date"})
	assert.Len(t, got, 1)
}

func TestSortByDateDesc(t *testing.T) {
	txns := []model.Transaction{
		tx("oldest", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)),
		tx("tie-first", time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)),
		tx("tie-second", time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)),
		tx("newest", time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)),
	}

	SortByDateDesc(txns)
	assert.Equal(t, []string{"newest", "tie-first", "tie-second", "oldest"}, ids(txns))
}

func TestPaydayRange(t *testing.T) {
	start, end := PaydayRange(2024, time.March, 25)
	assert.Equal(t, time.Date(2024, 3, 25, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 4, 24, 0, 0, 0, 0, time.Local), end)
}

func TestPaydayRangeDecemberWrapsYear(t *testing.T) {
	start, end := PaydayRange(2024, time.December, 15)
	require.Equal(t, time.Date(2024, 12, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 1, 14, 0, 0, 0, 0, time.Local), end)
}
