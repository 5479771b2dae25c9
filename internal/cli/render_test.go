package cli

import (
	"testing"
	"time"

	"github.com/finsift/finsift/internal/aggregate"
	"github.com/finsift/finsift/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderTransactionTable(t *testing.T) {
	balance := 1200.0
	out := RenderTransactionTable([]model.Transaction{
		{
			ID:          "tx-1",
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			Type:        "DEB",
			Description: "TESCO STORE 2214",
			Debit:       23.10, HasDebit: true,
			Balance: &balance, HasBalance: true,
			Category: "Groceries",
		},
		{
			ID:          "tx-2",
			Date:        time.Date(2024, 3, 7, 0, 0, 0, 0, time.Local),
			Type:        "FPI",
			Description: "ACME SALARY",
			Credit:      1800, HasCredit: true,
			Category: "Income",
		},
	})

	assert.Contains(t, out, "05/03/2024")
	assert.Contains(t, out, "TESCO STORE 2214")
	assert.Contains(t, out, "£23.10")
	assert.Contains(t, out, "£1,200.00")
	assert.Contains(t, out, "£1,800.00")
	assert.Contains(t, out, "Groceries")
}

func TestRenderTransactionTableBlankAbsentAmounts(t *testing.T) {
	out := RenderTransactionTable([]model.Transaction{{
		ID:          "tx-1",
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
		Description: "MYSTERY ROW",
		Category:    model.CategoryUncategorised,
	}})

	// No presence flags set, so no currency rendering at all.
	assert.NotContains(t, out, "£")
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(aggregate.Summary{
		Count:       3,
		TotalDebit:  112.60,
		TotalCredit: 1800,
		Net:         1687.40,
	})

	assert.Contains(t, out, "3")
	assert.Contains(t, out, "£112.60")
	assert.Contains(t, out, "£1,800.00")
	assert.Contains(t, out, "+£1,687.40")
}

func TestRenderCategoryBars(t *testing.T) {
	out := RenderCategoryBars([]aggregate.CategoryTotal{
		{Category: "Groceries", Amount: 100},
		{Category: "Transport", Amount: 25},
	})

	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "£100.00")
	assert.Contains(t, out, "█")

	empty := RenderCategoryBars(nil)
	assert.Contains(t, empty, "No spending")
}

func TestRenderPieLegend(t *testing.T) {
	out := RenderPieLegend(aggregate.PieSlices([]aggregate.CategoryTotal{
		{Category: "Groceries", Amount: 75},
		{Category: "Transport", Amount: 25},
	}))

	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "£75.00")
}

func TestRenderBatchTable(t *testing.T) {
	out := RenderBatchTable([]model.ImportBatch{
		{ID: "file-1", Name: "march.csv", Count: 42},
	})

	assert.Contains(t, out, "file-1")
	assert.Contains(t, out, "march.csv")
	assert.Contains(t, out, "42")

	empty := RenderBatchTable(nil)
	assert.Contains(t, empty, "No files imported")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "truncated…", truncate("truncated here", 10))
}
