// Package aggregate derives summary totals and chart series from a filtered
// transaction view. Pure reductions, no rounding: currency formatting is a
// presentation concern.
package aggregate

import "github.com/finsift/finsift/internal/model"

// Summary holds the totals for one filtered view.
type Summary struct {
	Count       int
	TotalDebit  float64
	TotalCredit float64
	Net         float64
}

// Summarize reduces a transaction view to count, debit sum, credit sum, and
// net (credit minus debit).
func Summarize(transactions []model.Transaction) Summary {
	s := Summary{Count: len(transactions)}
	for _, tx := range transactions {
		s.TotalDebit += tx.Debit
		s.TotalCredit += tx.Credit
	}
	s.Net = s.TotalCredit - s.TotalDebit
	return s
}

// CategoryTotal is one entry of the ordered category→debit mapping.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// CategoryDebitTotals accumulates debit sums per category in first-seen
// order, skipping transactions with a zero debit. The result feeds both the
// bar series and, via PieSlices, the pie series.
func CategoryDebitTotals(transactions []model.Transaction) []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)
	for _, tx := range transactions {
		if tx.Debit == 0 {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{Category: tx.Category})
		}
		totals[i].Amount += tx.Debit
	}
	return totals
}

// PieSlice is one pie-chart slice with its share of the total.
type PieSlice struct {
	Category string
	Amount   float64
	Percent  float64
}

// PieSlices annotates category totals with each slice's percentage of the
// whole. A zero grand total is treated as 1 to avoid division by zero.
func PieSlices(totals []CategoryTotal) []PieSlice {
	var total float64
	for _, t := range totals {
		total += t.Amount
	}
	if total == 0 {
		total = 1
	}

	slices := make([]PieSlice, 0, len(totals))
	for _, t := range totals {
		slices = append(slices, PieSlice{
			Category: t.Category,
			Amount:   t.Amount,
			Percent:  t.Amount / total * 100,
		})
	}
	return slices
}
