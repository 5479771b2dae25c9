package cli

import (
	"fmt"
	"strings"

	"github.com/finsift/finsift/internal/aggregate"
	"github.com/finsift/finsift/internal/model"
)

const (
	dateColumnLayout = "02/01/2006"
	maxBarWidth      = 40
)

// RenderTransactionTable renders a filtered transaction view as a fixed-width
// table. Amounts show as blank when the source row had none, matching how the
// statements themselves read.
func RenderTransactionTable(transactions []model.Transaction) string {
	var b strings.Builder
	header := fmt.Sprintf("%-12s %-8s %-40s %12s %12s %12s %-16s",
		"Date", "Type", "Description", "Debit", "Credit", "Balance", "Category")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for _, tx := range transactions {
		debit := ""
		if tx.HasDebit {
			debit = FormatCurrency(tx.Debit)
		}
		credit := ""
		if tx.HasCredit {
			credit = FormatCurrency(tx.Credit)
		}
		balance := ""
		if tx.HasBalance && tx.Balance != nil {
			balance = FormatCurrency(*tx.Balance)
		}
		b.WriteString(fmt.Sprintf("%-12s %-8s %-40s %12s %12s %12s %-16s\n",
			tx.Date.Format(dateColumnLayout),
			tx.Type,
			truncate(tx.Description, 40),
			DebitStyle.Render(debit),
			CreditStyle.Render(credit),
			balance,
			tx.Category,
		))
	}
	return b.String()
}

// RenderSummary renders the count/debit/credit/net tuple for a view.
func RenderSummary(summary aggregate.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d\n", BoldStyle.Render("Transactions:"), summary.Count))
	b.WriteString(fmt.Sprintf("%s %s\n", BoldStyle.Render("Total out:"), DebitStyle.Render(FormatCurrency(summary.TotalDebit))))
	b.WriteString(fmt.Sprintf("%s %s\n", BoldStyle.Render("Total in:"), CreditStyle.Render(FormatCurrency(summary.TotalCredit))))

	net := FormatSignedCurrency(summary.Net)
	if summary.Net < 0 {
		net = DebitStyle.Render(net)
	} else {
		net = CreditStyle.Render(net)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", BoldStyle.Render("Net:"), net))
	return b.String()
}

// RenderCategoryBars renders spending per category as horizontal bars scaled
// to the largest total.
func RenderCategoryBars(totals []aggregate.CategoryTotal) string {
	if len(totals) == 0 {
		return SubtleStyle.Render("No spending in this view.") + "\n"
	}

	var max float64
	width := 0
	for _, t := range totals {
		if t.Amount > max {
			max = t.Amount
		}
		if len(t.Category) > width {
			width = len(t.Category)
		}
	}

	var b strings.Builder
	for _, t := range totals {
		bar := 0
		if max > 0 {
			bar = int(t.Amount / max * maxBarWidth)
		}
		if bar == 0 && t.Amount > 0 {
			bar = 1
		}
		b.WriteString(fmt.Sprintf("%-*s %s %s\n",
			width, t.Category,
			BarStyle.Render(strings.Repeat("█", bar)),
			FormatCurrency(t.Amount),
		))
	}
	return b.String()
}

// RenderPieLegend renders the share-of-spending breakdown as a legend with
// percentages.
func RenderPieLegend(slices []aggregate.PieSlice) string {
	if len(slices) == 0 {
		return SubtleStyle.Render("No spending in this view.") + "\n"
	}

	width := 0
	for _, s := range slices {
		if len(s.Category) > width {
			width = len(s.Category)
		}
	}

	var b strings.Builder
	for _, s := range slices {
		b.WriteString(fmt.Sprintf("%-*s %6.1f%%  %s\n",
			width, s.Category, s.Percent, FormatCurrency(s.Amount)))
	}
	return b.String()
}

// RenderBatchTable renders the imported-file list.
func RenderBatchTable(batches []model.ImportBatch) string {
	if len(batches) == 0 {
		return SubtleStyle.Render("No files imported.") + "\n"
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-10s %-40s %12s", "ID", "Name", "Transactions")))
	b.WriteString("\n")
	for _, batch := range batches {
		b.WriteString(fmt.Sprintf("%-10s %-40s %12d\n", batch.ID, truncate(batch.Name, 40), batch.Count))
	}
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
