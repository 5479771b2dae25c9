// Package classify assigns a spending category to normalized transactions.
// Resolution order: learned category memory first, then the ordered rule
// table, then a credit-dominance fallback to Income, then Uncategorised.
package classify

import "github.com/finsift/finsift/internal/model"

// Input is the transaction-shaped record the classifier evaluates. The
// category has not been assigned yet when classification runs.
type Input struct {
	Description string
	Type        string
	Debit       float64
	Credit      float64
}

// Rule is one static classification entry: a keyword set plus an optional
// gating predicate. Rules are evaluated in list order and the first match
// wins, so the ordering is a deliberate priority.
type Rule struct {
	Predicate func(Input) bool
	Category  string
	Keywords  []string
}

// DefaultRules returns the fixed rule table. Income is checked first because
// its keyword set overlaps common payment descriptions and must only fire
// when the transaction is credit-dominant.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:  model.CategoryIncome,
			Keywords:  []string{"SALARY", "PAYROLL", "PAYCHEQUE", "PAYCHECK", "WAGES", "HMRC", "DIVIDEND", "BONUS"},
			Predicate: func(in Input) bool { return in.Credit > in.Debit },
		},
		{
			Category: "Groceries",
			Keywords: []string{"TESCO", "SAINSBURY", "ASDA", "ALDI", "LIDL", "WAITROSE", "MORRISONS", "ICELAND", "CO-OP"},
		},
		{
			Category: "Transport",
			Keywords: []string{"UBER", "LYFT", "TFL", "TRAINLINE", "NATIONAL RAIL", "STAGECOACH", "AVANTI", "SHELL", "BP", "ESSO"},
		},
		{
			Category: "Entertainment",
			Keywords: []string{"CINEMA", "THEATRE", "BOWLING", "CONCERT", "EVENTBRITE"},
		},
		{
			Category: "Subscriptions",
			Keywords: []string{"SPOTIFY", "NETFLIX", "DISNEY", "APPLE MUSIC", "GOOGLE", "AMAZON PRIME", "MICROSOFT", "ADOBE"},
		},
		{
			Category: "Health",
			Keywords: []string{"BOOT", "PHARMACY", "DENTAL", "OPTICAL", "DOCTOR", "CLINIC"},
		},
		{
			Category: "Utilities",
			Keywords: []string{"BRITISH GAS", "EDF", "EON", "OCTOPUS", "SCOTTISH POWER", "THAMES WATER", "UNITED UTILITIES", "VIRGIN MEDIA", "SKY"},
		},
		{
			Category: "Housing",
			Keywords: []string{"RENT", "MORTGAGE", "LANDLORD", "ESTATE", "COUNCIL TAX"},
		},
		{
			Category: "Savings",
			Keywords: []string{"SAVINGS", "ISA", "INVESTMENT", "VANGUARD", "ETRADE", "ROBINHOOD"},
		},
	}
}
