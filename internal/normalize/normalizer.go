// Package normalize maps raw imported statement rows into canonical
// transactions. Headers differ by source bank, so each logical field is
// resolved through a preference-ordered header list; rows that carry no
// usable date or no content at all are rejected.
package normalize

import (
	"strings"

	"github.com/finsift/finsift/internal/classify"
	"github.com/finsift/finsift/internal/common"
	"github.com/finsift/finsift/internal/model"
	"github.com/finsift/finsift/internal/parse"
)

// Header preference lists per logical field, most specific first.
var (
	dateHeaders        = []string{"Transaction Date", "Date"}
	typeHeaders        = []string{"Transaction Type", "Type"}
	descriptionHeaders = []string{"Transaction Description", "Description"}
	debitHeaders       = []string{"Debit Amount", "Debit"}
	creditHeaders      = []string{"Credit Amount", "Credit"}
	balanceHeaders     = []string{"Balance"}
)

// Normalizer turns raw rows into transactions, assigning ids from the
// session's transaction sequence and categories from the classifier.
type Normalizer struct {
	classifier *classify.Classifier
	ids        *model.Sequence
}

// New creates a normalizer.
func New(classifier *classify.Classifier, ids *model.Sequence) *Normalizer {
	return &Normalizer{classifier: classifier, ids: ids}
}

// Row normalizes one raw row into a Transaction. The second return value is
// false when the row is rejected: no date, nothing but a date, or an
// unparseable date. A transaction id is only consumed on acceptance.
func (n *Normalizer) Row(row model.RawRow, batchID, fileName string) (model.Transaction, bool) {
	dateValue := strings.TrimSpace(row.FirstNonEmpty(dateHeaders...))
	typeValue := strings.TrimSpace(row.FirstNonEmpty(typeHeaders...))
	description := strings.TrimSpace(row.FirstNonEmpty(descriptionHeaders...))
	debitRaw := row.First(debitHeaders...)
	creditRaw := row.First(creditHeaders...)
	balanceRaw := row.First(balanceHeaders...)

	if dateValue == "" || (debitRaw == "" && creditRaw == "" && description == "") {
		return model.Transaction{}, false
	}

	date, err := parse.Date(dateValue)
	if err != nil {
		common.LogDebug("rejecting row with unparseable date", common.Fields{
			"date": dateValue,
			"file": fileName,
		})
		return model.Transaction{}, false
	}

	hasDebit := parse.HasNumericValue(debitRaw)
	hasCredit := parse.HasNumericValue(creditRaw)
	hasBalance := parse.HasNumericValue(balanceRaw)

	var debit, credit float64
	if hasDebit {
		debit = parse.Amount(debitRaw)
	}
	if hasCredit {
		credit = parse.Amount(creditRaw)
	}
	var balance *float64
	if hasBalance {
		value := parse.Amount(balanceRaw)
		balance = &value
	}

	category := n.classifier.Classify(classify.Input{
		Description: description,
		Type:        typeValue,
		Debit:       debit,
		Credit:      credit,
	})

	return model.Transaction{
		ID:          n.ids.Next(),
		FileID:      batchID,
		FileName:    fileName,
		Date:        date,
		Type:        typeValue,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Balance:     balance,
		HasDebit:    hasDebit,
		HasCredit:   hasCredit,
		HasBalance:  hasBalance,
		Category:    category,
	}, true
}
