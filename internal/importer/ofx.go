package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/finsift/finsift/internal/common"
	"github.com/finsift/finsift/internal/model"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// Opening tags missing their closing bracket in SGML-style OFX files.
	tagFixRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes common formatting issues in real-world OFX exports.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// readOFXRows parses an OFX/QFX statement and maps each transaction into the
// same header→value row shape the CSV path produces, so normalization stays
// format-agnostic. Amounts are split into debit/credit by sign and dates are
// rendered day-first.
func readOFXRows(r io.Reader) ([]model.RawRow, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var rows []model.RawRow
	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		for _, ofxTx := range stmt.BankTranList.Transactions {
			rows = append(rows, ofxRow(ofxTx))
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		for _, ofxTx := range stmt.BankTranList.Transactions {
			rows = append(rows, ofxRow(ofxTx))
		}
	}

	common.LogDebug("converted OFX statements to rows", common.Fields{
		"rows": len(rows),
	})
	return rows, nil
}

func ofxRow(tx ofxgo.Transaction) model.RawRow {
	description := string(tx.Name)
	if description == "" && tx.Payee != nil {
		description = string(tx.Payee.Name)
	}
	if memo := string(tx.Memo); memo != "" && description == "" {
		description = memo
	}

	// ofxTx.TrnAmt is a big.Rat; OFX uses negative amounts for debits.
	amount, _ := tx.TrnAmt.Float64()
	row := model.RawRow{
		"Transaction Date":        tx.DtPosted.Time.Format("02/01/2006"),
		"Transaction Type":        fmt.Sprintf("%v", tx.TrnType),
		"Transaction Description": description,
	}
	if amount < 0 {
		row["Debit Amount"] = fmt.Sprintf("%.2f", -amount)
		row["Credit Amount"] = ""
	} else {
		row["Debit Amount"] = ""
		row["Credit Amount"] = fmt.Sprintf("%.2f", amount)
	}
	return row
}
