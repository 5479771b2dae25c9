// Package model defines the core domain models used throughout the application.
package model

import "time"

// Transaction is the canonical record produced by normalizing one imported
// statement row. Identity is immutable; only Category changes after creation.
type Transaction struct {
	Date        time.Time `json:"date"`
	ID          string    `json:"id"`
	FileID      string    `json:"fileId"`
	FileName    string    `json:"fileName"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Balance     *float64  `json:"balance"`
	Debit       float64   `json:"debit"`
	Credit      float64   `json:"credit"`
	HasDebit    bool      `json:"hasDebit"`
	HasCredit   bool      `json:"hasCredit"`
	HasBalance  bool      `json:"hasBalance"`
}

// ImportBatch tracks one imported source file's accepted transactions.
type ImportBatch struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
