// Package snapshot serializes the full working state to and from the
// version-1 JSON interchange document. The same document doubles as the
// durable session file, so export/import and session load/save share one
// codec.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finsift/finsift/internal/common"
	"github.com/finsift/finsift/internal/memory"
	"github.com/finsift/finsift/internal/model"
	"github.com/finsift/finsift/internal/session"
)

// Version is the snapshot document format version this codec reads and
// writes.
const Version = 1

// Document is the version-1 snapshot shape. Any compatible implementation
// must read and write exactly this structure.
type Document struct {
	Version        int                 `json:"version"`
	GeneratedAt    string              `json:"generatedAt"`
	CategoryMemory [][2]string         `json:"categoryMemory"`
	Categories     []string            `json:"categories"`
	Files          []model.ImportBatch `json:"files"`
	Filters        model.FilterState   `json:"filters"`
	Transactions   []transactionDoc    `json:"transactions"`
}

type transactionDoc struct {
	ID          string   `json:"id"`
	FileID      string   `json:"fileId"`
	FileName    string   `json:"fileName"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Debit       float64  `json:"debit"`
	Credit      float64  `json:"credit"`
	Balance     *float64 `json:"balance"`
	HasDebit    bool     `json:"hasDebit"`
	HasCredit   bool     `json:"hasCredit"`
	HasBalance  bool     `json:"hasBalance"`
	Category    string   `json:"category"`
}

// Export serializes the working state, including the category-memory table,
// as an indented version-1 JSON document. A nil memory exports an empty
// table.
func Export(state *session.State, mem *memory.Memory) ([]byte, error) {
	doc := Document{
		Version:     Version,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Categories:  state.Categories,
		Files:       state.Files,
		Filters:     state.Filters,
	}

	doc.CategoryMemory = make([][2]string, 0)
	if mem != nil {
		for _, e := range mem.Entries() {
			doc.CategoryMemory = append(doc.CategoryMemory, [2]string{e.Key, e.Category})
		}
	}

	doc.Transactions = make([]transactionDoc, 0, len(state.Transactions))
	for _, tx := range state.Transactions {
		doc.Transactions = append(doc.Transactions, transactionDoc{
			ID:          tx.ID,
			FileID:      tx.FileID,
			FileName:    tx.FileName,
			Date:        tx.Date.Format(time.RFC3339),
			Type:        tx.Type,
			Description: tx.Description,
			Debit:       tx.Debit,
			Credit:      tx.Credit,
			Balance:     tx.Balance,
			HasDebit:    tx.HasDebit,
			HasCredit:   tx.HasCredit,
			HasBalance:  tx.HasBalance,
			Category:    tx.Category,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// looseDocument decodes the untrusted side of a snapshot. Every field is a
// raw message so one malformed section degrades that section only.
type looseDocument struct {
	CategoryMemory json.RawMessage `json:"categoryMemory"`
	Categories     json.RawMessage `json:"categories"`
	Files          json.RawMessage `json:"files"`
	Filters        json.RawMessage `json:"filters"`
	Transactions   json.RawMessage `json:"transactions"`
}

// Import rebuilds a working state from a snapshot document.
//
// When mem is non-nil the category-memory table in the document replaces the
// current mapping (with the usual drop rules) and is persisted; pass nil
// when loading a session file so the backing store stays authoritative.
//
// A document that is not a JSON object fails outright; inside a
// well-shaped document each malformed section or entry is skipped with the
// rest applied.
func Import(ctx context.Context, data []byte, mem *memory.Memory) (*session.State, error) {
	var doc looseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidSnapshot, err)
	}

	if mem != nil && len(doc.CategoryMemory) > 0 {
		if entries, err := memory.DecodeEntries(doc.CategoryMemory); err == nil {
			mem.Restore(ctx, entries)
		} else {
			common.LogWarn("snapshot category memory is malformed, keeping current mapping", common.Fields{
				"error": err.Error(),
			})
		}
	}

	state := session.NewState()
	state.Transactions = importTransactions(doc.Transactions)

	// Category set: defaults ∪ persisted list ∪ categories in actual use.
	var listed []string
	if len(doc.Categories) > 0 {
		if err := json.Unmarshal(doc.Categories, &listed); err != nil {
			listed = nil
		}
	}
	for _, name := range listed {
		state.RegisterCategory(name)
	}
	for _, tx := range state.Transactions {
		state.RegisterCategory(tx.Category)
	}

	state.Files = reconcileBatches(doc.Files, state.Transactions)

	// Reseed the id sequences so future ids never collide with restored ones.
	for _, tx := range state.Transactions {
		state.TxIDs.Observe(tx.ID)
	}
	for _, f := range state.Files {
		state.FileIDs.Observe(f.ID)
	}

	state.Filters = importFilters(doc.Filters, state)
	return state, nil
}

func importTransactions(raw json.RawMessage) []model.Transaction {
	var entries []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return nil
	}

	transactions := make([]model.Transaction, 0, len(entries))
	dropped := 0
	for _, entry := range entries {
		tx, ok := importTransaction(entry)
		if !ok {
			dropped++
			continue
		}
		transactions = append(transactions, tx)
	}
	if dropped > 0 {
		common.LogWarn("dropped malformed snapshot transactions", common.Fields{
			"dropped":  dropped,
			"restored": len(transactions),
		})
	}
	return transactions
}

func importTransaction(raw json.RawMessage) (model.Transaction, bool) {
	var doc transactionDoc
	hasFlags := struct {
		HasDebit   *bool `json:"hasDebit"`
		HasCredit  *bool `json:"hasCredit"`
		HasBalance *bool `json:"hasBalance"`
	}{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Transaction{}, false
	}
	// Decoded a second time to tell "flag absent" from "flag false" in
	// documents written before presence flags existed.
	_ = json.Unmarshal(raw, &hasFlags)

	if doc.ID == "" || doc.FileID == "" || doc.Date == "" {
		return model.Transaction{}, false
	}
	date, err := parseTimestamp(doc.Date)
	if err != nil {
		return model.Transaction{}, false
	}

	fileName := doc.FileName
	if fileName == "" {
		fileName = "Imported snapshot"
	}
	category := doc.Category
	if category == "" {
		category = model.CategoryUncategorised
	}

	tx := model.Transaction{
		ID:          doc.ID,
		FileID:      doc.FileID,
		FileName:    fileName,
		Date:        date,
		Type:        doc.Type,
		Description: doc.Description,
		Debit:       doc.Debit,
		Credit:      doc.Credit,
		Balance:     doc.Balance,
		Category:    category,
	}
	tx.HasDebit = flagOrDefault(hasFlags.HasDebit, tx.Debit != 0)
	tx.HasCredit = flagOrDefault(hasFlags.HasCredit, tx.Credit != 0)
	tx.HasBalance = flagOrDefault(hasFlags.HasBalance, tx.Balance != nil)
	return tx, true
}

func flagOrDefault(flag *bool, fallback bool) bool {
	if flag != nil {
		return *flag
	}
	return fallback
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

// reconcileBatches rebuilds batch metadata from the declared list and the
// transactions actually referencing each batch. Counts are recomputed, not
// trusted; batches no transaction references survive with count zero only
// if declared.
func reconcileBatches(raw json.RawMessage, transactions []model.Transaction) []model.ImportBatch {
	var declared []model.ImportBatch
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &declared); err != nil {
			declared = nil
		}
	}

	index := make(map[string]int)
	batches := make([]model.ImportBatch, 0, len(declared))
	for _, f := range declared {
		if f.ID == "" {
			continue
		}
		if _, ok := index[f.ID]; ok {
			continue
		}
		index[f.ID] = len(batches)
		batches = append(batches, model.ImportBatch{ID: f.ID, Name: f.Name})
	}

	for _, tx := range transactions {
		i, ok := index[tx.FileID]
		if !ok {
			i = len(batches)
			index[tx.FileID] = i
			batches = append(batches, model.ImportBatch{ID: tx.FileID})
		}
		if tx.FileName != "" {
			batches[i].Name = tx.FileName
		}
		batches[i].Count++
	}
	return batches
}

// importFilters restores the filter state, silently dropping type and
// category values no longer present in the restored data.
func importFilters(raw json.RawMessage, state *session.State) model.FilterState {
	var doc model.FilterState
	if len(raw) == 0 || json.Unmarshal(raw, &doc) != nil {
		return model.FilterState{}
	}

	restored := model.FilterState{
		StartDate:  doc.StartDate,
		EndDate:    doc.EndDate,
		SearchTerm: doc.SearchTerm,
	}

	availableTypes := make(map[string]struct{})
	for _, tx := range state.Transactions {
		if tx.Type != "" {
			availableTypes[tx.Type] = struct{}{}
		}
	}
	for _, label := range doc.Types {
		if _, ok := availableTypes[label]; ok {
			restored.Types = append(restored.Types, label)
		}
	}
	for _, category := range doc.Categories {
		if state.HasCategory(category) {
			restored.Categories = append(restored.Categories, category)
		}
	}
	return restored
}
