// Package session owns the working application state: the transaction
// collection, import batches, category set, selection, active filters, and
// the id sequences. Every operation runs synchronously to completion; there
// is no concurrent access.
package session

import (
	"context"

	"github.com/finsift/finsift/internal/common"
	"github.com/finsift/finsift/internal/memory"
	"github.com/finsift/finsift/internal/model"
)

// State is the explicit application state passed to the core functions.
type State struct {
	Selection    map[string]struct{}
	TxIDs        *model.Sequence
	FileIDs      *model.Sequence
	Transactions []model.Transaction
	Files        []model.ImportBatch
	Categories   []string
	Filters      model.FilterState
}

// NewState creates an empty session seeded with the default category
// vocabulary.
func NewState() *State {
	return &State{
		Selection:  make(map[string]struct{}),
		TxIDs:      model.NewSequence("tx-"),
		FileIDs:    model.NewSequence("file-"),
		Categories: model.DefaultCategories(),
	}
}

// RegisterCategory adds a category name to the set if not already present.
// The set never shrinks automatically.
func (s *State) RegisterCategory(name string) {
	if name == "" {
		return
	}
	for _, existing := range s.Categories {
		if existing == name {
			return
		}
	}
	s.Categories = append(s.Categories, name)
}

// HasCategory reports whether the category set contains name.
func (s *State) HasCategory(name string) bool {
	for _, existing := range s.Categories {
		if existing == name {
			return true
		}
	}
	return false
}

// SortedCategories returns the category set sorted alphabetically with
// Uncategorised first.
func (s *State) SortedCategories() []string {
	return model.SortCategories(s.Categories)
}

// AddBatch appends an import batch and its accepted transactions,
// auto-registering any category the classifier produced.
func (s *State) AddBatch(batch model.ImportBatch, transactions []model.Transaction) {
	s.Files = append(s.Files, batch)
	s.Transactions = append(s.Transactions, transactions...)
	for _, tx := range transactions {
		s.RegisterCategory(tx.Category)
	}
}

// RemoveBatch deletes a batch, cascades to its transactions, and prunes
// selection ids that referenced them.
func (s *State) RemoveBatch(batchID string) error {
	found := false
	files := s.Files[:0]
	for _, f := range s.Files {
		if f.ID == batchID {
			found = true
			continue
		}
		files = append(files, f)
	}
	if !found {
		return common.ErrUnknownBatch
	}
	s.Files = files

	transactions := s.Transactions[:0]
	for _, tx := range s.Transactions {
		if tx.FileID == batchID {
			continue
		}
		transactions = append(transactions, tx)
	}
	s.Transactions = transactions

	s.PruneSelection()
	return nil
}

// Batch returns the batch with the given id.
func (s *State) Batch(batchID string) (model.ImportBatch, bool) {
	for _, f := range s.Files {
		if f.ID == batchID {
			return f, true
		}
	}
	return model.ImportBatch{}, false
}

// SetCategory assigns a category to one transaction and feeds the edit back
// into category memory. The category is auto-registered.
func (s *State) SetCategory(ctx context.Context, txID, category string, mem *memory.Memory) error {
	for i := range s.Transactions {
		if s.Transactions[i].ID != txID {
			continue
		}
		s.Transactions[i].Category = category
		s.RegisterCategory(category)
		if mem != nil {
			mem.Remember(ctx, s.Transactions[i].Description, category)
		}
		return nil
	}
	return common.ErrUnknownTransaction
}

// BulkCategorize applies one category to every selected transaction,
// remembering each description.
func (s *State) BulkCategorize(ctx context.Context, category string, mem *memory.Memory) int {
	if category == "" || len(s.Selection) == 0 {
		return 0
	}
	applied := 0
	for i := range s.Transactions {
		if _, ok := s.Selection[s.Transactions[i].ID]; !ok {
			continue
		}
		s.Transactions[i].Category = category
		if mem != nil {
			mem.Remember(ctx, s.Transactions[i].Description, category)
		}
		applied++
	}
	if applied > 0 {
		s.RegisterCategory(category)
	}
	return applied
}

// ToggleSelection flips the checkbox state of one transaction id.
func (s *State) ToggleSelection(txID string) {
	if _, ok := s.Selection[txID]; ok {
		delete(s.Selection, txID)
	} else {
		s.Selection[txID] = struct{}{}
	}
}

// SelectAll marks or unmarks every transaction in the given (usually
// filtered) view.
func (s *State) SelectAll(view []model.Transaction, selected bool) {
	for _, tx := range view {
		if selected {
			s.Selection[tx.ID] = struct{}{}
		} else {
			delete(s.Selection, tx.ID)
		}
	}
}

// ClearSelection empties the selection.
func (s *State) ClearSelection() {
	if len(s.Selection) == 0 {
		return
	}
	s.Selection = make(map[string]struct{})
}

// PruneSelection drops selection ids that no longer reference a live
// transaction. Called after any structural mutation.
func (s *State) PruneSelection() {
	if len(s.Selection) == 0 {
		return
	}
	live := make(map[string]struct{}, len(s.Transactions))
	for _, tx := range s.Transactions {
		live[tx.ID] = struct{}{}
	}
	for id := range s.Selection {
		if _, ok := live[id]; !ok {
			delete(s.Selection, id)
		}
	}
}

// SetFilters replaces the active filter state. Any filter change invalidates
// the selection.
func (s *State) SetFilters(filters model.FilterState) {
	s.ClearSelection()
	s.Filters = filters
}

// ResetFilters clears every active filter.
func (s *State) ResetFilters() {
	s.SetFilters(model.FilterState{})
}

// TypesInUse returns the distinct non-empty transaction type labels in
// first-seen order.
func (s *State) TypesInUse() []string {
	seen := make(map[string]struct{})
	var types []string
	for _, tx := range s.Transactions {
		if tx.Type == "" {
			continue
		}
		if _, ok := seen[tx.Type]; ok {
			continue
		}
		seen[tx.Type] = struct{}{}
		types = append(types, tx.Type)
	}
	return types
}
