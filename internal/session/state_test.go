package session

import (
	"context"
	"testing"
	"time"

	"github.com/finsift/finsift/internal/memory"
	"github.com/finsift/finsift/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullStore struct{}

func (nullStore) Load(_ context.Context) ([]byte, error) { return nil, nil }
func (nullStore) Save(_ context.Context, _ []byte) error { return nil }

func newTestMemory(t *testing.T) *memory.Memory {
	t.Helper()
	return memory.Load(context.Background(), nullStore{})
}

func testBatch(id string, txIDs ...string) (model.ImportBatch, []model.Transaction) {
	batch := model.ImportBatch{ID: id, Name: id + ".csv", Count: len(txIDs)}
	txns := make([]model.Transaction, 0, len(txIDs))
	for i, txID := range txIDs {
		txns = append(txns, model.Transaction{
			ID:       txID,
			FileID:   id,
			FileName: batch.Name,
			Date:     time.Date(2024, 3, i+1, 0, 0, 0, 0, time.Local),
			Category: model.CategoryUncategorised,
		})
	}
	return batch, txns
}

func TestNewStateSeedsDefaultCategories(t *testing.T) {
	s := NewState()
	assert.True(t, s.HasCategory(model.CategoryUncategorised))
	assert.True(t, s.HasCategory("Groceries"))
}

func TestRegisterCategoryNoDuplicatesNoEmpty(t *testing.T) {
	s := NewState()
	before := len(s.Categories)

	s.RegisterCategory("Groceries")
	s.RegisterCategory("")
	assert.Len(t, s.Categories, before)

	s.RegisterCategory("Pets")
	assert.Len(t, s.Categories, before+1)
}

func TestSortedCategoriesUncategorisedFirst(t *testing.T) {
	s := NewState()
	s.RegisterCategory("Aardvark Club")

	sorted := s.SortedCategories()
	require.NotEmpty(t, sorted)
	assert.Equal(t, model.CategoryUncategorised, sorted[0])
	assert.Contains(t, sorted, "Aardvark Club")
}

func TestAddBatchRegistersTransactionCategories(t *testing.T) {
	s := NewState()
	batch, txns := testBatch("file-1", "tx-1")
	txns[0].Category = "Windsurfing"

	s.AddBatch(batch, txns)
	assert.True(t, s.HasCategory("Windsurfing"))
	assert.Len(t, s.Transactions, 1)
	assert.Len(t, s.Files, 1)
}

func TestRemoveBatchCascades(t *testing.T) {
	s := NewState()
	b1, t1 := testBatch("file-1", "tx-1", "tx-2")
	b2, t2 := testBatch("file-2", "tx-3")
	s.AddBatch(b1, t1)
	s.AddBatch(b2, t2)
	s.ToggleSelection("tx-1")
	s.ToggleSelection("tx-3")

	require.NoError(t, s.RemoveBatch("file-1"))

	assert.Len(t, s.Files, 1)
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "tx-3", s.Transactions[0].ID)

	// Exactly the dangling selection ids are pruned.
	_, gone := s.Selection["tx-1"]
	assert.False(t, gone)
	_, kept := s.Selection["tx-3"]
	assert.True(t, kept)
}

func TestRemoveBatchUnknown(t *testing.T) {
	s := NewState()
	assert.Error(t, s.RemoveBatch("file-99"))
}

func TestSetCategoryFeedsMemory(t *testing.T) {
	s := NewState()
	mem := newTestMemory(t)
	batch, txns := testBatch("file-1", "tx-1")
	txns[0].Description = "TESCO STORE"
	s.AddBatch(batch, txns)

	require.NoError(t, s.SetCategory(context.Background(), "tx-1", "Housing", mem))

	assert.Equal(t, "Housing", s.Transactions[0].Category)
	assert.True(t, s.HasCategory("Housing"))
	category, ok := mem.Get("TESCO STORE")
	require.True(t, ok)
	assert.Equal(t, "Housing", category)
}

func TestSetCategoryUncategorisedForgetsMemory(t *testing.T) {
	s := NewState()
	mem := newTestMemory(t)
	ctx := context.Background()
	batch, txns := testBatch("file-1", "tx-1")
	txns[0].Description = "TESCO STORE"
	s.AddBatch(batch, txns)

	require.NoError(t, s.SetCategory(ctx, "tx-1", "Housing", mem))
	require.NoError(t, s.SetCategory(ctx, "tx-1", model.CategoryUncategorised, mem))

	_, ok := mem.Get("TESCO STORE")
	assert.False(t, ok)
}

func TestSetCategoryUnknownTransaction(t *testing.T) {
	s := NewState()
	assert.Error(t, s.SetCategory(context.Background(), "tx-404", "Housing", nil))
}

func TestBulkCategorize(t *testing.T) {
	s := NewState()
	mem := newTestMemory(t)
	batch, txns := testBatch("file-1", "tx-1", "tx-2", "tx-3")
	txns[0].Description = "SPOTIFY"
	txns[1].Description = "NETFLIX"
	s.AddBatch(batch, txns)
	s.ToggleSelection("tx-1")
	s.ToggleSelection("tx-2")

	applied := s.BulkCategorize(context.Background(), "Subscriptions", mem)

	assert.Equal(t, 2, applied)
	assert.Equal(t, "Subscriptions", s.Transactions[0].Category)
	assert.Equal(t, "Subscriptions", s.Transactions[1].Category)
	assert.Equal(t, model.CategoryUncategorised, s.Transactions[2].Category)

	category, ok := mem.Get("SPOTIFY")
	require.True(t, ok)
	assert.Equal(t, "Subscriptions", category)
}

func TestBulkCategorizeEmptySelection(t *testing.T) {
	s := NewState()
	assert.Zero(t, s.BulkCategorize(context.Background(), "Housing", nil))
}

func TestSelectAllAndClear(t *testing.T) {
	s := NewState()
	batch, txns := testBatch("file-1", "tx-1", "tx-2")
	s.AddBatch(batch, txns)

	s.SelectAll(txns, true)
	assert.Len(t, s.Selection, 2)

	s.SelectAll(txns[:1], false)
	assert.Len(t, s.Selection, 1)

	s.ClearSelection()
	assert.Empty(t, s.Selection)
}

func TestSetFiltersClearsSelection(t *testing.T) {
	s := NewState()
	batch, txns := testBatch("file-1", "tx-1")
	s.AddBatch(batch, txns)
	s.ToggleSelection("tx-1")

	s.SetFilters(model.FilterState{SearchTerm: "tesco"})

	assert.Empty(t, s.Selection)
	assert.Equal(t, "tesco", s.Filters.SearchTerm)
}

func TestTypesInUse(t *testing.T) {
	s := NewState()
	batch, txns := testBatch("file-1", "tx-1", "tx-2", "tx-3", "tx-4")
	txns[0].Type = "DD"
	txns[1].Type = "DEB"
	txns[2].Type = "DD"
	txns[3].Type = ""
	s.AddBatch(batch, txns)

	assert.Equal(t, []string{"DD", "DEB"}, s.TypesInUse())
}
