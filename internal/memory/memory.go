// Package memory implements the learned description→category store. Entries
// map a normalized description key (trimmed, upper-cased) to the category a
// user confirmed for it, and take precedence over rule-based classification.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finsift/finsift/internal/common"
	"github.com/finsift/finsift/internal/model"
)

// Store is the opaque key-value persistence collaborator. Load returns nil
// data when nothing has been persisted yet.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Entry is one persisted (key, category) pair.
type Entry struct {
	Key      string
	Category string
}

// Memory is the in-process category memory, loaded once at startup and fully
// re-serialized to the backing store on every mutation. A failed write is
// logged and swallowed; the in-memory mapping stays authoritative for the
// session.
type Memory struct {
	store   Store
	entries map[string]string
	order   []string
}

// Load builds a Memory from the backing store. Missing, malformed, or
// non-array persisted data falls back to an empty mapping, never an error.
func Load(ctx context.Context, store Store) *Memory {
	m := &Memory{store: store, entries: make(map[string]string)}

	data, err := store.Load(ctx)
	if err != nil {
		common.LogError(err, "unable to load category memory", common.Fields{})
		return m
	}
	if len(data) == 0 {
		return m
	}

	entries, err := DecodeEntries(data)
	if err != nil {
		common.LogError(err, "corrupt category memory payload, starting empty", common.Fields{})
		return m
	}
	for _, e := range entries {
		m.set(e.Key, e.Category)
	}
	return m
}

// NormalizeKey converts a description into its stable memory lookup key.
func NormalizeKey(description string) string {
	return strings.ToUpper(strings.TrimSpace(description))
}

// Get looks up the remembered category for a description.
func (m *Memory) Get(description string) (string, bool) {
	key := NormalizeKey(description)
	if key == "" {
		return "", false
	}
	category, ok := m.entries[key]
	return category, ok
}

// Remember records a user-confirmed category for a description. An empty
// category or Uncategorised means "forget": any existing entry for the key
// is removed. Every effective mutation persists the whole mapping.
func (m *Memory) Remember(ctx context.Context, description, category string) {
	key := NormalizeKey(description)
	if key == "" {
		return
	}
	if category == "" || category == model.CategoryUncategorised {
		if _, ok := m.entries[key]; ok {
			m.delete(key)
			m.persist(ctx)
		}
		return
	}
	m.set(key, category)
	m.persist(ctx)
}

// Restore replaces the entire mapping from an ordered sequence of entries,
// dropping pairs whose category is empty or Uncategorised, then persists.
func (m *Memory) Restore(ctx context.Context, entries []Entry) {
	m.entries = make(map[string]string)
	m.order = nil
	for _, e := range entries {
		if e.Category == "" || e.Category == model.CategoryUncategorised {
			continue
		}
		m.set(e.Key, e.Category)
	}
	m.persist(ctx)
}

// Entries returns the mapping as an ordered list of pairs, oldest first.
func (m *Memory) Entries() []Entry {
	entries := make([]Entry, 0, len(m.order))
	for _, key := range m.order {
		entries = append(entries, Entry{Key: key, Category: m.entries[key]})
	}
	return entries
}

// Len returns the number of remembered descriptions.
func (m *Memory) Len() int {
	return len(m.entries)
}

func (m *Memory) set(key, category string) {
	if _, ok := m.entries[key]; !ok {
		m.order = append(m.order, key)
	}
	m.entries[key] = category
}

func (m *Memory) delete(key string) {
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *Memory) persist(ctx context.Context) {
	pairs := make([][2]string, 0, len(m.order))
	for _, key := range m.order {
		pairs = append(pairs, [2]string{key, m.entries[key]})
	}
	data, err := json.Marshal(pairs)
	if err != nil {
		common.LogError(err, "unable to serialize category memory", common.Fields{})
		return
	}
	if err := m.store.Save(ctx, data); err != nil {
		common.LogError(err, "unable to save category memory", common.Fields{
			"entries": len(pairs),
		})
	}
}

// DecodeEntries parses a JSON array of [key, category] pairs, silently
// dropping malformed elements (non-arrays, short arrays, non-string members)
// and pairs whose category is empty or Uncategorised. It errors only when
// the payload is not a JSON array at all.
func DecodeEntries(data []byte) ([]Entry, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("category memory payload is not an array: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		pair, ok := item.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		key, keyOK := pair[0].(string)
		category, catOK := pair[1].(string)
		if !keyOK || !catOK {
			continue
		}
		if category == "" || category == model.CategoryUncategorised {
			continue
		}
		entries = append(entries, Entry{Key: key, Category: category})
	}
	return entries, nil
}
