package main

import (
	"context"

	"github.com/finsift/finsift/internal/config"
	"github.com/finsift/finsift/internal/memory"
	"github.com/finsift/finsift/internal/session"
	"github.com/finsift/finsift/internal/snapshot"
	"github.com/finsift/finsift/internal/storage"
	"github.com/spf13/viper"
)

func statePath() string {
	if p := viper.GetString("state.path"); p != "" {
		return config.ExpandPath(p)
	}
	return config.DefaultStatePath()
}

func databasePath() string {
	if p := viper.GetString("database.path"); p != "" {
		return config.ExpandPath(p)
	}
	return config.DefaultDatabasePath()
}

// openMemory opens the category-memory store and loads the learned mapping.
// The returned cleanup closes the underlying database.
func openMemory(ctx context.Context) (*memory.Memory, func(), error) {
	store, err := storage.NewSQLiteStore(databasePath())
	if err != nil {
		return nil, nil, err
	}
	mem := memory.Load(ctx, store.Keyed(storage.CategoryMemoryKey))
	return mem, func() { _ = store.Close() }, nil
}

func loadSession(ctx context.Context) (*session.State, error) {
	return snapshot.LoadState(ctx, statePath())
}

func saveSession(state *session.State, mem *memory.Memory) error {
	return snapshot.SaveState(state, mem, statePath())
}
