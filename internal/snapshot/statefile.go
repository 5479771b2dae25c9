package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/finsift/finsift/internal/memory"
	"github.com/finsift/finsift/internal/session"
)

// LoadState reads the working session from a snapshot file. A missing file
// yields a fresh empty session. The category memory is not touched: the
// backing store stays authoritative outside an explicit snapshot restore.
func LoadState(ctx context.Context, path string) (*session.State, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return session.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	return Import(ctx, data, nil)
}

// SaveState writes the working session back to its snapshot file.
func SaveState(state *session.State, mem *memory.Memory, path string) error {
	data, err := Export(state, mem)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
