// Package importer reads bank statement exports (CSV, OFX/QFX) and feeds
// their rows through the normalizer, producing one import batch per source
// file. A structural parse failure aborts that file only; rejected rows are
// dropped silently and show up only as a lower accepted count.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/finsift/finsift/internal/common"
	"github.com/finsift/finsift/internal/model"
	"github.com/finsift/finsift/internal/normalize"
)

// Result is one successfully imported file.
type Result struct {
	Batch        model.ImportBatch
	Transactions []model.Transaction
}

// Importer turns statement files into import batches.
type Importer struct {
	normalizer *normalize.Normalizer
	fileIDs    *model.Sequence
}

// New creates an importer drawing batch ids from the session's file
// sequence.
func New(normalizer *normalize.Normalizer, fileIDs *model.Sequence) *Importer {
	return &Importer{normalizer: normalizer, fileIDs: fileIDs}
}

// ImportFile parses one statement file. It returns (nil, nil) when the file
// parsed cleanly but no row was accepted.
func (imp *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	fileName := filepath.Base(path)
	batchID := imp.fileIDs.Next()

	var rows []model.RawRow
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		rows, err = readOFXRows(f)
	case ".csv", ".txt", "":
		rows, err = readCSVRows(f)
	default:
		return nil, common.NewUserError(
			fmt.Sprintf("don't know how to read %s", fileName), common.ErrUnsupportedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	transactions := imp.normalizeRows(ctx, rows, batchID, fileName)
	if len(transactions) == 0 {
		common.LogWarn("no rows accepted from file", common.Fields{
			"file": fileName,
			"rows": len(rows),
		})
		return nil, nil
	}

	common.LogInfo("imported file", common.Fields{
		"file":     fileName,
		"rows":     len(rows),
		"accepted": len(transactions),
	})

	return &Result{
		Batch: model.ImportBatch{
			ID:    batchID,
			Name:  fileName,
			Count: len(transactions),
		},
		Transactions: transactions,
	}, nil
}

func (imp *Importer) normalizeRows(ctx context.Context, rows []model.RawRow, batchID, fileName string) []model.Transaction {
	bar := newProgressBar(len(rows), fileName)

	transactions := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		if tx, ok := imp.normalizer.Row(row, batchID, fileName); ok {
			transactions = append(transactions, tx)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return transactions
}
