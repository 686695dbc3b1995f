package datagen

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/synthcrm/crmgen/internal/logging"
)

// BatchWriter streams rows into one table through a prepared insert inside
// a transaction, committing every batchSize rows and on Close. Commits
// exist for memory and write throughput only; a failed run leaves partial
// data that callers discard by resetting the schema.
type BatchWriter struct {
	db        *sql.DB
	insertSQL string
	batchSize int

	tx       *sql.Tx
	stmt     *sql.Stmt
	pending  int
	written  int64
	progress *ProgressReporter
}

// NewBatchWriter creates a writer for the given INSERT statement.
func NewBatchWriter(db *sql.DB, insertSQL string, batchSize int) *BatchWriter {
	return &BatchWriter{db: db, insertSQL: insertSQL, batchSize: batchSize}
}

// WithProgress attaches a progress reporter updated at flush boundaries.
func (w *BatchWriter) WithProgress(p *ProgressReporter) *BatchWriter {
	w.progress = p
	return w
}

// Add appends one row, flushing when the batch is full.
func (w *BatchWriter) Add(ctx context.Context, args ...any) error {
	if w.tx == nil {
		tx, err := w.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin batch: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, w.insertSQL)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("prepare insert: %w", err)
		}
		w.tx = tx
		w.stmt = stmt
	}

	if _, err := w.stmt.ExecContext(ctx, args...); err != nil {
		return fmt.Errorf("insert row: %w", err)
	}
	w.pending++

	if w.pending >= w.batchSize {
		return w.Flush()
	}
	return nil
}

// Flush commits the open batch, if any.
func (w *BatchWriter) Flush() error {
	if w.tx == nil {
		return nil
	}
	if err := w.stmt.Close(); err != nil {
		_ = w.tx.Rollback()
		return fmt.Errorf("close insert statement: %w", err)
	}
	if err := w.tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	w.written += int64(w.pending)
	if w.progress != nil {
		w.progress.Update(int64(w.pending))
	}
	w.pending = 0
	w.tx = nil
	w.stmt = nil
	return nil
}

// Close flushes any remaining rows. The writer must not be reused after.
func (w *BatchWriter) Close() error {
	return w.Flush()
}

// Written returns the number of committed rows.
func (w *BatchWriter) Written() int64 {
	return w.written
}

// ProgressReporter tracks and reports data generation progress.
type ProgressReporter struct {
	tableName        string
	totalRows        int64
	currentRow       int64
	progressInterval int64
}

// NewProgressReporter creates a progress reporter. totalRows may be zero
// when the final count is not known up front.
func NewProgressReporter(tableName string, totalRows, interval int64) *ProgressReporter {
	if interval < 1 {
		interval = 1
	}
	return &ProgressReporter{
		tableName:        tableName,
		totalRows:        totalRows,
		progressInterval: interval,
	}
}

// Update updates the progress and logs when an interval boundary is crossed.
func (p *ProgressReporter) Update(rowsInserted int64) {
	oldRow := p.currentRow
	p.currentRow += rowsInserted

	if p.currentRow/p.progressInterval > oldRow/p.progressInterval {
		evt := logging.Info().
			Str("table", p.tableName).
			Int64("rows", p.currentRow)
		if p.totalRows > 0 {
			pct := float64(p.currentRow) / float64(p.totalRows) * 100
			evt = evt.Int64("total", p.totalRows).Float64("percent", pct)
		}
		evt.Msg("Generating data")
	}
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("table", p.tableName).
		Int64("rows", p.currentRow).
		Msg("Table complete")
}
