package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// BatchRepository provides data access methods for the import_batch and
// batch_transaction tables. Batches are append-only: there is no update or
// delete path, corrections are new imports.
type BatchRepository struct {
	db *sql.DB
}

// NewBatchRepository creates a new BatchRepository with the provided database connection.
func NewBatchRepository(db *sql.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// InsertBatch durably writes one batch and all of its transactions as a
// single atomic unit. Either the whole batch lands or nothing does; there
// are no partial writes.
func (r *BatchRepository) InsertBatch(ctx context.Context, batch *model.BatchRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch insert: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO import_batch (id, user_id, import_date) VALUES (?, ?, ?)`,
		batch.ID, batch.UserID, batch.ImportDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO batch_transaction (
			id, batch_id, position, stock_code, transaction_time, transaction_type,
			volume, price, fee, tax, fee_rate, tax_rate, running_balance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range batch.Transactions {
		_, err = stmt.ExecContext(ctx,
			uuid.New().String(), batch.ID, i,
			t.StockCode, t.TransactionTime, t.TransactionType,
			t.Volume, t.Price, t.Fee, t.Tax, t.FeeRate, t.TaxRate, t.RunningBalance,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

// ListBatches retrieves batch summaries, newest first. An empty userID
// returns batches for every user.
func (r *BatchRepository) ListBatches(userID string) ([]model.BatchSummary, error) {
	query := `
		SELECT b.id, b.user_id, b.import_date, b.created_at, COUNT(t.id)
		FROM import_batch b
		LEFT JOIN batch_transaction t ON t.batch_id = b.id
	`
	var args []any
	if userID != "" {
		query += ` WHERE b.user_id = ?`
		args = append(args, userID)
	}
	query += ` GROUP BY b.id ORDER BY b.created_at DESC, b.id DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query import_batch table: %w", err)
	}
	defer rows.Close()

	summaries := make([]model.BatchSummary, 0)
	for rows.Next() {
		var s model.BatchSummary
		var createdAtStr string

		if err := rows.Scan(&s.ID, &s.UserID, &s.ImportDate, &createdAtStr, &s.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan import_batch results: %w", err)
		}

		s.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import_batch table: %w", err)
	}

	return summaries, nil
}

// GetBatch retrieves one batch with its transactions in stored order.
// Returns apperrors.ErrBatchNotFound when no batch has the given ID.
func (r *BatchRepository) GetBatch(batchID string) (model.BatchRecord, error) {
	var batch model.BatchRecord
	var createdAtStr string

	err := r.db.QueryRow(
		`SELECT id, user_id, import_date, created_at FROM import_batch WHERE id = ?`,
		batchID,
	).Scan(&batch.ID, &batch.UserID, &batch.ImportDate, &createdAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return batch, apperrors.ErrBatchNotFound
	}
	if err != nil {
		return batch, fmt.Errorf("failed to query import_batch table: %w", err)
	}

	batch.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return batch, err
	}

	rows, err := r.db.Query(`
		SELECT stock_code, transaction_time, transaction_type,
		       volume, price, fee, tax, fee_rate, tax_rate, running_balance
		FROM batch_transaction
		WHERE batch_id = ?
		ORDER BY position ASC
	`, batchID)
	if err != nil {
		return batch, fmt.Errorf("failed to query batch_transaction table: %w", err)
	}
	defer rows.Close()

	batch.Transactions = make([]model.BatchTransaction, 0)
	for rows.Next() {
		var t model.BatchTransaction
		err := rows.Scan(
			&t.StockCode, &t.TransactionTime, &t.TransactionType,
			&t.Volume, &t.Price, &t.Fee, &t.Tax, &t.FeeRate, &t.TaxRate, &t.RunningBalance,
		)
		if err != nil {
			return batch, fmt.Errorf("failed to scan batch_transaction results: %w", err)
		}
		batch.Transactions = append(batch.Transactions, t)
	}

	if err = rows.Err(); err != nil {
		return batch, fmt.Errorf("error iterating batch_transaction table: %w", err)
	}

	return batch, nil
}
