package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/ingest"
	"github.com/KenzyTran/stock-import-backend/internal/ledger"
	"github.com/KenzyTran/stock-import-backend/internal/model"
	"github.com/KenzyTran/stock-import-backend/internal/normalize"
	"github.com/KenzyTran/stock-import-backend/internal/repository"
	"github.com/KenzyTran/stock-import-backend/internal/validation"
)

// ImportService orchestrates the import pipeline: read, validate schema,
// normalize, rate, balance, validate records, persist. One invocation
// processes exactly one uploaded batch to completion; no state is shared
// between invocations.
type ImportService struct {
	batchRepo *repository.BatchRepository
	schema    *ingest.SchemaValidator
}

// NewImportService creates a new ImportService with the provided repository dependency.
func NewImportService(batchRepo *repository.BatchRepository) *ImportService {
	return &ImportService{
		batchRepo: batchRepo,
		schema:    ingest.NewSchemaValidator(),
	}
}

// PreviewResult is the full pipeline output for one uploaded file, before
// the caller decides whether to commit.
type PreviewResult struct {
	Transactions []model.BalancedTransaction `json:"transactions"`
	Warnings     []model.Warning             `json:"warnings"`
	// DateWarnings reports rows whose transaction time could not be parsed
	// and therefore sort by raw text instead of true time.
	DateWarnings []string                `json:"dateWarnings"`
	Errors       []model.ValidationError `json:"errors"`
	Valid        bool                    `json:"valid"`
}

// ImportResult is the soft-fail outcome of a commit call. Success is false
// for validation rejections and persistence failures; neither aborts the
// caller.
type ImportResult struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	BatchID string                  `json:"batchId,omitempty"`
	Errors  []model.ValidationError `json:"errors,omitempty"`
}

// Preview runs the pipeline over one uploaded file and returns the balanced,
// validated batch for display. Format, read and schema failures abort with
// an error before any balance computation; record-level violations are
// reported in the result instead.
func (s *ImportService) Preview(path string) (*PreviewResult, error) {
	if err := ingest.ValidateFileFormat(path); err != nil {
		return nil, err
	}

	records, err := ingest.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := s.schema.ValidateColumns(records); err != nil {
		return nil, err
	}

	rated := normalize.RateAll(records)
	balanced := ledger.ComputeBalances(rated)
	valid, validationErrs := validation.ValidateTransactions(balanced)

	dateWarnings := make([]string, 0)
	for i, t := range balanced {
		if t.DateParseFailed {
			dateWarnings = append(dateWarnings, fmt.Sprintf(
				"record %d (%s): transaction time %q is not in DD/MM/YYYY HH:MM:SS format, sorted as plain text",
				i, t.StockCode, t.TransactionTime,
			))
		}
	}

	return &PreviewResult{
		Transactions: balanced,
		Warnings:     balanced[0].Warnings,
		DateWarnings: dateWarnings,
		Errors:       validationErrs,
		Valid:        valid,
	}, nil
}

// Import persists one previewed batch for the given user. The batch is
// re-validated; when invalid and skipErrors is false the import is rejected
// as a soft failure. With skipErrors set the batch is persisted as-is,
// offending records included. Advisory fields (warnings, negative-balance
// flag) are stripped before the write.
//
// Persistence failures are reported in the result rather than returned as
// errors; normalization does not need to be re-run before a retry.
func (s *ImportService) Import(ctx context.Context, userID string, transactions []model.BalancedTransaction, skipErrors bool) ImportResult {
	valid, validationErrs := validation.ValidateTransactions(transactions)
	if !valid && !skipErrors {
		return ImportResult{
			Success: false,
			Message: apperrors.ErrValidationFailed.Error(),
			Errors:  validationErrs,
		}
	}

	stripped := make([]model.BatchTransaction, 0, len(transactions))
	for _, t := range transactions {
		stripped = append(stripped, model.StripAdvisory(t))
	}

	batch := &model.BatchRecord{
		ID:           uuid.New().String(),
		UserID:       userID,
		ImportDate:   time.Now().Format(model.TransactionTimeLayout),
		Transactions: stripped,
	}

	if err := s.batchRepo.InsertBatch(ctx, batch); err != nil {
		return ImportResult{
			Success: false,
			Message: fmt.Sprintf("%v: %v", apperrors.ErrPersistenceFailed, err),
		}
	}

	return ImportResult{
		Success: true,
		Message: fmt.Sprintf("successfully imported %d transactions", len(stripped)),
		BatchID: batch.ID,
	}
}

// ListBatches retrieves batch summaries, optionally filtered by user.
func (s *ImportService) ListBatches(userID string) ([]model.BatchSummary, error) {
	return s.batchRepo.ListBatches(userID)
}

// GetBatch retrieves one persisted batch with its transactions.
func (s *ImportService) GetBatch(batchID string) (model.BatchRecord, error) {
	return s.batchRepo.GetBatch(batchID)
}
