package apperrors

import "errors"

// Ingestion errors abort the pipeline before any balance computation.
// They are surfaced verbatim to the caller and are unrecoverable for the
// current import call.
var (
	// ErrUnsupportedFormat indicates the uploaded file is neither .csv nor .xlsx.
	ErrUnsupportedFormat = errors.New("unsupported file format, please use a CSV or XLSX file")

	// ErrUnreadableFile indicates an I/O or parse failure while reading the file.
	ErrUnreadableFile = errors.New("unable to read file")

	// ErrEmptyInput indicates the file contains no data rows.
	ErrEmptyInput = errors.New("file contains no data")

	// ErrMissingColumns indicates one or more required columns are absent.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrMissingTaxColumn indicates the tax column is absent while the file
	// contains Sell transactions.
	ErrMissingTaxColumn = errors.New("missing tax column for Sell transactions")
)

// Soft outcomes. These are reported as result values rather than aborting
// the pipeline; the caller decides whether to override or retry.
var (
	// ErrValidationFailed indicates the batch contains records with semantic
	// violations. The caller may re-submit with the skip-errors override.
	ErrValidationFailed = errors.New("transaction validation failed")

	// ErrPersistenceFailed indicates the batch write failed. Normalization
	// does not need to be re-run; the caller is free to retry the import.
	ErrPersistenceFailed = errors.New("failed to persist batch")
)

// Batch query errors.
var (
	// ErrBatchNotFound indicates that a batch with the given ID does not exist.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrFailedToRetrieveBatches indicates a batch listing query failed.
	ErrFailedToRetrieveBatches = errors.New("failed to retrieve batches")
)
