package validation

import (
	"strings"

	"github.com/KenzyTran/stock-import-backend/internal/api/request"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// ValidTransactionType contains the two admitted transaction type values.
var ValidTransactionType = map[string]bool{
	model.TransactionTypeBuy: true, model.TransactionTypeSell: true,
}

// ValidateCommitImport validates a commit request before the import pipeline
// re-validates record semantics.
//
// Required fields:
//   - userId: must be non-empty (trusted as-is, no authentication)
//   - transactions: must be non-empty
//   - every transaction type: must be Buy or Sell
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCommitImport(req request.CommitImportRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.UserID) == "" {
		errors["userId"] = "userId is required"
	}

	if len(req.Transactions) == 0 {
		errors["transactions"] = "transactions must not be empty"
	}

	for _, t := range req.Transactions {
		if !ValidTransactionType[t.TransactionType] {
			errors["transactionType"] = "invalid type: " + t.TransactionType
			break
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
