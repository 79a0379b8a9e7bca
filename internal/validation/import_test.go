package validation

import (
	"testing"

	"github.com/KenzyTran/stock-import-backend/internal/api/request"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

func TestValidateCommitImport(t *testing.T) {
	validRequest := func() request.CommitImportRequest {
		return request.CommitImportRequest{
			UserID: "123456",
			Transactions: []model.BalancedTransaction{
				balanced(model.TransactionTypeBuy, 25000, 100, 2500, 0),
			},
		}
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := ValidateCommitImport(validRequest()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects missing userId", func(t *testing.T) {
		req := validRequest()
		req.UserID = "  "

		err := ValidateCommitImport(req)
		if err == nil {
			t.Fatal("Expected an error")
		}

		vErr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}
		if _, found := vErr.Fields["userId"]; !found {
			t.Error("Expected userId field error")
		}
	})

	t.Run("rejects empty transactions", func(t *testing.T) {
		req := validRequest()
		req.Transactions = nil

		if err := ValidateCommitImport(req); err == nil {
			t.Error("Expected an error")
		}
	})

	t.Run("rejects unknown transaction types", func(t *testing.T) {
		req := validRequest()
		req.Transactions[0].TransactionType = "Transfer"

		if err := ValidateCommitImport(req); err == nil {
			t.Error("Expected an error")
		}
	})
}
