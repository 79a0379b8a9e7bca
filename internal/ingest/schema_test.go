package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

func record(txType string) model.RawRecord {
	return model.RawRecord{
		model.ColumnStockCode:       model.TextValue("AAA"),
		model.ColumnTransactionTime: model.TextValue("01/02/2023 10:30:45"),
		model.ColumnTransactionType: model.TextValue(txType),
		model.ColumnPrice:           model.TextValue("25000"),
		model.ColumnVolume:          model.TextValue("100"),
		model.ColumnFee:             model.TextValue("2500"),
	}
}

func TestValidateColumns(t *testing.T) {
	validator := NewSchemaValidator()

	t.Run("accepts a complete header set", func(t *testing.T) {
		if err := validator.ValidateColumns([]model.RawRecord{record(model.TransactionTypeBuy)}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("empty input errors before column checks", func(t *testing.T) {
		err := validator.ValidateColumns(nil)
		if !errors.Is(err, apperrors.ErrEmptyInput) {
			t.Errorf("Expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("names every missing column", func(t *testing.T) {
		rec := record(model.TransactionTypeBuy)
		delete(rec, model.ColumnPrice)
		delete(rec, model.ColumnFee)

		err := validator.ValidateColumns([]model.RawRecord{rec})
		if !errors.Is(err, apperrors.ErrMissingColumns) {
			t.Fatalf("Expected ErrMissingColumns, got %v", err)
		}
		if !strings.Contains(err.Error(), model.ColumnPrice) || !strings.Contains(err.Error(), model.ColumnFee) {
			t.Errorf("Expected error to name missing columns, got %q", err.Error())
		}
	})

	t.Run("tax column required only when a Sell row exists", func(t *testing.T) {
		buys := []model.RawRecord{record(model.TransactionTypeBuy)}
		if err := validator.ValidateColumns(buys); err != nil {
			t.Errorf("Expected Buy-only batch to pass without tax, got %v", err)
		}

		mixed := []model.RawRecord{record(model.TransactionTypeBuy), record(model.TransactionTypeSell)}
		err := validator.ValidateColumns(mixed)
		if !errors.Is(err, apperrors.ErrMissingTaxColumn) {
			t.Errorf("Expected ErrMissingTaxColumn, got %v", err)
		}
	})

	t.Run("tax column satisfies Sell batches", func(t *testing.T) {
		rec := record(model.TransactionTypeSell)
		rec[model.ColumnTax] = model.TextValue("1000")

		if err := validator.ValidateColumns([]model.RawRecord{rec}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}
