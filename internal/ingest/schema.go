package ingest

import (
	"fmt"
	"strings"

	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// SchemaValidator checks uploaded records against the required column set.
// The column list is fixed at construction and never mutated.
type SchemaValidator struct {
	required []string
}

// NewSchemaValidator creates a SchemaValidator for the canonical required
// columns.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{required: model.RequiredColumns()}
}

// ValidateColumns checks the record sequence for required-field presence.
// Fails with ErrEmptyInput when there are no records at all, and with
// ErrMissingColumns naming every required column absent from the first
// record's keys. The tax column is required only when the data actually
// contains Sell rows, so its presence check is conditional on content
// rather than static schema.
func (v *SchemaValidator) ValidateColumns(records []model.RawRecord) error {
	if len(records) == 0 {
		return apperrors.ErrEmptyInput
	}

	columns := records[0]

	var missing []string
	for _, col := range v.required {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingColumns, strings.Join(missing, ", "))
	}

	if _, hasTax := columns[model.ColumnTax]; !hasTax {
		for _, rec := range records {
			if rec[model.ColumnTransactionType].String() == model.TransactionTypeSell {
				return apperrors.ErrMissingTaxColumn
			}
		}
	}

	return nil
}
