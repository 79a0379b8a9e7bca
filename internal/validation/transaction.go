package validation

import "github.com/KenzyTran/stock-import-backend/internal/model"

// Violation messages for semantic record checks.
const (
	msgPricePositive  = "price must be greater than 0"
	msgVolumePositive = "volume must be greater than 0"
	msgFeeNegative    = "fee must not be negative"
	msgTaxNegative    = "tax must not be negative"
)

// ValidateTransactions checks every record for semantic violations:
// non-positive price or volume, negative fee, and for Sell records a
// negative tax. Each violating record contributes one ValidationError
// carrying all of its messages.
//
// Negative running balances are advisory warnings produced by the ledger,
// not validation errors; they never appear in the returned list. Whether to
// abort on a non-empty error list or proceed anyway is the caller's policy.
func ValidateTransactions(records []model.BalancedTransaction) (bool, []model.ValidationError) {
	errs := make([]model.ValidationError, 0)

	for i, t := range records {
		var messages []string

		if t.Price <= 0 {
			messages = append(messages, msgPricePositive)
		}
		if t.Volume <= 0 {
			messages = append(messages, msgVolumePositive)
		}
		if t.Fee < 0 {
			messages = append(messages, msgFeeNegative)
		}
		if t.TransactionType == model.TransactionTypeSell && t.Tax < 0 {
			messages = append(messages, msgTaxNegative)
		}

		if len(messages) > 0 {
			errs = append(errs, model.ValidationError{
				RecordIndex:     i,
				StockCode:       t.StockCode,
				TransactionTime: t.TransactionTime,
				Messages:        messages,
			})
		}
	}

	return len(errs) == 0, errs
}
