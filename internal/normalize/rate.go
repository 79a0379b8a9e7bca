package normalize

import "github.com/KenzyTran/stock-import-backend/internal/model"

// Rate derives the fee and tax rates for a normalized transaction. Both are
// percentages of total trade value (price * volume). The fee rate is 0 when
// the total is not positive; the tax rate is additionally fixed at 0 for
// every Buy transaction regardless of any tax value.
func Rate(t model.NormalizedTransaction) model.RatedTransaction {
	rated := model.RatedTransaction{NormalizedTransaction: t}

	total := t.Price * float64(t.Volume)
	if total > 0 {
		rated.FeeRate = (t.Fee / total) * 100
		if t.TransactionType == model.TransactionTypeSell {
			rated.TaxRate = (t.Tax / total) * 100
		}
	}

	return rated
}

// RateAll normalizes and rates a sequence of raw records in input order.
// The result is deterministic: rerunning over the same records yields an
// identical sequence.
func RateAll(records []model.RawRecord) []model.RatedTransaction {
	rated := make([]model.RatedTransaction, 0, len(records))
	for _, rec := range records {
		rated = append(rated, Rate(Normalize(rec)))
	}
	return rated
}
