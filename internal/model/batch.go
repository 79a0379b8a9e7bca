package model

import "time"

// BatchTransaction is the persisted form of a BalancedTransaction: the
// normalized, rated and balanced fields with the advisory warnings list and
// negative-balance flag stripped.
type BatchTransaction struct {
	StockCode       string  `json:"stockCode"`
	TransactionTime string  `json:"transactionTime"`
	TransactionType string  `json:"transactionType"`
	Volume          int     `json:"volume"`
	Price           float64 `json:"price"`
	Fee             float64 `json:"fee"`
	Tax             float64 `json:"tax"`
	FeeRate         float64 `json:"feeRate"`
	TaxRate         float64 `json:"taxRate"`
	RunningBalance  int     `json:"runningBalance"`
}

// BatchRecord is one persisted import: the full validated transaction set
// from a single uploaded file, tagged with the owning user. Batches are
// append-only; corrections are new imports, never updates.
type BatchRecord struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	Transactions []BatchTransaction `json:"transactions"`
	ImportDate   string             `json:"importDate"`
	CreatedAt    time.Time          `json:"createdAt,omitempty"`
}

// BatchSummary is the list-view form of a batch, without its transactions.
type BatchSummary struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	TransactionCount int       `json:"transactionCount"`
	ImportDate       string    `json:"importDate"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}

// StripAdvisory converts a BalancedTransaction into its persisted form,
// dropping the warnings list and the negative-balance flag.
func StripAdvisory(t BalancedTransaction) BatchTransaction {
	return BatchTransaction{
		StockCode:       t.StockCode,
		TransactionTime: t.TransactionTime,
		TransactionType: t.TransactionType,
		Volume:          t.Volume,
		Price:           t.Price,
		Fee:             t.Fee,
		Tax:             t.Tax,
		FeeRate:         t.FeeRate,
		TaxRate:         t.TaxRate,
		RunningBalance:  t.RunningBalance,
	}
}
