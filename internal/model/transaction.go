package model

// Transaction type vocabulary. Exactly two variants are admitted; the upload
// schema check and the record validator both treat any other value in the
// transaction_type column as invalid input.
const (
	TransactionTypeBuy  = "Buy"
	TransactionTypeSell = "Sell"
)

// TransactionTimeLayout is the canonical timestamp form used throughout the
// pipeline. Chronological ordering relies on lexical comparison of this form.
const TransactionTimeLayout = "2006-01-02 15:04:05"

// TransactionTimeInputLayout is the expected timestamp form in uploaded files.
const TransactionTimeInputLayout = "02/01/2006 15:04:05"

// NormalizedTransaction is one uploaded row with every field coerced to its
// canonical type. All fields are always populated: parse failures default to
// zero values rather than propagating nulls downstream.
type NormalizedTransaction struct {
	StockCode       string  `json:"stockCode"`
	TransactionTime string  `json:"transactionTime"`
	TransactionType string  `json:"transactionType"`
	Volume          int     `json:"volume"`
	Price           float64 `json:"price"`
	Fee             float64 `json:"fee"`
	Tax             float64 `json:"tax"`
	// DateParseFailed records that TransactionTime could not be parsed and
	// was preserved verbatim, which degrades the ledger sort to raw lexical
	// order for this row.
	DateParseFailed bool `json:"dateParseFailed,omitempty"`
}

// RatedTransaction is a NormalizedTransaction plus derived fee and tax rates.
// Rates are percentages of total trade value (price * volume), not fractions.
type RatedTransaction struct {
	NormalizedTransaction
	FeeRate float64 `json:"feeRate"`
	TaxRate float64 `json:"taxRate"`
}

// BalancedTransaction is a RatedTransaction annotated with its chronological
// running balance and the batch-wide warnings list.
type BalancedTransaction struct {
	RatedTransaction
	RunningBalance  int  `json:"runningBalance"`
	NegativeBalance bool `json:"negativeBalance"`
	// Warnings holds the full batch warnings list. Every record in a batch
	// carries the identical slice; callers needing per-record warnings must
	// filter by RecordIndex.
	Warnings []Warning `json:"warnings"`
}

// Warning describes one transaction that drove a security's running balance
// negative. RecordIndex is the position in the chronologically sorted batch.
type Warning struct {
	RecordIndex     int    `json:"recordIndex"`
	StockCode       string `json:"stockCode"`
	TransactionTime string `json:"transactionTime"`
	TransactionType string `json:"transactionType"`
	Volume          int    `json:"volume"`
	RunningBalance  int    `json:"runningBalance"`
	Suggestion      string `json:"suggestion"`
}

// ValidationError collects all semantic violations found on one record.
type ValidationError struct {
	RecordIndex     int      `json:"recordIndex"`
	StockCode       string   `json:"stockCode"`
	TransactionTime string   `json:"transactionTime"`
	Messages        []string `json:"messages"`
}
