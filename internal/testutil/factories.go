package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/KenzyTran/stock-import-backend/internal/model"
	"github.com/KenzyTran/stock-import-backend/internal/repository"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewBalancedTransaction().Build()
//
//	// Customized transaction
//	tx := testutil.NewBalancedTransaction().
//	    WithStockCode("VNM").
//	    Sell().
//	    WithVolume(50).
//	    Build()
type TransactionBuilder struct {
	StockCode       string
	TransactionTime string
	TransactionType string
	Volume          int
	Price           float64
	Fee             float64
	Tax             float64
	RunningBalance  int
}

// NewBalancedTransaction creates a TransactionBuilder with sensible defaults.
func NewBalancedTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		StockCode:       "AAA",
		TransactionTime: "2023-02-01 10:30:45",
		TransactionType: model.TransactionTypeBuy,
		Volume:          100,
		Price:           25000,
		Fee:             2500,
	}
}

// WithStockCode sets a custom stock code.
func (b *TransactionBuilder) WithStockCode(code string) *TransactionBuilder {
	b.StockCode = code
	return b
}

// WithTime sets a custom transaction time.
func (b *TransactionBuilder) WithTime(ts string) *TransactionBuilder {
	b.TransactionTime = ts
	return b
}

// Sell marks the transaction as a Sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.TransactionType = model.TransactionTypeSell
	return b
}

// WithVolume sets a custom volume.
func (b *TransactionBuilder) WithVolume(volume int) *TransactionBuilder {
	b.Volume = volume
	return b
}

// WithPrice sets a custom price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// WithFee sets a custom fee.
func (b *TransactionBuilder) WithFee(fee float64) *TransactionBuilder {
	b.Fee = fee
	return b
}

// WithTax sets a custom tax.
func (b *TransactionBuilder) WithTax(tax float64) *TransactionBuilder {
	b.Tax = tax
	return b
}

// WithRunningBalance sets a custom running balance.
func (b *TransactionBuilder) WithRunningBalance(balance int) *TransactionBuilder {
	b.RunningBalance = balance
	return b
}

// Build assembles the BalancedTransaction.
func (b *TransactionBuilder) Build() model.BalancedTransaction {
	return model.BalancedTransaction{
		RatedTransaction: model.RatedTransaction{
			NormalizedTransaction: model.NormalizedTransaction{
				StockCode:       b.StockCode,
				TransactionTime: b.TransactionTime,
				TransactionType: b.TransactionType,
				Volume:          b.Volume,
				Price:           b.Price,
				Fee:             b.Fee,
				Tax:             b.Tax,
			},
		},
		RunningBalance:  b.RunningBalance,
		NegativeBalance: b.RunningBalance < 0,
		Warnings:        []model.Warning{},
	}
}

// SeedBatch inserts a small batch for the given user and returns it.
func SeedBatch(t *testing.T, db *sql.DB, userID string) *model.BatchRecord {
	t.Helper()

	batch := &model.BatchRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		ImportDate: time.Now().Format(model.TransactionTimeLayout),
		Transactions: []model.BatchTransaction{
			model.StripAdvisory(NewBalancedTransaction().WithRunningBalance(100).Build()),
			model.StripAdvisory(NewBalancedTransaction().Sell().WithVolume(50).WithTax(500).WithRunningBalance(50).Build()),
		},
	}

	if err := repository.NewBatchRepository(db).InsertBatch(context.Background(), batch); err != nil {
		t.Fatalf("Failed to seed batch: %v", err)
	}

	return batch
}
