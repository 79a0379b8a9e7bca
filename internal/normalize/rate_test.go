package normalize

import (
	"reflect"
	"testing"

	"github.com/KenzyTran/stock-import-backend/internal/model"
)

func TestRate(t *testing.T) {
	t.Run("computes fee rate as a percentage of trade value", func(t *testing.T) {
		rated := Rate(model.NormalizedTransaction{
			TransactionType: model.TransactionTypeBuy,
			Price:           25000,
			Volume:          100,
			Fee:             2500,
		})

		// 2500 / 2500000 * 100 = 0.1
		if rated.FeeRate != 0.1 {
			t.Errorf("Expected fee rate 0.1, got %v", rated.FeeRate)
		}
		if rated.TaxRate != 0 {
			t.Errorf("Expected tax rate 0 for Buy, got %v", rated.TaxRate)
		}
	})

	t.Run("computes tax rate only for Sell records", func(t *testing.T) {
		rated := Rate(model.NormalizedTransaction{
			TransactionType: model.TransactionTypeSell,
			Price:           10000,
			Volume:          50,
			Fee:             500,
			Tax:             1000,
		})

		if rated.FeeRate != 0.1 {
			t.Errorf("Expected fee rate 0.1, got %v", rated.FeeRate)
		}
		// 1000 / 500000 * 100 = 0.2
		if rated.TaxRate != 0.2 {
			t.Errorf("Expected tax rate 0.2, got %v", rated.TaxRate)
		}
	})

	t.Run("tax rate stays zero for Buy records with a tax value", func(t *testing.T) {
		rated := Rate(model.NormalizedTransaction{
			TransactionType: model.TransactionTypeBuy,
			Price:           10000,
			Volume:          50,
			Tax:             1000,
		})

		if rated.TaxRate != 0 {
			t.Errorf("Expected tax rate 0, got %v", rated.TaxRate)
		}
	})

	t.Run("rates are zero when trade value is zero", func(t *testing.T) {
		rated := Rate(model.NormalizedTransaction{
			TransactionType: model.TransactionTypeSell,
			Price:           0,
			Volume:          100,
			Fee:             2500,
			Tax:             1000,
		})

		if rated.FeeRate != 0 {
			t.Errorf("Expected fee rate 0, got %v", rated.FeeRate)
		}
		if rated.TaxRate != 0 {
			t.Errorf("Expected tax rate 0, got %v", rated.TaxRate)
		}
	})
}

func TestRateAllIdempotence(t *testing.T) {
	records := []model.RawRecord{
		{
			model.ColumnStockCode:       model.TextValue("AAA"),
			model.ColumnTransactionTime: model.TextValue("01/02/2023 10:30:45"),
			model.ColumnTransactionType: model.TextValue(model.TransactionTypeBuy),
			model.ColumnVolume:          model.TextValue("100"),
			model.ColumnPrice:           model.TextValue("25,000"),
			model.ColumnFee:             model.TextValue("2,500"),
		},
		{
			model.ColumnStockCode:       model.TextValue("BBB"),
			model.ColumnTransactionTime: model.TextValue("bad date"),
			model.ColumnTransactionType: model.TextValue(model.TransactionTypeSell),
			model.ColumnVolume:          model.TextValue("abc"),
			model.ColumnPrice:           model.TextValue("1,234.56"),
			model.ColumnFee:             model.TextValue(""),
			model.ColumnTax:             model.TextValue("100"),
		},
	}

	first := RateAll(records)
	second := RateAll(records)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output from repeated runs over the same input")
	}
}
