package normalize

import (
	"testing"

	"github.com/KenzyTran/stock-import-backend/internal/model"
)

func TestConvertDate(t *testing.T) {
	t.Run("converts valid date to canonical form", func(t *testing.T) {
		converted, ok := ConvertDate("01/02/2023 10:30:45")

		if !ok {
			t.Error("Expected ok for valid date")
		}
		if converted != "2023-02-01 10:30:45" {
			t.Errorf("Expected 2023-02-01 10:30:45, got %s", converted)
		}
	})

	t.Run("returns input unchanged on parse failure", func(t *testing.T) {
		converted, ok := ConvertDate("2023/01/02")

		if ok {
			t.Error("Expected not ok for unparsable date")
		}
		if converted != "2023/01/02" {
			t.Errorf("Expected input preserved, got %s", converted)
		}
	})

	t.Run("rejects date-only input", func(t *testing.T) {
		converted, ok := ConvertDate("01/02/2023")

		if ok {
			t.Error("Expected not ok for date without time")
		}
		if converted != "01/02/2023" {
			t.Errorf("Expected input preserved, got %s", converted)
		}
	})
}

func TestNormalizeNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input model.RawValue
		want  float64
	}{
		{"strips thousands separators", model.TextValue("1,234.56"), 1234.56},
		{"strips spaces and currency text", model.TextValue("25 000 VND"), 25000},
		{"plain number text", model.TextValue("42.5"), 42.5},
		{"unparsable text defaults to zero", model.TextValue("not a number"), 0},
		{"multiple decimal points default to zero", model.TextValue("1.2.3"), 0},
		{"missing value defaults to zero", model.MissingValue(), 0},
		{"numeric cell used as-is", model.NumberValue(1234.56), 1234.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeNumeric(tt.input); got != tt.want {
				t.Errorf("NormalizeNumeric() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeVolume(t *testing.T) {
	tests := []struct {
		name  string
		input model.RawValue
		want  int
	}{
		{"plain integer text", model.TextValue("100"), 100},
		{"integer text with spaces", model.TextValue(" 100 "), 100},
		{"separator-grouped text defaults to zero", model.TextValue("1,000"), 0},
		{"float text defaults to zero", model.TextValue("100.5"), 0},
		{"missing value defaults to zero", model.MissingValue(), 0},
		{"numeric cell truncated to int", model.NumberValue(100.0), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeVolume(tt.input); got != tt.want {
				t.Errorf("NormalizeVolume() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("normalizes a full Sell record", func(t *testing.T) {
		rec := model.RawRecord{
			model.ColumnStockCode:       model.TextValue("VNM"),
			model.ColumnTransactionTime: model.TextValue("15/03/2023 09:15:00"),
			model.ColumnTransactionType: model.TextValue(model.TransactionTypeSell),
			model.ColumnVolume:          model.TextValue("200"),
			model.ColumnPrice:           model.TextValue("78,500"),
			model.ColumnFee:             model.TextValue("15,700"),
			model.ColumnTax:             model.TextValue("15,700"),
		}

		got := Normalize(rec)

		if got.StockCode != "VNM" {
			t.Errorf("Expected stock code VNM, got %s", got.StockCode)
		}
		if got.TransactionTime != "2023-03-15 09:15:00" {
			t.Errorf("Expected canonical time, got %s", got.TransactionTime)
		}
		if got.DateParseFailed {
			t.Error("Expected date parse to succeed")
		}
		if got.Volume != 200 {
			t.Errorf("Expected volume 200, got %d", got.Volume)
		}
		if got.Price != 78500 {
			t.Errorf("Expected price 78500, got %v", got.Price)
		}
		if got.Fee != 15700 {
			t.Errorf("Expected fee 15700, got %v", got.Fee)
		}
		if got.Tax != 15700 {
			t.Errorf("Expected tax 15700, got %v", got.Tax)
		}
	})

	t.Run("defaults tax to zero for Buy records even when present", func(t *testing.T) {
		rec := model.RawRecord{
			model.ColumnStockCode:       model.TextValue("AAA"),
			model.ColumnTransactionTime: model.TextValue("01/02/2023 10:30:45"),
			model.ColumnTransactionType: model.TextValue(model.TransactionTypeBuy),
			model.ColumnVolume:          model.TextValue("100"),
			model.ColumnPrice:           model.TextValue("25000"),
			model.ColumnFee:             model.TextValue("2500"),
			model.ColumnTax:             model.TextValue("9999"),
		}

		if got := Normalize(rec); got.Tax != 0 {
			t.Errorf("Expected tax 0 for Buy, got %v", got.Tax)
		}
	})

	t.Run("defaults tax to zero for Sell records without tax column", func(t *testing.T) {
		rec := model.RawRecord{
			model.ColumnStockCode:       model.TextValue("AAA"),
			model.ColumnTransactionTime: model.TextValue("01/02/2023 10:30:45"),
			model.ColumnTransactionType: model.TextValue(model.TransactionTypeSell),
			model.ColumnVolume:          model.TextValue("100"),
			model.ColumnPrice:           model.TextValue("25000"),
			model.ColumnFee:             model.TextValue("2500"),
		}

		if got := Normalize(rec); got.Tax != 0 {
			t.Errorf("Expected tax 0 without tax column, got %v", got.Tax)
		}
	})

	t.Run("flags unparsable dates and preserves the text", func(t *testing.T) {
		rec := model.RawRecord{
			model.ColumnStockCode:       model.TextValue("AAA"),
			model.ColumnTransactionTime: model.TextValue("sometime in 2023"),
			model.ColumnTransactionType: model.TextValue(model.TransactionTypeBuy),
			model.ColumnVolume:          model.TextValue("100"),
			model.ColumnPrice:           model.TextValue("25000"),
			model.ColumnFee:             model.TextValue("2500"),
		}

		got := Normalize(rec)

		if !got.DateParseFailed {
			t.Error("Expected date parse failure to be flagged")
		}
		if got.TransactionTime != "sometime in 2023" {
			t.Errorf("Expected original text preserved, got %s", got.TransactionTime)
		}
	})

	t.Run("unparsable volume defaults to zero", func(t *testing.T) {
		rec := model.RawRecord{
			model.ColumnStockCode:       model.TextValue("AAA"),
			model.ColumnTransactionTime: model.TextValue("01/02/2023 10:30:45"),
			model.ColumnTransactionType: model.TextValue(model.TransactionTypeBuy),
			model.ColumnVolume:          model.TextValue("lots"),
			model.ColumnPrice:           model.TextValue("25000"),
			model.ColumnFee:             model.TextValue("2500"),
		}

		if got := Normalize(rec); got.Volume != 0 {
			t.Errorf("Expected volume 0, got %d", got.Volume)
		}
	})
}
