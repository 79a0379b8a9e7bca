// Package normalize converts raw spreadsheet cells into canonical transaction
// fields. Per-field parse failures never raise: dates fall back to the
// original text and numerics default to zero, so malformed input is
// indistinguishable downstream from genuinely-zero input. This lenient policy
// is deliberate and matched by the record validator, which rejects
// non-positive prices and volumes.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// nonNumeric matches every character that is not a digit or decimal point.
var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// ConvertDate parses raw in DD/MM/YYYY HH:MM:SS form and reformats it to
// YYYY-MM-DD HH:MM:SS. On parse failure the input is returned unchanged and
// ok is false; the caller records the failure so the degraded lexical sort
// order is at least reportable.
func ConvertDate(raw string) (converted string, ok bool) {
	t, err := time.Parse(model.TransactionTimeInputLayout, raw)
	if err != nil {
		return raw, false
	}
	return t.Format(model.TransactionTimeLayout), true
}

// NormalizeNumeric coerces a raw cell to a float. Textual values are cleaned
// of thousands separators and any other non-numeric characters before
// parsing; numeric cells are used as-is. Missing or unparsable values
// default to 0.
func NormalizeNumeric(v model.RawValue) float64 {
	switch v.Kind {
	case model.RawNumber:
		return v.Num
	case model.RawText:
		cleaned := nonNumeric.ReplaceAllString(v.Text, "")
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	default:
		return 0
	}
}

// NormalizeVolume coerces a raw cell to an integer share count. Textual
// values must be plain integers; anything else defaults to 0.
func NormalizeVolume(v model.RawValue) int {
	switch v.Kind {
	case model.RawNumber:
		return int(v.Num)
	case model.RawText:
		n, err := strconv.Atoi(strings.TrimSpace(v.Text))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Normalize converts one raw record into a NormalizedTransaction. Tax is
// normalized only for Sell rows that carry the tax column; every other row
// gets tax 0.
func Normalize(rec model.RawRecord) model.NormalizedTransaction {
	t := model.NormalizedTransaction{
		StockCode:       rec[model.ColumnStockCode].String(),
		TransactionType: rec[model.ColumnTransactionType].String(),
		Volume:          NormalizeVolume(rec[model.ColumnVolume]),
		Price:           NormalizeNumeric(rec[model.ColumnPrice]),
		Fee:             NormalizeNumeric(rec[model.ColumnFee]),
	}

	converted, ok := ConvertDate(rec[model.ColumnTransactionTime].String())
	t.TransactionTime = converted
	t.DateParseFailed = !ok

	if t.TransactionType == model.TransactionTypeSell {
		if tax, present := rec[model.ColumnTax]; present {
			t.Tax = NormalizeNumeric(tax)
		}
	}

	return t
}
