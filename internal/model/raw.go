package model

// RawValueKind discriminates the three shapes a spreadsheet cell can take
// before normalization.
type RawValueKind int

const (
	// RawMissing represents an absent or empty cell.
	RawMissing RawValueKind = iota
	// RawText represents a textual cell value.
	RawText
	// RawNumber represents a cell that the reader already decoded as numeric.
	RawNumber
)

// RawValue is a tagged union over the heterogeneous cell values produced by
// the file readers. CSV cells always arrive as text; XLSX cells may arrive
// as text or numeric depending on the cell type.
type RawValue struct {
	Kind RawValueKind
	Text string
	Num  float64
}

// MissingValue returns a RawValue for an absent cell.
func MissingValue() RawValue {
	return RawValue{Kind: RawMissing}
}

// TextValue returns a RawValue wrapping a textual cell.
func TextValue(s string) RawValue {
	return RawValue{Kind: RawText, Text: s}
}

// NumberValue returns a RawValue wrapping a numeric cell.
func NumberValue(f float64) RawValue {
	return RawValue{Kind: RawNumber, Num: f}
}

// String returns the textual form of the value, or "" when missing.
func (v RawValue) String() string {
	if v.Kind == RawText {
		return v.Text
	}
	return ""
}

// RawRecord is one uploaded row: a mapping of column name to untyped cell
// value, exactly as produced by the file reader.
type RawRecord map[string]RawValue

// Canonical column names expected in uploaded files.
const (
	ColumnStockCode       = "stock_code"
	ColumnTransactionTime = "transaction_time"
	ColumnTransactionType = "transaction_type"
	ColumnPrice           = "price"
	ColumnVolume          = "volume"
	ColumnFee             = "fee"
	ColumnTax             = "tax"
)

// RequiredColumns returns the columns every uploaded file must carry.
// The tax column is required only when the file contains Sell rows, so it
// is not part of this list.
func RequiredColumns() []string {
	return []string{
		ColumnStockCode,
		ColumnTransactionTime,
		ColumnTransactionType,
		ColumnPrice,
		ColumnVolume,
		ColumnFee,
	}
}
