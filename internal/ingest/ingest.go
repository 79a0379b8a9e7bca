// Package ingest reads uploaded transaction files and validates their format
// and schema before the rows enter the normalization pipeline.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// ValidateFileFormat checks that the file extension is one of the supported
// spreadsheet formats (.csv or .xlsx, case-insensitive).
func ValidateFileFormat(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xlsx" {
		return fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFormat, ext)
	}
	return nil
}

// ReadFile reads a CSV or XLSX file into raw records. The first row supplies
// the column headers; every following row becomes one RawRecord. I/O and
// parse failures are wrapped as ErrUnreadableFile with the underlying cause.
func ReadFile(path string) ([]model.RawRecord, error) {
	if err := ValidateFileFormat(path); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	default:
		return readXLSX(path)
	}
}

// rowsToRecords converts header + data rows into raw records. Short rows are
// padded with missing values so every record carries the full column set.
func rowsToRecords(rows [][]string) []model.RawRecord {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(model.RawRecord, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i >= len(row) || strings.TrimSpace(row[i]) == "" {
				rec[header] = model.MissingValue()
				continue
			}
			rec[header] = model.TextValue(row[i])
		}
		records = append(records, rec)
	}

	return records
}
