package ingest

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// readCSV reads the whole file up front; batches are bounded in-memory
// uploads, not streams.
func readCSV(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err)
	}

	return rowsToRecords(rows), nil
}
