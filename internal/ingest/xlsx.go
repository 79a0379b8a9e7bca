package ingest

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// readXLSX reads the first sheet of an XLSX workbook. Cell values arrive as
// their formatted text; numeric coercion happens later in normalization.
func readXLSX(path string) ([]model.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("failed to close workbook %s: %v", path, closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrUnreadableFile)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err)
	}

	return rowsToRecords(rows), nil
}
