package testutil

import (
	"database/sql"
	"testing"

	"github.com/KenzyTran/stock-import-backend/internal/repository"
	"github.com/KenzyTran/stock-import-backend/internal/service"
)

// NewTestImportService wires an ImportService against the given test database.
func NewTestImportService(t *testing.T, db *sql.DB) *service.ImportService {
	t.Helper()

	batchRepo := repository.NewBatchRepository(db)

	return service.NewImportService(batchRepo)
}
