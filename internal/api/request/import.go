// Package request defines the JSON request shapes accepted by the API.
package request

import "github.com/KenzyTran/stock-import-backend/internal/model"

// CommitImportRequest is the body of POST /api/import/commit. It carries the
// previewed batch back to the server together with the owning user and the
// caller's skip-errors decision.
type CommitImportRequest struct {
	UserID       string                      `json:"userId"`
	SkipErrors   bool                        `json:"skipErrors"`
	Transactions []model.BalancedTransaction `json:"transactions"`
}
