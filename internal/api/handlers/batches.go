package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KenzyTran/stock-import-backend/internal/api/response"
	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/service"
)

// BatchHandler handles HTTP requests for persisted import batches.
type BatchHandler struct {
	importService *service.ImportService
}

// NewBatchHandler creates a new BatchHandler with the provided service dependency.
func NewBatchHandler(importService *service.ImportService) *BatchHandler {
	return &BatchHandler{
		importService: importService,
	}
}

// ListBatches handles GET requests to retrieve batch summaries, optionally
// filtered by the owning user.
//
// Endpoint: GET /api/batch?userId={userId}
// Response: 200 OK with array of BatchSummary
// Error: 500 Internal Server Error if retrieval fails
func (h *BatchHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	batches, err := h.importService.ListBatches(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBatches.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, batches)
}

// GetBatch handles GET requests to retrieve a single batch with its
// transactions in stored order.
//
// Endpoint: GET /api/batch/{uuid}
// Response: 200 OK with BatchRecord
// Error: 400 Bad Request if batch ID is invalid (validated by middleware)
// Error: 404 Not Found if batch not found
// Error: 500 Internal Server Error if retrieval fails
func (h *BatchHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "uuid")

	batch, err := h.importService.GetBatch(batchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBatchNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBatchNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBatches.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, batch)
}
