package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/KenzyTran/stock-import-backend/internal/api/request"
	"github.com/KenzyTran/stock-import-backend/internal/api/response"
	"github.com/KenzyTran/stock-import-backend/internal/apperrors"
	"github.com/KenzyTran/stock-import-backend/internal/service"
	"github.com/KenzyTran/stock-import-backend/internal/validation"
)

// maxUploadBytes bounds the in-memory portion of multipart parsing.
const maxUploadBytes = 32 << 20

// ImportHandler handles HTTP requests for the upload/preview/commit flow.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the importService.
type ImportHandler struct {
	importService *service.ImportService
	uploadDir     string
}

// NewImportHandler creates a new ImportHandler with the provided service
// dependency and temp upload directory.
func NewImportHandler(importService *service.ImportService, uploadDir string) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		uploadDir:     uploadDir,
	}
}

// Upload handles POST requests carrying one spreadsheet as multipart form
// data. The file is staged under the upload directory with its extension
// preserved, run through the preview pipeline, and removed again.
//
// Endpoint: POST /api/import/upload
// Request: multipart/form-data with a "file" part (.csv or .xlsx)
// Response: 200 OK with PreviewResult
// Error: 400 Bad Request for unsupported format or schema violations
// Error: 422 Unprocessable Entity for unreadable file content
// Error: 500 Internal Server Error if staging the upload fails
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "file part is required", err.Error())
		return
	}
	defer file.Close()

	path, err := h.stageUpload(file, header.Filename)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store upload", err.Error())
		return
	}
	defer func() {
		if removeErr := os.Remove(path); removeErr != nil {
			log.Printf("failed to remove staged upload %s: %v", path, removeErr)
		}
	}()

	result, err := h.importService.Preview(path)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnsupportedFormat),
			errors.Is(err, apperrors.ErrEmptyInput),
			errors.Is(err, apperrors.ErrMissingColumns),
			errors.Is(err, apperrors.ErrMissingTaxColumn):
			response.RespondError(w, http.StatusBadRequest, "invalid upload", err.Error())
		case errors.Is(err, apperrors.ErrUnreadableFile):
			response.RespondError(w, http.StatusUnprocessableEntity, "unreadable file", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to process upload", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// stageUpload copies the uploaded part to the upload directory under a
// uuid-prefixed name. The original extension is kept so format validation
// sees it.
func (h *ImportHandler) stageUpload(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(h.uploadDir, uuid.New().String()+strings.ToLower(filepath.Ext(filename)))

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		//nolint:errcheck // Best-effort cleanup of a partial write
		os.Remove(path)
		return "", err
	}

	return path, nil
}

// Commit handles POST requests that persist a previewed batch.
//
// Endpoint: POST /api/import/commit
// Request Body: CommitImportRequest (userId, skipErrors, transactions)
// Response: 200 OK with ImportResult on success
// Response: 422 Unprocessable Entity with ImportResult on soft failure
// (validation rejection without skipErrors, or persistence failure)
// Error: 400 Bad Request if the request body is invalid
func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CommitImportRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCommitImport(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result := h.importService.Import(r.Context(), req.UserID, req.Transactions, req.SkipErrors)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}

	response.RespondJSON(w, status, result)
}
