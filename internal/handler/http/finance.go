package http

import (
	"log/slog"
	"net/http"

	"github.com/mera-studio/studio-backend-go/internal/domain/revenue"
	"github.com/mera-studio/studio-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	DailyLedger(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService revenue.Service
}

func NewFinanceHandler(financeService revenue.Service) FinanceHandler {
	return &financeHandlerImpl{
		financeService: financeService,
	}
}

// DailyLedger implements FinanceHandler.
func (h *financeHandlerImpl) DailyLedger(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	ledger, err := h.financeService.DailyLedger(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledger)
}

// Import implements FinanceHandler. The daybook CSV arrives as a multipart
// upload in the "file" field.
func (h *financeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.financeService.ImportCSV(r.Context(), file)
	if err != nil {
		slog.Error("CSV import failed", "error", err)
		response.BadRequest(w, "Import failed: "+err.Error(), nil)
		return
	}

	response.SuccessWithMessage(w, "Import complete", result)
}
