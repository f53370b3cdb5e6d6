package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mera-studio/studio-backend-go/internal/domain/payroll"
	"github.com/mera-studio/studio-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// periodParams reads year and month query parameters, defaulting to the
// current calendar month.
func periodParams(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("year must be a number")
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("month must be a number")
		}
		month = time.Month(parsed)
	}
	return year, month, nil
}

// Compute implements PayrollHandler.
func (h *payrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.payrollService.Compute(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Payslip implements PayrollHandler. The PDF is served inline so the owner
// can print straight from the browser.
func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	crewID := chi.URLParam(r, "crewID")

	pdf, err := h.payrollService.Payslip(r.Context(), year, month, crewID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payslip-%s-%d-%02d.pdf", crewID, year, month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
