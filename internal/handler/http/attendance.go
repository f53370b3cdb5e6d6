package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/attendance"
	"github.com/mera-studio/studio-backend-go/internal/domain/payroll"
	"github.com/mera-studio/studio-backend-go/internal/handler/http/response"
	"github.com/mera-studio/studio-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	RecommendShift(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode clock-in request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.At = time.Now()

	resp, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			response.ConflictWithData(w, "Already clocked in today", resp)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", resp)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode clock-out request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.At = time.Now()

	resp, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", resp)
}

// List implements AttendanceHandler. Without from/to parameters it shows
// the pay window the current date falls into.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := punchRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	punches, err := h.attendanceService.List(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}

// RecommendShift implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecommendShift(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"shift_id": h.attendanceService.RecommendShift(time.Now()),
	})
}

func punchRange(r *http.Request) (time.Time, time.Time, error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" && toStr == "" {
		period, err := currentPeriod(time.Now())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return period.Start, period.End, nil
	}

	from, err := validator.ParseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be a date in YYYY-MM-DD form")
	}
	to, err := validator.ParseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be a date in YYYY-MM-DD form")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not precede from")
	}
	return from, to, nil
}

// currentPeriod returns the pay window containing the given moment.
func currentPeriod(now time.Time) (payroll.Period, error) {
	year, month := now.Year(), now.Month()
	if now.Day() > 25 {
		// Past the cutoff the running window is the next month's.
		next := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
		year, month = next.Year(), next.Month()
	}
	return payroll.PeriodFor(year, month)
}
