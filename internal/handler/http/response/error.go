package response

import (
	"errors"
	"net/http"

	"github.com/mera-studio/studio-backend-go/internal/domain/attendance"
	"github.com/mera-studio/studio-backend-go/internal/domain/crew"
	"github.com/mera-studio/studio-backend-go/internal/domain/payroll"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	"github.com/mera-studio/studio-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Crew domain errors
	case errors.Is(err, crew.ErrMemberNotFound):
		NotFound(w, "Crew member not found")
	case errors.Is(err, crew.ErrInvalidPayStatus):
		BadRequest(w, "Invalid pay status", nil)
	case errors.Is(err, crew.ErrAlreadyResigned):
		Conflict(w, "Crew member already resigned")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNoOpenPunch):
		NotFound(w, "No open attendance for today")
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Attendance record not found")

	// Shift / payroll domain errors
	case errors.Is(err, shift.ErrUnknownShift):
		BadRequest(w, "Unknown shift", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
