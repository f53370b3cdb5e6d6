package attendance

import (
	"time"

	"github.com/mera-studio/studio-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	CrewID  string `json:"crew_id"`
	ShiftID string `json:"shift_id"`
	// At is the check-in timestamp. Handlers fill it with the current time;
	// it is explicit so the rule is testable at any simulated moment.
	At time.Time `json:"-"`
}

func (r ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CrewID) {
		errs = append(errs, validator.ValidationError{Field: "crew_id", Message: "crew_id is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "shift_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	CrewID string    `json:"crew_id"`
	At     time.Time `json:"-"`
}

func (r ClockOutRequest) Validate() error {
	if validator.IsEmpty(r.CrewID) {
		return validator.ValidationErrors{{Field: "crew_id", Message: "crew_id is required"}}
	}
	return nil
}

type PunchResponse struct {
	ID            string  `json:"id"`
	CrewID        string  `json:"crew_id"`
	CrewName      *string `json:"crew_name,omitempty"`
	Date          string  `json:"date"`
	ShiftID       string  `json:"shift_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      *string `json:"check_out,omitempty"`
	LateMinutes   int     `json:"late_minutes"`
	PenaltyAmount int64   `json:"penalty_amount"`
}
