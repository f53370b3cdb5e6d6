package crew

import (
	"slices"

	"github.com/mera-studio/studio-backend-go/internal/pkg/validator"
)

type CreateMemberRequest struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	PayStatus string `json:"pay_status"`
	ShiftID   string `json:"shift_id"`
	DailyBase int64  `json:"daily_base"`
}

func (r CreateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if !slices.Contains(PayStatusValues, r.PayStatus) {
		errs = append(errs, validator.ValidationError{Field: "pay_status", Message: "must be one of PRO, INTERN, RESIGNED"})
	}
	if r.DailyBase < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_base", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateMemberRequest carries owner edits. Nil fields are left untouched.
type UpdateMemberRequest struct {
	ID              string  `json:"-"`
	Name            *string `json:"name"`
	Position        *string `json:"position"`
	PayStatus       *string `json:"pay_status"`
	ShiftID         *string `json:"shift_id"`
	DailyBase       *int64  `json:"daily_base"`
	ManualBonus     *int64  `json:"manual_bonus"`
	ManualDeduction *int64  `json:"manual_deduction"`
}

func (r UpdateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.PayStatus != nil && !slices.Contains(PayStatusValues, *r.PayStatus) {
		errs = append(errs, validator.ValidationError{Field: "pay_status", Message: "must be one of PRO, INTERN, RESIGNED"})
	}
	if r.DailyBase != nil && *r.DailyBase < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_base", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MemberResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	PayStatus       string `json:"pay_status"`
	ShiftID         string `json:"shift_id"`
	DailyBase       int64  `json:"daily_base"`
	ManualBonus     int64  `json:"manual_bonus"`
	ManualDeduction int64  `json:"manual_deduction"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
