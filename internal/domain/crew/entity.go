package crew

import "time"

// PayStatus determines how a crew member participates in payroll.
type PayStatus string

const (
	// PayStatusPro is regular paid crew.
	PayStatusPro PayStatus = "PRO"
	// PayStatusIntern receives no base pay, bonus or lateness penalty.
	PayStatusIntern PayStatus = "INTERN"
	// PayStatusResigned crew are excluded from scheduling and the bonus
	// pool head count but keep their historical payroll rows.
	PayStatusResigned PayStatus = "RESIGNED"
)

var PayStatusValues = []string{
	string(PayStatusPro),
	string(PayStatusIntern),
	string(PayStatusResigned),
}

// Member is a roster entry. Members are never hard-deleted; resignation is
// a status change so payroll history stays reproducible.
type Member struct {
	ID        string
	Name      string
	Position  string
	PayStatus PayStatus
	// ShiftID references the shift catalog. It is not validated on write;
	// payroll treats an unknown id as "never scheduled".
	ShiftID string
	// DailyBase is this member's own daily rate in whole rupiah. It may
	// differ from the catalog default for the same shift.
	DailyBase int64
	// ManualBonus is the owner-adjusted bonus running total.
	ManualBonus int64
	// ManualDeduction accumulates owner adjustments and automatic lateness
	// penalties (denda).
	ManualDeduction int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Active reports whether the member takes part in day-to-day scheduling.
func (m Member) Active() bool {
	return m.PayStatus != PayStatusResigned
}
