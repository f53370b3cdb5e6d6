package attendance

import "time"

// Punch is one attendance record: a check-in, optionally closed by a
// check-out. Punches are append-only; the only field ever written after
// creation is CheckOut, and it is written once.
type Punch struct {
	ID     string
	CrewID string
	// Date is the work day the punch belongs to (local calendar date).
	Date     time.Time
	ShiftID  string
	CheckIn  time.Time
	CheckOut *time.Time
	// LateMinutes is whole minutes past the grace window, 0 when on time.
	LateMinutes int
	// PenaltyAmount is the lateness deduction recorded for this punch, in
	// whole rupiah. The same amount is accumulated onto the crew member's
	// running deduction when the punch is created.
	PenaltyAmount int64
	CreatedAt     time.Time

	// Joined fields
	CrewName *string
}

// Open reports whether the punch has not been closed by a check-out yet.
func (p Punch) Open() bool {
	return p.CheckOut == nil
}

// DateKey is the canonical map/storage key for a work day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
