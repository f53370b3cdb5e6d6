package payroll

// Row is one crew member's computed payroll for a pay period. Rows are
// derived on demand from the roster snapshot and revenue figures; they are
// never stored, so recomputation is always safe.
type Row struct {
	CrewID   string `json:"crew_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	ShiftID  string `json:"shift_id"`
	// WorkDays counts operational days (revenue > 0) whose weekday/weekend
	// classification matched the member's shift.
	WorkDays  int   `json:"work_days"`
	TotalBase int64 `json:"total_base"`
	// TotalBonus is the sum of daily revenue bonuses over qualifying days.
	TotalBonus int64 `json:"total_bonus"`
	// ManualBonus and TotalDeduction are copied from the roster snapshot.
	ManualBonus    int64 `json:"manual_bonus"`
	TotalDeduction int64 `json:"total_deduction"`
	Total          int64 `json:"total"`
}
