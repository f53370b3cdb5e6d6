package shift

// Definition describes one entry of the studio's fixed shift catalog.
type Definition struct {
	ID          string
	Label       string
	StartHour   int
	StartMinute int
	// IsWeekend classifies the shift: weekend shifts run Friday-Sunday,
	// weekday shifts Monday-Thursday.
	IsWeekend bool
	// DailyBase is the default pay for one worked day under this shift,
	// in whole rupiah. Individual crew members may override it.
	DailyBase int64
	// HasStartTime is false for shifts that are not tied to a clock time
	// (interns are never marked late).
	HasStartTime bool
}

// Shift identifiers. The catalog is closed: these are the only valid ids.
const (
	ShiftWeekdayFull   = "weekday_full"
	ShiftWeekendShift1 = "weekend_shift1"
	ShiftWeekendShift2 = "weekend_shift2"
	ShiftWeekendFull   = "weekend_full"
	ShiftIntern        = "intern"
)
