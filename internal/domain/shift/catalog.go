package shift

import "time"

// Catalog is the read-only set of shift definitions. It is built once at
// startup and safe for concurrent use.
type Catalog struct {
	byID map[string]Definition
}

// NewCatalog returns the studio's shift catalog.
func NewCatalog() *Catalog {
	defs := []Definition{
		{ID: ShiftWeekdayFull, Label: "Weekday Full Time", StartHour: 12, StartMinute: 0, IsWeekend: false, DailyBase: 75_000, HasStartTime: true},
		{ID: ShiftWeekendShift1, Label: "Weekend Shift 1", StartHour: 9, StartMinute: 0, IsWeekend: true, DailyBase: 35_000, HasStartTime: true},
		{ID: ShiftWeekendShift2, Label: "Weekend Shift 2", StartHour: 15, StartMinute: 0, IsWeekend: true, DailyBase: 35_000, HasStartTime: true},
		{ID: ShiftWeekendFull, Label: "Weekend Full Time", StartHour: 9, StartMinute: 0, IsWeekend: true, DailyBase: 50_000, HasStartTime: true},
		{ID: ShiftIntern, Label: "Intern", IsWeekend: false, DailyBase: 0, HasStartTime: false},
	}

	byID := make(map[string]Definition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &Catalog{byID: byID}
}

// Get returns the definition for id, or ErrUnknownShift.
func (c *Catalog) Get(id string) (Definition, error) {
	def, ok := c.byID[id]
	if !ok {
		return Definition{}, ErrUnknownShift
	}
	return def, nil
}

// All returns every definition in the catalog.
func (c *Catalog) All() []Definition {
	defs := make([]Definition, 0, len(c.byID))
	for _, d := range c.byID {
		defs = append(defs, d)
	}
	return defs
}

// IsWeekend classifies a date: Friday, Saturday and Sunday are weekend days,
// Monday-Thursday are weekdays.
func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// Recommend picks the shift a crew member is most likely clocking in for at
// the given local time. Weekdays have a single full-time shift; weekend days
// switch from shift 1 to shift 2 at 15:00.
func (c *Catalog) Recommend(t time.Time) Definition {
	if !IsWeekend(t) {
		return c.byID[ShiftWeekdayFull]
	}
	if t.Hour() < 15 {
		return c.byID[ShiftWeekendShift1]
	}
	return c.byID[ShiftWeekendShift2]
}
