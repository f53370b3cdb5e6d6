package attendance

import (
	"time"

	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
)

// Defaults for the lateness rule. Both are overridable via config.
const (
	DefaultGracePeriodMinutes = 10
	DefaultPenaltyPerMinute   = 500
)

// Lateness is the outcome of measuring a check-in against the shift start.
type Lateness struct {
	Minutes int
	Penalty int64
}

// ComputeLateness measures how late a check-in is for the given shift.
//
// The tolerance boundary is shift start (on the check-in's calendar date)
// plus the grace period. A check-in at or before the boundary is on time.
// Past it, only whole elapsed minutes count: 59 seconds late is still zero.
// Shifts without a start time (interns) are never late.
func ComputeLateness(def shift.Definition, checkIn time.Time, graceMinutes int, penaltyPerMinute int64) Lateness {
	if !def.HasStartTime {
		return Lateness{}
	}

	start := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		def.StartHour, def.StartMinute, 0, 0, checkIn.Location())
	tolerance := start.Add(time.Duration(graceMinutes) * time.Minute)

	if !checkIn.After(tolerance) {
		return Lateness{}
	}

	minutes := int(checkIn.Sub(tolerance) / time.Minute)
	return Lateness{
		Minutes: minutes,
		Penalty: int64(minutes) * penaltyPerMinute,
	}
}
