package attendance

import (
	"context"
	"time"
)

// Service defines business logic for the clock-in/clock-out flow.
type Service interface {
	// ClockIn opens a punch for the crew member's work day, computing the
	// lateness penalty as it does so. When an open punch already exists it
	// is returned alongside ErrAlreadyClockedIn so the caller can surface
	// the existing session.
	ClockIn(ctx context.Context, req ClockInRequest) (PunchResponse, error)

	// ClockOut closes the crew member's open punch, or returns
	// ErrNoOpenPunch.
	ClockOut(ctx context.Context, req ClockOutRequest) (PunchResponse, error)

	// List returns punches over a work-day range.
	List(ctx context.Context, from, to time.Time) ([]PunchResponse, error)

	// RecommendShift suggests the shift most likely being clocked into at
	// the given moment.
	RecommendShift(at time.Time) string
}
