package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance punches.
type Repository interface {
	// CreateWithPenalty inserts a punch and, in the same transaction,
	// accumulates its penalty onto the crew member's running deduction.
	// Either both writes land or neither does.
	CreateWithPenalty(ctx context.Context, punch Punch) (Punch, error)

	// GetOpenPunch returns the open (no check-out) punch for a crew member
	// on a work day, or ErrNoOpenPunch.
	GetOpenPunch(ctx context.Context, crewID string, dateKey string) (Punch, error)

	// SetCheckOut closes a punch. It is a one-shot write: a punch that is
	// already closed is not touched.
	SetCheckOut(ctx context.Context, punchID string, at time.Time) error

	// ListByRange returns punches whose work day falls in [from, to].
	ListByRange(ctx context.Context, from, to time.Time) ([]Punch, error)

	// ListOpenBefore returns punches from work days strictly before the
	// given day that were never closed. Used by the auto-close job.
	ListOpenBefore(ctx context.Context, day time.Time) ([]Punch, error)
}
