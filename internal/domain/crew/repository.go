package crew

import "context"

// Repository defines data access for the crew roster.
type Repository interface {
	// Create inserts a new member and returns it with generated fields set.
	Create(ctx context.Context, member Member) (Member, error)

	// GetByID retrieves a member by id.
	GetByID(ctx context.Context, id string) (Member, error)

	// List returns the full roster, resigned members included.
	List(ctx context.Context) ([]Member, error)

	// Update persists mutable fields (name, position, pay status, shift,
	// rates and manual adjustments).
	Update(ctx context.Context, member Member) error

	// AddDeduction atomically increments the member's accumulated
	// deduction. Used by the lateness penalty path.
	AddDeduction(ctx context.Context, id string, amount int64) error
}
