package crew

import "context"

// Service defines business logic for roster management. Members are never
// deleted; Resign flips the pay status and keeps history intact.
type Service interface {
	Create(ctx context.Context, req CreateMemberRequest) (MemberResponse, error)

	List(ctx context.Context) ([]MemberResponse, error)

	// Update applies owner edits, including manual bonus/deduction
	// corrections - the escape hatch for any disputed computed value.
	Update(ctx context.Context, req UpdateMemberRequest) (MemberResponse, error)

	Resign(ctx context.Context, id string) (MemberResponse, error)
}
