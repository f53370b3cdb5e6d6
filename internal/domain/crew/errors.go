package crew

import "errors"

// Crew domain errors
var (
	ErrMemberNotFound   = errors.New("crew member not found")
	ErrInvalidPayStatus = errors.New("invalid pay status")
	ErrAlreadyResigned  = errors.New("crew member has already resigned")
)
