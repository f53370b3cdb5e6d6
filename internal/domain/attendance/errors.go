package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in/out errors
	ErrAlreadyClockedIn = errors.New("an open punch already exists for this crew member today")
	ErrNoOpenPunch      = errors.New("no open punch found for this crew member")

	// General errors
	ErrPunchNotFound = errors.New("attendance punch not found")
)
