package shift

import "errors"

var (
	ErrUnknownShift = errors.New("unknown shift id")
)
