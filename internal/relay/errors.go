package relay

import "errors"

var (
	ErrMissingSessionID = errors.New("session_id is required")
	ErrMissingSegments  = errors.New("segments is required")
	ErrEmptySegments    = errors.New("segments must not be empty")
	ErrMissingUserID    = errors.New("user id is required")
)
