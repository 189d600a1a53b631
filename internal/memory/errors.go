package memory

import "errors"

var (
	ErrMissingUserID = errors.New("user_id is required")
	ErrEmptyContent  = errors.New("content is required")
	ErrEmptyQuery    = errors.New("query is required")
)
