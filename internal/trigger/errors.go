package trigger

import "errors"

var (
	// ErrNoQuestion means a wake phrase was found but nothing followed it.
	ErrNoQuestion = errors.New("no question after wake phrase")

	ErrInvalidMatchPolicy = errors.New("invalid trigger match policy")
	ErrInvalidExtraction  = errors.New("invalid trigger extraction strategy")
	ErrNoWakePhrases      = errors.New("no wake phrases configured")
)
