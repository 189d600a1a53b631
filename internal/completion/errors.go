package completion

import "errors"

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrEmptyAnswer   = errors.New("model returned an empty answer")
)
