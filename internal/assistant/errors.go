package assistant

import "errors"

var (
	ErrRunFailed          = errors.New("assistant run failed")
	ErrPollLimitExceeded  = errors.New("assistant run did not finish within poll limit")
	ErrNoAssistantReply   = errors.New("assistant run completed without a reply")
	ErrUnexpectedStatus   = errors.New("unexpected assistant run status")
	ErrMissingAssistantID = errors.New("assistant id not configured")
)
