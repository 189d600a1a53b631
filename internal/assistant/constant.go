package assistant

import "time"

// Poll policy defaults.
const (
	DefaultInitialDelay = 500 * time.Millisecond
	DefaultMaxDelay     = 4 * time.Second
	DefaultMultiplier   = 2.0
	DefaultMaxPolls     = 30

	// messages read back after completion
	replyLookback = 10
)

// Log prefixes
const (
	LogPrefixRun = "internal.assistant.Run"
)
