package ratelimit

import "time"

const (
	DefaultRequestsPerMin = 20

	maxTrackedUsers = 1000
	idleTTL         = 10 * time.Minute
)

// Config sizes the per-user bucket.
type Config struct {
	RequestsPerMin int
	// Burst defaults to a tenth of RequestsPerMin, at least 1.
	Burst int
}

// Status is a point-in-time view of one user's bucket.
type Status struct {
	UserID          string
	LimitPerMinute  int
	Burst           int
	TokensRemaining float64
	AllowedTotal    int64
	RejectedTotal   int64
	LastSeen        *time.Time
}
