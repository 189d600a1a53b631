package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Limiter decides whether a user may trigger another completion.
// Implementations are safe for concurrent use.
type Limiter interface {
	Allow(userID string) bool
	Status(userID string) Status
}

type bucket struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	allowed  int64
	rejected int64
	lastSeen time.Time
}

type limiter struct {
	cfg     Config
	rate    rate.Limit
	buckets *expirable.LRU[string, *bucket]
	mu      sync.Mutex // guards get-or-create on buckets
	now     func() time.Time
}

var _ Limiter = (*limiter)(nil)

// New creates a limiter. Idle users are forgotten after ten minutes.
func New(cfg Config) *limiter {
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = DefaultRequestsPerMin
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMin / 10
		if cfg.Burst < 1 {
			cfg.Burst = 1
		}
	}

	return &limiter{
		cfg:     cfg,
		rate:    rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		buckets: expirable.NewLRU[string, *bucket](maxTrackedUsers, nil, idleTTL),
		now:     time.Now,
	}
}

func (l *limiter) bucket(userID string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets.Get(userID)
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.rate, l.cfg.Burst)}
		l.buckets.Add(userID, b)
	}
	return b
}

// Allow consumes one token for userID.
func (l *limiter) Allow(userID string) bool {
	b := l.bucket(userID)
	now := l.now()
	ok := b.limiter.AllowN(now, 1)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastSeen = now
	if ok {
		b.allowed++
	} else {
		b.rejected++
	}
	return ok
}

// Status reports userID's bucket without consuming a token. Unknown users
// report a full bucket.
func (l *limiter) Status(userID string) Status {
	st := Status{
		UserID:          userID,
		LimitPerMinute:  l.cfg.RequestsPerMin,
		Burst:           l.cfg.Burst,
		TokensRemaining: float64(l.cfg.Burst),
	}

	b, ok := l.buckets.Peek(userID)
	if !ok {
		return st
	}

	st.TokensRemaining = b.limiter.TokensAt(l.now())
	if st.TokensRemaining < 0 {
		st.TokensRemaining = 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	st.AllowedTotal = b.allowed
	st.RejectedTotal = b.rejected
	if !b.lastSeen.IsZero() {
		seen := b.lastSeen
		st.LastSeen = &seen
	}
	return st
}
