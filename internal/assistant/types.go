package assistant

import (
	"context"
	"math"
	"time"
)

// State is a step of an assistant run as seen by the relay.
type State string

const (
	StateSubmitted          State = "submitted"
	StateAwaitingModel      State = "awaiting_model"
	StateAwaitingToolResult State = "awaiting_tool_result"
	StateCompleted          State = "completed"
	StateFailed             State = "failed"
)

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Backoff is a bounded exponential poll policy.
type Backoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// MaxPolls caps status reads plus tool output submissions for one run.
	MaxPolls int
}

// DefaultBackoff returns the default poll policy.
func DefaultBackoff() Backoff {
	return Backoff{
		InitialDelay: DefaultInitialDelay,
		MaxDelay:     DefaultMaxDelay,
		Multiplier:   DefaultMultiplier,
		MaxPolls:     DefaultMaxPolls,
	}
}

func (b Backoff) withDefaults() Backoff {
	def := DefaultBackoff()
	if b.InitialDelay <= 0 {
		b.InitialDelay = def.InitialDelay
	}
	if b.MaxDelay <= 0 {
		b.MaxDelay = def.MaxDelay
	}
	if b.MaxDelay < b.InitialDelay {
		b.MaxDelay = b.InitialDelay
	}
	if b.Multiplier < 1 {
		b.Multiplier = def.Multiplier
	}
	if b.MaxPolls <= 0 {
		b.MaxPolls = def.MaxPolls
	}
	return b
}

// Delay returns the wait before poll number attempt (0-based).
func (b Backoff) Delay(attempt int) time.Duration {
	d := float64(b.InitialDelay) * math.Pow(b.Multiplier, float64(attempt))
	if d > float64(b.MaxDelay) {
		return b.MaxDelay
	}
	return time.Duration(d)
}

// Sleeper waits between polls. Tests inject one that returns immediately.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Config configures the runner.
type Config struct {
	AssistantID  string
	Instructions string // optional additional instructions per run
	Backoff      Backoff
}

// Result is the outcome of a run.
type Result struct {
	Answer      string
	ThreadID    string
	RunID       string
	Transitions []State
	Polls       int
	ToolCalls   int
}
