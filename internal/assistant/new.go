package assistant

import (
	"context"

	"omi-relay/internal/agent"
	"omi-relay/pkg/log"
	"omi-relay/pkg/openai"
)

// Runner drives the threads and runs protocol to a single answer.
type Runner interface {
	Run(ctx context.Context, prompt string) (Result, error)
}

type runner struct {
	api     openai.IAssistants
	tools   *agent.ToolRegistry
	cfg     Config
	sleeper Sleeper
	l       log.Logger
}

var _ Runner = (*runner)(nil)

// Option customises a runner.
type Option func(*runner)

// WithSleeper replaces the timer based sleeper.
func WithSleeper(s Sleeper) Option {
	return func(r *runner) {
		r.sleeper = s
	}
}

// New creates a runner. tools may be nil when no tool is registered.
func New(api openai.IAssistants, tools *agent.ToolRegistry, cfg Config, l log.Logger, opts ...Option) (*runner, error) {
	if cfg.AssistantID == "" {
		return nil, ErrMissingAssistantID
	}
	cfg.Backoff = cfg.Backoff.withDefaults()

	r := &runner{
		api:     api,
		tools:   tools,
		cfg:     cfg,
		sleeper: timerSleeper{},
		l:       l,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}
