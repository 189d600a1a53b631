package completion

import (
	"context"

	"omi-relay/internal/assistant"
	"omi-relay/pkg/llmprovider"
)

// Client turns a question into an answer.
type Client interface {
	Complete(ctx context.Context, input Input) (Output, error)
}

// Generator is the single-shot chat surface; *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

var (
	_ Generator = (*llmprovider.Manager)(nil)
	_ Runner    = (assistant.Runner)(nil)
)

// Runner is the assistant-mode surface.
type Runner interface {
	Run(ctx context.Context, prompt string) (assistant.Result, error)
}
