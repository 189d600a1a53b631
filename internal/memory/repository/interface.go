package repository

import (
	"context"

	"omi-relay/internal/memory"
)

// Repository persists memories in a vector index. Embedding happens inside
// the repository so callers only deal with text.
type Repository interface {
	EnsureCollection(ctx context.Context) (bool, error)
	Upsert(ctx context.Context, m memory.Memory) (memory.Memory, error)
	Search(ctx context.Context, opt SearchOptions) ([]memory.Memory, error)
}

// SearchOptions defines search parameters.
type SearchOptions struct {
	UserID string
	Query  string
	Limit  int
}
