package websearch

import "context"

// ISearcher runs a web search and returns the top hits.
// Implementations are safe for concurrent use.
type ISearcher interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
}
