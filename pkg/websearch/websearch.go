package websearch

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	pkgErrors "omi-relay/pkg/errors"
)

// ErrEmptyQuery is returned when Search is called with a blank query.
var ErrEmptyQuery = errors.New("websearch: query is required")

// Client wraps the Custom Search JSON API service.
type Client struct {
	service    *customsearch.Service
	engineID   string
	maxResults int
}

// New creates a search client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, pkgErrors.NewConfig("WEB_SEARCH_API_KEY")
	}
	if cfg.EngineID == "" {
		return nil, pkgErrors.NewConfig("WEB_SEARCH_ENGINE_ID")
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}

	return &Client{
		service:    svc,
		engineID:   cfg.EngineID,
		maxResults: cfg.MaxResults,
	}, nil
}

// Search returns at most limit results; limit <= 0 uses the configured default.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = c.maxResults
	}
	if limit > maxResultsCap {
		limit = maxResultsCap
	}

	resp, err := c.service.Cse.List().
		Cx(c.engineID).
		Q(query).
		Num(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError(ctx, err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}

func mapError(ctx context.Context, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return pkgErrors.NewUpstream(serviceName, apiErr.Code, []byte(apiErr.Body))
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return pkgErrors.NewNetwork(serviceName, err)
}
