package tools

import (
	"context"
	"fmt"

	"omi-relay/internal/agent"
	"omi-relay/pkg/websearch"
)

// WebSearchToolName is the function name advertised to the model.
const WebSearchToolName = "web_search"

// WebSearchTool looks up current information on the web.
type WebSearchTool struct {
	searcher   websearch.ISearcher
	maxResults int
}

// NewWebSearchTool creates a new web search tool.
func NewWebSearchTool(searcher websearch.ISearcher, maxResults int) agent.Tool {
	if maxResults <= 0 {
		maxResults = websearch.DefaultMaxResults
	}
	return &WebSearchTool{searcher: searcher, maxResults: maxResults}
}

func (t *WebSearchTool) Name() string {
	return WebSearchToolName
}

func (t *WebSearchTool) Description() string {
	return "Search the web for current information such as news, weather, prices or facts after your training data. Returns titles, links and snippets."
}

func (t *WebSearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query",
			},
		},
		"required": []string{"query"},
	}
}

func (t *WebSearchTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	results, err := t.searcher.Search(ctx, query, t.maxResults)
	if err != nil {
		return nil, fmt.Errorf("web search failed: %w", err)
	}

	return map[string]interface{}{
		"query":   query,
		"results": results,
		"count":   len(results),
	}, nil
}
