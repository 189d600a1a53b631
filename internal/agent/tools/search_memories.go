package tools

import (
	"context"
	"fmt"

	"omi-relay/internal/agent"
	"omi-relay/internal/memory"
)

// SearchMemoriesToolName is the function name advertised to the model.
const SearchMemoriesToolName = "search_memories"

// SearchMemoriesTool lets the model recall what the current user asked it to remember.
type SearchMemoriesTool struct {
	uc memory.UseCase
}

// NewSearchMemoriesTool creates a new memory search tool.
func NewSearchMemoriesTool(uc memory.UseCase) agent.Tool {
	return &SearchMemoriesTool{uc: uc}
}

func (t *SearchMemoriesTool) Name() string {
	return SearchMemoriesToolName
}

func (t *SearchMemoriesTool) Description() string {
	return "Search the user's saved memories using natural language. Returns matching memories with similarity scores."
}

func (t *SearchMemoriesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Natural language search query",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results (default 3)",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchMemoriesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	userID := agent.UserIDFromContext(ctx)
	if userID == "" {
		return nil, fmt.Errorf("no user in context")
	}

	limit := 0
	if l, ok := params["limit"].(float64); ok {
		limit = int(l)
	}

	output, err := t.uc.Search(ctx, memory.SearchInput{
		UserID: userID,
		Query:  query,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("memory search failed: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(output.Memories))
	for _, m := range output.Memories {
		results = append(results, map[string]interface{}{
			"content":  m.Content,
			"category": m.Category,
			"score":    m.Score,
		})
	}

	return map[string]interface{}{
		"results": results,
		"count":   len(results),
	}, nil
}
