package usecase

import (
	"context"
	"sort"
	"strings"

	"omi-relay/internal/memory"
	"omi-relay/internal/memory/repository"
)

// Search returns the user's memories closest to the query, best first.
func (uc *implUseCase) Search(ctx context.Context, input memory.SearchInput) (memory.SearchOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	query := strings.TrimSpace(input.Query)
	if userID == "" {
		return memory.SearchOutput{}, memory.ErrMissingUserID
	}
	if query == "" {
		return memory.SearchOutput{}, memory.ErrEmptyQuery
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.topK
	}
	if limit > memory.MaxSearchLimit {
		limit = memory.MaxSearchLimit
	}

	results, err := uc.repo.Search(ctx, repository.SearchOptions{
		UserID: userID,
		Query:  query,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search: %v", err)
		return memory.SearchOutput{}, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return memory.SearchOutput{Memories: results}, nil
}
