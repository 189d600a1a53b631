package usecase

import (
	"context"
	"strings"

	"omi-relay/internal/memory"
)

// Save stores one memory for a user.
func (uc *implUseCase) Save(ctx context.Context, input memory.SaveInput) (memory.SaveOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	content := strings.TrimSpace(input.Content)
	if userID == "" {
		return memory.SaveOutput{}, memory.ErrMissingUserID
	}
	if content == "" {
		return memory.SaveOutput{}, memory.ErrEmptyContent
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = memory.DefaultCategory
	}

	m, err := uc.repo.Upsert(ctx, memory.Memory{
		UserID:   userID,
		Content:  content,
		Category: category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save Upsert: %v", err)
		return memory.SaveOutput{}, err
	}

	return memory.SaveOutput{Memory: m}, nil
}
