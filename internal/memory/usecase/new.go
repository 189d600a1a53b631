package usecase

import (
	"omi-relay/internal/memory"
	"omi-relay/internal/memory/repository"
	"omi-relay/pkg/log"
)

// implUseCase is the private implementation of memory.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	topK int
}

var _ memory.UseCase = (*implUseCase)(nil)

// New creates a new memory UseCase implementation.
// topK is the result count used when a search does not ask for one.
func New(repo repository.Repository, l log.Logger, topK int) *implUseCase {
	if topK <= 0 {
		topK = memory.DefaultTopK
	}
	return &implUseCase{
		repo: repo,
		l:    l,
		topK: topK,
	}
}
