package memory

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Save(ctx context.Context, input SaveInput) (SaveOutput, error)
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}
