package usecase

import (
	"time"

	"omi-relay/internal/completion"
	"omi-relay/internal/conversation"
	"omi-relay/internal/memory"
	"omi-relay/internal/ratelimit"
	"omi-relay/internal/relay"
	"omi-relay/internal/trigger"
	pkgLog "omi-relay/pkg/log"
)

// Deps are the collaborators of the relay. Memory and Observer are optional.
type Deps struct {
	Detector  trigger.Detector
	Store     conversation.Store
	Completer completion.Client
	Notifier  relay.Notifier
	Limiter   ratelimit.Limiter
	Memory    memory.UseCase
	Observer  relay.OutcomeObserver
}

type implUseCase struct {
	l         pkgLog.Logger
	detector  trigger.Detector
	store     conversation.Store
	completer completion.Client
	notifier  relay.Notifier
	limiter   ratelimit.Limiter
	memory    memory.UseCase
	observer  relay.OutcomeObserver
	features  relay.Features
	memoryK   int
	now       func() time.Time
}

var _ relay.UseCase = (*implUseCase)(nil)

// New creates a new relay UseCase implementation.
// memoryK is the number of memories added to a prompt.
func New(l pkgLog.Logger, deps Deps, features relay.Features, memoryK int) *implUseCase {
	if memoryK <= 0 {
		memoryK = memory.DefaultTopK
	}
	features.Memory = features.Memory && deps.Memory != nil

	return &implUseCase{
		l:         l,
		detector:  deps.Detector,
		store:     deps.Store,
		completer: deps.Completer,
		notifier:  deps.Notifier,
		limiter:   deps.Limiter,
		memory:    deps.Memory,
		observer:  deps.Observer,
		features:  features,
		memoryK:   memoryK,
		now:       time.Now,
	}
}
