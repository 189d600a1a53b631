package relay

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (Outcome, error)
	Help() HelpGuide
	Conversation(sessionID string) ConversationView
	RateLimit(userID string) (RateLimitView, error)
	Capabilities() Capabilities
}

// Notifier delivers an answer to a user. One call is one delivery attempt.
type Notifier interface {
	SendNotification(ctx context.Context, uid, message string) error
}

// OutcomeObserver is told the status of every processed webhook.
type OutcomeObserver interface {
	ObserveOutcome(status string)
}
