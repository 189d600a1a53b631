package relay

import (
	"time"

	"omi-relay/internal/model"
)

// --- UseCase Inputs ---

type ProcessInput struct {
	SessionID string
	// UserID receives the notification; empty means SessionID.
	UserID   string
	Segments []model.Segment
}

// --- UseCase Outputs ---

// Outcome describes what the relay did with one webhook call.
type Outcome struct {
	Status    string
	Reason    string
	SessionID string
	Question  string
	Answer    string
	Message   string
	Mode      string
}

// HelpGuide is the static usage guide.
type HelpGuide struct {
	Title       string
	Description string
	WakePhrases []string
	Usage       []string
	Examples    []string
	Commands    []Command
}

// Command is a spoken command recognised after the wake phrase.
type Command struct {
	Phrase      string
	Description string
}

// ConversationView is the cached context of one session.
type ConversationView struct {
	SessionID    string
	HasContext   bool
	MessageCount int
	Turns        []model.Turn
}

// Features lists the optional capabilities that are switched on.
type Features struct {
	Assistant    bool
	WebSearch    bool
	Memory       bool
	LLMProviders []string
}

// Capabilities is what GET /health advertises.
type Capabilities struct {
	WakePhrases  []string
	HelpKeywords []string
	MatchPolicy  string
	Extraction   string
	MaxTurns     int
	Features     Features
}

// RateLimitView mirrors ratelimit.Status for the delivery layer.
type RateLimitView struct {
	UserID          string
	LimitPerMinute  int
	Burst           int
	TokensRemaining float64
	AllowedTotal    int64
	RejectedTotal   int64
	LastSeen        *time.Time
}
