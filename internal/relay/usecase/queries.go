package usecase

import (
	"strings"

	"omi-relay/internal/relay"
)

// Help returns the static usage guide.
func (uc *implUseCase) Help() relay.HelpGuide {
	cfg := uc.detector.Config()

	guide := relay.HelpGuide{
		Title:       "Omi voice assistant",
		Description: "Ask a question out loud and the answer is sent to your phone as a notification.",
		WakePhrases: append([]string(nil), cfg.WakePhrases...),
		Usage: []string{
			`Start with the wake phrase, then ask: "Hey Omi, <your question>".`,
			"You can also pause after the wake phrase and ask in the next sentence.",
			"Follow-up questions in the same conversation keep the last few answers as context.",
		},
		Examples: []string{
			"Hey Omi, what's 2+2?",
			"Hey Omi, what's the capital of France?",
		},
	}
	if uc.features.Memory {
		guide.Commands = append(guide.Commands, relay.Command{
			Phrase:      "Hey Omi, remember <something>",
			Description: "Stores a fact that later answers can use.",
		})
	}
	if uc.features.WebSearch {
		guide.Usage = append(guide.Usage, "Questions about recent events are answered with a web search.")
	}
	return guide
}

// Conversation returns the cached turns of sessionID.
func (uc *implUseCase) Conversation(sessionID string) relay.ConversationView {
	turns := uc.store.Get(sessionID)
	return relay.ConversationView{
		SessionID:    sessionID,
		HasContext:   len(turns) > 0,
		MessageCount: len(turns),
		Turns:        turns,
	}
}

// RateLimit returns the limiter counters of userID.
func (uc *implUseCase) RateLimit(userID string) (relay.RateLimitView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return relay.RateLimitView{}, relay.ErrMissingUserID
	}

	st := uc.limiter.Status(userID)
	return relay.RateLimitView{
		UserID:          st.UserID,
		LimitPerMinute:  st.LimitPerMinute,
		Burst:           st.Burst,
		TokensRemaining: st.TokensRemaining,
		AllowedTotal:    st.AllowedTotal,
		RejectedTotal:   st.RejectedTotal,
		LastSeen:        st.LastSeen,
	}, nil
}

// Capabilities describes the detector setup and enabled features.
func (uc *implUseCase) Capabilities() relay.Capabilities {
	cfg := uc.detector.Config()
	return relay.Capabilities{
		WakePhrases:  append([]string(nil), cfg.WakePhrases...),
		HelpKeywords: append([]string(nil), cfg.HelpKeywords...),
		MatchPolicy:  string(cfg.MatchPolicy),
		Extraction:   string(cfg.Extraction),
		MaxTurns:     uc.store.MaxTurns(),
		Features:     uc.features,
	}
}
