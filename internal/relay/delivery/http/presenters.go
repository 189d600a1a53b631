package http

import (
	"time"

	"omi-relay/internal/model"
	"omi-relay/internal/relay"
)

// --- Request DTOs ---

// webhookReq is the transcript event posted by Omi.
type webhookReq struct {
	SessionID string          `json:"session_id"`
	Segments  []model.Segment `json:"segments"`
}

func (r webhookReq) toInput(uid string) relay.ProcessInput {
	return relay.ProcessInput{
		SessionID: r.SessionID,
		UserID:    uid,
		Segments:  r.Segments,
	}
}

// --- Response DTOs ---

type outcomeResp struct {
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	SessionID string `json:"session_id"`
	Question  string `json:"question,omitempty"`
	Answer    string `json:"answer,omitempty"`
	Message   string `json:"message,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

func (h *handler) newOutcomeResp(o relay.Outcome) outcomeResp {
	return outcomeResp{
		Status:    o.Status,
		Reason:    o.Reason,
		SessionID: o.SessionID,
		Question:  o.Question,
		Answer:    o.Answer,
		Message:   o.Message,
		Mode:      o.Mode,
	}
}

type commandResp struct {
	Phrase      string `json:"phrase"`
	Description string `json:"description"`
}

type helpResp struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	WakePhrases []string      `json:"wake_phrases"`
	Usage       []string      `json:"usage"`
	Examples    []string      `json:"examples"`
	Commands    []commandResp `json:"commands,omitempty"`
}

func (h *handler) newHelpResp(g relay.HelpGuide) helpResp {
	cmds := make([]commandResp, 0, len(g.Commands))
	for _, c := range g.Commands {
		cmds = append(cmds, commandResp{Phrase: c.Phrase, Description: c.Description})
	}
	return helpResp{
		Title:       g.Title,
		Description: g.Description,
		WakePhrases: g.WakePhrases,
		Usage:       g.Usage,
		Examples:    g.Examples,
		Commands:    cmds,
	}
}

type turnResp struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

type conversationResp struct {
	SessionID    string     `json:"session_id"`
	HasContext   bool       `json:"has_context"`
	MessageCount int        `json:"message_count"`
	Context      []turnResp `json:"context"`
}

func (h *handler) newConversationResp(v relay.ConversationView) conversationResp {
	turns := make([]turnResp, len(v.Turns))
	for i, t := range v.Turns {
		turns[i] = turnResp{Question: t.Question, Answer: t.Answer, Timestamp: t.Timestamp}
	}
	return conversationResp{
		SessionID:    v.SessionID,
		HasContext:   v.HasContext,
		MessageCount: v.MessageCount,
		Context:      turns,
	}
}

type rateLimitResp struct {
	UserID          string     `json:"user_id"`
	LimitPerMinute  int        `json:"limit_per_minute"`
	Burst           int        `json:"burst"`
	TokensRemaining float64    `json:"tokens_remaining"`
	AllowedTotal    int64      `json:"allowed_total"`
	RejectedTotal   int64      `json:"rejected_total"`
	LastSeen        *time.Time `json:"last_seen,omitempty"`
}

func (h *handler) newRateLimitResp(v relay.RateLimitView) rateLimitResp {
	return rateLimitResp{
		UserID:          v.UserID,
		LimitPerMinute:  v.LimitPerMinute,
		Burst:           v.Burst,
		TokensRemaining: v.TokensRemaining,
		AllowedTotal:    v.AllowedTotal,
		RejectedTotal:   v.RejectedTotal,
		LastSeen:        v.LastSeen,
	}
}
