package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"omi-relay/internal/completion"
	"omi-relay/internal/memory"
	"omi-relay/internal/model"
	"omi-relay/internal/relay"
	"omi-relay/internal/trigger"
)

// Process runs one transcript through detection, extraction, completion and
// notification. Early exits (ignored, help, rate limited) make no outbound call.
func (uc *implUseCase) Process(ctx context.Context, input relay.ProcessInput) (relay.Outcome, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return relay.Outcome{}, relay.ErrMissingSessionID
	}
	if input.Segments == nil {
		return relay.Outcome{}, relay.ErrMissingSegments
	}
	if len(input.Segments) == 0 {
		return relay.Outcome{}, relay.ErrEmptySegments
	}

	out, err := uc.process(ctx, sessionID, input)
	if err != nil {
		uc.observe(relay.OutcomeError)
		return relay.Outcome{}, err
	}
	uc.observe(out.Status)
	return out, nil
}

func (uc *implUseCase) observe(status string) {
	if uc.observer != nil {
		uc.observer.ObserveOutcome(status)
	}
}

func (uc *implUseCase) process(ctx context.Context, sessionID string, input relay.ProcessInput) (relay.Outcome, error) {
	det := uc.detector.Detect(model.Transcript(input.Segments))
	if det.Ignored() {
		return relay.Outcome{Status: relay.StatusIgnored, Reason: relay.ReasonNoTrigger, SessionID: sessionID}, nil
	}
	if det.HelpOnly() {
		return relay.Outcome{Status: relay.StatusHelp, SessionID: sessionID, Message: relay.HelpMessage}, nil
	}

	question, err := uc.detector.Extract(input.Segments)
	if errors.Is(err, trigger.ErrNoQuestion) {
		return relay.Outcome{Status: relay.StatusIgnored, Reason: relay.ReasonNoQuestion, SessionID: sessionID}, nil
	}
	if err != nil {
		return relay.Outcome{}, err
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		userID = sessionID
	}

	if !uc.limiter.Allow(userID) {
		uc.l.Warnf(ctx, "relay.usecase.Process: rate limit exceeded for %s", userID)
		return relay.Outcome{
			Status:    relay.StatusRateLimited,
			SessionID: sessionID,
			Question:  question,
			Message:   relay.RateLimitedMessage,
		}, nil
	}

	if content, ok := rememberContent(question); ok && uc.features.Memory {
		return uc.remember(ctx, sessionID, userID, question, content)
	}

	return uc.answer(ctx, sessionID, userID, question)
}

func (uc *implUseCase) answer(ctx context.Context, sessionID, userID, question string) (relay.Outcome, error) {
	result, err := uc.completer.Complete(ctx, completion.Input{
		UserID:   userID,
		Question: question,
		History:  uc.store.Get(sessionID),
		Memories: uc.relatedMemories(ctx, userID, question),
	})
	if err != nil {
		return relay.Outcome{}, fmt.Errorf("completion: %w", err)
	}

	uc.store.Append(sessionID, model.Turn{
		Question:  question,
		Answer:    result.Answer,
		Timestamp: uc.now(),
	})

	if err := uc.notifier.SendNotification(ctx, userID, result.Answer); err != nil {
		return relay.Outcome{}, fmt.Errorf("notification: %w", err)
	}

	uc.l.Infof(ctx, "relay.usecase.Process: answered session %s via %s", sessionID, result.Mode)
	return relay.Outcome{
		Status:    relay.StatusAnswered,
		SessionID: sessionID,
		Question:  question,
		Answer:    result.Answer,
		Mode:      string(result.Mode),
	}, nil
}

func (uc *implUseCase) remember(ctx context.Context, sessionID, userID, question, content string) (relay.Outcome, error) {
	if _, err := uc.memory.Save(ctx, memory.SaveInput{UserID: userID, Content: content}); err != nil {
		return relay.Outcome{}, fmt.Errorf("memory: %w", err)
	}

	msg := fmt.Sprintf(relay.RememberedTemplate, content)
	if err := uc.notifier.SendNotification(ctx, userID, msg); err != nil {
		return relay.Outcome{}, fmt.Errorf("notification: %w", err)
	}

	return relay.Outcome{
		Status:    relay.StatusRemembered,
		SessionID: sessionID,
		Question:  question,
		Message:   msg,
	}, nil
}

// relatedMemories is best effort: a failing memory backend must not block
// an answer.
func (uc *implUseCase) relatedMemories(ctx context.Context, userID, question string) []string {
	if !uc.features.Memory {
		return nil
	}

	out, err := uc.memory.Search(ctx, memory.SearchInput{UserID: userID, Query: question, Limit: uc.memoryK})
	if err != nil {
		uc.l.Warnf(ctx, "relay.usecase.Process: memory search failed: %v", err)
		return nil
	}

	contents := make([]string, 0, len(out.Memories))
	for _, m := range out.Memories {
		contents = append(contents, m.Content)
	}
	return contents
}

// rememberContent reports whether question is a "remember ..." command and
// returns the text to store.
func rememberContent(question string) (string, bool) {
	fields := strings.Fields(question)
	if len(fields) < 2 {
		return "", false
	}
	if strings.ToLower(strings.TrimRight(fields[0], ",.:;!")) != relay.RememberCommand {
		return "", false
	}

	content := strings.TrimSpace(strings.Join(fields[1:], " "))
	if strings.HasPrefix(strings.ToLower(content), "that ") {
		content = strings.TrimSpace(content[len("that "):])
	}
	if content == "" {
		return "", false
	}
	return content, true
}
