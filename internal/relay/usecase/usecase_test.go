package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"omi-relay/internal/completion"
	"omi-relay/internal/conversation"
	"omi-relay/internal/memory"
	"omi-relay/internal/model"
	"omi-relay/internal/ratelimit"
	"omi-relay/internal/relay"
	"omi-relay/internal/trigger"
	pkgErrors "omi-relay/pkg/errors"
	pkgLog "omi-relay/pkg/log"
)

type fakeCompleter struct {
	answer string
	err    error
	calls  []completion.Input
}

func (f *fakeCompleter) Complete(ctx context.Context, in completion.Input) (completion.Output, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return completion.Output{}, f.err
	}
	return completion.Output{Answer: f.answer, Mode: completion.ModeChat}, nil
}

type sent struct{ uid, message string }

type fakeNotifier struct {
	err  error
	sent []sent
}

func (f *fakeNotifier) SendNotification(ctx context.Context, uid, message string) error {
	f.sent = append(f.sent, sent{uid, message})
	return f.err
}

type fakeMemory struct {
	saved     []memory.SaveInput
	searchOut memory.SearchOutput
	searchErr error
	searches  int
}

func (f *fakeMemory) Save(ctx context.Context, in memory.SaveInput) (memory.SaveOutput, error) {
	f.saved = append(f.saved, in)
	return memory.SaveOutput{Memory: memory.Memory{UserID: in.UserID, Content: in.Content}}, nil
}

func (f *fakeMemory) Search(ctx context.Context, in memory.SearchInput) (memory.SearchOutput, error) {
	f.searches++
	return f.searchOut, f.searchErr
}

type countingObserver struct{ seen map[string]int }

func (o *countingObserver) ObserveOutcome(status string) { o.seen[status]++ }

type fixture struct {
	uc        *implUseCase
	completer *fakeCompleter
	notifier  *fakeNotifier
	memory    *fakeMemory
	store     conversation.Store
	observer  *countingObserver
}

func newFixture(t *testing.T, limit ratelimit.Config, withMemory bool) *fixture {
	t.Helper()
	det, err := trigger.New(trigger.Config{})
	if err != nil {
		t.Fatalf("trigger.New: %v", err)
	}
	store, err := conversation.New(conversation.Config{MaxTurns: 2})
	if err != nil {
		t.Fatalf("conversation.New: %v", err)
	}

	f := &fixture{
		completer: &fakeCompleter{answer: "4"},
		notifier:  &fakeNotifier{},
		store:     store,
		observer:  &countingObserver{seen: map[string]int{}},
	}
	deps := Deps{
		Detector:  det,
		Store:     store,
		Completer: f.completer,
		Notifier:  f.notifier,
		Limiter:   ratelimit.New(limit),
		Observer:  f.observer,
	}
	if withMemory {
		f.memory = &fakeMemory{}
		deps.Memory = f.memory
	}
	f.uc = New(pkgLog.NewNop(), deps, relay.Features{Memory: withMemory}, 2)
	f.uc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func segs(texts ...string) []model.Segment {
	out := make([]model.Segment, len(texts))
	for i, s := range texts {
		out[i] = model.Segment{Text: s}
	}
	return out
}

func (f *fixture) assertNoOutbound(t *testing.T) {
	t.Helper()
	if len(f.completer.calls) != 0 || len(f.notifier.sent) != 0 {
		t.Errorf("outbound calls: completion=%d notification=%d", len(f.completer.calls), len(f.notifier.sent))
	}
}

func TestProcess_Validation(t *testing.T) {
	f := newFixture(t, ratelimit.Config{}, false)
	tests := []struct {
		name  string
		input relay.ProcessInput
		want  error
	}{
		{name: "missing session", input: relay.ProcessInput{Segments: segs("hey omi, hi")}, want: relay.ErrMissingSessionID},
		{name: "blank session", input: relay.ProcessInput{SessionID: "  ", Segments: segs("x")}, want: relay.ErrMissingSessionID},
		{name: "missing segments", input: relay.ProcessInput{SessionID: "s1"}, want: relay.ErrMissingSegments},
		{name: "empty segments", input: relay.ProcessInput{SessionID: "s1", Segments: []model.Segment{}}, want: relay.ErrEmptySegments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.Process(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	f.assertNoOutbound(t)
}

func TestProcess_EarlyExits(t *testing.T) {
	t.Run("no trigger is ignored", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		out, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("just chatting about lunch")})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Status != relay.StatusIgnored || out.Reason != relay.ReasonNoTrigger {
			t.Errorf("out = %+v", out)
		}
		f.assertNoOutbound(t)
		if f.observer.seen[relay.StatusIgnored] != 1 {
			t.Errorf("observer = %v", f.observer.seen)
		}
	})

	t.Run("help only", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		out, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("I need some help here")})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Status != relay.StatusHelp || out.Message != relay.HelpMessage {
			t.Errorf("out = %+v", out)
		}
		f.assertNoOutbound(t)
	})

	t.Run("wake phrase without question", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		out, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("Hey Omi,")})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Status != relay.StatusIgnored || out.Reason != relay.ReasonNoQuestion {
			t.Errorf("out = %+v", out)
		}
		f.assertNoOutbound(t)
	})

	t.Run("rate limited", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{RequestsPerMin: 1, Burst: 1}, false)
		in := relay.ProcessInput{SessionID: "s1", Segments: segs("Hey Omi, what's 2+2?")}
		if _, err := f.uc.Process(context.Background(), in); err != nil {
			t.Fatalf("first Process: %v", err)
		}

		out, err := f.uc.Process(context.Background(), in)
		if err != nil {
			t.Fatalf("second Process: %v", err)
		}
		if out.Status != relay.StatusRateLimited {
			t.Errorf("out = %+v", out)
		}
		if len(f.completer.calls) != 1 || len(f.notifier.sent) != 1 {
			t.Errorf("second request reached downstream")
		}
		if st, _ := f.uc.RateLimit("s1"); st.RejectedTotal != 1 {
			t.Errorf("RateLimit = %+v", st)
		}
	})
}

func TestProcess_Answered(t *testing.T) {
	t.Run("same segment question", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		out, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("Hey Omi, what's 2+2?")})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Status != relay.StatusAnswered || out.Question != "what's 2+2?" || out.Answer != "4" {
			t.Errorf("out = %+v", out)
		}
		if len(f.notifier.sent) != 1 || f.notifier.sent[0] != (sent{"s1", "4"}) {
			t.Errorf("sent = %+v", f.notifier.sent)
		}
		turns := f.store.Get("s1")
		if len(turns) != 1 || turns[0].Question != "what's 2+2?" || turns[0].Answer != "4" {
			t.Errorf("turns = %+v", turns)
		}
	})

	t.Run("question in later segment", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		out, err := f.uc.Process(context.Background(), relay.ProcessInput{
			SessionID: "s1",
			Segments:  segs("Hey Omi", "what's the capital of France?"),
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Question != "what's the capital of France?" {
			t.Errorf("Question = %q", out.Question)
		}
	})

	t.Run("uid overrides notification target", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		_, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", UserID: "user-9", Segments: segs("hey omi what time is it")})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if f.notifier.sent[0].uid != "user-9" || f.completer.calls[0].UserID != "user-9" {
			t.Errorf("sent = %+v, input = %+v", f.notifier.sent, f.completer.calls[0])
		}
	})

	t.Run("history is passed and capped", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{RequestsPerMin: 600, Burst: 10}, false)
		for _, q := range []string{"one", "two", "three"} {
			if _, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("hey omi, " + q)}); err != nil {
				t.Fatalf("Process(%s): %v", q, err)
			}
		}
		if got := f.completer.calls[2].History; len(got) != 2 || got[0].Question != "one" {
			t.Errorf("history of third call = %+v", got)
		}
		view := f.uc.Conversation("s1")
		if !view.HasContext || view.MessageCount != 2 || view.Turns[0].Question != "two" || view.Turns[1].Question != "three" {
			t.Errorf("Conversation = %+v", view)
		}
	})
}

func TestProcess_DownstreamFailures(t *testing.T) {
	t.Run("completion failure keeps upstream details", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		f.completer.err = pkgErrors.NewUpstream("openai", 500, []byte("boom"))

		_, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("hey omi, hi")})
		if ue, ok := pkgErrors.AsUpstream(err); !ok || ue.StatusCode != 500 {
			t.Fatalf("err = %v", err)
		}
		if len(f.notifier.sent) != 0 || len(f.store.Get("s1")) != 0 {
			t.Errorf("side effects after failed completion")
		}
		if f.observer.seen[relay.OutcomeError] != 1 {
			t.Errorf("observer = %v, want one %s", f.observer.seen, relay.OutcomeError)
		}
	})

	t.Run("notification 401 is not retried", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		f.notifier.err = pkgErrors.NewUpstream("omi", 401, []byte(`{"detail":"invalid key"}`))

		_, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("hey omi, hi")})
		ue, ok := pkgErrors.AsUpstream(err)
		if !ok || ue.StatusCode != 401 || ue.Body != `{"detail":"invalid key"}` {
			t.Fatalf("err = %v", err)
		}
		if len(f.notifier.sent) != 1 {
			t.Errorf("notification attempts = %d, want 1", len(f.notifier.sent))
		}
		if f.observer.seen[relay.OutcomeError] != 1 || f.observer.seen[relay.StatusAnswered] != 0 {
			t.Errorf("observer = %v", f.observer.seen)
		}
	})
}

func TestProcess_Memory(t *testing.T) {
	t.Run("remember command saves", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, true)
		out, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("Hey Omi, remember that I park on level 3")})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Status != relay.StatusRemembered {
			t.Errorf("out = %+v", out)
		}
		if len(f.memory.saved) != 1 || f.memory.saved[0].Content != "I park on level 3" || f.memory.saved[0].UserID != "s1" {
			t.Errorf("saved = %+v", f.memory.saved)
		}
		if len(f.completer.calls) != 0 || len(f.notifier.sent) != 1 {
			t.Errorf("completion=%d notification=%d", len(f.completer.calls), len(f.notifier.sent))
		}
	})

	t.Run("memories enrich the prompt", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, true)
		f.memory.searchOut = memory.SearchOutput{Memories: []memory.Memory{{Content: "parks on level 3"}}}

		if _, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("hey omi where did I park")}); err != nil {
			t.Fatalf("Process: %v", err)
		}
		if got := f.completer.calls[0].Memories; len(got) != 1 || got[0] != "parks on level 3" {
			t.Errorf("Memories = %v", got)
		}
	})

	t.Run("memory search failure is tolerated", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, true)
		f.memory.searchErr = pkgErrors.NewNetwork("qdrant", errors.New("refused"))

		out, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("hey omi, hi")})
		if err != nil || out.Status != relay.StatusAnswered {
			t.Fatalf("out = %+v, err = %v", out, err)
		}
	})

	t.Run("remember without memory feature is a question", func(t *testing.T) {
		f := newFixture(t, ratelimit.Config{}, false)
		out, err := f.uc.Process(context.Background(), relay.ProcessInput{SessionID: "s1", Segments: segs("hey omi, remember to buy milk")})
		if err != nil || out.Status != relay.StatusAnswered {
			t.Fatalf("out = %+v, err = %v", out, err)
		}
	})
}

func TestRememberContent(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "remember I like tea", want: "I like tea", wantOK: true},
		{in: "Remember, that the door code is 42", want: "the door code is 42", wantOK: true},
		{in: "remember", wantOK: false},
		{in: "do you remember me", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := rememberContent(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("rememberContent(%q) = %q, %v", tt.in, got, ok)
			}
		})
	}
}

func TestQueries(t *testing.T) {
	f := newFixture(t, ratelimit.Config{}, true)

	caps := f.uc.Capabilities()
	if caps.MatchPolicy != string(trigger.MatchWordBoundary) || caps.MaxTurns != 2 || !caps.Features.Memory {
		t.Errorf("Capabilities = %+v", caps)
	}
	if len(caps.WakePhrases) != len(trigger.DefaultWakePhrases) {
		t.Errorf("WakePhrases = %v", caps.WakePhrases)
	}

	help := f.uc.Help()
	if len(help.Commands) != 1 || len(help.Examples) == 0 {
		t.Errorf("Help = %+v", help)
	}

	if view := f.uc.Conversation("unknown"); view.HasContext || view.MessageCount != 0 {
		t.Errorf("Conversation = %+v", view)
	}

	if _, err := f.uc.RateLimit(" "); !errors.Is(err, relay.ErrMissingUserID) {
		t.Errorf("err = %v", err)
	}
}
