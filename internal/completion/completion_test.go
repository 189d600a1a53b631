package completion

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"omi-relay/internal/agent"
	"omi-relay/internal/assistant"
	"omi-relay/internal/model"
	pkgErrors "omi-relay/pkg/errors"
	"omi-relay/pkg/llmprovider"
	"omi-relay/pkg/log"
)

type scriptedLLM struct {
	responses []*llmprovider.Response
	err       error
	requests  []llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	// copy, the client keeps appending to req.Messages
	cp := *req
	cp.Messages = append([]llmprovider.Message(nil), req.Messages...)
	s.requests = append(s.requests, cp)
	if s.err != nil {
		return nil, s.err
	}
	i := len(s.requests) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i], nil
}

func text(answer string) *llmprovider.Response {
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Text: answer},
		ProviderName: "openai",
		ModelName:    "gpt-4o-mini",
	}
}

func toolCall(id, name string, args map[string]interface{}) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:          "assistant",
			FunctionCalls: []llmprovider.FunctionCall{{ID: id, Name: name, Args: args}},
		},
		ProviderName: "openai",
	}
}

type searchTool struct {
	err      error
	gotUser  string
	gotQuery interface{}
}

func (s *searchTool) Name() string                       { return "web_search" }
func (s *searchTool) Description() string                { return "search" }
func (s *searchTool) Parameters() map[string]interface{} { return map[string]interface{}{"type": "object"} }
func (s *searchTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	s.gotUser = agent.UserIDFromContext(ctx)
	s.gotQuery = params["query"]
	if s.err != nil {
		return nil, s.err
	}
	return []string{"result"}, nil
}

type fakeRunner struct {
	res       assistant.Result
	err       error
	gotPrompt string
}

func (f *fakeRunner) Run(ctx context.Context, prompt string) (assistant.Result, error) {
	f.gotPrompt = prompt
	return f.res, f.err
}

func registry(tools ...agent.Tool) *agent.ToolRegistry {
	r := agent.NewToolRegistry()
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

func TestBuildPrompt(t *testing.T) {
	t.Run("bare question", func(t *testing.T) {
		if got := BuildPrompt(Input{Question: "What time is it?"}); got != "What time is it?" {
			t.Errorf("BuildPrompt = %q", got)
		}
	})

	t.Run("memories and history", func(t *testing.T) {
		got := BuildPrompt(Input{
			Question: "And tomorrow?",
			History:  []model.Turn{{Question: "Weather today?", Answer: "Sunny.", Timestamp: time.Now()}},
			Memories: []string{"Lives in Lisbon", "  "},
		})
		want := "Things you remember about the user:\n- Lives in Lisbon\n\n" +
			"Previous conversation:\nQ: Weather today?\nA: Sunny.\n\n" +
			"Question: And tomorrow?"
		if got != want {
			t.Errorf("BuildPrompt =\n%q\nwant\n%q", got, want)
		}
	})
}

func TestComplete(t *testing.T) {
	cfg := Config{SystemPrompt: "be brief", MaxTokens: 150, Temperature: 0.5, MaxToolSteps: 2}

	t.Run("single shot", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("  Paris.  ")}}
		c := New(llm, nil, nil, cfg, log.NewNop())

		out, err := c.Complete(context.Background(), Input{UserID: "u1", Question: "Capital of France?"})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if out.Answer != "Paris." || out.Mode != ModeChat || out.Provider != "openai" {
			t.Errorf("out = %+v", out)
		}
		req := llm.requests[0]
		if req.SystemInstruction != "be brief" || req.MaxTokens != 150 || req.Temperature != 0.5 {
			t.Errorf("request params = %+v", req)
		}
		if len(req.Tools) != 0 {
			t.Errorf("tools advertised without a registry: %+v", req.Tools)
		}
	})

	t.Run("empty question", func(t *testing.T) {
		c := New(&scriptedLLM{}, nil, nil, cfg, log.NewNop())
		if _, err := c.Complete(context.Background(), Input{Question: "  "}); !errors.Is(err, ErrEmptyQuestion) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("tool round trip", func(t *testing.T) {
		tool := &searchTool{}
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			toolCall("call_1", "web_search", map[string]interface{}{"query": "news"}),
			text("Here is the news."),
		}}
		c := New(llm, registry(tool), nil, cfg, log.NewNop())

		out, err := c.Complete(context.Background(), Input{UserID: "u1", Question: "Any news?"})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if out.Answer != "Here is the news." || out.ToolCalls != 1 {
			t.Errorf("out = %+v", out)
		}
		if tool.gotUser != "u1" || tool.gotQuery != "news" {
			t.Errorf("tool got user=%q query=%v", tool.gotUser, tool.gotQuery)
		}
		second := llm.requests[1]
		if len(second.Messages) != 3 {
			t.Fatalf("messages = %+v", second.Messages)
		}
		fr := second.Messages[2].FunctionResponse
		if second.Messages[2].Role != "tool" || fr == nil || fr.CallID != "call_1" {
			t.Errorf("tool message = %+v", second.Messages[2])
		}
	})

	t.Run("tool error is fed back", func(t *testing.T) {
		tool := &searchTool{err: errors.New("quota")}
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			toolCall("call_1", "web_search", nil),
			text("I could not search."),
		}}
		c := New(llm, registry(tool), nil, cfg, log.NewNop())

		if _, err := c.Complete(context.Background(), Input{Question: "q"}); err != nil {
			t.Fatalf("Complete: %v", err)
		}
		resp := llm.requests[1].Messages[2].FunctionResponse.Response
		m, ok := resp.(map[string]string)
		if !ok || m["error"] != "quota" {
			t.Errorf("tool response = %#v", resp)
		}
	})

	t.Run("tool steps are bounded", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			toolCall("a", "web_search", nil),
			toolCall("b", "web_search", nil),
			text("final"),
		}}
		c := New(llm, registry(&searchTool{}), nil, cfg, log.NewNop())

		out, err := c.Complete(context.Background(), Input{Question: "q"})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if len(llm.requests) != 3 || out.ToolCalls != 2 {
			t.Fatalf("requests = %d, tool calls = %d", len(llm.requests), out.ToolCalls)
		}
		if len(llm.requests[2].Tools) != 0 {
			t.Errorf("last request still advertises tools")
		}
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		llm := &scriptedLLM{err: pkgErrors.NewUpstream("openai", 429, []byte("slow down"))}
		c := New(llm, nil, nil, cfg, log.NewNop())

		_, err := c.Complete(context.Background(), Input{Question: "q"})
		ue, ok := pkgErrors.AsUpstream(err)
		if !ok || ue.StatusCode != 429 || ue.Body != "slow down" {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("empty answer", func(t *testing.T) {
		c := New(&scriptedLLM{responses: []*llmprovider.Response{text("")}}, nil, nil, cfg, log.NewNop())
		if _, err := c.Complete(context.Background(), Input{Question: "q"}); !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestComplete_AssistantMode(t *testing.T) {
	cfg := Config{SystemPrompt: "be brief", MaxTokens: 150, Temperature: 0.5}

	t.Run("assistant answers", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("unused")}}
		runner := &fakeRunner{res: assistant.Result{Answer: "From assistant.", ToolCalls: 1}}
		c := New(llm, nil, runner, cfg, log.NewNop())

		out, err := c.Complete(context.Background(), Input{Question: "q"})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if out.Mode != ModeAssistant || out.Answer != "From assistant." || out.ToolCalls != 1 {
			t.Errorf("out = %+v", out)
		}
		if len(llm.requests) != 0 {
			t.Errorf("chat path called %d times", len(llm.requests))
		}
		if !strings.HasPrefix(runner.gotPrompt, "be brief") || !strings.HasSuffix(runner.gotPrompt, "q") {
			t.Errorf("prompt = %q", runner.gotPrompt)
		}
	})

	t.Run("falls back on failure", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("From chat.")}}
		runner := &fakeRunner{err: assistant.ErrRunFailed}
		c := New(llm, nil, runner, cfg, log.NewNop())

		out, err := c.Complete(context.Background(), Input{Question: "q"})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if out.Mode != ModeChat || out.Answer != "From chat." {
			t.Errorf("out = %+v", out)
		}
	})

	t.Run("falls back on empty reply", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("From chat.")}}
		c := New(llm, nil, &fakeRunner{}, cfg, log.NewNop())

		out, err := c.Complete(context.Background(), Input{Question: "q"})
		if err != nil || out.Mode != ModeChat {
			t.Fatalf("out = %+v, err = %v", out, err)
		}
	})
}
