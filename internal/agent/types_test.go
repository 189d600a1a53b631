package agent_test

import (
	"context"
	"errors"
	"testing"

	"omi-relay/internal/agent"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
	gotParams   map[string]interface{}
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	m.gotParams = args
	return "ran " + m.name, nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "zeta", description: "desc1"}
	tool2 := &mockTool{name: "alpha", description: "desc2"}

	registry.Register(tool1)
	registry.Register(tool2)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("zeta")
		if !ok || got.Name() != "zeta" {
			t.Errorf("expected zeta to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		if _, ok := registry.Get("missing"); ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List is sorted", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 || tools[0].Name() != "alpha" {
			t.Errorf("List() = %v", tools)
		}
	})

	t.Run("Execute", func(t *testing.T) {
		out, err := registry.Execute(context.Background(), "zeta", map[string]interface{}{"q": "x"})
		if err != nil || out != "ran zeta" {
			t.Fatalf("Execute = %v, %v", out, err)
		}
		if tool1.gotParams["q"] != "x" {
			t.Errorf("params = %v", tool1.gotParams)
		}
		if _, err := registry.Execute(context.Background(), "nope", nil); !errors.Is(err, agent.ErrToolNotFound) {
			t.Errorf("err = %v, want ErrToolNotFound", err)
		}
	})

	t.Run("ToFunctionDefinitions", func(t *testing.T) {
		defs := registry.ToFunctionDefinitions()
		if len(defs) != 2 || defs[0].Name != "alpha" || defs[1].Description != "desc1" {
			t.Errorf("defs = %+v", defs)
		}
	})
}

func TestUserIDContext(t *testing.T) {
	ctx := agent.WithUserID(context.Background(), "u1")
	if got := agent.UserIDFromContext(ctx); got != "u1" {
		t.Errorf("UserIDFromContext = %q", got)
	}
	if got := agent.UserIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context = %q", got)
	}
}
