package completion

import (
	"omi-relay/internal/agent"
	"omi-relay/pkg/log"
)

type client struct {
	llm       Generator
	tools     *agent.ToolRegistry
	assistant Runner
	cfg       Config
	l         log.Logger
}

var _ Client = (*client)(nil)

// New creates a completion client. tools and assistant are optional;
// a nil assistant keeps every request on the chat path.
func New(llm Generator, tools *agent.ToolRegistry, assistant Runner, cfg Config, l log.Logger) *client {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxToolSteps < 0 {
		cfg.MaxToolSteps = 0
	}

	return &client{
		llm:       llm,
		tools:     tools,
		assistant: assistant,
		cfg:       cfg,
		l:         l,
	}
}
