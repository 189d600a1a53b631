package completion

import (
	"context"
	"fmt"
	"strings"

	"omi-relay/internal/agent"
	"omi-relay/pkg/llmprovider"
)

// Complete answers input.Question. In assistant mode the assistant run is
// tried first; any failure there falls back to a chat completion.
func (c *client) Complete(ctx context.Context, input Input) (Output, error) {
	if strings.TrimSpace(input.Question) == "" {
		return Output{}, ErrEmptyQuestion
	}
	ctx = agent.WithUserID(ctx, input.UserID)
	prompt := BuildPrompt(input)

	if c.assistant != nil {
		res, err := c.assistant.Run(ctx, c.cfg.SystemPrompt+"\n\n"+prompt)
		if err == nil && strings.TrimSpace(res.Answer) != "" {
			return Output{
				Answer:    strings.TrimSpace(res.Answer),
				Mode:      ModeAssistant,
				ToolCalls: res.ToolCalls,
			}, nil
		}
		if err == nil {
			err = ErrEmptyAnswer
		}
		c.l.Warnf(ctx, "%s: "+LogMsgAssistantFallbk, LogPrefixComplete, err)
	}

	return c.chat(ctx, prompt)
}

// chat runs the tool loop: every model turn that asks for functions gets
// their results appended and is asked again, up to MaxToolSteps times.
func (c *client) chat(ctx context.Context, prompt string) (Output, error) {
	req := &llmprovider.Request{
		SystemInstruction: c.cfg.SystemPrompt,
		Messages:          []llmprovider.Message{{Role: "user", Text: prompt}},
		Temperature:       c.cfg.Temperature,
		MaxTokens:         c.cfg.MaxTokens,
	}
	if c.tools != nil && c.tools.Len() > 0 && c.cfg.MaxToolSteps > 0 {
		req.Tools = c.tools.ToFunctionDefinitions()
	}

	out := Output{Mode: ModeChat}
	for step := 0; ; step++ {
		c.l.Debugf(ctx, "%s: "+LogMsgStep, LogPrefixComplete, step+1, c.cfg.MaxToolSteps+1)

		resp, err := c.llm.GenerateContent(ctx, req)
		if err != nil {
			return Output{}, fmt.Errorf("completion step %d: %w", step+1, err)
		}
		out.Provider = resp.ProviderName
		out.Model = resp.ModelName

		calls := resp.Content.FunctionCalls
		if len(calls) == 0 || len(req.Tools) == 0 {
			answer := strings.TrimSpace(resp.Content.Text)
			if answer == "" {
				return Output{}, ErrEmptyAnswer
			}
			out.Answer = answer
			return out, nil
		}

		req.Messages = append(req.Messages, llmprovider.Message{
			Role:          "assistant",
			Text:          resp.Content.Text,
			FunctionCalls: calls,
		})
		for _, call := range calls {
			req.Messages = append(req.Messages, c.runTool(ctx, call))
			out.ToolCalls++
		}

		if step+1 >= c.cfg.MaxToolSteps {
			c.l.Warnf(ctx, "%s: "+LogMsgMaxToolSteps, LogPrefixComplete, c.cfg.MaxToolSteps)
			// no tools on the last request forces a text answer
			req.Tools = nil
		}
	}
}

func (c *client) runTool(ctx context.Context, call llmprovider.FunctionCall) llmprovider.Message {
	c.l.Infof(ctx, "%s: "+LogMsgCallingTool, LogPrefixComplete, call.Name, call.Args)

	var result interface{}
	out, err := c.tools.Execute(ctx, call.Name, call.Args)
	if err != nil {
		c.l.Warnf(ctx, "%s: "+LogMsgToolFailed, LogPrefixComplete, call.Name, err)
		result = map[string]string{"error": err.Error()}
	} else {
		result = out
	}

	return llmprovider.Message{
		Role: "tool",
		FunctionResponse: &llmprovider.FunctionResponse{
			CallID:   call.ID,
			Name:     call.Name,
			Response: result,
		},
	}
}
