package llmprovider

import (
	"context"
	"encoding/json"

	"omi-relay/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. Every
// OpenAI compatible backend (openai, deepseek, qwen, openrouter) goes through it.
type OpenAIAdapter struct {
	client openai.IChat
}

// NewOpenAIAdapter creates a new adapter around an OpenAI compatible client.
func NewOpenAIAdapter(client openai.IChat) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openai.ChatRequest{
		Model:       a.client.Model(),
		Messages:    toChatMessages(req),
		Tools:       toChatTools(req.Tools),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Content:      fromChatMessage(resp.Choices[0].Message),
		ProviderName: a.client.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.client.Name()
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func toChatMessages(req *Request) []openai.ChatMessage {
	messages := make([]openai.ChatMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatMessage{Role: "system", Content: req.SystemInstruction})
	}

	for _, msg := range req.Messages {
		chatMsg := openai.ChatMessage{Role: msg.Role, Content: msg.Text}

		for _, fc := range msg.FunctionCalls {
			argsJSON, _ := json.Marshal(fc.Args)
			chatMsg.ToolCalls = append(chatMsg.ToolCalls, openai.ToolCall{
				ID:   callID(fc.ID, fc.Name),
				Type: "function",
				Function: openai.FunctionCall{
					Name:      fc.Name,
					Arguments: string(argsJSON),
				},
			})
		}

		if fr := msg.FunctionResponse; fr != nil {
			chatMsg.Role = "tool"
			chatMsg.ToolCallID = callID(fr.CallID, fr.Name)
			chatMsg.Name = fr.Name
			responseJSON, _ := json.Marshal(fr.Response)
			chatMsg.Content = string(responseJSON)
		}

		messages = append(messages, chatMsg)
	}
	return messages
}

func toChatTools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{
			Type: "function",
			Function: openai.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func fromChatMessage(msg openai.ChatMessage) Message {
	out := Message{Role: "assistant", Text: msg.Content}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "" && tc.Type != "function" {
			continue
		}
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			args = make(map[string]interface{})
		}
		out.FunctionCalls = append(out.FunctionCalls, FunctionCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		})
	}
	return out
}

func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}
