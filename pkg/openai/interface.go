package openai

import "context"

// IChat is the chat completions surface of an OpenAI compatible API.
// Implementations are safe for concurrent use.
type IChat interface {
	CreateChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Name() string
	Model() string
}

// IAssistants is the Assistants (threads and runs) surface.
type IAssistants interface {
	CreateThread(ctx context.Context) (*Thread, error)
	CreateMessage(ctx context.Context, threadID string, req CreateMessageRequest) error
	CreateRun(ctx context.Context, threadID string, req CreateRunRequest) (*Run, error)
	GetRun(ctx context.Context, threadID, runID string) (*Run, error)
	SubmitToolOutputs(ctx context.Context, threadID, runID string, req SubmitToolOutputsRequest) (*Run, error)
	ListMessages(ctx context.Context, threadID string, limit int) (*MessageList, error)
}

// New creates a new client with the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		name:       cfg.Name,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
