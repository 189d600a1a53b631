package completion

import "omi-relay/internal/model"

// Mode names the path that produced an answer.
type Mode string

const (
	ModeChat      Mode = "chat"
	ModeAssistant Mode = "assistant"
)

// Config holds the fixed sampling parameters of a completion.
type Config struct {
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
	// MaxToolSteps bounds the tool round-trips of a chat completion.
	MaxToolSteps int
}

// Input is one question with everything the prompt is built from.
type Input struct {
	UserID   string
	Question string
	History  []model.Turn
	Memories []string
}

// Output is the answer and how it was produced.
type Output struct {
	Answer    string
	Mode      Mode
	Provider  string
	Model     string
	ToolCalls int
}
