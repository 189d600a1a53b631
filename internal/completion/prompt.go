package completion

import (
	"strings"

	"omi-relay/internal/conversation"
)

// BuildPrompt renders the user message: remembered facts, then the earlier
// turns of the session, then the question. Without memories or history the
// prompt is the bare question.
func BuildPrompt(input Input) string {
	memories := nonEmpty(input.Memories)
	history := conversation.Render(input.History)
	if len(memories) == 0 && history == "" {
		return input.Question
	}

	var b strings.Builder
	if len(memories) > 0 {
		b.WriteString(memoriesHeader)
		for _, m := range memories {
			b.WriteString("- ")
			b.WriteString(m)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if history != "" {
		b.WriteString(contextHeader)
		b.WriteString(history)
		b.WriteString("\n")
	}
	b.WriteString(questionPrefix)
	b.WriteString(input.Question)
	return b.String()
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
