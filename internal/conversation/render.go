package conversation

import (
	"strings"

	"omi-relay/internal/model"
)

// Render formats turns as alternating "Q:" and "A:" lines, oldest first.
// It returns an empty string when there are no turns.
func Render(turns []model.Turn) string {
	if len(turns) == 0 {
		return ""
	}

	var b strings.Builder
	for _, t := range turns {
		b.WriteString("Q: ")
		b.WriteString(t.Question)
		b.WriteString("\nA: ")
		b.WriteString(t.Answer)
		b.WriteString("\n")
	}
	return b.String()
}
