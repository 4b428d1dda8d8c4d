package assistant

import (
	"fmt"
	"strings"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/llm"
)

// Line prefixes for the project context placed ahead of the question.
const (
	projectPrefix = "Current project: "
	partsPrefix   = "Parts in project: "
)

const systemPrompt = `You are the build assistant inside Circuitspace, a terminal workspace for Arduino projects. Help the user plan circuits, pick parts and write sketches. Keep answers short and practical. Only suggest component ids that appear in the library list.`

func buildSystemPrompt(components []catalog.Component) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nComponent library:\n")
	for _, c := range components {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", c.ID, c.Name, c.Category)
	}
	return b.String()
}

func buildMessages(q Question, maxHistoryChars int) []llm.Message {
	history := trimHistory(q.History, maxHistoryChars)
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleUser
		if t.FromAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Content})
	}

	var b strings.Builder
	if q.ProjectName != "" {
		fmt.Fprintf(&b, "%s%s\n", projectPrefix, q.ProjectName)
	}
	if len(q.ProjectComponents) > 0 {
		fmt.Fprintf(&b, "%s%s\n", partsPrefix, strings.Join(q.ProjectComponents, ", "))
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(q.Input)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: b.String()})
	return msgs
}

// trimHistory keeps the most recent turns whose combined length fits in
// limit. The result never starts with an assistant turn.
func trimHistory(history []Turn, limit int) []Turn {
	total, start := 0, len(history)
	for i := len(history) - 1; i >= 0; i-- {
		total += len(history[i].Content)
		if total > limit {
			break
		}
		start = i
	}
	for start < len(history) && history[start].FromAssistant {
		start++
	}
	return history[start:]
}
