package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/circuitspace/internal/llm"
)

// Exchange is one assistant call recovered from a recorded LLM event.
type Exchange struct {
	Project   string
	Parts     []string
	Question  string
	Reply     string
	Suggested []string
}

// ParseExchange recovers the question and its project context from a
// recorded request body, and the reply from the response body. Fields that
// cannot be recovered are left empty.
func ParseExchange(requestBody, responseBody string) Exchange {
	var ex Exchange

	marker := fmt.Sprintf("[%s]\n", llm.RoleUser)
	if i := strings.LastIndex(requestBody, marker); i >= 0 {
		content := requestBody[i+len(marker):]
		if j := strings.Index(content, "\n\n[schema:"); j >= 0 {
			content = content[:j]
		}
		ex.Project, ex.Parts, ex.Question = splitContext(strings.TrimRight(content, "\n"))
	}

	var out replyOutput
	if err := json.Unmarshal([]byte(responseBody), &out); err == nil {
		ex.Reply = strings.TrimSpace(out.Reply)
		ex.Suggested = out.SuggestedComponents
	}
	return ex
}

// splitContext undoes the header that buildMessages puts in front of the
// user's question.
func splitContext(content string) (project string, parts []string, question string) {
	rest := content
	for {
		line, tail, found := strings.Cut(rest, "\n")
		switch {
		case strings.HasPrefix(line, projectPrefix):
			project = strings.TrimPrefix(line, projectPrefix)
		case strings.HasPrefix(line, partsPrefix):
			parts = strings.Split(strings.TrimPrefix(line, partsPrefix), ", ")
		case line == "" && (project != "" || parts != nil):
			return project, parts, strings.TrimSpace(tail)
		default:
			return project, parts, strings.TrimSpace(rest)
		}
		if !found {
			return project, parts, ""
		}
		rest = tail
	}
}
