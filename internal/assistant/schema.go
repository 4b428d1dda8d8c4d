package assistant

import "github.com/abhisek/circuitspace/internal/llm"

// ReplySchema is the structured output requested for every chat reply.
var ReplySchema = &llm.Schema{
	Name:        "assistant-reply",
	Description: "A reply to a maker building an electronics project, with optional component suggestions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "Friendly answer in plain text, at most 6 sentences",
			},
			"suggested_components": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Ids from the component library that are relevant to the answer, or empty",
			},
		},
		"required":             []any{"reply", "suggested_components"},
		"additionalProperties": false,
	},
}

type replyOutput struct {
	Reply               string   `json:"reply"`
	SuggestedComponents []string `json:"suggested_components"`
}
