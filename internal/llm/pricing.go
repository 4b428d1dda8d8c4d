package llm

import "strings"

// Price is USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Cost returns the USD cost of a call.
func (p Price) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*p.Input + float64(outputTokens)*p.Output) / 1e6
}

// prices covers the models the assistant is configured with by default and
// their common siblings. OpenRouter ids carry a vendor prefix which
// LookupPrice strips.
var prices = map[string]Price{
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-haiku-4-5":           {1, 5},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-sonnet-4-5":          {3, 15},
	"claude-3-5-haiku-latest":    {0.8, 4},

	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4o":       {2.5, 10},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-001":  {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}

// LookupPrice returns the price for model.
func LookupPrice(model string) (Price, bool) {
	if p, ok := prices[model]; ok {
		return p, true
	}
	if i := strings.LastIndexByte(model, '/'); i >= 0 {
		p, ok := prices[model[i+1:]]
		return p, ok
	}
	return Price{}, false
}
