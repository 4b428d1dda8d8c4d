package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider calls an OpenAI compatible chat completions API. OpenRouter
// is served by the same type with a different base URL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider returns a provider for ep. An empty BaseURL targets
// api.openai.com.
func NewOpenAIProvider(ep Endpoint) (*OpenAIProvider, error) {
	if ep.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}
	cfg := openai.DefaultConfig(ep.APIKey)
	if ep.BaseURL != "" {
		cfg.BaseURL = ep.BaseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: ep.Model}, nil
}

// NewOpenRouterProvider returns an OpenAIProvider pointed at OpenRouter.
func NewOpenRouterProvider(ep Endpoint) (*OpenAIProvider, error) {
	if ep.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	if ep.BaseURL == "" {
		ep.BaseURL = defaultOpenRouterBaseURL
	}
	return NewOpenAIProvider(ep)
}

func (p *OpenAIProvider) ModelID() string { return p.model }

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chat := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            openAIMessages(req),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema %s: %w", req.Schema.Name, err)
		}
		chat.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}

	out, err := p.client.CreateChatCompletion(ctx, chat)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, fromStatus(apiErr.HTTPStatusCode, err)
		}
		return nil, &Error{Kind: KindUnavailable, Err: err}
	}
	if len(out.Choices) == 0 {
		return nil, invalidResponse(nil, "no choices in chat completion")
	}

	choice := out.Choices[0]
	resp := &Response{
		Content: json.RawMessage(choice.Message.Content),
		Usage: Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CompletionTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
		Model:      out.Model,
		StopReason: stopEnd,
	}
	if choice.FinishReason == openai.FinishReasonLength {
		resp.StopReason = stopMaxTokens
	}
	return finish(req, resp)
}

func openAIMessages(req Request) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return msgs
}
