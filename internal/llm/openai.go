package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
)

// OpenAIProvider implements Provider against any OpenAI-compatible
// API. Hermax points it at Groq, but it works unchanged against
// OpenAI, OpenRouter or a local server via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider from config. The API key is
// optional so the bot can start without one; calls then fail and the
// handlers fall back to their fixed error replies.
func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	apiKey := cfg.APIKey
	if apiKey == "" {
		logging.L_warn("llm: no API key configured, completions will fail")
		apiKey = "not-needed" // Placeholder, some local servers accept it
	}

	clientCfg := openai.DefaultConfig(apiKey)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// Ensure the URL ends with /v1 for OpenAI-compatible APIs
	if !strings.HasSuffix(baseURL, "/v1") && !strings.HasSuffix(baseURL, "/v1/") {
		baseURL = strings.TrimSuffix(baseURL, "/") + "/v1"
	}
	clientCfg.BaseURL = baseURL

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	logging.L_debug("llm: provider created", "baseURL", baseURL, "model", model)

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Chat implements Provider.
func (p *OpenAIProvider) Chat(ctx context.Context, system string, msgs []Message, opts *Options) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
	}
	if opts != nil {
		req.MaxTokens = opts.MaxTokens
		req.Temperature = opts.Temperature
	}

	if system != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	reply := resp.Choices[0].Message.Content
	logging.L_debug("llm: completion ok", "model", p.model, "replyLength", len(reply))
	return reply, nil
}
