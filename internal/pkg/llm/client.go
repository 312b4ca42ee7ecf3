// Package llm wraps chat-completion providers that speak the OpenAI wire
// protocol (OpenAI, DeepSeek, and self-hosted gateways).
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
)

var ErrNotConfigured = errors.New("llm: no provider configured")

const defaultTimeout = 30 * time.Second

// DefaultBaseURL returns the endpoint used when a provider config leaves
// the base URL blank.
func DefaultBaseURL(provider string) string {
	switch provider {
	case "deepseek":
		return "https://api.deepseek.com"
	default:
		return "https://api.openai.com/v1"
	}
}

type Client interface {
	// Complete sends a system+user prompt pair and returns the first choice.
	Complete(ctx context.Context, cfg settings.LLMConfig, systemPrompt, userPrompt string) (string, error)
}

type client struct {
	timeout time.Duration
}

func NewClient(timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{timeout: timeout}
}

func (c *client) Complete(ctx context.Context, cfg settings.LLMConfig, systemPrompt, userPrompt string) (string, error) {
	if !cfg.Configured() {
		return "", ErrNotConfigured
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	} else {
		apiConfig.BaseURL = DefaultBaseURL(cfg.Provider)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := openai.NewClientWithConfig(apiConfig).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
