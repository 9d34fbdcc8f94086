package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the LLM boundary: one system prompt and one user
// prompt in, free-form text out.
type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	JSONMode bool
}

// NewCompletionClient builds either an OpenAI or a Gemini client based on config
func NewCompletionClient(ctx context.Context, config CompletionConfig) (CompletionClientInterface, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAICompletionClient(config), nil
	case "gemini":
		client, err := NewGeminiCompletionClient(ctx, config)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s. Use 'openai' or 'gemini'", ErrUnsupportedProvider, config.Provider)
	}
}
