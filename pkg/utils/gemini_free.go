package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash" // free tier model

// GeminiCompletionClient implements CompletionClientInterface using Google's Gemini models
type GeminiCompletionClient struct {
	client   *genai.Client
	model    string
	jsonMode bool
}

func NewGeminiCompletionClient(ctx context.Context, config CompletionConfig) (*GeminiCompletionClient, error) {
	model := config.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client:   client,
		model:    model,
		jsonMode: config.JSONMode,
	}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	if c.jsonMode {
		m.ResponseMIMEType = "application/json"
	}
	m.SetTemperature(0.2)
	m.SetTopP(0.8)

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrCompletionEmpty
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	content := strings.TrimSpace(out.String())
	if content == "" {
		return "", ErrCompletionEmpty
	}
	return content, nil
}

// Close closes the Gemini client
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
