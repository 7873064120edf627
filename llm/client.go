package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Client extracts filter criteria through the OpenAI chat completion API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a criteria-extraction client. An empty model falls back
// to GPT-4o mini.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// ExtractCriteria sends the system instruction and the user query and
// returns the model's raw text output, trimmed. An assistant turn priming
// "{}" nudges the model toward bare JSON output.
func (c *Client) ExtractCriteria(ctx context.Context, system, query string) (string, error) {
	resp, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleAssistant,
					Content: "{}",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: query,
				},
			},
			MaxTokens:   200,
			N:           1,
			Temperature: 0.2,
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
