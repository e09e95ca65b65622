package ai

import (
	"context"
	"fmt"

	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompleter backs the assistant with the OpenAI chat-completion
// API: one system prompt carrying the business snapshot, one user
// message, one free-text reply.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAICompleter creates a completer for the given API key and model.
func NewOpenAICompleter(apiKey, model string) *OpenAICompleter {
	return &OpenAICompleter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Ensure OpenAICompleter implements the AssistantCompleter port
var _ portssvc.AssistantCompleter = (*OpenAICompleter)(nil)

func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userText,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
