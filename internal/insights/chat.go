package insights

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the narration port. The production implementation talks
// to OpenAI; tests substitute a canned one.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAICompleter struct {
	client *openai.Client
	model  string
}

func NewOpenAICompleter(apiKey, model string) ChatCompleter {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAICompleter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *openAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
