package openai

import (
	"context"
	"errors"

	openaiapi "github.com/sashabaranov/go-openai"

	"persona-chat/internal/domain"
	"persona-chat/internal/usecase/completion"
)

type Client struct {
	api *openaiapi.Client
}

func NewClient(token string) *Client {
	return &Client{
		api: openaiapi.NewClient(token),
	}
}

// Complete issues one non-streaming chat completion and returns the first
// choice's content. Only the first choice is consumed.
func (c *Client) Complete(ctx context.Context, req completion.Request) (string, error) {
	apiReq := openaiapi.ChatCompletionRequest{
		Model:            req.Model,
		MaxTokens:        req.MaxTokens,
		Temperature:      req.Temperature,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
		Stream:           false,
		Messages:         toAPIMessages(req.Messages),
	}

	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

func toAPIMessages(msgs []domain.ChatMessage) []openaiapi.ChatCompletionMessage {
	res := make([]openaiapi.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, openaiapi.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return res
}
