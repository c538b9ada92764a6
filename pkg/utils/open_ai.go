package utils

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIVisionClient is the fallback vision backend used when Gemini is
// unconfigured or failing.
type OpenAIVisionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIVisionClient(apiKey, model string) (*OpenAIVisionClient, error) {
	if apiKey == "" {
		return nil, ErrAIUnavailable
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIVisionClient{client: openai.NewClient(apiKey), model: model}, nil
}

func (c *OpenAIVisionClient) DescribeImage(ctx context.Context, mimeType string, data []byte, prompt string) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   2048,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailAuto},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

// EmbeddingClientInterface produces vector embeddings for similarity search.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey string) (*OpenAIEmbeddingClient, error) {
	if apiKey == "" {
		return nil, ErrAIUnavailable
	}
	return &OpenAIEmbeddingClient{client: openai.NewClient(apiKey), model: openai.SmallEmbedding3}, nil
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
