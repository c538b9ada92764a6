package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// VisionClientInterface answers a fixed instruction about one image.
type VisionClientInterface interface {
	DescribeImage(ctx context.Context, mimeType string, data []byte, prompt string) (string, error)
}

type GeminiVisionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiVisionClient(apiKey, model string) (*GeminiVisionClient, error) {
	if apiKey == "" {
		return nil, ErrAIUnavailable
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiVisionClient{client: client, model: model}, nil
}

func (c *GeminiVisionClient) DescribeImage(ctx context.Context, mimeType string, data []byte, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.SetMaxOutputTokens(2048)

	resp, err := m.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiVisionClient) Close() error {
	return c.client.Close()
}
