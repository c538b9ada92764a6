package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultImageEndpoint = "https://router.huggingface.co/hf-inference/models/stabilityai/stable-diffusion-xl-base-1.0"

// ImageGenClientInterface turns a text prompt into raster image bytes.
type ImageGenClientInterface interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type HFImageClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func NewHFImageClient(apiKey string) *HFImageClient {
	return &HFImageClient{
		apiKey:   apiKey,
		endpoint: defaultImageEndpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *HFImageClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrAIUnavailable
	}

	body, err := json.Marshal(map[string]interface{}{
		"inputs": prompt,
		"parameters": map[string]interface{}{
			"negative_prompt":     "text, words, letters, realistic photo, photograph, people, faces, humans",
			"num_inference_steps": 30,
			"guidance_scale":      7.5,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image generation: unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
