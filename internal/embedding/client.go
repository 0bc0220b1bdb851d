package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Dim is the embedding dimensionality produced by
// sentence-transformers/all-MiniLM-L6-v2. Every vector handled by this
// service, including the degraded fallback, has exactly this length.
const Dim = 384

// DefaultBaseURL is the Hugging Face Inference API feature-extraction prefix.
const DefaultBaseURL = "https://api-inference.huggingface.co/pipeline/feature-extraction/"

// Client is a client for the Hugging Face feature-extraction API.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

// NewClient creates a new feature-extraction client. The timeout bounds every
// request so a slow provider cannot stall ingestion or search.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// extractionRequest represents the request payload for the feature-extraction API.
type extractionRequest struct {
	Inputs  []string        `json:"inputs"`
	Options map[string]bool `json:"options"`
}

// EmbedText generates an embedding for the given text.
// Validates that the returned vector has exactly Dim values.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	payload := extractionRequest{
		Inputs:  []string{text},
		Options: map[string]bool{"wait_for_model": true},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.BaseURL, "/") + "/" + c.Model
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var vectors [][]float32
	if err := json.NewDecoder(resp.Body).Decode(&vectors); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(vectors) != 1 {
		return nil, fmt.Errorf("expected 1 embedding, got %d", len(vectors))
	}
	if len(vectors[0]) != Dim {
		return nil, fmt.Errorf("embedding has size %d, expected %d", len(vectors[0]), Dim)
	}

	return vectors[0], nil
}
