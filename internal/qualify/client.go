package qualify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// QualifierClient is the external language-model dependency of the
// qualification pipeline. Implementations return the raw completion text;
// sanitization and validation happen downstream.
type QualifierClient interface {
	Generate(ctx context.Context, prompt string) (RawResponse, error)
	Model() string
}

// GroqConfig configures the Groq chat-completions client.
type GroqConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// GroqClient calls Groq's OpenAI-compatible chat-completions endpoint.
// It performs exactly one request per Generate call: retrying is the
// orchestrator's decision, not the transport's.
type GroqClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

func NewGroqClient(cfg GroqConfig) *GroqClient {
	return &GroqClient{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

func (c *GroqClient) Model() string {
	return c.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage TokenUsage `json:"usage"`
}

// Generate sends one chat completion request and returns the raw
// completion text together with model identity, token usage and wall time.
func (c *GroqClient) Generate(ctx context.Context, prompt string) (RawResponse, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return RawResponse{}, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return RawResponse{}, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RawResponse{}, fmt.Errorf("qualifier request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return RawResponse{}, fmt.Errorf("read qualifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return RawResponse{}, fmt.Errorf("qualifier returned status %d: %s", resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return RawResponse{}, fmt.Errorf("decode qualifier response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return RawResponse{}, fmt.Errorf("qualifier returned no choices")
	}

	model := parsed.Model
	if model == "" {
		model = c.model
	}

	return RawResponse{
		Text:    parsed.Choices[0].Message.Content,
		Model:   model,
		Usage:   parsed.Usage,
		Elapsed: time.Since(start),
	}, nil
}
