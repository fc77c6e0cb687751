package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/johnquangdev/meeting-analyzer/errors"
)

// groqEnv is resolved from the environment on each invocation
type groqEnv struct {
	APIKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"API_URL" default:"https://api.groq.com"`
}

// GroqClient is a minimal client for Groq chat completions
type GroqClient struct {
	model  string
	client *http.Client
}

// NewGroqClient creates a Groq client for the given model
func NewGroqClient(model string) *GroqClient {
	return &GroqClient{
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Model returns the model selector this client serves
func (c *GroqClient) Model() string {
	return c.model
}

type groqChatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
}

// Invoke sends the instruction to Groq's OpenAI-compatible endpoint
func (c *GroqClient) Invoke(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	var env groqEnv
	if err := envconfig.Process("GROQ", &env); err != nil {
		return "", errors.ErrConfiguration(fmt.Sprintf("Failed to read Groq environment: %v", err))
	}
	if env.APIKey == "" {
		return "", errors.ErrConfiguration("GROQ_API_KEY environment variable not set")
	}

	reqBody := groqChatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxOutputTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.ErrProvider("groq", err)
	}

	endpoint := env.BaseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", errors.ErrProvider("groq", err)
	}
	req.Header.Set("Authorization", "Bearer "+env.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.ErrProvider("groq", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.ErrProvider("groq",
			fmt.Errorf("groq returned status %d: %s", resp.StatusCode, string(body)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", errors.ErrProvider("groq", fmt.Errorf("decoding response: %w", err))
	}
	if len(cr.Choices) == 0 {
		return "", errors.ErrProvider("groq", fmt.Errorf("empty response from groq"))
	}
	return cr.Choices[0].Message.Content, nil
}
