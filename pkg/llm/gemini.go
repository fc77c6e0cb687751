package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/johnquangdev/meeting-analyzer/errors"
)

// geminiEnv is resolved from the environment on each invocation
type geminiEnv struct {
	APIKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"API_URL" default:"https://generativelanguage.googleapis.com/v1beta/models"`
}

// GeminiClient calls the Gemini generateContent REST endpoint
type GeminiClient struct {
	model  string
	client *http.Client
}

// NewGeminiClient creates a Gemini client for the given model
func NewGeminiClient(model string) *GeminiClient {
	return &GeminiClient{
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Model returns the model selector this client serves
func (c *GeminiClient) Model() string {
	return c.model
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Invoke sends the instruction to the generateContent endpoint
func (c *GeminiClient) Invoke(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	var env geminiEnv
	if err := envconfig.Process("GEMINI", &env); err != nil {
		return "", errors.ErrConfiguration(fmt.Sprintf("Failed to read Gemini environment: %v", err))
	}
	if env.APIKey == "" {
		return "", errors.ErrConfiguration("GEMINI_API_KEY environment variable not set")
	}

	geminiReq := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(geminiReq)
	if err != nil {
		return "", errors.ErrProvider("gemini", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s",
		strings.TrimSuffix(env.BaseURL, "/"), c.model, env.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.ErrProvider("gemini", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.ErrProvider("gemini", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", errors.ErrProvider("gemini",
			fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", errors.ErrProvider("gemini", fmt.Errorf("decoding response: %w", err))
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.ErrProvider("gemini", fmt.Errorf("no content in response"))
	}

	// Candidates may split the reply across parts
	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
