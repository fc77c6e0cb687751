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

const azureSystemPrompt = "You are an expert meeting analyst. Analyze meeting transcripts and extract actionable insights in JSON format."

// azureDeployment describes one named Azure OpenAI model configuration
type azureDeployment struct {
	Deployment string
	APIVersion string
	KeyEnv     string // env var name, reported in configuration errors
}

// Named model configurations supported by the Azure adapter. Endpoints live
// in azureEnv so tests can point a deployment at a fake server.
var azureDeployments = map[string]azureDeployment{
	"gpt-4.1": {
		Deployment: "fy26-hackon-q3-gpt-4.1",
		APIVersion: "2025-01-01-preview",
		KeyEnv:     "AZURE_OPENAI_API_KEY_GPT41",
	},
	"gpt-5": {
		Deployment: "hackon-fy26q3-gpt5",
		APIVersion: "2025-01-01-preview",
		KeyEnv:     "AZURE_OPENAI_API_KEY_GPT5",
	},
}

// azureEnv holds per-deployment credentials and endpoint overrides,
// resolved from the environment on each invocation
type azureEnv struct {
	APIKeyGPT41   string `envconfig:"API_KEY_GPT41"`
	APIKeyGPT5    string `envconfig:"API_KEY_GPT5"`
	EndpointGPT41 string `envconfig:"ENDPOINT_GPT41" default:"https://fy26-hackon-q3.openai.azure.com"`
	EndpointGPT5  string `envconfig:"ENDPOINT_GPT5" default:"https://siddh-m9gwv1hd-eastus2.cognitiveservices.azure.com"`
}

// AzureClient is a chat-completions client for one named Azure OpenAI
// deployment
type AzureClient struct {
	model  string
	client *http.Client
}

// NewAzureClient creates an Azure OpenAI client for the given model
// selector. An unrecognized selector fails with InvalidArgument before any
// network call is attempted.
func NewAzureClient(model string) (*AzureClient, error) {
	if _, ok := azureDeployments[model]; !ok {
		return nil, errors.ErrInvalidArgument(
			fmt.Sprintf("Invalid model %q. Choose from: %s", model, strings.Join(AzureModels(), ", ")),
		)
	}
	return &AzureClient{
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// AzureModels returns the supported Azure model selectors in stable order
func AzureModels() []string {
	return []string{"gpt-4.1", "gpt-5"}
}

// Model returns the model selector this client serves
func (c *AzureClient) Model() string {
	return c.model
}

type azureChatRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Invoke sends the instruction to the deployment's chat completions endpoint
func (c *AzureClient) Invoke(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	dep := azureDeployments[c.model]

	var env azureEnv
	if err := envconfig.Process("AZURE_OPENAI", &env); err != nil {
		return "", errors.ErrConfiguration(fmt.Sprintf("Failed to read Azure OpenAI environment: %v", err))
	}

	var apiKey, endpoint string
	switch c.model {
	case "gpt-4.1":
		apiKey, endpoint = env.APIKeyGPT41, env.EndpointGPT41
	case "gpt-5":
		apiKey, endpoint = env.APIKeyGPT5, env.EndpointGPT5
	}
	if apiKey == "" {
		return "", errors.ErrConfiguration(
			fmt.Sprintf("%s environment variable not set for model %s", dep.KeyEnv, c.model),
		)
	}

	reqBody := azureChatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: azureSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   cfg.MaxOutputTokens,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.ErrProvider("azure-openai", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimSuffix(endpoint, "/"), dep.Deployment, dep.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", errors.ErrProvider("azure-openai", err)
	}
	req.Header.Set("api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.ErrProvider("azure-openai", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.ErrProvider("azure-openai",
			fmt.Errorf("azure openai returned status %d: %s", resp.StatusCode, string(body)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", errors.ErrProvider("azure-openai", fmt.Errorf("decoding response: %w", err))
	}
	if len(cr.Choices) == 0 {
		return "", errors.ErrProvider("azure-openai", fmt.Errorf("empty response from azure openai"))
	}

	return cr.Choices[0].Message.Content, nil
}
