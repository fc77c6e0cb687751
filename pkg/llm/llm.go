package llm

import "context"

// Provider is the capability interface implemented once per LLM backend.
// The analysis service is backend-agnostic: it only ever sends instruction
// text plus generation parameters and receives text back.
type Provider interface {
	// Invoke sends the instruction text to the backend and returns the raw
	// response text. Implementations resolve their own credentials from the
	// environment at invocation time, so a missing credential surfaces as a
	// request-time ConfigurationError.
	Invoke(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)

	// Model returns the model selector this provider serves.
	Model() string
}

// GenerationConfig holds the sampling parameters passed uniformly to every
// backend.
type GenerationConfig struct {
	Temperature     float64
	TopP            float64
	MaxOutputTokens int
}

// DefaultGenerationConfig returns the fixed generation parameters used for
// every analysis call.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopP:            0.95,
		MaxOutputTokens: 4096,
	}
}
