package analysis

// ModelsResponse lists the supported model selectors
type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

// HealthResponse reports liveness and which provider credentials are
// configured (booleans only, never the values)
type HealthResponse struct {
	Status    string          `json:"status"`
	Providers map[string]bool `json:"providers_configured"`
	Models    []string        `json:"available_models"`
}
