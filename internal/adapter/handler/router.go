package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	dto "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// Provider credential env vars reported by the health check. Booleans only,
// the values never leave the process.
var providerKeyEnvs = map[string]string{
	"azure-openai-gpt-4.1": "AZURE_OPENAI_API_KEY_GPT41",
	"azure-openai-gpt-5":   "AZURE_OPENAI_API_KEY_GPT5",
	"gemini":               "GEMINI_API_KEY",
	"groq":                 "GROQ_API_KEY",
}

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	analysisController *AnalysisController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisController *AnalysisController) *Router {
	return &Router{
		cfg:                cfg,
		analysisController: analysisController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupAnalysisRoutes(v1)
}

// setupAnalysisRoutes configures transcript analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	g.POST("/analyze", rt.analysisController.Analyze)
	g.POST("/analyze/prompt", rt.analysisController.AnalyzePrompt)
	g.GET("/models", rt.analysisController.Models)
}

// root returns the service banner
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"service":          "Meeting Analyzer API",
		"status":           "running",
		"available_models": rt.analysisController.svc.Models(),
		"endpoints": map[string]string{
			"POST /v1/analyze":        "Analyze a transcript and get structured JSON response",
			"POST /v1/analyze/prompt": "Get the analysis prompt for a transcript",
			"GET /v1/models":          "List available models",
			"GET /health":             "Health check",
		},
	})
}

// healthCheck reports liveness and which provider credentials are configured
func (rt *Router) healthCheck(c echo.Context) error {
	providers := make(map[string]bool, len(providerKeyEnvs))
	for name, env := range providerKeyEnvs {
		providers[name] = os.Getenv(env) != ""
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Providers: providers,
		Models:    rt.analysisController.svc.Models(),
	})
}
