package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/pkg/llm"
)

// Service defines transcript analysis operations
type Service interface {
	// Analyze runs the full pipeline: prompt, provider call, normalization.
	Analyze(ctx context.Context, req *entities.AnalysisRequest) (*entities.MeetingAnalysis, error)
	// BuildPrompt renders the analysis instruction without invoking any
	// provider, for callers who forward it to an LLM of their own choosing.
	BuildPrompt(req *entities.AnalysisRequest) (*entities.AnalysisPrompt, error)
	// Models lists the supported model selectors.
	Models() []string
	// DefaultModel returns the selector used when a request omits one.
	DefaultModel() string
}

type analysisService struct {
	registry   *llm.Registry
	normalizer *Normalizer
	logger     *zap.Logger
}

// NewService constructs a new analysis service
func NewService(registry *llm.Registry, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analysisService{
		registry:   registry,
		normalizer: NewNormalizer(),
		logger:     logger,
	}
}

// Analyze builds the prompt, invokes the selected provider, and normalizes
// the reply. Each request is an independent, stateless unit of work; any
// stage's failure aborts the whole call with no partial result.
func (s *analysisService) Analyze(ctx context.Context, req *entities.AnalysisRequest) (*entities.MeetingAnalysis, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, errors.ErrInvalidArgument("Transcript cannot be empty")
	}

	provider, err := s.registry.Resolve(req.Model)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	s.logger.Info("🤖 Starting transcript analysis",
		zap.String("request_id", requestID),
		zap.String("model", provider.Model()),
		zap.Int("transcript_length", len(req.Transcript)),
	)

	prompt := RenderPrompt(req)

	raw, err := provider.Invoke(ctx, prompt, llm.DefaultGenerationConfig())
	if err != nil {
		s.logger.Error("❌ Provider call failed",
			zap.String("request_id", requestID),
			zap.String("model", provider.Model()),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := s.normalizer.Normalize(raw)
	if err != nil {
		s.logger.Error("❌ Failed to parse LLM response",
			zap.String("request_id", requestID),
			zap.String("raw_response", raw[:min(500, len(raw))]),
			zap.Error(err),
		)
		return nil, err
	}

	result.ModelUsed = provider.Model()

	// timeDifference only exists when both durations were supplied
	if req.BookedDurationMinutes != nil && req.ActualDurationMinutes != nil {
		diff := *req.BookedDurationMinutes - *req.ActualDurationMinutes
		result.TimeDifference = &diff
	}

	s.logger.Info("✅ Analysis completed",
		zap.String("request_id", requestID),
		zap.Int("action_items", len(result.ActionItems)),
		zap.Int("open_points", len(result.OpenPoints)),
		zap.Int("score", result.Fruitfulness.Score),
	)

	return result, nil
}

// BuildPrompt validates the transcript exactly like Analyze, then returns
// the rendered instruction text without any provider call
func (s *analysisService) BuildPrompt(req *entities.AnalysisRequest) (*entities.AnalysisPrompt, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, errors.ErrInvalidArgument("Transcript cannot be empty")
	}

	provider, err := s.registry.Resolve(req.Model)
	if err != nil {
		return nil, err
	}

	return &entities.AnalysisPrompt{
		Prompt:       RenderPrompt(req),
		Instructions: fmt.Sprintf("Send this prompt to an LLM (%s) to get the analysis", provider.Model()),
	}, nil
}

// Models lists the supported model selectors
func (s *analysisService) Models() []string {
	return s.registry.Models()
}

// DefaultModel returns the selector used when a request omits one
func (s *analysisService) DefaultModel() string {
	return s.registry.DefaultModel()
}
