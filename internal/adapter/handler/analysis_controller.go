package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	dto "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/analysis"
)

// AnalysisController handles transcript analysis endpoints
type AnalysisController struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc analysis.Service, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, logger: logger}
}

// Analyze runs a full transcript analysis
// @Summary      Analyze meeting transcript
// @Description  Analyzes a transcript with the selected LLM and returns action items, open points, follow-up assessment, and a fruitfulness score
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest  true  "Transcript and optional meeting context"
// @Success      200      {object}  map[string]interface{}  "Structured meeting analysis"
// @Failure      400      {object}  map[string]interface{}  "Blank transcript or unknown model selector"
// @Failure      500      {object}  map[string]interface{}  "Missing provider credentials or unparsable LLM reply"
// @Failure      502      {object}  map[string]interface{}  "Provider call failed"
// @Router       /analyze [post]
func (ac *AnalysisController) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("Invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := ac.svc.Analyze(c.Request().Context(), req.ToEntity())
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, result)
}

// AnalyzePrompt renders the analysis prompt without invoking any provider
// @Summary      Get analysis prompt
// @Description  Returns the rendered instruction text for callers who forward it to an LLM of their own choosing
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest  true  "Transcript and optional meeting context"
// @Success      200      {object}  map[string]interface{}  "Rendered prompt"
// @Failure      400      {object}  map[string]interface{}  "Blank transcript or unknown model selector"
// @Router       /analyze/prompt [post]
func (ac *AnalysisController) AnalyzePrompt(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("Invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	prompt, err := ac.svc.BuildPrompt(req.ToEntity())
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, prompt)
}

// Models lists the supported model selectors
// @Summary      List available models
// @Tags         Analysis
// @Produce      json
// @Success      200  {object}  dto.ModelsResponse
// @Router       /models [get]
func (ac *AnalysisController) Models(c echo.Context) error {
	return HandleSuccess(ac.logger, c, dto.ModelsResponse{
		Models:  ac.svc.Models(),
		Default: ac.svc.DefaultModel(),
	})
}
