package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
)

// TextModel is a single-shot text generation backend.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ReportGenerator turns a validated profile into a readiness report:
// render prompt, call the model, extract and parse the JSON reply, check the
// required top-level keys. The parsed object is returned untouched.
type ReportGenerator struct {
	model  TextModel
	logger zerolog.Logger
}

func NewReportGenerator(model TextModel, logger zerolog.Logger) *ReportGenerator {
	return &ReportGenerator{
		model:  model,
		logger: logger,
	}
}

func (g *ReportGenerator) Configured() bool {
	return g.model != nil
}

func (g *ReportGenerator) Generate(ctx context.Context, profile *models.StudentProfile) (models.ReadinessReport, error) {
	if g.model == nil {
		return nil, &GenerationError{
			Kind:    ErrKindNotConfigured,
			Message: "Gemini API is not configured. Please check your API key.",
		}
	}

	prompt := buildAnalysisPrompt(profile)

	reply, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		genErr := classifyUpstreamError(err)
		g.logger.Error().Err(err).Str("kind", genErr.Kind.String()).Msg("Model call failed")
		return nil, genErr
	}

	text := extractJSONBlock(reply)

	var report models.ReadinessReport
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		g.logger.Error().Err(err).Msg("Model reply is not valid JSON")
		return nil, &GenerationError{
			Kind:    ErrKindMalformed,
			Message: fmt.Sprintf("Failed to parse Gemini response as JSON: %v", err),
		}
	}

	for _, field := range models.RequiredReportFields {
		if _, ok := report[field]; !ok {
			return nil, &GenerationError{
				Kind:    ErrKindIncomplete,
				Message: "Missing required field: " + field,
			}
		}
	}

	return report, nil
}
