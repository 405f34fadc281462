package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/metrics"
	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
	"github.com/placementready/readiness-analyzer/analysis-service/internal/repository"
)

type AnalysisService interface {
	// Analyze generates a report and persists it best-effort, returning the
	// document id when the write succeeded and "" otherwise.
	Analyze(ctx context.Context, profile *models.StudentProfile) (models.ReadinessReport, string, error)
	ListUserAnalyses(ctx context.Context, userID string) ([]models.AnalysisSummary, error)
	GeminiConfigured() bool
	StoreConfigured() bool
}

type analysisService struct {
	generator *ReportGenerator
	repo      repository.AnalysisRepository
	logger    zerolog.Logger
}

// NewAnalysisService wires the generator and the optional persistence sink.
// repo may be nil when no store is configured.
func NewAnalysisService(generator *ReportGenerator, repo repository.AnalysisRepository, logger zerolog.Logger) AnalysisService {
	return &analysisService{
		generator: generator,
		repo:      repo,
		logger:    logger,
	}
}

func (s *analysisService) Analyze(ctx context.Context, profile *models.StudentProfile) (models.ReadinessReport, string, error) {
	start := time.Now()
	report, err := s.generator.Generate(ctx, profile)
	metrics.ModelRoundTrip.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AnalyzeRequests.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, "", err
	}
	metrics.AnalyzeRequests.WithLabelValues("success").Inc()

	docID := ""
	if s.repo != nil {
		id, err := s.repo.Save(ctx, profile, report)
		if err != nil {
			// Persistence is best-effort; the analysis still succeeds.
			s.logger.Error().Err(err).Msg("Failed to persist analysis")
			metrics.PersistFailures.Inc()
		} else {
			docID = id
		}
	}

	return report, docID, nil
}

func (s *analysisService) ListUserAnalyses(ctx context.Context, userID string) ([]models.AnalysisSummary, error) {
	if s.repo == nil {
		return nil, ErrStoreNotConfigured
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *analysisService) GeminiConfigured() bool {
	return s.generator.Configured()
}

func (s *analysisService) StoreConfigured() bool {
	return s.repo != nil
}

func outcomeLabel(err error) string {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind.String()
	}
	return "upstream"
}
