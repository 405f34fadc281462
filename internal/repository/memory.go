package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
)

// MemoryRepository is an in-process AnalysisRepository. It stores the same
// document shape as the Firestore implementation and reads it back through
// the same coercion path, so tests exercising it cover the real record
// round-trip.
type MemoryRepository struct {
	mu   sync.Mutex
	docs map[string]map[string]any
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		docs: make(map[string]map[string]any),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) Save(ctx context.Context, profile *models.StudentProfile, report models.ReadinessReport) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docID := uuid.New().String()
	r.docs[docID] = docData(profile, report, r.now())
	return docID, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]models.AnalysisSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	summaries := make([]models.AnalysisSummary, 0)
	for id, doc := range r.docs {
		if doc["user_id"] == userID {
			summaries = append(summaries, summaryFromDoc(id, doc, now))
		}
	}

	sortNewestFirst(summaries)
	if len(summaries) > maxUserAnalyses {
		summaries = summaries[:maxUserAnalyses]
	}
	return summaries, nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
