package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/models"
)

// AnalysisRepository stores immutable analysis records and serves the
// per-user history query. Records are never updated or deleted.
type AnalysisRepository interface {
	Save(ctx context.Context, profile *models.StudentProfile, report models.ReadinessReport) (string, error)
	ListByUser(ctx context.Context, userID string) ([]models.AnalysisSummary, error)
	Close() error
}

type firestoreRepository struct {
	client     *firestore.Client
	collection string
	logger     zerolog.Logger
}

func NewFirestoreRepository(ctx context.Context, credentialsPath, projectID, collection string, logger zerolog.Logger) (AnalysisRepository, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, err
	}

	return &firestoreRepository{
		client:     client,
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *firestoreRepository) Save(ctx context.Context, profile *models.StudentProfile, report models.ReadinessReport) (string, error) {
	docID := uuid.New().String()
	data := docData(profile, report, time.Now().UTC())

	if _, err := r.client.Collection(r.collection).Doc(docID).Set(ctx, data); err != nil {
		return "", err
	}

	return docID, nil
}

func (r *firestoreRepository) ListByUser(ctx context.Context, userID string) ([]models.AnalysisSummary, error) {
	base := r.client.Collection(r.collection).
		Where("user_id", "==", userID).
		Limit(maxUserAnalyses)

	// The ordered form needs a composite index; fall back to an unordered
	// fetch and sort client-side when it is unavailable.
	docs, err := base.OrderBy("timestamp", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		r.logger.Warn().Err(err).Msg("Ordered query failed, fetching without order")
		docs, err = base.Documents(ctx).GetAll()
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	summaries := make([]models.AnalysisSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, summaryFromDoc(doc.Ref.ID, doc.Data(), now))
	}

	sortNewestFirst(summaries)
	return summaries, nil
}

func (r *firestoreRepository) Close() error {
	return r.client.Close()
}
