// internal/matching/deps.go
package matching

import (
	"context"

	"adoption-workers/internal/models"
)

// RecordStore resolves application and dog documents.
type RecordStore interface {
	GetApplication(ctx context.Context, applicationID string) (*models.Application, error)
	GetDog(ctx context.Context, dogID string) (*models.DogProfile, error)
	// ListCandidateApplications returns up to max applications with status
	// Pending or Under_Review, in index order.
	ListCandidateApplications(ctx context.Context, max int) ([]*models.Application, error)
}

// SimilarityQuery describes one embedding-backed search.
type SimilarityQuery struct {
	Index     string
	Field     string
	QueryText string
	// DocID restricts the search to a single document when set.
	DocID string
	// Filters are exact term filters applied alongside the semantic clause.
	Filters map[string]string
	TopK    int
}

// SimilarityHit is one scored result from a similarity search.
type SimilarityHit struct {
	ID     string
	Score  float64
	Source map[string]interface{}
}

// SimilaritySearcher is the embedding-backed search collaborator. Score scale
// is implementation-defined; motivation scoring assumes roughly 0-2.
type SimilaritySearcher interface {
	Search(ctx context.Context, q SimilarityQuery) ([]SimilarityHit, error)
}

// ClassifierPrediction is the trained model's answer for one feature triple.
type ClassifierPrediction struct {
	Success     bool
	Probability float64
}

// OutcomeClassifier is the trained model collaborator.
type OutcomeClassifier interface {
	Predict(ctx context.Context, adopterExperience, dogDifficulty string, matchScore float64) (*ClassifierPrediction, error)
}

// PredictionLogger records predictions for later accuracy tracking. Logging
// failures are non-fatal to the prediction itself.
type PredictionLogger interface {
	Log(ctx context.Context, prediction *models.PredictionResult) error
}
