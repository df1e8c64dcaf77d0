// internal/matching/scorer.go
package matching

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/common/metrics"
	"adoption-workers/internal/models"
)

// Options configures the matching engine. Zero values fall back to defaults.
type Options struct {
	ApplicationsIndex string
	OutcomesIndex     string
	MaxCandidates     int
	RankConcurrency   int
	SearchTimeout     time.Duration
}

// Engine implements compatibility scoring, ranking and outcome prediction
// over its collaborators. All methods are safe for concurrent use.
type Engine struct {
	store         RecordStore
	searcher      SimilaritySearcher
	classifier    OutcomeClassifier
	predictionLog PredictionLogger
	logger        logger.Logger
	opts          Options
}

func NewEngine(store RecordStore, searcher SimilaritySearcher, classifier OutcomeClassifier, predictionLog PredictionLogger, log logger.Logger, opts Options) *Engine {
	if opts.ApplicationsIndex == "" {
		opts.ApplicationsIndex = "applications"
	}
	if opts.OutcomesIndex == "" {
		opts.OutcomesIndex = "rescue-adoption-outcomes"
	}
	if opts.MaxCandidates <= 0 || opts.MaxCandidates > 100 {
		opts.MaxCandidates = 100
	}
	if opts.RankConcurrency <= 0 {
		opts.RankConcurrency = 8
	}
	if opts.SearchTimeout <= 0 {
		opts.SearchTimeout = 5 * time.Second
	}

	return &Engine{
		store:         store,
		searcher:      searcher,
		classifier:    classifier,
		predictionLog: predictionLog,
		logger:        log,
		opts:          opts,
	}
}

// ComputeCompatibility resolves both records and scores the pair.
func (e *Engine) ComputeCompatibility(ctx context.Context, applicationID, dogID string) (*models.CompatibilityResult, error) {
	app, err := e.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	dog, err := e.store.GetDog(ctx, dogID)
	if err != nil {
		return nil, err
	}

	return e.scorePair(ctx, app, dog), nil
}

// scorePair computes all five dimensions and aggregates them. Both records
// must already be materialized.
func (e *Engine) scorePair(ctx context.Context, app *models.Application, dog *models.DogProfile) *models.CompatibilityResult {
	dims := models.DimensionScores{
		Experience: scoreExperience(app, dog),
		Housing:    scoreHousing(app, dog),
		Lifestyle:  scoreLifestyle(app, dog),
		Household:  scoreHousehold(app, dog),
		Motivation: e.scoreMotivation(ctx, app, dog),
	}

	overall := round2(dims.Experience*weightExperience +
		dims.Housing*weightHousing +
		dims.Lifestyle*weightLifestyle +
		dims.Household*weightHousehold +
		dims.Motivation*weightMotivation)

	recommendation, concerns := deriveRecommendation(overall, dims, app)

	return &models.CompatibilityResult{
		OverallScore: overall,
		DimensionScores: models.DimensionScores{
			Experience: round2(dims.Experience),
			Housing:    round2(dims.Housing),
			Lifestyle:  round2(dims.Lifestyle),
			Household:  round2(dims.Household),
			Motivation: round2(dims.Motivation),
		},
		Recommendation: recommendation,
		Concerns:       concerns,
		ApplicationID:  app.ID,
		DogID:          dog.ID,
	}
}

// scoreMotivation rates how well the application's stored essays align with
// the dog's profile using the semantic search collaborator. Any search error
// degrades to a neutral 50 so a search outage never fails a scoring call.
func (e *Engine) scoreMotivation(ctx context.Context, app *models.Application, dog *models.DogProfile) float64 {
	searchCtx, cancel := context.WithTimeout(ctx, e.opts.SearchTimeout)
	defer cancel()

	hits, err := e.searcher.Search(searchCtx, SimilarityQuery{
		Index:     e.opts.ApplicationsIndex,
		Field:     "application_summary",
		QueryText: buildDogProfileText(dog),
		DocID:     app.ID,
		TopK:      1,
	})
	if err != nil {
		e.logger.Warn("Motivation scoring degraded to neutral", map[string]interface{}{
			"applicationId": app.ID,
			"dogId":         dog.ID,
			"error":         err.Error(),
		})
		metrics.MotivationScoreDegraded.Inc()
		return 50
	}

	if len(hits) == 0 {
		return 50
	}

	// Semantic relevance is roughly 0-2; map linearly onto 0-100.
	return clampScore(hits[0].Score / 2 * 100)
}

func buildDogProfileText(dog *models.DogProfile) string {
	behavioral := dog.BehavioralNotes
	if behavioral == "" {
		behavioral = "N/A"
	}
	medical := "N/A"
	if len(dog.MedicalHistory) > 0 {
		medical = strings.Join(dog.MedicalHistory, "; ")
	}

	return fmt.Sprintf(
		"Dog: %s\nBreed: %s\nAge: %d\nWeight: %gkg\nBehavioral Notes: %s\nMedical History: %s",
		dog.Name, dog.Breed, dog.Age, dog.WeightKg, behavioral, medical,
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
