// internal/matching/predictor.go
package matching

import (
	"context"
	"fmt"
	"sync"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/metrics"
	"adoption-workers/internal/models"
)

// PredictOutcome predicts the adoption outcome for a feature triple. The
// trained classifier is the primary path; any classifier error switches to
// similarity voting over historical outcomes, never surfacing the classifier
// failure to the caller.
func (e *Engine) PredictOutcome(ctx context.Context, adopterExperience, dogDifficulty string, matchScore float64) (*models.PredictionResult, error) {
	if adopterExperience == "" || dogDifficulty == "" {
		return nil, errors.NewInvalidPredictionInputError("adopterExperience and dogDifficulty are required")
	}

	var result *models.PredictionResult

	prediction, err := e.classifier.Predict(ctx, adopterExperience, dogDifficulty, matchScore)
	if err == nil {
		result = fromClassifier(prediction, adopterExperience, dogDifficulty, matchScore)
	} else {
		e.logger.Warn("Classifier unavailable, using similarity voting", map[string]interface{}{
			"adopterExperience": adopterExperience,
			"dogDifficulty":     dogDifficulty,
			"error":             err.Error(),
		})
		result = e.predictBySimilarity(ctx, adopterExperience, dogDifficulty, matchScore)
	}

	metrics.PredictionsTotal.WithLabelValues(result.Source).Inc()

	if e.predictionLog != nil {
		if err := e.predictionLog.Log(ctx, result); err != nil {
			e.logger.Warn("Failed to log prediction", map[string]interface{}{
				"source": result.Source,
				"error":  err.Error(),
			})
		}
	}

	return result, nil
}

// fromClassifier converts the trained model's answer into a result with a
// tiered recommendation.
func fromClassifier(p *ClassifierPrediction, adopterExperience, dogDifficulty string, matchScore float64) *models.PredictionResult {
	outcome := models.OutcomeReturned
	if p.Success {
		outcome = models.OutcomeSuccess
	}

	return &models.PredictionResult{
		PredictedOutcome:  outcome,
		Confidence:        round4(p.Probability),
		Source:            models.PredictionSourceClassifier,
		Recommendation:    classifierRecommendation(p.Success, p.Probability),
		AdopterExperience: adopterExperience,
		DogDifficulty:     dogDifficulty,
		MatchScore:        matchScore,
	}
}

func classifierRecommendation(predictedSuccess bool, confidence float64) string {
	switch {
	case predictedSuccess && confidence > 0.85:
		return "Strong Match - Proceed with adoption (ML confidence: high)"
	case predictedSuccess && confidence > 0.70:
		return "Good Match - Proceed with adoption (ML confidence: moderate)"
	case predictedSuccess:
		return "Possible Match - Schedule meet-and-greet (ML confidence: low)"
	case confidence > 0.85:
		return "High Risk - Not recommended (ML predicts failure with high confidence)"
	default:
		return "Uncertain - Consider trial foster period (ML confidence: low)"
	}
}

// predictBySimilarity votes over historical outcomes: the query text is
// matched against success_factors of successful adoptions and
// failure_factors of returned ones. A timeout on either side degrades that
// side to zero evidence rather than failing the prediction.
func (e *Engine) predictBySimilarity(ctx context.Context, adopterExperience, dogDifficulty string, matchScore float64) *models.PredictionResult {
	queryText := fmt.Sprintf("%s adopter with %s dog, match score %v", adopterExperience, dogDifficulty, matchScore)

	var (
		wg          sync.WaitGroup
		successHits []SimilarityHit
		failureHits []SimilarityHit
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		successHits = e.searchOutcomeSide(ctx, queryText, "success_factors", models.OutcomeSuccess)
	}()
	go func() {
		defer wg.Done()
		failureHits = e.searchOutcomeSide(ctx, queryText, "failure_factors", models.OutcomeReturned)
	}()
	wg.Wait()

	var successTotal, failureTotal float64
	for _, h := range successHits {
		successTotal += h.Score
	}
	for _, h := range failureHits {
		failureTotal += h.Score
	}

	ratio := 0.5
	if total := successTotal + failureTotal; total > 0 {
		ratio = successTotal / total
	}

	outcome := models.OutcomeReturned
	confidence := 1 - ratio
	if ratio > 0.5 {
		outcome = models.OutcomeSuccess
		confidence = ratio
	}

	recommendation := "High risk - recommend trial foster"
	if outcome == models.OutcomeSuccess {
		recommendation = "Proceed with adoption"
	}

	return &models.PredictionResult{
		PredictedOutcome:    outcome,
		Confidence:          round4(confidence),
		Source:              models.PredictionSourceSimilarityFallback,
		Recommendation:      recommendation,
		AdopterExperience:   adopterExperience,
		DogDifficulty:       dogDifficulty,
		MatchScore:          matchScore,
		SimilarSuccessCases: toSimilarCases(successHits, 3),
		SimilarFailureCases: toSimilarCases(failureHits, 3),
	}
}

func (e *Engine) searchOutcomeSide(ctx context.Context, queryText, field, outcome string) []SimilarityHit {
	searchCtx, cancel := context.WithTimeout(ctx, e.opts.SearchTimeout)
	defer cancel()

	hits, err := e.searcher.Search(searchCtx, SimilarityQuery{
		Index:     e.opts.OutcomesIndex,
		Field:     field,
		QueryText: queryText,
		Filters:   map[string]string{"outcome": outcome},
		TopK:      10,
	})
	if err != nil {
		e.logger.Warn("Outcome similarity search degraded to empty", map[string]interface{}{
			"outcome": outcome,
			"field":   field,
			"error":   err.Error(),
		})
		return nil
	}
	return hits
}

func toSimilarCases(hits []SimilarityHit, max int) []models.SimilarCase {
	if len(hits) > max {
		hits = hits[:max]
	}
	cases := make([]models.SimilarCase, 0, len(hits))
	for _, h := range hits {
		cases = append(cases, models.SimilarCase{
			OutcomeID:      h.ID,
			Score:          h.Score,
			Outcome:        sourceString(h.Source, "outcome"),
			SuccessFactors: sourceString(h.Source, "success_factors"),
			FailureFactors: sourceString(h.Source, "failure_factors"),
		})
	}
	return cases
}

func sourceString(source map[string]interface{}, key string) string {
	if source == nil {
		return ""
	}
	if v, ok := source[key].(string); ok {
		return v
	}
	return ""
}
