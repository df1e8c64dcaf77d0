// internal/models/matching.go
package models

// Recommendation decisions.
const (
	RecommendationApprove = "approve"
	RecommendationReview  = "review"
	RecommendationReject  = "reject"
)

// DimensionScores holds the five compatibility sub-scores, each in [0,100].
type DimensionScores struct {
	Experience float64 `json:"experience"`
	Housing    float64 `json:"housing"`
	Lifestyle  float64 `json:"lifestyle"`
	Household  float64 `json:"household"`
	Motivation float64 `json:"motivation"`
}

// CompatibilityResult is the outcome of scoring one application against one dog.
// Built fresh per scoring call and never mutated afterwards.
type CompatibilityResult struct {
	OverallScore    float64         `json:"overall_score"`
	DimensionScores DimensionScores `json:"dimension_scores"`
	Recommendation  string          `json:"recommendation"`
	Concerns        []string        `json:"concerns"`
	ApplicationID   string          `json:"application_id"`
	DogID           string          `json:"dog_id"`
}

// RankedApplication pairs an application with its compatibility result.
type RankedApplication struct {
	Application   *Application         `json:"application"`
	Compatibility *CompatibilityResult `json:"compatibility"`
}

// Prediction sources.
const (
	PredictionSourceClassifier         = "classifier"
	PredictionSourceSimilarityFallback = "similarity_fallback"
)

// SimilarCase references a historical outcome retrieved as prediction evidence.
type SimilarCase struct {
	OutcomeID      string  `json:"outcome_id"`
	Score          float64 `json:"score"`
	Outcome        string  `json:"outcome"`
	SuccessFactors string  `json:"success_factors,omitempty"`
	FailureFactors string  `json:"failure_factors,omitempty"`
}

// PredictionResult is the outcome of an adoption outcome prediction.
type PredictionResult struct {
	PredictedOutcome string  `json:"predicted_outcome"`
	Confidence       float64 `json:"confidence"`
	Source           string  `json:"source"`
	Recommendation   string  `json:"recommendation"`

	AdopterExperience string  `json:"adopter_experience"`
	DogDifficulty     string  `json:"dog_difficulty"`
	MatchScore        float64 `json:"match_score"`

	// Populated only on the similarity fallback path, up to three per side.
	SimilarSuccessCases []SimilarCase `json:"similar_success_cases,omitempty"`
	SimilarFailureCases []SimilarCase `json:"similar_failure_cases,omitempty"`
}
