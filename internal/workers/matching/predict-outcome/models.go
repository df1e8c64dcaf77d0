// internal/workers/matching/predict-outcome/models.go
package predictoutcome

import "adoption-workers/internal/models"

type Input struct {
	AdopterExperienceLevel string  `json:"adopterExperienceLevel"`
	DogDifficultyLevel     string  `json:"dogDifficultyLevel"`
	MatchScore             float64 `json:"matchScore"`
}

type Output struct {
	Prediction *models.PredictionResult `json:"prediction"`
}
