// internal/workers/matching/predict-outcome/handler_test.go
package predictoutcome

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/models"
)

// ==========================
// Mocks
// ==========================

type mockEngine struct {
	prediction *models.PredictionResult
	err        error

	gotExperience string
	gotDifficulty string
	gotScore      float64
	calls         int
}

func (m *mockEngine) PredictOutcome(ctx context.Context, adopterExperience, dogDifficulty string, matchScore float64) (*models.PredictionResult, error) {
	m.calls++
	m.gotExperience = adopterExperience
	m.gotDifficulty = dogDifficulty
	m.gotScore = matchScore
	if m.err != nil {
		return nil, m.err
	}
	return m.prediction, nil
}

func newTestHandler(t *testing.T, engine PredictionEngine) *Handler {
	return NewHandler(LoadConfig(), engine, logger.NewTestLogger(t))
}

// ==========================
// Execute
// ==========================

func TestHandler_Execute(t *testing.T) {
	t.Run("returns the engine prediction", func(t *testing.T) {
		engine := &mockEngine{
			prediction: &models.PredictionResult{
				PredictedOutcome: models.OutcomeSuccess,
				Confidence:       0.92,
				Source:           models.PredictionSourceClassifier,
				Recommendation:   "Strong Match - Proceed with adoption (ML confidence: high)",
			},
		}
		handler := newTestHandler(t, engine)

		output, err := handler.Execute(context.Background(), &Input{
			AdopterExperienceLevel: "expert",
			DogDifficultyLevel:     "easy",
			MatchScore:             82.5,
		})
		require.NoError(t, err)
		require.NotNil(t, output.Prediction)
		assert.Equal(t, models.OutcomeSuccess, output.Prediction.PredictedOutcome)
		assert.Equal(t, 0.92, output.Prediction.Confidence)

		assert.Equal(t, "expert", engine.gotExperience)
		assert.Equal(t, "easy", engine.gotDifficulty)
		assert.Equal(t, 82.5, engine.gotScore)
	})

	t.Run("engine errors pass through untouched", func(t *testing.T) {
		handler := newTestHandler(t, &mockEngine{
			err: errors.NewSearchQueryFailedError("rescue-adoption-outcomes", assert.AnError),
		})

		output, err := handler.Execute(context.Background(), &Input{
			AdopterExperienceLevel: "beginner",
			DogDifficultyLevel:     "challenging",
			MatchScore:             40,
		})
		assert.Nil(t, output)
		require.Error(t, err)
	})
}

// ==========================
// Schema Validation
// ==========================

func TestHandler_Execute_SchemaValidation(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"missing experience level", Input{DogDifficultyLevel: "easy", MatchScore: 80}},
		{"missing difficulty level", Input{AdopterExperienceLevel: "expert", MatchScore: 80}},
		{"unknown experience level", Input{AdopterExperienceLevel: "experienced", DogDifficultyLevel: "easy", MatchScore: 80}},
		{"unknown difficulty level", Input{AdopterExperienceLevel: "expert", DogDifficultyLevel: "impossible", MatchScore: 80}},
		{"score above range", Input{AdopterExperienceLevel: "expert", DogDifficultyLevel: "easy", MatchScore: 120}},
		{"score below range", Input{AdopterExperienceLevel: "expert", DogDifficultyLevel: "easy", MatchScore: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockEngine{}
			handler := newTestHandler(t, engine)

			output, err := handler.Execute(context.Background(), &tt.input)
			assert.Nil(t, output)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "INVALID_PREDICTION_INPUT")
			assert.Zero(t, engine.calls)
		})
	}

	t.Run("zero score is a valid boundary", func(t *testing.T) {
		engine := &mockEngine{
			prediction: &models.PredictionResult{PredictedOutcome: models.OutcomeReturned, Confidence: 0.5},
		}
		handler := newTestHandler(t, engine)

		output, err := handler.Execute(context.Background(), &Input{
			AdopterExperienceLevel: "beginner",
			DogDifficultyLevel:     "challenging",
			MatchScore:             0,
		})
		require.NoError(t, err)
		assert.NotNil(t, output.Prediction)
	})
}
